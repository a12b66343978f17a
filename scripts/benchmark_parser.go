// Command benchmark_parser turns `go test -bench` output into a markdown
// report comparing Float ("modfloat") against big.Float ("big").
//
//	go test -run '^$' -bench . -benchmem ./... | go run ./scripts -output bench.md
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Implementation names used as the first sub-benchmark level.
const (
	implOurs = "modfloat"
	implBig  = "big"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Package     string
	Name        string
	Operation   string
	Impl        string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult pairs the two implementations of one operation. Only
// is set when no big.Float counterpart was run.
type ComparisonResult struct {
	Package   string
	Operation string
	Ours      BenchmarkResult
	Big       BenchmarkResult
	Speedup   float64
	Only      bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

// BenchmarkMul/modfloat-8    10000    124.5 ns/op    0 B/op    0 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func main() {
	flag.Parse()

	in := io.Reader(os.Stdin)
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d results into %d comparisons\n", len(results), len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())
	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult
	pkg := ""

	for scanner.Scan() {
		line := scanner.Text()

		// Accept `go test -json` events as well as plain output.
		var event struct {
			Package string
			Output  string
		}
		if err := json.Unmarshal([]byte(line), &event); err == nil && event.Output != "" {
			line = event.Output
			pkg = event.Package
		}
		line = strings.TrimSpace(line)
		if p, ok := strings.CutPrefix(line, "pkg: "); ok {
			pkg = p
			continue
		}

		m := benchmarkRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		r := BenchmarkResult{Package: pkg, Name: m[1]}
		r.Iterations, _ = strconv.Atoi(m[2])
		r.NsPerOp, _ = strconv.ParseFloat(m[3], 64)
		if m[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(m[4], 10, 64)
		}
		if m[5] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(m[5], 10, 64)
		}
		r.Operation, r.Impl = splitName(r.Name)
		results = append(results, r)
	}
	return results
}

// splitName maps "BenchmarkMul/big-8" to ("Mul", "big") and names without an
// implementation level, such as "BenchmarkPool_Compact-8", to
// ("Pool_Compact", "modfloat").
func splitName(name string) (string, string) {
	name = strings.TrimPrefix(name, "Benchmark")
	if i := strings.LastIndex(name, "-"); i > 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			name = name[:i]
		}
	}
	op, impl, ok := strings.Cut(name, "/")
	if !ok || (impl != implOurs && impl != implBig) {
		return name, implOurs
	}
	return op, impl
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	type key struct{ pkg, op string }
	grouped := make(map[key]map[string]BenchmarkResult)
	for _, r := range results {
		k := key{r.Package, r.Operation}
		if grouped[k] == nil {
			grouped[k] = make(map[string]BenchmarkResult)
		}
		grouped[k][r.Impl] = r
	}

	var comparisons []ComparisonResult
	for k, impls := range grouped {
		ours, hasOurs := impls[implOurs]
		if !hasOurs {
			continue
		}
		c := ComparisonResult{Package: k.pkg, Operation: k.op, Ours: ours, Only: true}
		if ref, ok := impls[implBig]; ok && ours.NsPerOp > 0 {
			c.Big = ref
			c.Speedup = ref.NsPerOp / ours.NsPerOp
			c.Only = false
		}
		comparisons = append(comparisons, c)
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Package != comparisons[j].Package {
			return comparisons[i].Package < comparisons[j].Package
		}
		return comparisons[i].Operation < comparisons[j].Operation
	})
	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	faster, slower, only := 0, 0, 0
	total := 0.0
	for _, c := range comparisons {
		switch {
		case c.Only:
			only++
		case c.Speedup >= 1:
			faster++
			total += c.Speedup
		default:
			slower++
			total += c.Speedup
		}
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total benchmarks**: %d\n", len(comparisons))
	if n := faster + slower; n > 0 {
		fmt.Fprintf(&sb, "- **Compared with big.Float**: %d\n", n)
		fmt.Fprintf(&sb, "  - modfloat faster: %d\n", faster)
		fmt.Fprintf(&sb, "  - big.Float faster: %d\n", slower)
		fmt.Fprintf(&sb, "  - Average speedup: **%.2fx**\n", total/float64(n))
	}
	fmt.Fprintf(&sb, "- **modfloat only**: %d\n\n", only)

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Package | Operation | modfloat (ns/op) | big (ns/op) | Speedup | Memory (B/op) | Allocs |\n")
	sb.WriteString("|---------|-----------|------------------|-------------|---------|---------------|--------|\n")
	for _, c := range comparisons {
		pkg := c.Package[strings.LastIndex(c.Package, "/")+1:]
		if c.Only {
			fmt.Fprintf(&sb, "| %s | %s | %s | *N/A* | *modfloat only* | %s | %d |\n",
				pkg, c.Operation,
				humanize.CommafWithDigits(c.Ours.NsPerOp, 1),
				humanize.IBytes(uint64(c.Ours.BytesPerOp)),
				c.Ours.AllocsPerOp)
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %.2fx | %s vs %s | %d vs %d |\n",
			pkg, c.Operation,
			humanize.CommafWithDigits(c.Ours.NsPerOp, 1),
			humanize.CommafWithDigits(c.Big.NsPerOp, 1),
			c.Speedup,
			humanize.IBytes(uint64(c.Ours.BytesPerOp)),
			humanize.IBytes(uint64(c.Big.BytesPerOp)),
			c.Ours.AllocsPerOp, c.Big.AllocsPerOp)
	}

	sb.WriteString("\n## Notes\n\n")
	sb.WriteString("- **Speedup > 1.0**: modfloat is faster than a 256-bit big.Float\n")
	sb.WriteString("- **Memory comparison**: Lower is better\n")
	return sb.String()
}
