// Command jplot computes the j-invariant to 256-bit precision and tabulates
// it over the fundamental domain.
package main

func main() {
	execute()
}
