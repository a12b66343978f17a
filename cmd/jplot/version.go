package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/joshuapare/modfloat/float"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jplot %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  precision: %d bits (%d words)\n", float.Bits, float.Words)
		fmt.Printf("  go: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
