// Command girder-report is the offline companion to the Girder service:
// it reads a load workbook, runs the simply supported beam analysis and
// writes a PDF report with the shear and moment diagrams.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "girder-report",
	Short: "Simply supported beam analysis reports",
	Long: `girder-report analyzes a single-span simply supported beam.

It reads point loads and UDLs from an Excel workbook, solves the
support reactions, samples the shear force and bending moment
distributions along the span and writes a PDF report with both
diagrams.

Subcommands:
  analyze   analyze a workbook and write the report
  template  write a sample input workbook
  version   print the version`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("girder-report v%s\n", version)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
