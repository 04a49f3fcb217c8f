// Package main provides the entry point for the resume screening CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume and job-description screening pipeline",
	Long:  "Screener extracts structured candidate and job information from resumes and job postings, then scores candidate-to-job fit with a component breakdown and rationale.",
}

var (
	flagConfig   string
	flagTaxonomy string
	flagVerbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagTaxonomy, "taxonomy", "", "Path to skill taxonomy JSON (default taxonomy/skill_taxonomy.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
