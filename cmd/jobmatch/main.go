// Package main provides the entry point for the CV job-match HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "CV job-match HTTP API server",
	Long:  "jobmatch extracts skills from an uploaded CV, finds matching postings in the JobTech job-search index, and produces tailored-CV advice for saved postings.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
