// Package main provides the entry point for the Career Coach analysis server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach_agent",
	Short: "Career Coach analysis server",
	Long:  "Career Coach analyzes career narrative text: quality scoring, achievement mining, elite benchmark percentiles and a guided multi-turn coaching dialogue, exposed via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
