package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/mining"
	"github.com/jonathan/career-coach/internal/quality"
)

var analyzeFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run quality analysis and achievement mining on a text file",
	Long:  `Analyze career narrative text from a file (or stdin) and print the quality score and mined achievements as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Path to a text file (reads stdin when omitted)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	text, err := readInput()
	if err != nil {
		return err
	}

	score, err := quality.NewAnalyzer().Analyze(text)
	if err != nil {
		return err
	}
	achievements := mining.NewMiner().Mine(text)

	out := map[string]any{
		"quality_score": score,
		"achievements":  achievements,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readInput() (string, error) {
	if analyzeFile == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(analyzeFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", analyzeFile, err)
	}
	return string(raw), nil
}
