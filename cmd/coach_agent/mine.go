package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/mining"
)

var mineFile string

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Extract structured achievements from a text file",
	Long:  `Mine Context-Action-Result achievement claims from career narrative text and print them as JSON.`,
	RunE:  runMine,
}

func init() {
	mineCmd.Flags().StringVar(&mineFile, "file", "", "Path to a text file (reads stdin when omitted)")
	rootCmd.AddCommand(mineCmd)
}

func runMine(_ *cobra.Command, _ []string) error {
	var text string
	if mineFile == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(raw)
	} else {
		raw, err := os.ReadFile(mineFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", mineFile, err)
		}
		text = string(raw)
	}

	achievements := mining.NewMiner().Mine(text)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"achievements": achievements})
}
