// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jack999Lab/content-api/internal/score"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report structural counts for existing content",
	Long: `Analyze reads content from a file (or stdin when no file is given) and
prints word/sentence counts, heading/paragraph/link counts, and a coarse
readability label as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading content: %w", err)
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		}
		if len(data) == 0 {
			return fmt.Errorf("content is required")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(score.Analyze(string(data)))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
