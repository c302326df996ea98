// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jack999Lab/content-api/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <topic> [topic...]",
	Short: "Generate documents for 1-10 topics",
	Long: `Batch runs each topic through the content pipeline with shared keywords,
tone, and length, and prints the ordered results as JSON. One failed topic
does not stop the batch. More than 10 topics are rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		pipe, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		topics := make([]types.BatchTopic, 0, len(args))
		for _, t := range args {
			topics = append(topics, types.BatchTopic{Topic: t})
		}

		keywords, _ := cmd.Flags().GetString("keywords")
		tone, _ := cmd.Flags().GetString("tone")
		length, _ := cmd.Flags().GetInt("length")
		defaults := types.GenerationRequest{
			Keywords: keywords,
			Tone:     types.Tone(tone),
			Length:   length,
		}

		outcomes, err := pipe.GenerateBatch(cmd.Context(), topics, defaults, os.Stderr)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"success": true,
			"results": outcomes,
			"count":   len(outcomes),
		})
	},
}

func init() {
	batchCmd.Flags().String("keywords", "", "comma-separated keywords applied to every topic")
	batchCmd.Flags().String("tone", "", "tone applied to every topic")
	batchCmd.Flags().Int("length", 0, "target word count applied to every topic")

	rootCmd.AddCommand(batchCmd)
}
