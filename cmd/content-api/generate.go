// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jack999Lab/content-api/internal/history"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// cliRequest mirrors the HTTP wire format so the positional JSON argument
// behaves exactly like a POST body, including a string length field.
type cliRequest struct {
	Topic    string          `json:"topic"`
	Keywords string          `json:"keywords"`
	Tone     string          `json:"tone"`
	Length   json.RawMessage `json:"length"`
}

var generateCmd = &cobra.Command{
	Use:   "generate [request-json]",
	Short: "Generate a document for one topic",
	Long: `Generate runs a single topic through the content pipeline and prints the
result as JSON. The request can be given as flags or as one JSON argument
carrying topic, keywords, tone, and length.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromCLI(cmd, args)
		if err != nil {
			return err
		}

		cfg := loadConfig()
		pipe, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		result, err := pipe.Generate(cmd.Context(), req, os.Stderr)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			store, err := history.NewStore(cfg.History)
			if err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}
			defer store.Close()
			id, err := store.Record(cmd.Context(), result)
			if err != nil {
				return fmt.Errorf("recording generation: %w", err)
			}
			fmt.Fprintf(os.Stderr, "saved as %s\n", id)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// requestFromCLI merges the positional JSON argument (if any) with flags;
// flags win when both are set.
func requestFromCLI(cmd *cobra.Command, args []string) (types.GenerationRequest, error) {
	var req types.GenerationRequest

	if len(args) == 1 {
		var body cliRequest
		if err := json.Unmarshal([]byte(args[0]), &body); err != nil {
			return req, fmt.Errorf("parsing request argument: %w", err)
		}
		req = types.GenerationRequest{
			Topic:    body.Topic,
			Keywords: body.Keywords,
			Tone:     types.Tone(body.Tone),
			Length:   lengthFromRaw(body.Length),
		}
	}

	if topic, _ := cmd.Flags().GetString("topic"); topic != "" {
		req.Topic = topic
	}
	if keywords, _ := cmd.Flags().GetString("keywords"); keywords != "" {
		req.Keywords = keywords
	}
	if tone, _ := cmd.Flags().GetString("tone"); tone != "" {
		req.Tone = types.Tone(tone)
	}
	if length, _ := cmd.Flags().GetInt("length"); length != 0 {
		req.Length = length
	}
	return req, nil
}

// lengthFromRaw accepts a JSON number or string length; anything
// unparsable yields 0 so the pipeline falls back to its default.
func lengthFromRaw(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return types.ParseLength(s, 0)
	}
	return 0
}

func init() {
	generateCmd.Flags().String("topic", "", "topic to write about (required unless given in the JSON argument)")
	generateCmd.Flags().String("keywords", "", "comma-separated keywords")
	generateCmd.Flags().String("tone", "", "tone: professional, casual, academic, or creative")
	generateCmd.Flags().Int("length", 0, "target word count (100-2000, default 500)")
	generateCmd.Flags().Bool("save", false, "record the result in the history store")

	rootCmd.AddCommand(generateCmd)
}
