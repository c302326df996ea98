// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jack999Lab/content-api/internal/history"
	"github.com/Jack999Lab/content-api/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generations from the history store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		formatHistoryTable(entries, cmd.OutOrStdout())
		return nil
	},
}

// formatHistoryTable writes entries as a human-readable table.
func formatHistoryTable(entries []types.HistoryEntry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No generations recorded.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-30s  %-12s  %-6s  %-4s  %-6s  %s\n",
		"ID", "Topic", "Tone", "Words", "SEO", "Uniq", "Created")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, e := range entries {
		topic := e.Topic
		if len(topic) > 30 {
			topic = topic[:27] + "..."
		}
		fmt.Fprintf(w, "%-36s  %-30s  %-12s  %-6d  %-4d  %-6.2f  %s\n",
			e.ID, topic, e.Tone, e.WordCount, e.SEOScore, e.UniquenessScore,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d generations\n", len(entries))
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum entries to list (default from config)")
	historyCmd.Flags().Bool("json", false, "print entries as JSON")

	rootCmd.AddCommand(historyCmd)
}
