// Package cli implements the daybook CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/config"
	"daybook/internal/kv"
	"daybook/internal/logger"
	"daybook/internal/model"
	"daybook/internal/store"
)

var (
	dbPath     string
	configPath string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "A local mood journal",
	Long:  "Record daily mood ratings with short summaries, search them, and export them as plain text. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $DAYBOOK_DB or ~/.daybook/daybook.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.daybook/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

// openStore resolves config, initializes logging, and opens the journal.
// The returned func closes the underlying database.
func openStore(cmd *cobra.Command) (*store.Store, func()) {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	logger.Init(cfg.LogLevel)

	path := cfg.DataPath
	if dbPath != "" {
		path = dbPath
	}
	adapter, err := kv.NewSQLite(path)
	if err != nil {
		exitErr("open db", err)
	}
	return store.Open(cmd.Context(), adapter), func() { adapter.Close() }
}

// writeEntries prints entries with their positions (the indices rm takes),
// or as JSON with -f json.
func writeEntries(w io.Writer, entries []model.Entry) {
	if formatFlag == "json" {
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Fprintln(w, string(b))
		return
	}
	for i, e := range entries {
		fmt.Fprintf(w, "[%d] %s  %s  %s\n", i, e.DateText(), ratingBar(e.Rating), e.Summary)
		if e.Details != nil {
			fmt.Fprintf(w, "    %s\n", *e.Details)
		}
	}
}

func ratingBar(rating int) string {
	bar := make([]rune, 0, model.MaxRating)
	for i := 0; i < rating; i++ {
		bar = append(bar, '★')
	}
	for i := rating; i < model.MaxRating; i++ {
		bar = append(bar, '☆')
	}
	return string(bar)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
