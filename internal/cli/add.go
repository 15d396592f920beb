package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		Long:  "Add an entry for today. Summaries longer than 50 characters are truncated.",
		Run:   runAdd,
	}

	cmd.Flags().IntP("rating", "r", 0, "Mood rating from 1 (rough) to 5 (great)")
	cmd.Flags().StringP("summary", "s", "", "The day in a nutshell")
	cmd.Flags().String("details", "", "Optional longer reflection")

	cmd.MarkFlagRequired("rating")
	cmd.MarkFlagRequired("summary")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	rating, _ := cmd.Flags().GetInt("rating")
	summary, _ := cmd.Flags().GetString("summary")
	details, _ := cmd.Flags().GetString("details")

	// Validation happens here, at the input boundary; the store persists
	// whatever it is handed.
	e := model.NewEntry(rating, summary, details)
	if err := e.Validate(); err != nil {
		exitErr("add", err)
	}

	s, closeStore := openStore(cmd)
	defer closeStore()

	s.Add(cmd.Context(), e)

	b, _ := json.Marshal(e)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
