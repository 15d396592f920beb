package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show journal statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, closeStore := openStore(cmd)
	defer closeStore()

	b, _ := json.MarshalIndent(s.Stats(), "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
