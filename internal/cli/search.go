package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search entries",
		Long:  "Find entries whose summary or date contains the term, case-insensitively.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	term := strings.Join(args, " ")

	s, closeStore := openStore(cmd)
	defer closeStore()

	writeEntries(cmd.OutOrStdout(), s.Query(term))
}
