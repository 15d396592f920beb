package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long:  "List entries in the order they were written. The bracketed position is what rm takes.",
		Run:   runList,
	}

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	s, closeStore := openStore(cmd)
	defer closeStore()

	writeEntries(cmd.OutOrStdout(), s.Entries())
}
