package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <position>...",
		Short: "Delete entries by position",
		Long:  "Delete the entries at the given positions (as shown by list). Positions are resolved together against the current journal.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	indices := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			exitErr("rm", fmt.Errorf("invalid position %q", a))
		}
		indices = append(indices, i)
	}

	s, closeStore := openStore(cmd)
	defer closeStore()

	removed := s.Delete(cmd.Context(), indices)

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"removed":%d}`+"\n", removed)
}
