package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal",
		Long:  "Export the journal as plain text, or as JSON with -f json (the form import reads back).",
		Run:   runExport,
	}

	cmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")

	s, closeStore := openStore(cmd)
	defer closeStore()

	var text string
	if formatFlag == "json" {
		b, err := json.MarshalIndent(s.Entries(), "", "  ")
		if err != nil {
			exitErr("export", err)
		}
		text = string(b) + "\n"
	} else {
		text = s.Export()
	}

	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		exitErr("export", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"entries":%d,"file":%q}`+"\n", s.Len(), out)
}
