package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quiz banks",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := newLoader()
		known, err := loader.List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(known) == 0 {
			fmt.Fprintf(out, "No quiz banks found in %s.\n", loader.Dir())
			return nil
		}

		fmt.Fprintf(out, "%-24s  %-36s  %9s\n", "Name", "Title", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 73))
		for _, path := range known {
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			b, err := loader.ReadFile(path)
			if err != nil {
				fmt.Fprintf(out, "%-24s  %-36s  %9s\n", truncate(name, 24), "(cannot be loaded)", "-")
				continue
			}
			fmt.Fprintf(out, "%-24s  %-36s  %9d\n", truncate(name, 24), truncate(b.Title(), 36), b.Count())
		}
		return nil
	},
}

// truncate cuts s to at most n display cells without splitting a rune.
func truncate(s string, n int) string {
	return ansi.Truncate(s, n, "")
}
