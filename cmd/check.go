package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <quizname>",
	Short: "Validate a quiz bank and show its chapters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := newLoader()
		known, err := loader.List()
		if err != nil {
			return err
		}

		b, err := loader.Load(args[0], known)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", b.Title(), b.Path)
		if m := b.Meta; m != nil {
			if m.Author != "" {
				fmt.Fprintf(out, "Author:  %s\n", m.Author)
			}
			if m.Version != "" {
				fmt.Fprintf(out, "Version: %s\n", m.Version)
			}
		}
		fmt.Fprintln(out)
		for _, ch := range b.Chapters {
			fmt.Fprintf(out, "  %-40s %4d\n", truncate(ch.Name, 40), len(ch.Questions))
		}
		fmt.Fprintf(out, "\n%d questions in %d chapters: OK\n", b.Count(), len(b.Chapters))
		return nil
	},
}
