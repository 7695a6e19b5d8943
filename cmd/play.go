package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/mcquiz/internal/app"
	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/console"
	"github.com/abhisek/mcquiz/internal/screens/picker"
	"github.com/abhisek/mcquiz/internal/session"
)

// runPlay loads the requested bank and plays one session on the console.
func runPlay(cmd *cobra.Command, args []string) error {
	loader := newLoader()
	known, err := loader.List()
	if err != nil {
		return err
	}

	var b *bank.Bank
	if len(args) == 1 {
		b, err = loader.Load(args[0], known)
	} else {
		var path string
		path, err = pickBank(loader, known)
		if err == nil && path == "" {
			return nil
		}
		if err == nil {
			b, err = loader.ReadFile(path)
		}
	}
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	p := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), sigs)

	rng := session.NewRand(cfg.Seed)
	s := session.New(b.Questions(rng), cfg.Limit, rng)
	if cfg.HasThreshold() {
		s.SetThreshold(cfg.Threshold)
	}

	p.Info("%d questions found in %s", b.Count(), b.Path)
	if s.Total() < b.Count() {
		p.Info("This quiz is limited to %d random questions.", s.Total())
	}
	fmt.Fprintln(cmd.OutOrStdout())
	p.Notify("Starting the quiz now:", session.SeveritySuccess)

	ctx := log.WithContext(cmd.Context())
	outcome, err := session.Play(ctx, s, p)
	if err != nil {
		return fmt.Errorf("play %s: %w", b.Path, err)
	}
	log.Info().
		Str("bank", b.Path).
		Str("session", s.ID()).
		Stringer("outcome", outcome).
		Msg("session ended")

	p.RenderSummary(session.BuildSummary(s))
	p.Notify("Thank you for taking the quiz! Bye.", session.SeveritySuccess)
	return nil
}

// pickBank lets the user choose a bank interactively. It returns "" if
// the user quit without choosing.
func pickBank(loader *bank.Loader, known []string) (string, error) {
	if len(known) == 0 {
		return "", fmt.Errorf("%w: no banks in %s", bank.ErrQuizNotFound, loader.Dir())
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", fmt.Errorf("no quiz name given; available banks: %v", known)
	}

	entries := make([]picker.Entry, 0, len(known))
	for _, path := range known {
		b, err := loader.ReadFile(path)
		entries = append(entries, picker.Entry{Path: path, Bank: b, Err: err})
	}
	return app.Run(app.Options{Entries: entries})
}
