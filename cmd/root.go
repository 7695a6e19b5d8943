package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/config"
	"github.com/abhisek/mcquiz/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mcquiz [quizname]",
	Short: "A quiz game for multiple choice tests",
	Long: `mcquiz asks the questions of a multiple choice quiz bank one at a time,
scores your answers and lists the questions you should review.

Banks are JSON or YAML files in the quiz directory. Without a quiz name an
interactive picker is shown.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runPlay,
}

// cfg and log are set up before any command runs.
var (
	cfg       *config.Config
	log       zerolog.Logger
	logCloser io.Closer
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("dir", "", "Directory with quiz banks (overrides MCQUIZ_DIR env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides LOG_LEVEL env var)")

	rootCmd.Flags().IntP("threshold", "t", config.NoThreshold, "Threshold for passing the quiz in percent; shows a pass/fail verdict")
	rootCmd.Flags().IntP("limit", "l", 0, "Limit the number of questions; no effect if the bank has fewer")
	rootCmd.Flags().Uint64("seed", 0, "Seed for the question order (0 = random)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Load()

	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.QuizDir = dir
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if f := cmd.Flags().Lookup("threshold"); f != nil && f.Changed {
		cfg.Threshold, _ = cmd.Flags().GetInt("threshold")
	}
	if f := cmd.Flags().Lookup("limit"); f != nil && f.Changed {
		cfg.Limit, _ = cmd.Flags().GetInt("limit")
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
		logCloser = f
	}
	log = logger.Setup(cfg.LogLevel, cfg.LogFormat, w)
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logCloser != nil {
		logCloser.Close()
	}
}

// newLoader returns a bank loader for the configured directory.
func newLoader() *bank.Loader {
	return bank.NewLoader(cfg.QuizDir, log)
}
