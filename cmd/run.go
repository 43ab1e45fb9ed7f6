package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/kquiz/internal/app"
	"github.com/abhisek/kquiz/internal/game"
	"github.com/abhisek/kquiz/internal/llm"
	"github.com/abhisek/kquiz/internal/quizgen"
	"github.com/abhisek/kquiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the journal, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dsn, err := resolveJournalDSN(cmd)
	if err != nil {
		return fmt.Errorf("resolve journal path: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Session: game.NewSession(),
		Events:  eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz categories will be unavailable.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(opts)
}
