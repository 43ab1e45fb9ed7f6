package cmd

import (
	"github.com/abhisek/kquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kquiz",
	Short: "K-pop trivia quiz in your terminal",
	Long:  "K-Quiz — AI-generated K-pop trivia: songs, idols and photocards, with score and streak tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("journal", "", "Path to a SQLite journal file (default: in-memory, discarded on exit)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveJournalDSN maps the --journal flag to a SQLite DSN. An empty
// flag selects the in-memory journal.
func resolveJournalDSN(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("journal")
	return store.ResolveDSN(path)
}
