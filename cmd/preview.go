package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/kquiz/internal/llm"
	"github.com/abhisek/kquiz/internal/quizgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a category (no journal)",
	Long: `Generate and interactively answer questions for a specific category.

This is a stateless developer tool — no journal, no score tracking, no events.
Useful for evaluating question quality and tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mode", "song", "Category: song, idol or card")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	count, _ := cmd.Flags().GetInt("count")

	mode := quizgen.Mode(strings.ToLower(modeVal))
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q: must be song, idol or card", modeVal)
	}

	// Create LLM provider (no journal — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := quizgen.New(provider, quizgen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Category: %s\n", mode.Title())
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	var priorQuestions []string

	labels := []string{"A", "B", "C", "D"}

	for i := 1; i <= count; i++ {
		input := quizgen.GenerateInput{
			Mode:            mode,
			RecentQuestions: priorQuestions,
		}

		q, err := gen.Generate(ctx, input)
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		priorQuestions = append(priorQuestions, q.Text)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Text)
		if q.Details != "" {
			fmt.Println(q.Details)
		}
		for j, opt := range q.Options {
			fmt.Printf("  %s) %s\n", labels[j], opt)
		}

		fmt.Print("\nYour answer (A-D): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		selected := resolveOption(answer, q.Options)
		if quizgen.CheckAnswer(selected, q) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

// resolveOption maps a letter or digit to the option text; anything
// else is treated as the option text itself.
func resolveOption(answer string, options []string) string {
	if len(answer) == 1 {
		var idx int = -1
		c := answer[0]
		switch {
		case c >= 'a' && c <= 'd':
			idx = int(c - 'a')
		case c >= 'A' && c <= 'D':
			idx = int(c - 'A')
		case c >= '1' && c <= '4':
			idx = int(c - '1')
		}
		if idx >= 0 && idx < len(options) {
			return options[idx]
		}
	}
	return answer
}
