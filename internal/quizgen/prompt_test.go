package quizgen

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildUserMessage_CategoryBrief(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			msg := buildUserMessage(GenerateInput{Mode: mode}, DefaultConfig())
			if !strings.Contains(msg, "Category:") {
				t.Errorf("missing category brief:\n%s", msg)
			}
			if !strings.Contains(msg, "Already asked in this run:") {
				t.Errorf("missing dedup section:\n%s", msg)
			}
			if !strings.Contains(msg, "None") {
				t.Errorf("empty history should render as None:\n%s", msg)
			}
		})
	}
}

func TestBuildDedup(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := buildDedup(nil, 8); got != "None" {
			t.Errorf("got %q, want None", got)
		}
	})

	t.Run("numbered list", func(t *testing.T) {
		got := buildDedup([]string{"q one", "q two"}, 8)
		if !strings.Contains(got, "1. q one") || !strings.Contains(got, "2. q two") {
			t.Errorf("unexpected format:\n%s", got)
		}
	})

	t.Run("keeps most recent", func(t *testing.T) {
		var qs []string
		for i := 0; i < 12; i++ {
			qs = append(qs, fmt.Sprintf("question %d", i))
		}
		got := buildDedup(qs, 8)
		if strings.Contains(got, "question 3\n") {
			t.Errorf("oldest entries should be dropped:\n%s", got)
		}
		if !strings.Contains(got, "question 11") {
			t.Errorf("newest entry missing:\n%s", got)
		}
		if lines := strings.Count(got, "\n") + 1; lines != 8 {
			t.Errorf("expected 8 lines, got %d", lines)
		}
	})
}

func TestModePrompts_AllModesCovered(t *testing.T) {
	for _, mode := range Modes {
		if _, ok := modePrompts[mode]; !ok {
			t.Errorf("mode %q has no category brief", mode)
		}
	}
}
