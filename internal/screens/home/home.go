package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kquiz/internal/game"
	"github.com/abhisek/kquiz/internal/quizgen"
	"github.com/abhisek/kquiz/internal/router"
	"github.com/abhisek/kquiz/internal/screen"
	"github.com/abhisek/kquiz/internal/screens/history"
	quizscreen "github.com/abhisek/kquiz/internal/screens/quiz"
	"github.com/abhisek/kquiz/internal/store"
	"github.com/abhisek/kquiz/internal/ui/components"
)

// Deps carries the shared services the home screen hands to child screens.
type Deps struct {
	Session   *game.Session
	Generator quizgen.Generator
	Events    store.EventRepo
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	menuLabels := []string{"SONG QUIZ", "IDOL QUIZ", "PHOTOCARD QUIZ", "HISTORY", "EXIT"}

	noGenerator := deps.Generator == nil

	pushQuiz := func(mode quizgen.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(deps.Session, deps.Generator, deps.Events, mode),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: pushQuiz(quizgen.ModeSong), Disabled: noGenerator},
		{Label: menuLabels[1], Action: pushQuiz(quizgen.ModeIdol), Disabled: noGenerator},
		{Label: menuLabels[2], Action: pushQuiz(quizgen.ModeCard), Disabled: noGenerator},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events, deps.Session.RunID)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	sess := h.deps.Session

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := LightstickIdle
		if sess.Streak >= 3 {
			variant = LightstickGlowing
		}
		sections = append(sections, renderLightstickBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(
		sess.Score, sess.BestStreak, sess.TotalCorrect, sess.TotalQuestions, cw, compact))

	if h.deps.Generator == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}

	if compact {
		sections = append(sections, renderStageMenuCompact(
			h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderStageMenu(
			h.menuLabels, h.menu.Selected, cw, disabled))
	}

	content := strings.Join(sections, "\n\n")

	return renderStageFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
