package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s, cmd
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "bob", "3f0c2a4e-1d2b-4c5d-8e9f-0a1b2c3d4e5f")

	s, cmd := sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.current != screenGame || s.game == nil {
		t.Fatal("enter should start the selected variant")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if s.game.player != "bob" || !s.game.embedded {
		t.Errorf("game model player=%q embedded=%v", s.game.player, s.game.embedded)
	}

	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu || s.game != nil {
		t.Fatal("esc in game should return to the menu")
	}

	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.current != screenScores || s.scores == nil {
		t.Fatal("tab in menu should open the scoreboard")
	}

	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu {
		t.Fatal("esc in scoreboard should return to the menu")
	}

	s, cmd = sessionStep(t, s, runeKey('q'))
	if !s.quitting || cmd == nil {
		t.Error("q in menu should end the session")
	}
	if s.View() != "" {
		t.Error("ended session should render nothing")
	}
}

func TestSessionTracksResize(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "bob", "id")
	s, _ = sessionStep(t, s, tea.WindowSizeMsg{Width: 100, Height: 30})
	if s.config.ScreenW != 100 || s.config.ScreenH != 30 {
		t.Errorf("config = %dx%d", s.config.ScreenW, s.config.ScreenH)
	}

	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.game.screen.Width() != 100 {
		t.Errorf("game screen width = %d, expected 100", s.game.screen.Width())
	}
}

func TestSessionDropsTicksFromPreviousGame(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "bob", "id")

	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	oldLoop := s.game.loop
	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	s, _ = sessionStep(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.game.loop == oldLoop {
		t.Fatal("a new game should run its own tick chain")
	}

	s, cmd := sessionStep(t, s, TickMsg{Time: time.Now(), Loop: oldLoop})
	if cmd != nil {
		t.Error("the previous game's tick chain should end")
	}
	if !s.game.lastTick.IsZero() {
		t.Error("the previous game's tick advanced the new game")
	}

	s, cmd = sessionStep(t, s, TickMsg{Time: time.Now(), Loop: s.game.loop})
	if cmd == nil || s.game.lastTick.IsZero() {
		t.Error("the new game's own tick should run a frame")
	}
}
