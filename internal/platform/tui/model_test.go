package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/core"
	"github.com/vovakirdan/catjump/internal/games/catjump"
	"github.com/vovakirdan/catjump/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 30, Seed: 7, TickInterval: core.DefaultTickInterval}
	m := NewGameModel(catjump.New(config.DifficultyNormal), store, cfg, nil)
	m.Init()
	return m
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelTicks(t *testing.T) {
	m := newTestModel(t, nil)

	for range 10 {
		m = step(t, m, TickMsg{})
	}
	if m.State().GameOver {
		t.Fatal("run should not end within 10 ticks")
	}
	if m.State().Lives <= 0 {
		t.Errorf("expected lives at start, got %d", m.State().Lives)
	}

	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Errorf("view should include the HUD, got %q", view)
	}
}

func TestGameModelPauseKey(t *testing.T) {
	m := newTestModel(t, nil)

	m = step(t, m, runeKey('p'))
	m = step(t, m, TickMsg{})
	if !m.State().Paused {
		t.Fatal("expected paused state after p")
	}

	// Back works while paused when a menu is waiting
	m.canGoBack = true
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("b while paused should return to the menu")
	}
}

func TestGameModelBackIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)
	m.canGoBack = true

	m = step(t, m, TickMsg{})
	m = step(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("b should be ignored during a running game")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)
	for range 5 {
		m = step(t, m, TickMsg{})
	}
	before := m.State()

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
	if m.State() != before {
		t.Errorf("resize changed the run: %+v -> %+v", before, m.State())
	}
}

func TestGameModelLoadsHighScore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(catjump.IDNormal, 900); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := newTestModel(t, store)
	if m.config.HighScore != 900 {
		t.Errorf("HighScore = %d, want 900", m.config.HighScore)
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "cd") {
		t.Errorf("unexpected render %q", out)
	}
}
