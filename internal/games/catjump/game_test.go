package catjump

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/core"
	"github.com/vovakirdan/catjump/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DifficultyNormal)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed, HighScore: 500})
	if err := g.ConfigErr(); err != nil {
		t.Fatalf("Reset() loaded tunables with error: %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{IDNormal, "Cat Jump"},
		{IDEasy, "Cat Jump (Easy)"},
		{IDHard, "Cat Jump (Hard)"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tc.id, err)
			}
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("got %q/%q, expected %q/%q", g.ID(), g.Title(), tc.id, tc.title)
			}
		})
	}
}

func TestModeID(t *testing.T) {
	tests := []struct {
		preset config.DifficultyPreset
		want   string
	}{
		{config.DifficultyEasy, IDEasy},
		{config.DifficultyNormal, IDNormal},
		{config.DifficultyHard, IDHard},
		{"", IDNormal},
	}
	for _, tc := range tests {
		if got := ModeID(tc.preset); got != tc.want {
			t.Errorf("ModeID(%q) = %q, expected %q", tc.preset, got, tc.want)
		}
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, 42)

	st := g.State()
	if st.Score != 0 || st.Level != 1 || st.Lives != 3 || st.HighScore != 500 {
		t.Errorf("State() = %+v, expected a fresh run with high score 500", st)
	}
	if st.GameOver || st.Paused {
		t.Errorf("State() = %+v, expected playing", st)
	}
	if g.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", g.Seed())
	}
}

func TestHeldDirectionLapses(t *testing.T) {
	g := newTestGame(t, 1)
	hold := g.cfg.Controls.HoldTicks
	startX := g.World().Cat.X

	g.Step(frame(core.ActionRight))
	for i := 1; i < hold; i++ {
		if g.engine.MoveDirection() != 1 {
			t.Fatalf("tick %d: direction = %d, expected the press to still hold", i, g.engine.MoveDirection())
		}
		g.Step(frame())
	}
	if g.engine.MoveDirection() != 1 {
		t.Fatalf("direction should last exactly %d ticks", hold)
	}

	g.Step(frame())
	if g.engine.MoveDirection() != 0 {
		t.Errorf("direction = %d after %d idle ticks, expected 0", g.engine.MoveDirection(), hold)
	}
	if g.World().Cat.X <= startX {
		t.Errorf("cat did not move right: x %v -> %v", startX, g.World().Cat.X)
	}
}

func TestStopCancelsHold(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(frame(core.ActionLeft))
	if g.engine.MoveDirection() != -1 {
		t.Fatalf("direction = %d, expected -1", g.engine.MoveDirection())
	}

	g.Step(frame(core.ActionStop))
	if g.engine.MoveDirection() != 0 {
		t.Errorf("direction = %d after stop, expected 0", g.engine.MoveDirection())
	}

	g.Step(frame(core.ActionLeft, core.ActionRight))
	if g.engine.MoveDirection() != 0 {
		t.Errorf("direction = %d with both keys, expected 0", g.engine.MoveDirection())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(frame())
	tick := g.World().Tick

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused after toggle")
	}
	g.Step(frame(core.ActionRight))
	if g.World().Tick != tick {
		t.Errorf("tick advanced while paused: %d -> %d", tick, g.World().Tick)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Fatal("expected resumed after second toggle")
	}
	if g.World().Tick != tick+1 {
		t.Errorf("tick = %d after resume, expected %d", g.World().Tick, tick+1)
	}
}

func TestJumpEventRaised(t *testing.T) {
	g := newTestGame(t, 9)

	for i := 0; i < 200; i++ {
		res := g.Step(frame())
		if slices.Contains(res.Events, "jump") {
			return
		}
	}
	t.Error("expected a jump event once the cat lands")
}

func TestGameOverStopsStepping(t *testing.T) {
	g := newTestGame(t, 5)
	g.state.GameOver = true
	tick := g.World().Tick

	res := g.Step(frame(core.ActionRight))
	if !res.State.GameOver || len(res.Events) != 0 {
		t.Errorf("Step() after game over = %+v, expected a quiet game over", res)
	}
	if g.World().Tick != tick {
		t.Error("finished run should not advance")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 600; i++ {
		in := frame()
		switch {
		case i%90 < 20:
			in.Set(core.ActionLeft)
		case i%90 < 40:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 11)
	g.SetSkin("tiger")
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score 0") || !strings.Contains(hud, "Hi 500") {
		t.Errorf("HUD = %q, expected score and high score", hud)
	}

	foundCat := false
	for y := 0; y < screen.Height() && !foundCat; y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			if c.Rune == BodyChar && c.Color == g.Skin().Color {
				foundCat = true
				break
			}
		}
	}
	if !foundCat {
		t.Error("cat body not drawn in the skin colour")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 11)
	screen := core.NewScreen(80, 24)

	g.state.GameOver = true
	g.state.NewHighScore = true
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "NEW HIGH SCORE!") {
		t.Errorf("game over overlay missing:\n%s", out)
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", small.String())
	}
}

func TestViewportCell(t *testing.T) {
	g := newTestGame(t, 1)
	vp := newViewport(g.World(), 108, 193)

	x, y, w, h := vp.cell(core.NewRect(540, 960, 220, 22))
	if x != 54 || y != 97 || w != 22 || h != 2 {
		t.Errorf("cell() = (%d, %d, %d, %d), expected (54, 97, 22, 2)", x, y, w, h)
	}

	_, _, w, h = vp.cell(core.NewRect(0, 0, 1, 1))
	if w != 1 || h != 1 {
		t.Errorf("tiny rect = %dx%d, expected at least one cell", w, h)
	}
}
