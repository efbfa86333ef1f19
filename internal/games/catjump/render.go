package catjump

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/catjump/internal/core"
	"github.com/vovakirdan/catjump/internal/games/catjump/sim"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	EarChar      = '^'
	TailChar     = '~'
	FlameChar    = '*'
	LifeChar     = '♥'
	FragileChar  = '░'
	BrokenChar   = '·'
	PlatformChar = '▀'
	MovingChar   = '≈'
	SpringChar   = '≡'
)

// Minimum screen size that still shows a playable field.
const (
	minScreenW = 24
	minScreenH = 10
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// viewport maps world coordinates onto screen cells. The whole world width
// is visible; the world height maps onto the rows below the HUD.
type viewport struct {
	sx, sy  float64
	cameraY float64
}

func newViewport(s sim.GameState, w, h int) viewport {
	return viewport{
		sx:      float64(w) / s.ScreenWidth,
		sy:      float64(h-hudRows) / s.ScreenHeight,
		cameraY: s.CameraY,
	}
}

// cell converts a world rectangle to a cell rectangle at least one cell big.
func (v viewport) cell(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = hudRows + int(math.Floor((r.Y-v.cameraY)*v.sy))
	w = max(int(math.Round(r.W*v.sx)), 1)
	h = max(int(math.Round(r.H*v.sy)), 1)
	return x, y, w, h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	s := g.state
	vp := newViewport(s, w, h)

	for _, p := range s.Platforms {
		drawPlatform(dst, vp, p)
	}
	for _, p := range s.PowerUps {
		drawPowerUp(dst, vp, p)
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, vp, o)
	}
	drawCat(dst, vp, s.Cat, g.skin)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, []string{"PAUSED", "Press P to resume"}, core.ColorBrightYellow)
	}
	if s.GameOver {
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d  Level: %d  Eaten: %d", s.Score, s.Level, s.Cat.Eaten)}
		if s.NewHighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R restart  Q quit")
		drawCenteredMessage(dst, lines, core.ColorBrightRed)
	}
}

func drawPlatform(dst *core.Screen, vp viewport, p sim.Platform) {
	x, y, w, _ := vp.cell(p.Rect())
	switch {
	case !p.Active:
		dst.DrawHLine(x, y, w, BrokenChar, core.ColorDarkGray)
	case p.Type == sim.PlatformMoving:
		dst.DrawHLine(x, y, w, MovingChar, core.ColorBrightCyan)
	case p.Type == sim.PlatformFragile:
		dst.DrawHLine(x, y, w, FragileChar, core.ColorBrown)
	case p.Type == sim.PlatformSpring:
		dst.DrawHLine(x, y, w, PlatformChar, core.ColorGreen)
		dst.SetColored(x+w/2, y, SpringChar, core.ColorBrightMagenta)
	default:
		dst.DrawHLine(x, y, w, PlatformChar, core.ColorGreen)
	}
}

func drawPowerUp(dst *core.Screen, vp viewport, p sim.PowerUp) {
	x, y, w, _ := vp.cell(p.Rect())
	if p.Type == sim.PowerUpJetpack {
		dst.SetColored(x+w/2, y, 'J', core.ColorBrightRed)
		return
	}
	dst.SetColored(x+w/2, y, '◆', core.ColorGold)
}

// obstacleGlyph returns the glyph and colour a creature is drawn with.
func obstacleGlyph(t sim.ObstacleType) (rune, core.Color) {
	switch t {
	case sim.ObstacleCactus:
		return 'Ψ', core.ColorBrightGreen
	case sim.ObstacleBird:
		return 'v', core.ColorBrightWhite
	case sim.ObstacleBat:
		return 'w', core.ColorLavender
	case sim.ObstacleMouse:
		return 'm', core.ColorGray
	case sim.ObstacleDog:
		return 'D', core.ColorBrown
	default:
		return '?', core.ColorDefault
	}
}

func drawObstacle(dst *core.Screen, vp viewport, o sim.Obstacle) {
	x, y, w, h := vp.cell(o.Rect())
	glyph, color := obstacleGlyph(o.Type)
	dst.FillRect(x, y, w, h, glyph, color)
}

func drawCat(dst *core.Screen, vp viewport, c sim.Cat, skin Skin) {
	// Blink while invincible after a hit
	if c.InvincibilityFrames > 0 && (c.InvincibilityFrames/4)%2 == 1 {
		return
	}

	x, y, w, h := vp.cell(c.Rect())
	dst.FillRect(x, y, w, h, BodyChar, skin.Color)

	head, tail := x+w-1, x
	if !c.FacingRight {
		head, tail = x, x+w-1
	}
	if w > 1 {
		dst.SetColored(head, y, EarChar, skin.Trim)
		dst.SetColored(tail, y+h-1, TailChar, skin.Trim)
	}

	if c.PowerUp.JetpackActive {
		dst.DrawHLine(x, y+h, w, FlameChar, core.ColorBrightRed)
	}
}

// drawHUD draws the status line on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	dst.FillRect(0, 0, dst.Width(), hudRows, ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score %d  Hi %d  Lv %d  Eaten %d ", s.Score, max(s.HighScore, s.Score), s.Level, s.Cat.Eaten)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	x := len(left)
	lives := strings.Repeat(string(LifeChar), max(s.Cat.Lives, 0))
	dst.DrawTextColored(x, 0, lives, core.ColorBrightRed)
	x += len([]rune(lives)) + 1

	pu := s.Cat.PowerUp
	if pu.JetpackActive {
		remaining := float64(pu.JetpackEndTime-s.CurrentTime) / 1000
		tag := fmt.Sprintf("[JET %.1fs]", max(remaining, 0))
		dst.DrawTextColored(x, 0, tag, core.ColorBrightRed)
		x += len(tag) + 1
	}
	if pu.SuperJumpActive {
		dst.DrawTextColored(x, 0, fmt.Sprintf("[JUMP x%d]", pu.SuperJumpsRemaining), core.ColorGold)
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string, c core.Color) {
	w, h := dst.Width(), dst.Height()

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, w)
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	for i, l := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(boxY+1+i, l, color)
	}
}
