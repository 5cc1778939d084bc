package game

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Fallback glyphs used when a configured sprite is missing or unprintable.
const (
	FallbackPlayer  = 'O'
	FallbackPipe    = '#'
	FallbackPipeCap = '='
)

// Renderer draws snapshots onto a Screen. It holds no game state.
type Renderer struct {
	viewport config.ViewportConfig

	player  rune
	pipe    rune
	pipeCap rune
}

// NewRenderer creates a renderer, resolving sprite glyphs once.
func NewRenderer(cfg config.GameConfig) *Renderer {
	return &Renderer{
		viewport: cfg.Viewport,
		player:   glyph(cfg.Sprites.Player, FallbackPlayer),
		pipe:     glyph(cfg.Sprites.Pipe, FallbackPipe),
		pipeCap:  glyph(cfg.Sprites.PipeCap, FallbackPipeCap),
	}
}

// glyph returns the single printable rune in s, or fallback.
func glyph(s string, fallback rune) rune {
	if utf8.RuneCountInString(s) != 1 {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return fallback
	}
	return r
}

// Glyphs returns the resolved player, pipe and cap runes.
func (r *Renderer) Glyphs() (player, pipe, pipeCap rune) {
	return r.player, r.pipe, r.pipeCap
}

// FullscreenButton returns the cell area of the fullscreen button for a
// screen of the given width.
func FullscreenButton(cols int) core.Rect {
	return core.NewRect(cols-4, 0, 3, 1)
}

// Render draws the snapshot: obstacles, player, HUD and the overlay for
// the current mode.
func (r *Renderer) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	for _, o := range snap.Obstacles {
		r.drawObstacle(dst, o)
	}
	r.drawPlayer(dst, snap.Player)
	r.drawHUD(dst, snap)

	switch snap.Mode {
	case ModeStart:
		r.drawStart(dst)
	case ModeCountdown:
		r.drawCountdown(dst, snap)
	case ModeGameOver:
		r.drawGameOver(dst, snap)
	}
}

// cellX maps a world x to a column.
func (r *Renderer) cellX(x float64) int {
	return int(math.Floor(x / r.viewport.CellWidth))
}

// cellY maps a world y to a row.
func (r *Renderer) cellY(y float64) int {
	return int(math.Floor(y / r.viewport.CellHeight))
}

func (r *Renderer) drawObstacle(dst *core.Screen, o Obstacle) {
	x0 := r.cellX(o.X)
	x1 := int(math.Ceil(o.Right() / r.viewport.CellWidth))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	topEnd := r.cellY(o.SplitHeight)
	bottomStart := int(math.Ceil(o.GapBottom() / r.viewport.CellHeight))

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColored(x, y, r.pipe, core.ColorGreen)
		}
		if topEnd > 0 {
			dst.SetColored(x, topEnd-1, r.pipeCap, core.ColorBrightGreen)
		}

		for y := bottomStart; y < dst.Height(); y++ {
			dst.SetColored(x, y, r.pipe, core.ColorGreen)
		}
		if bottomStart < dst.Height() {
			dst.SetColored(x, bottomStart, r.pipeCap, core.ColorBrightGreen)
		}
	}
}

// drawPlayer fills every cell the collision circle touches.
func (r *Renderer) drawPlayer(dst *core.Screen, p Player) {
	cx, cy := p.Center()
	cw, ch := r.viewport.CellWidth, r.viewport.CellHeight

	x0, x1 := r.cellX(cx-p.Radius), r.cellX(cx+p.Radius)
	y0, y1 := r.cellY(cy-p.Radius), r.cellY(cy+p.Radius)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.CircleIntersectsRect(cx, cy, p.Radius, float64(x)*cw, float64(y)*ch, cw, ch) {
				dst.SetColored(x, y, r.player, core.ColorBrightYellow)
			}
		}
	}
}

func (r *Renderer) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf(" High Score: %d ", snap.HighScore), core.ColorWhite)

	btn := FullscreenButton(dst.Width())
	dst.DrawTextColored(btn.X, btn.Y, "[F]", core.ColorGray)
}

func (r *Renderer) drawStart(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "F L A P P Y", core.ColorBrightYellow)
	dst.DrawTextCentered(mid, "Press SPACE to Start", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, "(or click anywhere)", core.ColorGray)
}

func (r *Renderer) drawCountdown(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	if snap.SecondsLeft > 0 {
		dst.DrawTextCentered(mid, fmt.Sprintf("%d", snap.SecondsLeft), FadeColor(snap.Fade))
		return
	}
	dst.DrawTextCentered(mid, "Go!", core.ColorBrightGreen)
}

func (r *Renderer) drawGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"Game Over!",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High Score: %d", snap.HighScore),
	}
	if snap.CanRestart {
		lines = append(lines, "Press SPACE to Restart")
	}

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorRed
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

// FadeColor maps a countdown fade fraction to a progressively dimmer color.
func FadeColor(fade float64) core.Color {
	switch {
	case fade > 2.0/3:
		return core.ColorBrightWhite
	case fade > 1.0/3:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}
