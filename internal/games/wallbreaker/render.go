package wallbreaker

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/wallbreaker/internal/collision"
	"github.com/vovakirdan/wallbreaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar      = '='
	BallChar        = '●'
	UnbreakableChar = '█'
	PoisonChar      = '▚'
	BannerSep       = '─'
)

// Breakable glyphs by remaining hits, index 0 for one hit left.
var hitGlyphs = []rune{'░', '▒', '▓', '█'}

// Breakable colors by remaining hits.
var hitColors = []core.Color{core.ColorGreen, core.ColorYellow, core.ColorOrange, core.ColorRed}

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// viewport scales world coordinates to screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) span(lo, hi, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale)) - 1
	return a, max(a, b)
}

// rect returns the cells covered by p as a top-left cell plus a size.
func (v viewport) rect(p core.Perimeter) (x, y, w, h int) {
	x0, x1 := v.span(p.Left(), p.Right(), v.sx)
	y0, y1 := v.span(p.Top(), p.Bottom(), v.sy)
	return x0, y0, x1 - x0 + 1, y1 - y0 + 1
}

// Render draws the session into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	vp := viewport{
		sx: float64(dst.Width()) / s.cfg.Screen.Width,
		sy: float64(dst.Height()) / s.cfg.Screen.Height,
	}
	s.renderBanner(dst, vp)
	s.renderBodies(dst, vp)
	s.renderOverlay(dst)
}

// renderBanner draws the score, balls and level line.
func (s *Session) renderBanner(dst *core.Screen, vp viewport) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.score), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d", s.balls), core.ColorCyan)
	levelText := fmt.Sprintf("Level %d/%d %s", s.levelIndex+1, len(s.grids), s.level.grid.Name)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(levelText)-1, 0, levelText, core.ColorWhite)

	sep := int(s.cfg.Screen.BannerHeight*vp.sy) - 1
	if sep > 0 {
		for x := range dst.Width() {
			dst.Set(x, sep, BannerSep, core.ColorGray)
		}
	}
}

func (s *Session) renderBodies(dst *core.Screen, vp viewport) {
	s.level.world.Each(func(_ collision.Handle, b *collision.Body) {
		glyph, color := bodyGlyph(b)
		x, y, w, h := vp.rect(b.Perimeter())
		switch b.Kind {
		case collision.KindBall:
			// a single cell at the ball center reads better than a block
			c := b.Perimeter().Center()
			dst.Set(int(c.X*vp.sx), int(c.Y*vp.sy), glyph, color)
		case collision.KindPaddle:
			dst.FillRect(x, y, w, 1, glyph, color)
		default:
			dst.FillRect(x, y, w, h, glyph, color)
		}
	})
}

func bodyGlyph(b *collision.Body) (rune, core.Color) {
	switch b.Kind {
	case collision.KindUnbreakable:
		return UnbreakableChar, core.ColorGray
	case collision.KindPoisoned:
		return PoisonChar, core.ColorMagenta
	case collision.KindPaddle:
		return PaddleChar, core.ColorCyan
	case collision.KindBall:
		return BallChar, core.ColorWhite
	default:
		i := core.Clamp(b.Durability-1, 0, len(hitGlyphs)-1)
		return hitGlyphs[i], hitColors[i]
	}
}

// renderOverlay draws the message of a waiting state in a centered box.
func (s *Session) renderOverlay(dst *core.Screen) {
	lines := s.Message()
	if len(lines) == 0 {
		return
	}
	color := core.ColorBlue
	if s.state == StateShowingScore {
		color = core.ColorGreen
	}
	drawCenteredBox(dst, lines, color)
}

// drawCenteredBox draws a centered message box, one line per row. The last
// line is the prompt and is drawn in green.
func drawCenteredBox(dst *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := min(width+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorGray)
	for i, l := range lines {
		c := color
		if i == len(lines)-1 {
			c = core.ColorGreen
		}
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+1+i, l, c)
	}
}
