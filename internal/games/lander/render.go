package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Visual characters for rendering
const (
	StarChar      = '.'
	GroundChar    = '█'
	GroundTopHalf = '▄'
	DebrisBig     = '*'
	DebrisSmall   = '·'
	FlameChar     = '▼'
	FlameFlicker  = '▾'
	PoleChar      = '│'
	FlagChar      = '▀'
)

// noseGlyphs are indexed by the craft heading in 45° steps, clockwise from upright.
var noseGlyphs = [8]rune{'A', '/', '>', '\\', 'V', '/', '<', '\\'}

// Flag geometry in world pixels, offset from the craft.
const (
	flagOffsetX = 20
	flagWidth   = 30
	flagMarginL = 10
	flagMarginR = 5
)

// viewport maps world pixels onto the character grid.
type viewport struct {
	cols, rows   int
	worldW       float64
	worldH       float64
	cellW, cellH float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   dst.Height(),
		worldW: worldW,
		worldH: worldH,
		cellW:  worldW / float64(dst.Width()),
		cellH:  worldH / float64(dst.Height()),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.cellW))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y / v.cellH))
}

// centerX is the world x at the middle of column c.
func (v viewport) centerX(c int) float64 {
	return (float64(c) + 0.5) * v.cellW
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.drawStars(dst, vp)
	g.drawTerrain(dst, vp)
	g.drawDebris(dst, vp)

	if g.state.Success() {
		g.drawFlag(dst, vp)
	}
	if !g.state.Terminal() || g.state.Success() {
		g.drawLander(dst, vp)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	case g.state.Success():
		drawCenteredMessage(dst, "LANDING SUCCESSFUL!",
			fmt.Sprintf("Fuel left: %d  |  Press R to restart", g.State().Score), core.ColorBrightGreen)
	case g.state.Terminal():
		drawCenteredMessage(dst, "CRASHED!", "Better luck next time!  |  Press R to restart", core.ColorBrightRed)
	}
}

func (g *Game) drawStars(dst *core.Screen, vp viewport) {
	for _, s := range g.state.Stars() {
		dst.SetColored(vp.col(s.X), vp.row(s.Y), StarChar, core.ColorDarkGray)
	}
}

func (g *Game) drawTerrain(dst *core.Screen, vp viewport) {
	terrain := g.state.Terrain()
	for c := 0; c < vp.cols; c++ {
		wx := vp.centerX(c)
		top := terrain.HeightAt(wx) / vp.cellH
		r := int(math.Floor(top))

		color := core.ColorGray
		if g.onPad(wx) {
			color = core.ColorBrightCyan
		}

		topRune := GroundChar
		if top-float64(r) >= 0.5 {
			topRune = GroundTopHalf
		}
		dst.SetColored(c, r, topRune, color)
		for y := r + 1; y < vp.rows; y++ {
			dst.SetColored(c, y, GroundChar, core.ColorGray)
		}
	}
}

func (g *Game) onPad(x float64) bool {
	for _, pad := range g.pads {
		if x >= pad[0].X && x <= pad[1].X {
			return true
		}
	}
	return false
}

func (g *Game) drawDebris(dst *core.Screen, vp viewport) {
	maxLife := g.state.DebrisMaxLife()
	for i, p := range g.state.Debris() {
		r := DebrisSmall
		if p.Size >= 4.5 && p.Life > maxLife/2 {
			r = DebrisBig
		}
		color := core.ColorOrange
		if i%3 == 0 {
			color = core.ColorBrightYellow
		}
		dst.SetColored(vp.col(p.X), vp.row(p.Y), r, color)
	}
}

func (g *Game) drawFlag(dst *core.Screen, vp viewport) {
	l := g.state.Lander()
	fx := core.ClampF(l.X+flagOffsetX, flagMarginL, vp.worldW-flagWidth-flagMarginR)
	ground := g.state.Terrain().HeightAt(fx)

	c := vp.col(fx)
	base := vp.row(ground) - 1
	dst.SetColored(c, base, PoleChar, core.ColorGray)
	dst.SetColored(c, base-1, PoleChar, core.ColorGray)
	dst.SetColored(c+1, base-1, FlagChar, core.ColorBlue)
	dst.SetColored(c+2, base-1, FlagChar, core.ColorRed)
	dst.SetColored(c+3, base-1, FlagChar, core.ColorWhite)
}

func (g *Game) drawLander(dst *core.Screen, vp viewport) {
	l := g.state.Lander()

	color := core.ColorSilver
	switch {
	case g.state.Success():
		color = core.ColorBrightGreen
	case g.state.ApproachSafe():
		if math.Abs(math.Sin(g.clock*5)) > 0.5 {
			color = core.ColorBrightGreen
		}
	}

	c := vp.col(l.X)
	r := vp.row(l.Y)
	dst.SetColored(c, r, noseGlyph(l.Angle), color)

	gear := vp.row(l.Y + g.cfg.Lander.BottomOffset)
	if gear == r {
		gear = r + 1
	}
	if g.state.LegExtension() > 0.5 {
		dst.SetColored(c-1, gear, '/', color)
		dst.SetColored(c+1, gear, '\\', color)
	} else {
		dst.SetColored(c-1, gear, '\'', color)
		dst.SetColored(c+1, gear, '\'', color)
	}

	if l.Burning() && !g.state.Terminal() {
		flame := FlameChar
		if int(g.clock*20)%2 == 1 {
			flame = FlameFlicker
		}
		dst.SetColored(c, gear, flame, core.ColorOrange)
	}
}

// noseGlyph picks the character that best shows the craft's heading.
func noseGlyph(angle float64) rune {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	idx := int(math.Floor(a/(math.Pi/4)+0.5)) % len(noseGlyphs)
	return noseGlyphs[idx]
}

func (g *Game) drawHUD(dst *core.Screen) {
	l := g.state.Lander()

	const barWidth = 10
	filled := 0
	if g.cfg.Lander.Fuel > 0 {
		filled = core.Clamp(int(math.Round(l.Fuel/g.cfg.Lander.Fuel*barWidth)), 0, barWidth)
	}

	barColor := core.ColorGreen
	switch {
	case l.Fuel < 30:
		barColor = core.ColorRed
	case l.Fuel < 75:
		barColor = core.ColorYellow
	}

	dst.DrawTextColored(1, 0, "Fuel [", core.ColorWhite)
	dst.SetPen(barColor)
	dst.DrawHLine(7, 0, filled, '█')
	dst.SetPen(core.ColorWhite)
	dst.DrawHLine(7+filled, 0, barWidth-filled, ' ')
	dst.DrawText(7+barWidth, 0, fmt.Sprintf("] %.0f", l.Fuel))
	dst.DrawText(1, 1, fmt.Sprintf("Vert Speed:  %.1f", l.VY))
	dst.DrawText(1, 2, fmt.Sprintf("Horiz Speed: %.1f", l.VX))
	dst.DrawText(1, 3, fmt.Sprintf("Angle:       %.1f°", l.Angle*180/math.Pi))
	dst.DrawText(1, 4, fmt.Sprintf("Altitude:    %.0f", math.Max(0, g.state.Altitude())))
	dst.DrawTextRight(dst.Width()-2, 0, fmt.Sprintf("T+%.1fs", g.state.Elapsed()))
	dst.SetPen(core.ColorDefault)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subW := len([]rune(subtitle))
	boxW := core.Max(titleW, subW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.SetPen(core.ColorWhite)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(boxY+3, subtitle)

	dst.SetPen(color)
	dst.DrawTextCentered(boxY+1, title)
	dst.SetPen(core.ColorDefault)
}
