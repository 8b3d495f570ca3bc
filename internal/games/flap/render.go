package flap

import (
	"fmt"
	"math"

	"github.com/tommynicol/hexflap/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	PlayerChar    = '▓'
	TrailChar     = '·'
	NodeChar      = '∙'
	BusChar       = '─'
)

var stageLabels = []string{"IF", "ID", "EX", "MEM", "WB"}

const (
	stageWidth  = 40.0
	busSpacing  = 100.0
	nodeSpacing = 50.0
)

// viewport maps world coordinates onto the screen grid.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
		w:  dst.Width(),
		h:  dst.Height(),
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// HexScore formats a score the way the HUD shows it, e.g. 0x1F.
func HexScore(n int) string {
	return fmt.Sprintf("0x%X", n)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen, st core.GameState) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(dst, g.cfg.Viewport.Width, g.cfg.Viewport.Height)

	g.drawBackground(dst, v)

	switch st.Phase {
	case core.PhaseMenu:
		g.drawMenu(dst, st)
	case core.PhasePlaying:
		g.drawWorld(dst, v)
		g.drawHUD(dst, st)
	case core.PhaseGameOver:
		g.drawWorld(dst, v)
		g.drawHUD(dst, st)
		g.drawGameOver(dst, st)
	}
}

// drawBackground draws the scrolling bus lines, stage labels and control nodes.
func (g *Game) drawBackground(dst *core.Screen, v viewport) {
	for y := busSpacing; y < g.cfg.Viewport.Height; y += busSpacing {
		dst.DrawHLine(0, v.row(y), v.w, BusChar, core.ColorCircuitDark)
	}

	offset := math.Mod(g.bgOffset, stageWidth)
	stage := 0
	for x := stageWidth/2 - offset; x < g.cfg.Viewport.Width+stageWidth; x += stageWidth {
		col := v.col(x)
		if stage%3 == 0 {
			dst.DrawTextColor(col, 0, stageLabels[(stage/3)%len(stageLabels)], core.ColorCircuitDark)
		}
		for y := 30.0; y < g.cfg.Viewport.Height-20; y += nodeSpacing {
			dst.SetColor(col, v.row(y), NodeChar, core.ColorCircuitDark)
		}
		stage++
	}
}

func (g *Game) drawWorld(dst *core.Screen, v viewport) {
	for _, o := range g.gen.Obstacles() {
		g.drawObstacle(dst, v, o)
	}

	for _, tp := range g.player.Trail {
		dst.SetColor(v.col(tp.X), v.row(tp.Y), TrailChar, core.ColorChipDim)
	}

	g.drawPlayer(dst, v)

	for _, p := range g.particles {
		r := '.'
		if p.Alpha() > 0.5 {
			r = '*'
		}
		dst.SetColor(v.col(p.X), v.row(p.Y), r, core.ColorSpark)
	}

	for _, s := range g.sparkles {
		r := '+'
		if s.Scale > 0.5 {
			r = '✦'
		}
		dst.SetColor(v.col(s.X), v.row(s.Y), r, core.ColorSpark)
	}
}

// drawObstacle renders both blocking regions of a single obstacle.
func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x0 := v.col(o.X)
	x1 := v.col(o.X + g.cfg.Obstacles.PipeWidth)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	topEnd := v.row(o.TopHeight)
	bottomStart := v.row(o.BottomY)

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorCircuit)
		}
		if topEnd > 0 {
			dst.SetColor(x, topEnd-1, PipeCapTop, core.ColorCircuitDark)
		}
		for y := bottomStart; y < v.h; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorCircuit)
		}
		if bottomStart < v.h {
			dst.SetColor(x, bottomStart, PipeCapBottom, core.ColorCircuitDark)
		}
	}
}

// drawPlayer draws the packet box with its hex score inside when it fits.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	x0, y0 := v.col(g.player.X), v.row(g.player.Y)
	w := core.Max(v.col(g.player.X+g.player.Width)-x0, 1)
	h := core.Max(v.row(g.player.Y+g.player.Height)-y0, 1)

	dst.FillRect(x0, y0, w, h, PlayerChar, core.ColorChip)

	label := HexScore(g.score)
	if len(label) <= w {
		dst.DrawTextColor(x0+(w-len(label))/2, y0+h/2, label, core.ColorText)
		return
	}

	// Too small for the label: show which way the packet is heading.
	nose := '▶'
	switch {
	case g.player.Rotation < -0.1:
		nose = '◥'
	case g.player.Rotation > 0.1:
		nose = '◢'
	}
	dst.SetColor(x0+w-1, y0+h/2, nose, core.ColorText)
}

func (g *Game) drawHUD(dst *core.Screen, st core.GameState) {
	dst.DrawTextCentered(1, fmt.Sprintf(" %d ", st.Score), core.ColorText)
	if dst.Height() > 3 {
		dst.DrawTextCentered(2, fmt.Sprintf(" HI: %d ", st.HighScore), core.ColorText)
	}
}

func (g *Game) drawMenu(dst *core.Screen, st core.GameState) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "HEX FLAP", core.ColorChip)
	dst.DrawTextCentered(mid-2, "Navigate data through CPU pipeline stages!", core.ColorText)
	dst.DrawTextCentered(mid, "Press SPACE or ENTER to control data flow", core.ColorText)
	dst.DrawTextCentered(mid+1, "Watch your data packet grow through execution!", core.ColorText)
	dst.DrawTextCentered(mid+3, "PRESS SPACE TO START", core.ColorSpark)
	if st.HighScore > 0 {
		dst.DrawTextCentered(mid+5, fmt.Sprintf("Best Score: %d", st.HighScore), core.ColorCircuit)
	}
}

func (g *Game) drawGameOver(dst *core.Screen, st core.GameState) {
	const boxW, boxH = 36, 9
	w, h := dst.Width(), dst.Height()
	bx := (w - boxW) / 2
	by := (h - boxH) / 2

	dst.FillRect(bx, by, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(bx, by, boxW, boxH, core.ColorDanger)

	dst.DrawTextCentered(by+2, "PIPELINE HAZARD", core.ColorDanger)
	dst.DrawTextCentered(by+4, "Instructions: "+HexScore(st.Score), core.ColorText)
	if st.Score == st.HighScore && st.Score > 0 {
		dst.DrawTextCentered(by+5, "NEW THROUGHPUT RECORD!", core.ColorSpark)
	} else {
		dst.DrawTextCentered(by+5, "Best: "+HexScore(st.HighScore), core.ColorCircuit)
	}
	dst.DrawTextCentered(by+7, "Press any key to reset pipeline", core.ColorText)
}
