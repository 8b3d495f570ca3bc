package flight

import (
	"fmt"
	"math"
	"strings"

	"github.com/tommynicol/hexflap/internal/core"
)

// Radar scale: world units per cell. Terminal cells are about twice as
// tall as they are wide.
const (
	unitsPerCol = 1.0
	unitsPerRow = 2.0
	hudRows     = 2
)

// Visual characters for rendering
const (
	GroundChar    = '·'
	WaterChar     = '~'
	LowBlockChar  = '▒'
	HighBlockChar = '█'
	BridgeChar    = '═'
	CellChar      = '◆'
	DebrisChar    = '*'
)

var headingArrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// radar maps world X/Z around the plane onto the screen below the HUD.
type radar struct {
	cx, cz    float64
	w, h      int
	originRow int
	centreCol int
	centreRow int
}

func newRadar(dst *core.Screen, centre core.Vec3) radar {
	h := dst.Height() - hudRows
	return radar{
		cx:        centre.X,
		cz:        centre.Z,
		w:         dst.Width(),
		h:         h,
		originRow: hudRows,
		centreCol: dst.Width() / 2,
		centreRow: hudRows + h/2,
	}
}

func (r radar) cell(x, z float64) (int, int) {
	col := r.centreCol + int(math.Floor((x-r.cx)/unitsPerCol+0.5))
	row := r.centreRow + int(math.Floor((z-r.cz)/unitsPerRow+0.5))
	return col, row
}

// world returns the world X/Z at the centre of a cell.
func (r radar) world(col, row int) (float64, float64) {
	return r.cx + float64(col-r.centreCol)*unitsPerCol, r.cz + float64(row-r.centreRow)*unitsPerRow
}

func (r radar) visible(col, row int) bool {
	return col >= 0 && col < r.w && row >= r.originRow && row < r.originRow+r.h
}

// Render draws the radar view and HUD for the given session state.
func (g *Game) Render(dst *core.Screen, st core.GameState) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}

	if st.Phase == core.PhaseMenu {
		g.drawMenu(dst, st)
		return
	}

	rd := newRadar(dst, g.plane.Pos)
	g.drawTerrain(dst, rd)
	g.drawBuildings(dst, rd)

	for _, c := range g.cells {
		col, row := rd.cell(c.Pos.X, c.Pos.Z)
		if rd.visible(col, row) {
			dst.SetColor(col, row, CellChar, core.ColorChip)
		}
	}

	if g.crashed {
		for _, d := range g.debris {
			col, row := rd.cell(d.Pos.X, d.Pos.Z)
			if rd.visible(col, row) {
				dst.SetColor(col, row, DebrisChar, core.ColorSpark)
			}
		}
	} else {
		dst.SetColor(rd.centreCol, rd.centreRow, headingArrow(g.plane.Heading), core.ColorText)
	}

	g.drawHUD(dst, st)

	if st.Phase == core.PhaseGameOver {
		g.drawGameOver(dst, st)
	}
}

func headingArrow(heading float64) rune {
	a := math.Mod(heading, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	idx := int(math.Floor(a/(math.Pi/4)+0.5)) % len(headingArrows)
	return headingArrows[idx]
}

func (g *Game) drawTerrain(dst *core.Screen, rd radar) {
	half := g.cfg.World.Size
	for row := rd.originRow; row < rd.originRow+rd.h; row++ {
		for col := 0; col < rd.w; col++ {
			x, z := rd.world(col, row)
			if math.Abs(x) > half || math.Abs(z) > half {
				continue
			}
			for _, rv := range g.city.Rivers {
				if rv.Contains(x, z) {
					dst.SetColor(col, row, WaterChar, core.ColorWater)
					break
				}
			}
			if dst.Get(col, row) == ' ' && (int(math.Floor(x))+int(math.Floor(z)))%8 == 0 {
				dst.SetColor(col, row, GroundChar, core.ColorGround)
			}
		}
	}
}

// drawBuildings fills each footprint. Roofs above the plane are drawn solid
// in the danger colour.
func (g *Game) drawBuildings(dst *core.Screen, rd radar) {
	for _, b := range g.city.Buildings {
		x0, z0 := rd.cell(b.X-b.W/2, b.Z-b.D/2)
		x1, z1 := rd.cell(b.X+b.W/2, b.Z+b.D/2)

		glyph, color := LowBlockChar, core.ColorBuilding
		switch {
		case b.Kind == KindBridge:
			glyph, color = BridgeChar, core.ColorSpark
		case b.Top() > g.plane.Pos.Y:
			glyph, color = HighBlockChar, core.ColorDanger
		}

		for row := z0; row <= z1; row++ {
			for col := x0; col <= x1; col++ {
				if rd.visible(col, row) {
					dst.SetColor(col, row, glyph, color)
				}
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, st core.GameState) {
	hud := fmt.Sprintf(" FUEL %3.0f  SPEED %3.0f mph  ALT %3.0f  SCORE %d  HI %d",
		g.fuel, g.plane.Speed*50, g.plane.Altitude(), st.Score, st.HighScore)
	dst.DrawTextColor(0, 0, hud, core.ColorText)

	const barW = 20
	filled := int(math.Round(g.fuel / g.cfg.Fuel.Capacity * barW))
	filled = core.Clamp(filled, 0, barW)

	color := core.ColorChip
	switch {
	case g.fuel < 20:
		color = core.ColorDanger
	case g.fuel < 50:
		color = core.ColorSpark
	}
	dst.DrawTextColor(1, 1, "[", core.ColorText)
	dst.DrawTextColor(2, 1, strings.Repeat("█", filled), color)
	dst.DrawTextColor(2+filled, 1, strings.Repeat(" ", barW-filled), core.ColorDefault)
	dst.DrawTextColor(2+barW, 1, "]", core.ColorText)
}

func (g *Game) drawMenu(dst *core.Screen, st core.GameState) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "PITTSBURGH FLIGHT", core.ColorChip)
	dst.DrawTextCentered(mid-2, "Collect fuel cells. Mind the skyline.", core.ColorText)
	dst.DrawTextCentered(mid, "W/S throttle  A/D turn  SPACE climb  X descend", core.ColorText)
	dst.DrawTextCentered(mid+2, "PRESS ENTER TO TAKE OFF", core.ColorSpark)
	if st.HighScore > 0 {
		dst.DrawTextCentered(mid+4, fmt.Sprintf("Best Score: %d", st.HighScore), core.ColorCircuit)
	}
}

func (g *Game) drawGameOver(dst *core.Screen, st core.GameState) {
	const boxW, boxH = 34, 7
	bx := (dst.Width() - boxW) / 2
	by := (dst.Height() - boxH) / 2

	dst.FillRect(bx, by, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(bx, by, boxW, boxH, core.ColorDanger)
	dst.DrawTextCentered(by+2, "GAME OVER", core.ColorDanger)
	dst.DrawTextCentered(by+3, fmt.Sprintf("Final Score: %d", st.Score), core.ColorText)
	dst.DrawTextCentered(by+5, "Press any key to restart", core.ColorText)
}
