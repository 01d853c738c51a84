package blast

import (
	"fmt"
	"strings"

	platformcore "github.com/AKGMI/BlastGame/internal/core"
	"github.com/AKGMI/BlastGame/internal/games/blast/booster"
	"github.com/AKGMI/BlastGame/internal/games/blast/core"
	"github.com/AKGMI/BlastGame/internal/games/blast/engine"
)

const (
	cellW        = 3 // terminal columns per board cell
	cellH        = 1
	hudHeight    = 4
	footerHeight = 3
)

var tileColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorPurple: platformcore.ColorMagenta,
}

var superGlyphs = map[core.Kind]rune{
	core.KindSuperRow:    '↔',
	core.KindSuperColumn: '↕',
	core.KindSuperBomb:   '✹',
	core.KindSuperAll:    '★',
}

// superName returns the player-facing name of a super tile.
func superName(v core.Variant) string {
	switch v.Kind {
	case core.KindSuperRow:
		return "Row blast"
	case core.KindSuperColumn:
		return "Column blast"
	case core.KindSuperBomb:
		return "Bomb tile"
	case core.KindSuperAll:
		return "Board wipe"
	default:
		return v.String()
	}
}

// tileGlyph returns how a tile is drawn.
func tileGlyph(v core.Variant) (rune, platformcore.Color) {
	if v.IsSuper() {
		return superGlyphs[v.Kind], platformcore.ColorWhite
	}
	return '●', tileColors[v.Color]
}

// boardGrid returns where the board sits on screen.
func (g *Game) boardGrid() platformcore.Grid {
	avail := g.screenH - footerHeight
	return platformcore.CenterGrid(g.screenW, avail, hudHeight, g.eng.Rows(), g.eng.Cols(), cellW, cellH)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	grid := g.boardGrid()
	g.renderHUD(dst)
	g.renderBoard(dst, grid)
	g.renderFooter(dst)
	g.renderOverlay(dst, grid)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := "B L A S T"
	if g.mode == ModeCampaign {
		title = fmt.Sprintf("B L A S T  -  Level %d/%d: %s", g.levelIdx+1, len(g.levels), g.level.Name)
	}
	dst.DrawTextCentered(0, title, platformcore.ColorOrange)

	status := fmt.Sprintf("Score %d/%d   Moves %d   Shuffles %d",
		g.eng.Score(), g.eng.TargetScore(), g.eng.MovesLeft(), g.eng.ShufflesLeft())
	if g.campaignScore > 0 {
		status += fmt.Sprintf("   Total %d", g.campaignScore+g.eng.Score())
	}
	dst.DrawTextCentered(1, status, platformcore.ColorDefault)

	counts := g.eng.BoosterCounts()
	active, armed := g.eng.ActiveBooster()
	x := (g.screenW - 30) / 2
	for i, kind := range booster.AllKinds() {
		label := fmt.Sprintf("[%d] %s x%d", i+1, strings.ToUpper(kind.String()), counts[kind])
		color := platformcore.ColorGray
		if armed && active == kind {
			color = platformcore.ColorHighlight
		}
		dst.DrawTextColored(x, 2, label, color)
		x += len(label) + 4
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen, grid platformcore.Grid) {
	marks := make(map[core.Position]platformcore.Color)
	for _, p := range g.hint {
		marks[p] = platformcore.ColorCyan
	}
	for _, p := range g.flash {
		marks[p] = platformcore.ColorHighlight
	}
	pending, swapping := g.eng.PendingSwap()

	for r := 0; r < g.eng.Rows(); r++ {
		for c := 0; c < g.eng.Cols(); c++ {
			p := core.P(r, c)
			rect := grid.CellRect(r, c)
			mid := rect.X + cellW/2

			if t, ok := g.eng.Tile(r, c); ok {
				glyph, color := tileGlyph(t.Variant)
				if mark, ok := marks[p]; ok && mark == platformcore.ColorHighlight {
					glyph, color = '✦', mark
				}
				dst.SetColored(mid, rect.Y, glyph, color)
			} else {
				dst.SetColored(mid, rect.Y, '·', platformcore.ColorGray)
			}

			switch {
			case p == g.cursor:
				dst.SetColored(rect.X, rect.Y, '[', platformcore.ColorHighlight)
				dst.SetColored(rect.Right()-1, rect.Y, ']', platformcore.ColorHighlight)
			case swapping && p == pending:
				dst.SetColored(rect.X, rect.Y, '<', platformcore.ColorHighlight)
				dst.SetColored(rect.Right()-1, rect.Y, '>', platformcore.ColorHighlight)
			case marks[p] == platformcore.ColorCyan:
				dst.SetColored(rect.X, rect.Y, '(', platformcore.ColorCyan)
				dst.SetColored(rect.Right()-1, rect.Y, ')', platformcore.ColorCyan)
			}
		}
	}

	b := grid.Bounds()
	dst.DrawBox(platformcore.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), platformcore.ColorGray)
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	y := g.screenH - footerHeight

	msg := g.toast
	if msg == "" {
		msg = g.eng.BoosterHint()
	}
	if msg != "" {
		dst.DrawTextCentered(y, msg, platformcore.ColorYellow)
	}

	dst.DrawTextCentered(y+1, "Arrows/WASD: move  Space: blast  1/2: boosters  X: cancel", platformcore.ColorGray)
	dst.DrawTextCentered(y+2, "F: shuffle  H: hint  P: pause  Q: quit", platformcore.ColorGray)
}

func (g *Game) renderOverlay(dst *platformcore.Screen, grid platformcore.Grid) {
	var lines []string
	color := platformcore.ColorHighlight

	switch {
	case g.paused:
		lines = []string{"PAUSED", "P: resume"}
	case g.levelCleared:
		lines = []string{"LEVEL CLEAR!", fmt.Sprintf("Score %d", g.eng.Score())}
		color = platformcore.ColorGreen
	case g.eng.State() == engine.StateWon:
		lines = []string{"YOU WIN!", fmt.Sprintf("Score %d", g.campaignScore+g.eng.Score()), "R: restart  B: menu"}
		color = platformcore.ColorGreen
	case g.eng.State() == engine.StateLost:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d/%d", g.eng.Score(), g.eng.TargetScore()), "R: restart  B: menu"}
		color = platformcore.ColorRed
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	b := grid.Bounds()
	box := platformcore.NewRect((g.screenW-w-4)/2, b.Y+(b.H-len(lines)-2)/2, w+4, len(lines)+2)
	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
