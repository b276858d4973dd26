package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/constants"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/engine"
)

// cropGlyphs by kind; unknown kinds draw as wheat
var cropGlyphs = map[component.CropKind]rune{
	component.CropWheat: 'Y',
	component.CropBerry: 'o',
	component.CropApple: '@',
}

// TerminalRenderer draws session snapshots on a tcell screen
// It only reads the snapshot and never touches game state
type TerminalRenderer struct {
	screen tcell.Screen
	status string // Extra HUD text, e.g. mute state
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// SetStatus sets extra text shown at the right of the HUD
func (r *TerminalRenderer) SetStatus(s string) {
	r.status = s
}

// FieldCells returns the field size in cells for a world rectangle
func FieldCells(field core.Rect) (cols, rows int) {
	return int(math.Ceil(field.W / constants.CellWidth)), int(math.Ceil(field.H / constants.CellHeight))
}

// MinScreenSize returns the terminal size needed to show field in full
func MinScreenSize(field core.Rect) (width, height int) {
	cols, rows := FieldCells(field)
	return cols, rows + constants.HUDRows + constants.MessageRows
}

// cellSpan maps a world rectangle to the half-open cell ranges it covers
func cellSpan(r core.Rect) (c0, r0, c1, r1 int) {
	c0 = int(math.Floor(r.X / constants.CellWidth))
	r0 = int(math.Floor(r.Y/constants.CellHeight)) + constants.HUDRows
	c1 = int(math.Ceil((r.X + r.W) / constants.CellWidth))
	r1 = int(math.Ceil((r.Y+r.H)/constants.CellHeight)) + constants.HUDRows
	return
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	width, height := r.screen.Size()
	minW, minH := MinScreenSize(snap.Field)
	if width < minW || height < minH {
		r.drawText(0, 0, fmt.Sprintf("Terminal too small: need %dx%d", minW, minH), defaultStyle.Foreground(RgbMessage))
		r.screen.Show()
		return
	}

	r.drawField(snap)
	for _, s := range snap.Scarecrows {
		r.drawScarecrow(s)
	}
	for _, c := range snap.Crops {
		r.drawCrop(c)
	}
	r.drawFarmer(snap.Farmer)
	r.drawHUD(snap, width)
	r.drawMessage(snap, minH-1)

	r.screen.Show()
}

// drawField paints the grass with alternating tile shading
func (r *TerminalRenderer) drawField(snap engine.Snapshot) {
	cols, rows := FieldCells(snap.Field)
	tileCols := max(snap.Tile/constants.CellWidth, 1)
	tileRows := max(snap.Tile/constants.CellHeight, 1)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			bg := RgbFieldLight
			if (col/tileCols+row/tileRows)%2 == 1 {
				bg = RgbFieldDark
			}
			r.screen.SetContent(col, row+constants.HUDRows, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// fill sets every cell covered by rect, keeping the field background
func (r *TerminalRenderer) fill(rect core.Rect, ch rune, fg tcell.Color, bg *tcell.Color) {
	c0, r0, c1, r1 := cellSpan(rect)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			_, _, style, _ := r.screen.GetContent(col, row)
			style = style.Foreground(fg)
			if bg != nil {
				style = style.Background(*bg)
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawScarecrow(s component.Scarecrow) {
	bg := RgbScarecrow
	r.fill(s.Bounds(), '#', RgbScarecrowF, &bg)
}

// drawCrop shades the crop colour with its sway phase
func (r *TerminalRenderer) drawCrop(c component.Crop) {
	glyph, ok := cropGlyphs[c.Type]
	if !ok {
		glyph = cropGlyphs[component.CropWheat]
	}
	base := ParseHex(component.Color(c.Type), tcell.ColorYellow)
	fg := Shade(base, 0.85+0.15*math.Sin(c.Sway))
	r.fill(c.Bounds(), glyph, fg, nil)
}

func (r *TerminalRenderer) drawFarmer(f component.Farmer) {
	bg := RgbFarmerBg
	r.fill(f.Bounds(), 'F', RgbFarmerFg, &bg)
}

// drawHUD draws score, ceil(remaining), goal and phase on the top row
func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, width int) {
	barStyle := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, barStyle)
	}

	x := r.drawText(0, 0, fmt.Sprintf(" %s ", snap.Phase), barStyle.Background(phaseColor(snap.Phase)))
	hud := fmt.Sprintf(" Score: %d  Goal: %d  Time: %d ", snap.Score, snap.Goal, int(math.Ceil(snap.Remaining)))
	r.drawText(x, 0, hud, barStyle)

	if r.status != "" {
		r.drawText(width-len(r.status)-1, 0, r.status, barStyle)
	}
}

func (r *TerminalRenderer) drawMessage(snap engine.Snapshot, row int) {
	msg := PhaseMessage(snap.Phase)
	if msg == "" {
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMessage).Bold(true)
	r.drawText(1, row, msg, style)
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	width, _ := r.screen.Size()
	for _, ch := range s {
		if x >= width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// PhaseMessage returns the prompt shown under the field, empty while Playing
func PhaseMessage(p core.Phase) string {
	switch p {
	case core.PhaseMenu:
		return constants.MessageMenu
	case core.PhasePaused:
		return constants.MessagePaused
	case core.PhaseGameOver:
		return constants.MessageGameOver
	case core.PhaseWin:
		return constants.MessageWin
	default:
		return ""
	}
}

func phaseColor(p core.Phase) tcell.Color {
	switch p {
	case core.PhasePlaying:
		return RgbPhasePlayingBg
	case core.PhasePaused:
		return RgbPhasePausedBg
	case core.PhaseGameOver:
		return RgbPhaseGameOverBg
	case core.PhaseWin:
		return RgbPhaseWinBg
	default:
		return RgbPhaseMenuBg
	}
}
