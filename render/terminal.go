package render

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/mole"
	"github.com/lixenwraith/word-mole/scene"
	"github.com/lixenwraith/word-mole/status"
	"github.com/lixenwraith/word-mole/vmath"
)

// Clock reports the game's logical time
type Clock interface {
	Now() time.Time
}

// Overlay selects what is drawn over the field between rounds
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayGameOver
)

// MenuItem is one selectable category
type MenuItem struct {
	ID    string
	Title string
}

// Terminal is the tcell UI surface
// All methods must be called on the game loop goroutine
type Terminal struct {
	screen tcell.Screen
	clock  Clock
	field  *scene.Field
	board  *mole.Board
	reg    *status.Registry

	score   int
	timer   int
	title   string
	message string
	until   time.Time
	words   map[int]string

	menu     []MenuItem
	selected string
	debug    bool
	muted    func() bool
}

// NewTerminal creates a surface drawing field on screen, reg may be nil
func NewTerminal(screen tcell.Screen, clock Clock, field *scene.Field, reg *status.Registry) *Terminal {
	t := &Terminal{
		screen: screen,
		clock:  clock,
		field:  field,
		reg:    reg,
		words:  make(map[int]string),
	}
	t.Resize()
	return t
}

// Attach sets the board whose moles are drawn
func (t *Terminal) Attach(board *mole.Board) {
	t.board = board
}

// SetMenu sets the category list shown between rounds and the highlighted entry
func (t *Terminal) SetMenu(items []MenuItem, selected string) {
	t.menu = items
	t.selected = selected
}

// SetDebug toggles the metrics status line
func (t *Terminal) SetDebug(debug bool) {
	t.debug = debug
}

// SetMuteIndicator installs the mute state source for the status line
func (t *Terminal) SetMuteIndicator(muted func() bool) {
	t.muted = muted
}

// Resize matches the projection to the screen, rows count twice in height
func (t *Terminal) Resize() {
	w, h := t.screen.Size()
	t.field.SetViewport(float64(w), float64(h), constants.TerminalCellAspect)
}

// CellCenter converts a mouse cell to scene screen coordinates
func (t *Terminal) CellCenter(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

// ===== SURFACE =====

func (t *Terminal) SetScoreDisplay(score int) {
	t.score = score
}

func (t *Terminal) SetTimerDisplay(seconds int) {
	t.timer = seconds
}

func (t *Terminal) SetCategoryTitle(title string) {
	t.title = title
}

// ShowMessage replaces the current message, d of zero keeps it until replaced
func (t *Terminal) ShowMessage(text string, d time.Duration) {
	t.message = text
	if d > 0 {
		t.until = t.clock.Now().Add(d)
	} else {
		t.until = time.Time{}
	}
}

func (t *Terminal) RenderWordOnEntity(slot int, word string) {
	if word == "" {
		delete(t.words, slot)
		return
	}
	t.words[slot] = word
}

// Message returns the visible message, empty once expired
func (t *Terminal) Message() string {
	if t.message == "" {
		return ""
	}
	if !t.until.IsZero() && !t.clock.Now().Before(t.until) {
		return ""
	}
	return t.message
}

// ===== DRAW =====

// Draw renders one frame
func (t *Terminal) Draw(overlay Overlay) {
	w, h := t.screen.Size()
	base := tcell.StyleDefault.Background(RgbGround)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	if t.board != nil {
		for _, m := range t.board.Moles() {
			t.drawMole(m, w, h)
		}
	}

	t.drawHUD(w)

	row := constants.HUDHeight + 1
	if msg := t.Message(); msg != "" {
		t.drawCentered(row, w, msg, tcell.StyleDefault.Foreground(RgbMessage).Background(RgbHUDBg).Bold(true))
		row++
	}

	switch overlay {
	case OverlayMenu:
		t.drawMenu(row+1, w)
	case OverlayGameOver:
		t.drawCentered(row, w, constants.GameOverHint, tcell.StyleDefault.Foreground(RgbMenuText).Background(RgbHUDBg))
	}

	t.drawStatus(w, h)
	t.screen.Show()
}

func (t *Terminal) drawMole(m mole.Mole, w, h int) {
	pos, ok := t.field.Position(m.Slot)
	if !ok {
		return
	}

	ground := vmath.Vec3F{X: pos.X, Y: 0, Z: pos.Z}
	hole := t.field.ProjectToScreen(ground)
	if hole.Depth <= 0 {
		return
	}
	edge := t.field.ProjectToScreen(vmath.V3FAdd(ground, vmath.Vec3F{X: scene.MoleRadius * 1.2}))
	holeRx := math.Abs(edge.X - hole.X)
	holeRy := holeRx / constants.TerminalCellAspect * constants.HoleFlatten
	fillEllipse(t.screen, hole.X, hole.Y, holeRx, holeRy, w, h, math.Inf(1), tcell.StyleDefault.Background(RgbHole))

	body := t.field.ProjectToScreen(pos)
	if body.Depth <= 0 {
		return
	}
	side := t.field.ProjectToScreen(vmath.V3FAdd(pos, vmath.Vec3F{X: scene.MoleRadius}))
	rx := math.Abs(side.X - body.X)
	ry := rx / constants.TerminalCellAspect

	color := RgbMole
	if m.Locked {
		color = RgbMoleLocked
	}
	// The body is hidden below the hole's center line
	fillEllipse(t.screen, body.X, body.Y, rx, ry, w, h, hole.Y, tcell.StyleDefault.Background(color))

	word := t.words[m.Slot]
	if word == "" || body.Y >= hole.Y {
		return
	}
	wordStyle := tcell.StyleDefault.Foreground(RgbWord).Background(color).Bold(true)
	x := int(math.Round(body.X)) - len([]rune(word))/2
	t.drawText(x, int(body.Y), w, word, wordStyle)
}

// fillEllipse paints cells whose centers fall inside the ellipse and above clipY
func fillEllipse(s tcell.Screen, cx, cy, rx, ry float64, w, h int, clipY float64, style tcell.Style) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := max(int(math.Floor(cy-ry)), 0)
	y1 := min(int(math.Ceil(cy+ry)), h-1)
	x0 := max(int(math.Floor(cx-rx)), 0)
	x1 := min(int(math.Ceil(cx+rx)), w-1)

	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		if py > clipY {
			break
		}
		dy := (py - cy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				s.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func (t *Terminal) drawHUD(w int) {
	style := tcell.StyleDefault.Foreground(RgbHUDText).Background(RgbHUDBg)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, style)
	}

	t.drawText(1, 0, w, fmt.Sprintf(constants.ScoreFormat, t.score), style)
	if t.title != "" {
		t.drawCentered(0, w, t.title, style.Foreground(RgbTitle).Bold(true))
	}

	timerStyle := style
	if t.timer <= constants.FinalSecondsWarning {
		timerStyle = style.Foreground(RgbTimerLow)
	}
	timer := fmt.Sprintf(constants.TimerFormat, t.timer)
	t.drawText(w-len(timer)-1, 0, w, timer, timerStyle)
}

func (t *Terminal) drawMenu(row, w int) {
	for i, item := range t.menu {
		style := tcell.StyleDefault.Foreground(RgbMenuText).Background(RgbHUDBg)
		if item.ID == t.selected {
			style = style.Foreground(RgbMenuCurrent).Bold(true)
		}
		t.drawCentered(row+i, w, fmt.Sprintf(constants.MenuItemFormat, i+1, item.Title), style)
	}
}

func (t *Terminal) drawStatus(w, h int) {
	y := h - constants.StatusHeight
	if y <= constants.HUDHeight {
		return
	}
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}

	x := 0
	if t.muted != nil {
		audioStyle := style.Background(RgbAudioUnmuted)
		if t.muted() {
			audioStyle = style.Background(RgbAudioMuted)
		}
		x = t.drawText(x, y, w, constants.AudioStr, audioStyle) + 1
	}

	if t.debug && t.reg != nil {
		t.drawText(x, y, w, formatMetrics(t.reg.Snapshot()), style)
		return
	}
	t.drawText(x, y, w, constants.KeyHint, style)
}

// formatMetrics renders a registry snapshot as sorted key=value pairs
func formatMetrics(snap map[string]any) string {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", k, snap[k])
	}
	return sb.String()
}

// drawText writes s from x on row y, clipped to w, and returns the column after the text
func (t *Terminal) drawText(x, y, w int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= 0 && x < w {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

func (t *Terminal) drawCentered(y, w int, s string, style tcell.Style) {
	t.drawText((w-len([]rune(s)))/2, y, w, s, style)
}
