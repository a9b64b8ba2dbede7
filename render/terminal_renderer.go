// Package render draws a top-down terminal view of the ground, the hole and the objects around it
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of rows reserved below the play field
const statusRows = 1

// TerminalRenderer maps the ground rectangle onto the terminal and draws frames into a RenderBuffer
type TerminalRenderer struct {
	buf *RenderBuffer
}

// NewTerminalRenderer creates a renderer for a width x height terminal
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	return &TerminalRenderer{buf: NewRenderBuffer(width, height)}
}

// Buffer exposes the composed cells
func (r *TerminalRenderer) Buffer() *RenderBuffer { return r.buf }

// Resize follows a terminal size change
func (r *TerminalRenderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// RenderFrame composes f at the screen's current size and shows it
func (r *TerminalRenderer) RenderFrame(screen tcell.Screen, f Frame) {
	w, h := screen.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	}
	r.Draw(f)
	r.buf.FlushToScreen(screen)
}

// Draw composes f into the buffer without touching a screen
func (r *TerminalRenderer) Draw(f Frame) {
	r.buf.Clear()
	v, ok := newViewport(f, r.buf)
	if ok {
		r.drawField(f, v)
		r.drawObjects(f, v)
	}
	r.drawStatusBar(f)
}

// viewport converts between ground coordinates and play field cells
type viewport struct {
	minX, minZ   float64
	cellW, cellH float64 // world units per cell
	cols, rows   int
}

func newViewport(f Frame, buf *RenderBuffer) (viewport, bool) {
	w, h := buf.Bounds()
	rows := h - statusRows
	spanX := f.Ground.MaxX - f.Ground.MinX
	spanZ := f.Ground.MaxZ - f.Ground.MinZ
	if w <= 0 || rows <= 0 || spanX <= 0 || spanZ <= 0 {
		return viewport{}, false
	}
	return viewport{
		minX:  f.Ground.MinX,
		minZ:  f.Ground.MinZ,
		cellW: spanX / float64(w),
		cellH: spanZ / float64(rows),
		cols:  w,
		rows:  rows,
	}, true
}

// cell returns the column and row containing ground point (x, z)
func (v viewport) cell(x, z float64) (int, int, bool) {
	cx := int(math.Floor((x - v.minX) / v.cellW))
	cy := int(math.Floor((z - v.minZ) / v.cellH))
	if cx < 0 || cx >= v.cols || cy < 0 || cy >= v.rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// center returns the ground point at the middle of a cell
func (v viewport) center(cx, cy int) (float64, float64) {
	return v.minX + (float64(cx)+0.5)*v.cellW, v.minZ + (float64(cy)+0.5)*v.cellH
}

func (r *TerminalRenderer) drawField(f Frame, v viewport) {
	ground := StyleBackground
	inside := tcell.StyleDefault.Background(RgbHoleInside)
	rim := tcell.StyleDefault.Background(RgbHoleRim)
	ring := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMagnetRing)
	step := max(v.cellW, v.cellH)

	for cy := 0; cy < v.rows; cy++ {
		for cx := 0; cx < v.cols; cx++ {
			x, z := v.center(cx, cy)
			d := math.Hypot(x-f.Hole[0], z-f.Hole[2])

			switch {
			case f.Radius > 0 && d < f.Radius-step:
				r.buf.Set(cx, cy, ' ', inside)
			case f.Radius > 0 && d < f.Radius:
				r.buf.Set(cx, cy, ' ', rim)
			case f.MagnetActive && d >= f.MagnetRadius-step && d < f.MagnetRadius:
				r.buf.Set(cx, cy, '·', ring)
			case (cx+cy)%4 == 0:
				r.buf.Set(cx, cy, '·', ground)
			}
		}
	}
}

func (r *TerminalRenderer) drawObjects(f Frame, v viewport) {
	for _, o := range f.Objects {
		cx, cy, ok := v.cell(o.Position[0], o.Position[2])
		if !ok {
			continue
		}
		fg := CategoryColor(o.Category)
		if o.Position[1] < f.GroundHeight {
			fg = RgbSinking
		}
		style := r.buf.Get(cx, cy).Style.Foreground(fg)
		if o.Permeable {
			style = style.Bold(true)
		}
		r.buf.Set(cx, cy, CategoryGlyph(o.Category), style)
	}
}

func (r *TerminalRenderer) drawStatusBar(f Frame) {
	w, h := r.buf.Bounds()
	if h < statusRows || w == 0 {
		return
	}
	y := h - 1
	label := tcell.StyleDefault.Foreground(RgbStatusText)

	x := r.buf.Text(0, y, fmt.Sprintf(" Size %d ", f.Size), label.Background(RgbSizeBg))
	x++

	if f.Need > 0 && f.Need < math.MaxInt {
		x = r.buf.Text(x, y, fmt.Sprintf("XP %d/%d ", f.XP, f.Need), StyleStatus)
		x = r.drawProgress(x, y, float64(f.XP)/float64(f.Need))
	} else {
		x = r.buf.Text(x, y, fmt.Sprintf("XP %d", f.XP), StyleStatus)
	}
	x++

	x = r.buf.Text(x, y, fmt.Sprintf("Collected %d (+%d) ", f.Collected, f.Reward), StyleStatus)

	if len(f.Goals) > 0 {
		x = r.drawGoals(x, y, f)
		x++
	}

	if f.MagnetActive {
		x = r.buf.Text(x, y, fmt.Sprintf(" MAGNET %.1fs ", f.MagnetRemaining), label.Background(RgbMagnetBg))
		x++
	}
	if f.BoostActive {
		r.buf.Text(x, y, fmt.Sprintf(" BOOST %.1fs ", f.BoostRemaining), label.Background(RgbBoostBg))
	}
}

// drawGoals writes each goal as glyph current/required, met goals in green
func (r *TerminalRenderer) drawGoals(x, y int, f Frame) int {
	if f.GoalsComplete {
		return r.buf.Text(x, y, " GOALS DONE ", tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbGoalDone))
	}
	x = r.buf.Text(x, y, "Goals", StyleStatus)
	for _, g := range f.Goals {
		style := StyleStatus.Foreground(CategoryColor(g.Category))
		if g.Done() {
			style = StyleStatus.Foreground(RgbGoalDone)
		}
		x = r.buf.Text(x, y, fmt.Sprintf(" %c%d/%d", CategoryGlyph(g.Category), g.Current, g.Required), style)
	}
	return x
}

// progressWidth is the XP bar length in cells
const progressWidth = 10

func (r *TerminalRenderer) drawProgress(x, y int, progress float64) int {
	filled := int(math.Round(min(max(progress, 0), 1) * progressWidth))
	for i := 0; i < progressWidth; i++ {
		col := RgbXPEmpty
		if i < filled {
			col = GetProgressColor(float64(i+1) / progressWidth)
		}
		r.buf.Set(x+i, y, '█', tcell.StyleDefault.Background(RgbBackground).Foreground(col))
	}
	return x + progressWidth
}
