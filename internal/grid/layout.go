// Package grid lays out game tiles in rows that reflow with the window width.
package grid

import (
	"fyne.io/fyne/v2"
)

// Layout places equally sized cells left to right, top to bottom. The number
// of columns follows the available width, capped at MaxColumns.
type Layout struct {
	Cell       fyne.Size
	MaxColumns int
	HSpacing   float32
	VSpacing   float32

	rows int
}

func New(cell fyne.Size, maxColumns int, hSpacing, vSpacing float32) *Layout {
	return &Layout{Cell: cell, MaxColumns: maxColumns, HSpacing: hSpacing, VSpacing: vSpacing, rows: 1}
}

// Columns is how many cells fit in width.
func (l *Layout) Columns(width float32) int {
	cols := 1
	if step := l.Cell.Width + l.HSpacing; step > 0 {
		cols = int((width + l.HSpacing) / step)
	}
	if cols < 1 {
		cols = 1
	}
	if l.MaxColumns > 0 && cols > l.MaxColumns {
		cols = l.MaxColumns
	}
	return cols
}

func (l *Layout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	cols := l.Columns(size.Width)
	i := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		row, col := i/cols, i%cols
		o.Move(fyne.NewPos(
			float32(col)*(l.Cell.Width+l.HSpacing),
			float32(row)*(l.Cell.Height+l.VSpacing),
		))
		o.Resize(l.Cell)
		i++
	}
	l.rows = (i + cols - 1) / cols
	if l.rows < 1 {
		l.rows = 1
	}
}

// MinSize is one cell wide and as tall as the rows of the last layout pass.
func (l *Layout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	rows := l.rows
	if rows < 1 {
		rows = 1
	}
	return fyne.NewSize(l.Cell.Width, float32(rows)*(l.Cell.Height+l.VSpacing)-l.VSpacing)
}
