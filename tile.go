package main

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"game-library/internal/library"
	"game-library/internal/marquee"
)

// gameTile is one grid cell: artwork with the game name underneath. A tap
// launches the game, a secondary tap opens its menu.
type gameTile struct {
	widget.BaseWidget
	game    library.Game
	image   *canvas.Image
	label   *widget.Label
	marquee *marquee.Marquee

	onTap          func(library.Game)
	onRightContext func(library.Game, *fyne.PointEvent)
}

func newGameTile(g library.Game, labelWidth int, onTap func(library.Game), onRight func(library.Game, *fyne.PointEvent)) *gameTile {
	img := canvas.NewImageFromResource(theme.ComputerIcon())
	img.FillMode = canvas.ImageFillContain

	m := marquee.New(g.Name, labelWidth)
	lbl := widget.NewLabelWithStyle(m.Text(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	lbl.Truncation = fyne.TextTruncateClip

	t := &gameTile{game: g, image: img, label: lbl, marquee: m, onTap: onTap, onRightContext: onRight}
	t.ExtendBaseWidget(t)
	return t
}

func (t *gameTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, t.label, nil, nil, container.NewPadded(t.image)))
}

func (t *gameTile) setImage(path string) {
	t.image.Resource = nil
	t.image.File = path
	t.image.Refresh()
}

func (t *gameTile) Tapped(_ *fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap(t.game)
	}
}

func (t *gameTile) TappedSecondary(pe *fyne.PointEvent) {
	if t.onRightContext != nil {
		t.onRightContext(t.game, pe)
	}
}

// marqueeTicker advances every scrolling tile label on a shared interval.
type marqueeTicker struct {
	interval time.Duration

	mu    sync.Mutex
	tiles []*gameTile
}

func newMarqueeTicker(interval time.Duration) *marqueeTicker {
	return &marqueeTicker{interval: interval}
}

func (m *marqueeTicker) add(t *gameTile) {
	if !t.marquee.Scrolls() {
		return
	}
	m.mu.Lock()
	m.tiles = append(m.tiles, t)
	m.mu.Unlock()
}

func (m *marqueeTicker) reset() {
	m.mu.Lock()
	m.tiles = nil
	m.mu.Unlock()
}

func (m *marqueeTicker) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.mu.Lock()
			tiles := m.tiles
			m.mu.Unlock()
			if len(tiles) == 0 {
				continue
			}
			fyne.Do(func() {
				for _, t := range tiles {
					t.label.SetText(t.marquee.Next())
				}
			})
		}
	}
}
