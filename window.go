package main

import (
	"context"
	"errors"
	"log"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"game-library/internal/artwork"
	"game-library/internal/config"
	"game-library/internal/grid"
	"game-library/internal/launch"
	"game-library/internal/library"
)

const labelHeight float32 = 30

type libraryWindow struct {
	app fyne.App
	win fyne.Window
	cfg *config.Config

	store    *library.Store
	settings config.Settings
	games    []library.Game

	launcher *launch.Launcher
	artwork  *artwork.Cache

	grid       *fyne.Container
	background *canvas.Image
	marquees   *marqueeTicker

	ctx         context.Context
	cancel      context.CancelFunc
	cancelFetch context.CancelFunc
}

func newLibraryWindow(a fyne.App, cfg *config.Config) *libraryWindow {
	ctx, cancel := context.WithCancel(context.Background())
	w := &libraryWindow{
		app:      a,
		win:      a.NewWindow("Game Library"),
		cfg:      cfg,
		store:    library.NewStore(cfg.StorePath()),
		launcher: launch.New(cfg.Runner, cfg.Proton),
		ctx:      ctx,
		cancel:   cancel,
	}
	if cfg.Artwork {
		w.artwork = artwork.NewCache(cfg.ImagesDir(), artwork.NewClient())
	} else {
		w.artwork = artwork.NewCache(cfg.ImagesDir(), nil)
	}
	w.launcher.GameID = w.artwork.AppID
	w.win.Resize(fyne.NewSize(800, 600))

	settings, err := config.LoadSettings(cfg.SettingsPath())
	if err != nil {
		log.Println("Error loading settings:", err)
	}
	w.settings = settings

	w.marquees = newMarqueeTicker(cfg.MarqueeInterval)
	go w.marquees.run(ctx)

	cell := fyne.NewSize(cfg.TileSize, cfg.TileSize+labelHeight)
	w.grid = container.New(grid.New(cell, cfg.MaxColumns, theme.Padding(), 10))

	w.background = canvas.NewImageFromFile("")
	w.background.FillMode = canvas.ImageFillStretch
	w.background.Translucency = 0.4
	w.setBackground(w.settings.BackgroundImagePath)

	w.buildMenu()
	w.win.SetContent(container.NewStack(w.background, container.NewVScroll(w.grid)))
	w.win.SetOnClosed(w.close)

	w.reload()

	if cfg.Watch {
		go func() {
			err := library.Watch(ctx, w.store.Path(), func() {
				fyne.Do(w.reloadIfChanged)
			})
			if err != nil {
				log.Println("Error watching game store:", err)
			}
		}()
	}
	return w
}

func (w *libraryWindow) close() {
	if w.cancelFetch != nil {
		w.cancelFetch()
	}
	w.cancel()
}

func (w *libraryWindow) buildMenu() {
	reload := &desktop.CustomShortcut{KeyName: fyne.KeyF5}
	add := &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}
	bg := &desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierShortcutDefault}

	reloadItem := fyne.NewMenuItem("Reload Games", w.reload)
	reloadItem.Shortcut = reload
	addItem := fyne.NewMenuItem("Add Games", w.showAddGamesDialog)
	addItem.Shortcut = add
	bgItem := fyne.NewMenuItem("Background Image", w.showBackgroundDialog)
	bgItem.Shortcut = bg

	w.win.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("Library", reloadItem, addItem, bgItem)))

	c := w.win.Canvas()
	c.AddShortcut(reload, func(fyne.Shortcut) { w.reload() })
	c.AddShortcut(add, func(fyne.Shortcut) { w.showAddGamesDialog() })
	c.AddShortcut(bg, func(fyne.Shortcut) { w.showBackgroundDialog() })
}

func (w *libraryWindow) loadGames() []library.Game {
	games, err := w.store.Load()
	if err != nil {
		if errors.Is(err, library.ErrCorruptStore) {
			log.Println("Game store is corrupt, starting empty:", err)
		} else {
			log.Println("Error loading games:", err)
		}
	}
	return games
}

func (w *libraryWindow) reload() {
	w.games = w.loadGames()
	w.refreshGrid()
}

// reloadIfChanged skips the rebuild when the store matches what is shown,
// which is the case after our own saves.
func (w *libraryWindow) reloadIfChanged() {
	games := w.loadGames()
	if slices.Equal(games, w.games) {
		return
	}
	w.games = games
	w.refreshGrid()
}

// apply replaces the list, persists it and redraws.
func (w *libraryWindow) apply(games []library.Game) {
	w.games = games
	if err := w.store.Save(games); err != nil {
		log.Println("Error saving games:", err)
		dialog.ShowError(err, w.win)
	}
	w.refreshGrid()
}

func (w *libraryWindow) saveSettings() {
	if err := config.SaveSettings(w.cfg.SettingsPath(), w.settings); err != nil {
		log.Println("Error saving settings:", err)
	}
}

func (w *libraryWindow) refreshGrid() {
	if w.cancelFetch != nil {
		w.cancelFetch()
	}
	w.marquees.reset()

	var missing []*gameTile
	w.grid.Objects = nil
	for _, g := range library.Unique(w.games) {
		t := newGameTile(g, w.cfg.MarqueeWidth, w.launchGame, w.showContextMenu)
		if p, ok := w.artwork.Cached(g); ok {
			t.setImage(p)
		} else {
			missing = append(missing, t)
		}
		w.marquees.add(t)
		w.grid.Add(t)
	}
	w.grid.Refresh()

	if len(missing) > 0 && w.cfg.Artwork {
		ctx, cancel := context.WithCancel(w.ctx)
		w.cancelFetch = cancel
		go w.fetchArtwork(ctx, missing)
	}
}

// fetchArtwork looks up thumbnails one tile at a time so the store API is
// not flooded by a large library.
func (w *libraryWindow) fetchArtwork(ctx context.Context, tiles []*gameTile) {
	for _, t := range tiles {
		if ctx.Err() != nil {
			return
		}
		p, err := w.artwork.Thumbnail(ctx, t.game)
		if err != nil {
			if !errors.Is(err, artwork.ErrNoArtwork) && ctx.Err() == nil {
				log.Printf("Artwork for %s: %v", t.game.Name, err)
			}
			continue
		}
		fyne.Do(func() { t.setImage(p) })
	}
}

func (w *libraryWindow) launchGame(g library.Game) {
	if err := w.launcher.Start(g); err != nil {
		log.Println("Error launching game:", err)
		dialog.ShowError(err, w.win)
	}
}

func (w *libraryWindow) sortGames(order library.Order) {
	w.settings.SortOrder = string(order)
	w.saveSettings()
	w.apply(library.Sort(w.games, order))
}

func (w *libraryWindow) setBackground(path string) {
	w.background.File = path
	if path == "" {
		w.background.Hide()
	} else {
		w.background.Show()
	}
	w.background.Refresh()
}
