package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"game-library/internal/artwork"
	"game-library/internal/library"
)

func (w *libraryWindow) showContextMenu(g library.Game, pe *fyne.PointEvent) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Remove Game", func() { w.confirmRemove(g) }),
		fyne.NewMenuItem("Sort A-Z", func() { w.sortGames(library.Ascending) }),
		fyne.NewMenuItem("Sort Z-A", func() { w.sortGames(library.Descending) }),
		fyne.NewMenuItem("Rename Game", func() { w.showRenameDialog(g) }),
	)
	widget.ShowPopUpMenuAtPosition(menu, w.win.Canvas(), pe.AbsolutePosition)
}

func (w *libraryWindow) confirmRemove(g library.Game) {
	dialog.ShowConfirm("Remove Game", fmt.Sprintf("Remove %s from the library?", g.Name), func(ok bool) {
		if ok {
			w.apply(library.Remove(w.games, g))
		}
	}, w.win)
}

func (w *libraryWindow) showRenameDialog(g library.Game) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(g.Name)

	form := dialog.NewForm("Rename Game", "Save", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Name", nameEntry),
	}, func(ok bool) {
		if ok && nameEntry.Text != "" && nameEntry.Text != g.Name {
			w.apply(library.Rename(w.games, g, nameEntry.Text))
		}
	}, w.win)
	form.Resize(fyne.NewSize(400, 150))
	form.Show()
}

func (w *libraryWindow) showAddGamesDialog() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if uri == nil {
			return
		}
		paths, err := library.Scan(uri.Path(), w.cfg.ScanExtensions)
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if len(paths) == 0 {
			dialog.ShowInformation("Add Games", "No executables found in "+uri.Path(), w.win)
			return
		}
		w.showSelectGamesDialog(uri.Path(), paths)
	}, w.win)
	fd.Resize(fyne.NewSize(800, 600))
	fd.Show()
}

// showSelectGamesDialog lists scanned executables with a checkbox each and
// merges the checked ones into the library.
func (w *libraryWindow) showSelectGamesDialog(root string, paths []string) {
	checks := make([]*widget.Check, len(paths))
	rows := container.NewVBox()
	for i, p := range paths {
		checks[i] = widget.NewCheck(filepath.Base(p), nil)
		dir, err := filepath.Rel(root, filepath.Dir(p))
		if err != nil {
			dir = filepath.Dir(p)
		}
		hint := widget.NewLabel(dir)
		hint.Importance = widget.LowImportance
		rows.Add(container.NewHBox(checks[i], hint))
	}

	selectAll := widget.NewCheck("Select all", func(on bool) {
		for _, c := range checks {
			c.SetChecked(on)
		}
	})

	content := container.NewBorder(selectAll, nil, nil, nil, container.NewVScroll(rows))
	d := dialog.NewCustomConfirm("Add Games", "Add Selected Games", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		var selected []string
		for i, c := range checks {
			if c.Checked {
				selected = append(selected, paths[i])
			}
		}
		if len(selected) == 0 {
			return
		}
		log.Printf("Adding %d games from %s", len(selected), root)
		merged := library.Merge(w.games, library.FromPaths(selected))
		if library.Order(w.settings.SortOrder) == library.Descending {
			merged = library.Sort(merged, library.Descending)
		}
		w.apply(merged)
	}, w.win)
	d.Resize(fyne.NewSize(600, 400))
	d.Show()
}

func (w *libraryWindow) showBackgroundDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if reader == nil {
			return
		}
		src := reader.URI().Path()
		reader.Close()

		dest, err := artwork.Background(src, w.cfg.ImagesDir())
		if err != nil {
			log.Println("Error processing background image:", err)
			dialog.ShowError(err, w.win)
			return
		}
		w.settings.BackgroundImagePath = dest
		w.saveSettings()
		w.setBackground(dest)
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	fd.Resize(fyne.NewSize(800, 600))
	fd.Show()
}
