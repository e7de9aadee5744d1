package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"game-library/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Error loading config:", err)
	}

	a := app.NewWithID("com.game-library.launcher")
	w := newLibraryWindow(a, cfg)
	w.win.ShowAndRun()
}
