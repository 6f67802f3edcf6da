// Fractal Explorer is a desktop viewer for chaos games, escape-time
// fractals, and turtle curves.
package main

import (
	"log"

	fyneapp "fyne.io/fyne/v2/app"

	"fractal-explorer/internal/app"
	"fractal-explorer/ui/mainwindow"
	"fractal-explorer/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	a := fyneapp.NewWithID("io.github.fractal-explorer")
	state := app.NewState()
	p := prefs.Load()

	mainwindow.New(a, state, p).ShowAndRun()
}
