// Package mainwindow assembles the explorer window: a category-grouped
// fractal picker and parameter form on the left, the fractal canvas filling
// the rest.
package mainwindow

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fractal-explorer/internal/app"
	"fractal-explorer/internal/fractal"
	"fractal-explorer/ui/prefs"
	"fractal-explorer/ui/viewer"
)

// MainWindow is the top-level explorer window.
type MainWindow struct {
	window fyne.Window
	state  *app.State
	prefs  *prefs.Prefs
	canvas *viewer.FractalCanvas

	configBox *fyne.Container
	status    *widget.Label
}

// New builds the main window against shared application state.
func New(a fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	w := a.NewWindow("Fractal Explorer")

	workers := p.Int(prefs.KeyWorkers, 0)
	smooth := p.String(prefs.KeyPalette, "linear") == "smooth"
	pointsPerFrame := p.Int(prefs.KeyPointsPerTick, 0)

	m := &MainWindow{
		window:    w,
		state:     state,
		prefs:     p,
		canvas:    viewer.NewFractalCanvas(state, workers, smooth, pointsPerFrame),
		configBox: container.NewVBox(),
		status:    widget.NewLabel(""),
	}

	state.On(app.EventSelectionChanged, func(interface{}) { m.rebuildConfigForm() })

	m.restoreSelection()
	side := container.NewVBox(m.buildPicker(), widget.NewSeparator(), m.configBox)
	content := container.NewBorder(nil, m.status, container.NewVScroll(side), nil, m.canvas)
	w.SetContent(content)
	w.Resize(fyne.NewSize(
		float32(p.Int(prefs.KeyWindowWidth, 1100)),
		float32(p.Int(prefs.KeyWindowHeight, 800))))
	w.SetCloseIntercept(func() {
		m.persist()
		m.canvas.Stop()
		w.Close()
	})

	m.rebuildConfigForm()
	return m
}

// ShowAndRun displays the window, kicks off the first render, and enters the
// event loop.
func (m *MainWindow) ShowAndRun() {
	m.canvas.Restart()
	m.window.ShowAndRun()
}

// buildPicker groups the catalog by category, one radio group per card.
func (m *MainWindow) buildPicker() fyne.CanvasObject {
	categories := []fractal.Category{
		fractal.CategoryChaosGame,
		fractal.CategoryEscapeTime,
		fractal.CategoryTurtleCurve,
	}

	items := make([]fyne.CanvasObject, 0, len(categories))
	for _, category := range categories {
		descriptors := fractal.ByCategory(category)
		names := make([]string, len(descriptors))
		byName := make(map[string]fractal.Descriptor, len(descriptors))
		for i, d := range descriptors {
			names[i] = d.Name
			byName[d.Name] = d
		}

		group := widget.NewRadioGroup(names, func(name string) {
			d, ok := byName[name]
			if !ok {
				return
			}
			if m.state.Selection().ID == d.ID {
				return
			}
			m.prefs.Set(prefs.KeyLastFractal, string(d.ID))
			m.status.SetText(d.Description)
			m.state.Select(d)
		})
		if selected := m.state.Selection(); selected.Category == category {
			group.Selected = selected.Name
		}
		items = append(items, widget.NewCard(category.String(), "", group))
	}
	return container.NewVBox(items...)
}

// rebuildConfigForm replaces the parameter form with one matching the
// selected category. Chaos games take no parameters.
func (m *MainWindow) rebuildConfigForm() {
	m.configBox.Objects = nil

	d := m.state.Selection()
	cfg := m.state.Config()

	switch d.Category {
	case fractal.CategoryEscapeTime:
		iterations := widget.NewEntry()
		iterations.SetText(strconv.FormatUint(cfg.MaxIterations, 10))
		power := widget.NewEntry()
		power.SetText(strconv.FormatUint(cfg.Power, 10))

		form := widget.NewForm(
			widget.NewFormItem("Max iterations", iterations),
			widget.NewFormItem("Power", power),
		)
		form.SubmitText = "Apply"
		form.OnSubmit = func() {
			next := cfg
			var err error
			if next.MaxIterations, err = parseUint(iterations.Text); err == nil {
				next.Power, err = parseUint(power.Text)
			}
			if err == nil {
				err = m.state.SetConfig(next)
			}
			if err != nil {
				m.status.SetText(err.Error())
				return
			}
			cfg = next
			m.status.SetText("")
		}
		m.configBox.Add(form)

	case fractal.CategoryTurtleCurve:
		iteration := widget.NewEntry()
		iteration.SetText(strconv.FormatUint(uint64(cfg.Iteration), 10))

		form := widget.NewForm(widget.NewFormItem("Iteration", iteration))
		form.SubmitText = "Apply"
		form.OnSubmit = func() {
			next := cfg
			parsed, err := parseUint(iteration.Text)
			if err == nil {
				next.Iteration = uint(parsed)
				err = m.state.SetConfig(next)
			}
			if err != nil {
				m.status.SetText(err.Error())
				return
			}
			cfg = next
			m.status.SetText("")
		}
		m.configBox.Add(form)
	}

	m.configBox.Refresh()
}

// restoreSelection reselects the fractal from the previous session if it is
// still in the catalog.
func (m *MainWindow) restoreSelection() {
	id := fractal.ID(m.prefs.String(prefs.KeyLastFractal, ""))
	if id == "" {
		return
	}
	d, ok := fractal.Lookup(id)
	if !ok {
		log.Printf("mainwindow: stored fractal %q no longer exists", id)
		return
	}
	m.state.Select(d)
}

func (m *MainWindow) persist() {
	size := m.window.Canvas().Size()
	m.prefs.Set(prefs.KeyWindowWidth, int(size.Width))
	m.prefs.Set(prefs.KeyWindowHeight, int(size.Height))
	if err := m.prefs.Save(); err != nil {
		log.Printf("mainwindow: cannot save preferences: %v", err)
	}
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a positive whole number", s)
	}
	return v, nil
}
