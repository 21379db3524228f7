package fiddleless

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/atotto/clipboard"
	"github.com/beastars1/fiddleless/global"
	"github.com/beastars1/fiddleless/services/logger"
	"github.com/beastars1/fiddleless/shell"
	"go.uber.org/zap"
)

const (
	screenWidth  = 320
	screenHeight = 240
)

type (
	Gui struct {
		app    fyne.App
		window fyne.Window
		f      *Fiddleless
		label  binding.String

		mu         sync.Mutex
		view       viewKey
		shownModal *shell.Modal
	}
	viewKey struct {
		mode   shell.Mode
		status shell.Status
		set    bool
	}
)

func NewGui(f *Fiddleless) *Gui {
	return &Gui{
		f:     f,
		label: binding.NewString(),
	}
}

func (g *Gui) LoadUI(app fyne.App) {
	g.app = app
	app.Settings().SetTheme(theme.DarkTheme())
	g.window = app.NewWindow(global.AppName)
	g.window.Resize(resize(screenWidth, screenHeight))
	g.window.SetOnClosed(func() {
		if err := g.f.Close(); err != nil {
			logger.Error("close failed", zap.Error(err))
		}
	})
	g.f.Subscribe(g.render)
	g.render(g.f.State())
	g.window.Show()
}

func (g *Gui) render(s shell.State) {
	if s.Mode == shell.ModeClosed {
		return
	}
	_ = g.label.Set(s.Label)

	g.mu.Lock()
	defer g.mu.Unlock()
	key := viewKey{mode: s.Mode, status: s.Status, set: true}
	if key != g.view {
		g.view = key
		g.window.SetTitle(windowTitle(s))
		g.window.SetContent(g.content(s))
	}
	if s.Modal != nil && s.Modal != g.shownModal {
		g.shownModal = s.Modal
		d := dialog.NewInformation(s.Modal.Header, s.Modal.Text, g.window)
		d.SetOnClosed(g.f.DismissModal)
		d.Show()
	}
}

func (g *Gui) content(s shell.State) fyne.CanvasObject {
	switch {
	case s.Mode == shell.ModeConfigurator:
		return container.NewVBox(
			heading("Pick your League Of Legends directory location"),
			widget.NewLabel("This is needed for this software to function."),
			widget.NewButton("Pick folder…", g.pickFolder),
		)
	case s.Status == shell.StatusNotRunning:
		return container.NewVBox(
			heading("League Of Legends not running"),
			widget.NewLabel("Please start League before starting Fiddleless."),
			widget.NewButton("Close", func() {
				g.window.Close()
			}),
		)
	case s.Status == shell.StatusPolling:
		return container.NewVBox(
			heading("Welcome to Fiddleless"),
			widget.NewLabelWithData(g.label),
			widget.NewButton("Copy", g.copyChampion),
		)
	default:
		return container.NewVBox(
			heading("Welcome to Fiddleless"),
			widget.NewLabel("Connecting to the League client…"),
		)
	}
}

func (g *Gui) pickFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			logger.Error("folder picker failed", zap.Error(err))
			return
		}
		if uri == nil {
			return
		}
		g.f.PickDir(uri.Path())
	}, g.window)
}

func (g *Gui) copyChampion() {
	champ := g.f.State().Champion
	if champ == nil {
		return
	}
	if err := clipboard.WriteAll(champ.Name); err != nil {
		logger.Warn("copy to clipboard failed", zap.Error(err))
	}
}

func windowTitle(s shell.State) string {
	if s.Mode == shell.ModeConfigurator {
		return global.AppName + " Configuration"
	}
	return global.AppName
}

func heading(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

func resize(w float32, h float32) fyne.Size {
	return fyne.NewSize(w, h)
}
