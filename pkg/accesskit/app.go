package accesskit

import (
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/scamshield/accesskit/pkg/fileclass"
	"github.com/scamshield/accesskit/pkg/prefs"
	"github.com/scamshield/accesskit/pkg/speech"
)

type akApp struct {
	*tview.Application
}

func (a akApp) QueueUpdateDraw(f func()) {
	_ = a.Application.QueueUpdateDraw(f)
}

func (a akApp) SetFocus(p tview.Primitive) {
	_ = a.Application.SetFocus(p)
}

// Options wires the shared session objects into the UI.
// Engine may be nil when the host has no speech capability.
type Options struct {
	Registry *fileclass.Registry
	Engine   speech.Engine
	Store    *prefs.Store
	Log      zerolog.Logger

	// Path is inspected on startup when non-empty.
	Path string
}

func SetupApp(app *tview.Application, o Options) {
	if o.Registry == nil {
		o.Registry = fileclass.DefaultRegistry()
	}
	if o.Store == nil {
		o.Store = prefs.NewStore()
	}
	app.EnableMouse(true)
	panel := newRootPanel(akApp{app}, o)
	app.SetRoot(panel, true)
}
