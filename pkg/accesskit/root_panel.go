package accesskit

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/scamshield/accesskit/pkg/a11yv"
	"github.com/scamshield/accesskit/pkg/inspector"
	"github.com/scamshield/accesskit/pkg/prefs"
)

// rootPanel composes the accessibility toolbar, the file inspector and
// the transient notice line.
type rootPanel struct {
	*tview.Flex
	app akApp
	log zerolog.Logger

	pathInput *tview.InputField
	fontSizes *a11yv.FontSizeControl
	speak     *a11yv.SpeakButton
	notice    *a11yv.Notice
	inspector *inspector.Inspector
}

func newRootPanel(app akApp, o Options) *rootPanel {
	p := &rootPanel{
		app: app,
		log: o.Log,
	}

	p.notice = a11yv.NewNotice(app.QueueUpdateDraw)
	p.fontSizes = a11yv.NewFontSizeControl(o.Store)
	p.speak = a11yv.NewSpeakButton(o.Engine,
		a11yv.WithPrefs(o.Store),
		a11yv.WithDispatch(app.QueueUpdateDraw),
		a11yv.WithNotice(p.notice.Show),
	)

	p.inspector = inspector.New(o.Registry, app.QueueUpdateDraw,
		inspector.WithOnReport(p.reportReady))

	p.pathInput = tview.NewInputField().
		SetLabel("File: ").
		SetFieldBackgroundColor(tcell.ColorBlack)
	p.pathInput.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.inspector.Inspect(p.pathInput.GetText())
		}
	})

	toolbar := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(p.pathInput, 0, 2, true).
		AddItem(p.fontSizes, 0, 1, false)
	if p.speak != nil {
		// Without the speech capability the control renders nothing.
		toolbar.AddItem(p.speak, 12, 0, false)
	}

	p.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(toolbar, 1, 0, true).
		AddItem(p.inspector, 0, 1, false).
		AddItem(p.notice, 1, 0, false)

	o.Store.Subscribe(func(state prefs.State) {
		p.applyFontSize(state.FontSize)
	})
	p.applyFontSize(o.Store.FontSize())

	if o.Path != "" {
		p.pathInput.SetText(o.Path)
		p.inspector.Inspect(o.Path)
	}
	return p
}

// applyFontSize widens panel padding with the preset scale. Terminal
// cells cannot grow, so larger presets trade density for legibility.
func (p *rootPanel) applyFontSize(fs prefs.FontSize) {
	scale := fs.Scale()
	p.Flex.SetBorderPadding(scale, scale, scale, scale)
}

func (p *rootPanel) reportReady(r *inspector.Report) {
	p.log.Debug().
		Str("name", r.Name).
		Str("category", string(r.Category)).
		Bool("size_valid", r.SizeValid).
		Msg("file inspected")
	if p.speak != nil {
		p.speak.SetText(inspector.Summary(r))
	}
}
