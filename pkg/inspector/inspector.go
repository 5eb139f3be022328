package inspector

import (
	"encoding/json"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/scamshield/accesskit/pkg/chroma2tcell"
	"github.com/scamshield/accesskit/pkg/fileclass"
	"github.com/scamshield/accesskit/pkg/fsutils"
)

const previewSampleSize = 10 * 1024 // first 10KB

// Inspector classifies a file and shows its report next to a content
// sample. The report doubles as the text read aloud by the speech
// control, so it is also exposed as a plain summary.
type Inspector struct {
	*tview.Flex
	registry        *fileclass.Registry
	report          *tview.TextView
	preview         *tview.TextView
	queueUpdateDraw func(func())
	onReport        func(r *Report)
}

type Option func(*Inspector)

// WithOnReport is called with each completed report, on the UI loop.
func WithOnReport(f func(r *Report)) Option {
	return func(i *Inspector) {
		i.onReport = f
	}
}

func New(registry *fileclass.Registry, queueUpdateDraw func(func()), o ...Option) *Inspector {
	i := &Inspector{
		registry: registry,
		report: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true),
		preview: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(true).
			SetScrollable(true),
		queueUpdateDraw: queueUpdateDraw,
	}
	for _, option := range o {
		option(i)
	}

	i.report.SetBorder(true).SetTitle(" Classification ")
	i.preview.SetBorder(true).SetTitle(" Preview ")

	i.Flex = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(i.report, 0, 1, false).
		AddItem(i.preview, 0, 2, false)
	return i
}

// Inspect classifies the file at path and updates both panes.
func (i *Inspector) Inspect(path string) {
	go func() {
		r, err := BuildReport(i.registry, path)
		if err != nil {
			i.queueUpdateDraw(func() {
				i.showError("Failed to inspect file: " + err.Error())
			})
			return
		}

		reportText := renderReport(r)
		previewText, previewColors := i.renderPreview(r, path)

		i.queueUpdateDraw(func() {
			i.report.SetTextColor(tcell.ColorDefault)
			i.report.SetDynamicColors(true)
			i.report.SetText(reportText)
			i.preview.SetDynamicColors(previewColors)
			i.preview.SetText(previewText)
			if i.onReport != nil {
				i.onReport(r)
			}
		})
	}()
}

func renderReport(r *Report) string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	colorized, err := chroma2tcell.ColorizeJSONForTview(string(data), lexers.Get)
	if err != nil {
		return string(data)
	}
	return colorized
}

// renderPreview returns the preview pane content and whether it uses
// dynamic colors. Images show their decoded header, text files a
// highlighted sample, everything else a placeholder.
func (i *Inspector) renderPreview(r *Report, path string) (string, bool) {
	if r.Image != nil {
		return "Image " + r.Image.Format + "\nNo text preview.", false
	}
	if r.Category != fileclass.CategoryFile {
		return "No preview for " + string(r.Category) + " content.", false
	}

	data, err := fsutils.ReadFileData(path, previewSampleSize)
	if err != nil {
		return "Failed to read file: " + err.Error(), false
	}
	lexer := lexers.Match(r.Name)
	if lexer == nil {
		return string(data), false
	}
	colorized, err := chroma2tcell.Colorize(string(data), "dracula", lexer)
	if err != nil {
		return string(data), false
	}
	return colorized, true
}

// Summary is the one-line spoken description of a report.
func Summary(r *Report) string {
	text := r.Name + " is " + article(string(r.Category)) + " " + string(r.Category) +
		" of size " + r.Size + "."
	if !r.SizeValid {
		text += " It exceeds the maximum allowed upload size."
	}
	return text
}

func article(noun string) string {
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	default:
		return "a"
	}
}

func (i *Inspector) showError(text string) {
	i.report.SetDynamicColors(false)
	i.report.SetText(text)
	i.report.SetTextColor(tcell.ColorRed)
}
