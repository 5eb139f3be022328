package a11yv

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/scamshield/accesskit/pkg/prefs"
)

var fontSizeLabels = map[prefs.FontSize]string{
	prefs.FontSizeNormal: "A",
	prefs.FontSizeLarge:  "A+",
	prefs.FontSizeXLarge: "A++",
}

// FontSizeControl renders the three font-size presets as clickable
// regions and highlights the active one.
type FontSizeControl struct {
	*tview.TextView
	store *prefs.Store
}

func NewFontSizeControl(store *prefs.Store) *FontSizeControl {
	c := &FontSizeControl{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true),
		store: store,
	}
	c.SetHighlightedFunc(c.highlighted)
	store.Subscribe(func(prefs.State) {
		c.render()
	})
	c.render()
	return c
}

// Select activates one of the presets programmatically.
func (c *FontSizeControl) Select(fs prefs.FontSize) {
	c.store.SetFontSize(fs)
}

func (c *FontSizeControl) render() {
	const separator = " ┊ "
	active := c.store.FontSize()

	var sb strings.Builder
	sb.WriteString("[::d]Text size:[::-] ")
	for i, fs := range prefs.FontSizes {
		if i > 0 {
			sb.WriteString(separator)
		}
		label := fontSizeLabels[fs]
		if fs == active {
			label = fmt.Sprintf("[%s::b]%s[-::-]", Style.ActiveTag, label)
		} else {
			label = fmt.Sprintf("[%s]%s[-]", Style.InactiveTag, label)
		}
		sb.WriteString(fmt.Sprintf(`["%s"]%s[""]`, fs, label))
	}
	c.SetText(sb.String())
}

func (c *FontSizeControl) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	c.store.SetFontSize(prefs.FontSize(added[0]))
	// Clear the highlight so the same preset can be clicked again.
	c.Highlight()
}
