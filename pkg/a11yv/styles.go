package a11yv

import "github.com/gdamore/tcell/v2"

// Styles holds the widget palette. Tag fields are tview color tag names,
// Color fields are used where primitives take tcell colors directly.
type Styles struct {
	ActiveTag   string
	InactiveTag string

	LabelColor  tcell.Color
	NoticeColor tcell.Color
}

var Style = Styles{
	ActiveTag:   "cornflowerblue",
	InactiveTag: "gray",

	LabelColor:  tcell.ColorWhiteSmoke,
	NoticeColor: tcell.ColorOrangeRed,
}
