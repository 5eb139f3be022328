package prefs

// FontSize is one of three discrete presentation presets.
type FontSize string

const (
	FontSizeNormal FontSize = "normal"
	FontSizeLarge  FontSize = "large"
	FontSizeXLarge FontSize = "xlarge"
)

// FontSizes lists the presets in selection order.
var FontSizes = []FontSize{FontSizeNormal, FontSizeLarge, FontSizeXLarge}

// normalize maps unknown values to the default preset.
func (fs FontSize) normalize() FontSize {
	switch fs {
	case FontSizeNormal, FontSizeLarge, FontSizeXLarge:
		return fs
	default:
		return FontSizeNormal
	}
}

// Scale is the preset's padding step used by views when laying out panels.
func (fs FontSize) Scale() int {
	switch fs {
	case FontSizeLarge:
		return 1
	case FontSizeXLarge:
		return 2
	default:
		return 0
	}
}
