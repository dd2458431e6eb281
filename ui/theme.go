package ui

import (
	"image/color"

	"HoldButton/hold"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme darkens the default theme to match the demo window.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the color for the given theme color name.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return hold.BackgroundColor
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x24, G: 0x24, B: 0x24, A: 0xff}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xd8, G: 0x8a, B: 0x3a, A: 0xff}
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0xd8, G: 0x8a, B: 0x3a, A: 0x66}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xd8, G: 0x8a, B: 0x3a, A: 0x22}
	}
	return t.Theme.Color(name, variant)
}
