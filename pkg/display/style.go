// Package display renders pantry data for the console: tables of
// foods, recipes and ingredients, detail views, menus and status lines.
// Colors are used only when the output is a terminal.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Pantry palette, warm kitchen tones.
var (
	ColorSaffron = lipgloss.Color("#F4A300")
	ColorPaprika = lipgloss.Color("#C0392B")
	ColorBasil   = lipgloss.Color("#27AE60")
	ColorClay    = lipgloss.Color("#8D6E63")
)

// Icon marks the outcome of an action.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconError   Icon = "✗"
	IconBullet  Icon = "•"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
	border  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(ColorSaffron),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		success: r.NewStyle().Foreground(ColorBasil),
		failure: r.NewStyle().Foreground(ColorPaprika),
		muted:   r.NewStyle().Foreground(ColorClay),
		border:  r.NewStyle().Foreground(ColorClay),
	}
}

// Printer writes styled output to w. The color profile is detected
// from w, so a buffer or a pipe gets plain text.
type Printer struct {
	w io.Writer
	s styles
}

// New creates a Printer for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{w: w, s: newStyles(r)}
}
