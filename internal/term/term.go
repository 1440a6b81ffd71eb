// SPDX-License-Identifier: EPL-2.0

// Package term renders a visual scene as a single terminal status line.
package term

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/audviz"
)

const swatch = "  "

var colorDim = lipgloss.ANSIColor(8) // bright black (dark gray)

// Renderer draws scenes with the color profile detected for its output.
type Renderer struct {
	r      *lipgloss.Renderer
	label  lipgloss.Style
	detail lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)

	return &Renderer{
		r:      r,
		label:  r.NewStyle().Bold(true),
		detail: r.NewStyle().Foreground(colorDim),
	}
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (r *Renderer) swatch(c color.RGBA) string {
	return r.r.NewStyle().Background(lipgloss.Color(Hex(c))).Render(swatch)
}

// Line renders the running total, the buffer length, the background
// swatch and every circle of s.
func (r *Renderer) Line(s audviz.Scene, total uint64, length int) string {
	var b strings.Builder

	b.WriteString(r.label.Render(fmt.Sprintf("decoded %d", total)))
	b.WriteString(r.detail.Render(fmt.Sprintf(" buf %d ", length)))
	b.WriteString(r.swatch(s.Background))

	for _, c := range s.Circles {
		b.WriteString(" ")
		b.WriteString(r.swatch(c.Color))
		b.WriteString(r.detail.Render(fmt.Sprintf(" r=%5.1f", c.Radius)))
	}

	return b.String()
}
