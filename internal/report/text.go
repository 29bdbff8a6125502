package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-constrain"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

const iconArrow = "→"

// styles are bound to the renderer of one writer, so color is only emitted
// when that writer is a terminal.
type styles struct {
	title  lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	number lipgloss.Style
	key    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		value:  r.NewStyle().Foreground(colorWhite),
		dim:    r.NewStyle().Foreground(colorDim),
		number: r.NewStyle().Foreground(colorCyan),
		key:    r.NewStyle().Foreground(colorGray).Width(12),
	}
}

// Text writes the constraints under roots, one block per container that
// holds any, followed by a summary line.
func Text(w io.Writer, roots []*constrain.Element) error {
	st := newStyles(w)
	records := Collect(roots)

	var container string
	for i, r := range records {
		if i == 0 || r.Container != container {
			container = r.Container
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, st.title.Render(container)); err != nil {
				return err
			}
		}
		line := "  " + st.dim.Render(iconArrow) + " " + st.value.Render(r.text)
		if r.ID != "" {
			line += "  " + st.dim.Render(r.ID)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	elements, constraints := Count(roots)
	if len(records) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w,
		st.key.Render("elements")+" "+st.number.Render(fmt.Sprint(elements))+"\n"+
			st.key.Render("constraints")+" "+st.number.Render(fmt.Sprint(constraints)))
	return err
}
