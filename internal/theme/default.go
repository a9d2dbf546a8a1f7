package theme

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/notecanvas/internal/graphics"
	"git.lost.host/meutraa/notecanvas/internal/note"
)

type DefaultTheme struct {
}

// RenderNote draws the note name on a swatch of its own color.
func (t *DefaultTheme) RenderNote(n note.Note) string {
	return swatch(n.Color(), fmt.Sprintf(" %-2v", n))
}

// RenderKeys is the row of note buttons, lightened while sharp is on.
func (t *DefaultTheme) RenderKeys(sharp bool) string {
	var b strings.Builder
	for i, l := range note.Letters() {
		if i > 0 {
			b.WriteString(" ")
		}
		n, _ := note.Parse(l)
		n.Sharp = sharp
		b.WriteString(swatch(n.Color(), fmt.Sprintf(" %v ", strings.ToLower(l))))
	}
	if sharp {
		b.WriteString(sharpOn)
	} else {
		b.WriteString(sharpOff)
	}
	return b.String()
}

func (t *DefaultTheme) RenderError(err error) string {
	return fmt.Sprintf("\033[1;31m%v\033[0m", err)
}

const (
	sharpOn  = "  \033[1;30;43m # \033[0m"
	sharpOff = "  \033[37;100m # \033[0m"
)

func swatch(bg graphics.Color, text string) string {
	fg := bg.Contrast()
	return fmt.Sprintf("\033[48;2;%v;%v;%vm\033[38;2;%v;%v;%vm%v\033[0m",
		bg.R, bg.G, bg.B, fg.R, fg.G, fg.B, text)
}
