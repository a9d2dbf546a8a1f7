package theme

import "git.lost.host/meutraa/notecanvas/internal/note"

type Theme interface {
	RenderNote(n note.Note) string
	RenderKeys(sharp bool) string
	RenderError(err error) string
}
