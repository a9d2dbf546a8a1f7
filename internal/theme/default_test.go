package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/notecanvas/internal/note"
)

func TestRenderNote(t *testing.T) {
	th := DefaultTheme{}
	tests := map[string]string{
		"C":  "\033[48;2;255;0;0m\033[38;2;255;255;255m C \033[0m",
		"E":  "\033[48;2;255;255;0m\033[38;2;0;0;0m E \033[0m",
		"C#": "\033[48;2;255;127;127m\033[38;2;0;0;0m C#\033[0m",
	}
	for token, expected := range tests {
		n, err := note.Parse(token)
		if nil != err {
			t.Fatal(err)
		}
		if out := th.RenderNote(n); out != expected {
			t.Errorf("%v: %q, want %q", token, out, expected)
		}
	}
}

func TestRenderKeys(t *testing.T) {
	th := DefaultTheme{}
	plain, sharp := th.RenderKeys(false), th.RenderKeys(true)
	for _, l := range []string{" c ", " d ", " e ", " f ", " g ", " a ", " b "} {
		if !strings.Contains(plain, l) || !strings.Contains(sharp, l) {
			t.Errorf("missing key %q", l)
		}
	}
	if !strings.Contains(plain, "48;2;255;0;0m") || !strings.Contains(sharp, "48;2;255;127;127m") {
		t.Error("sharp keys are not lightened")
	}
	if !strings.HasSuffix(plain, sharpOff) || !strings.HasSuffix(sharp, sharpOn) {
		t.Error("sharp toggle state not shown")
	}
}

func TestRenderError(t *testing.T) {
	th := DefaultTheme{}
	out := th.RenderError(&note.InvalidNoteError{Token: "Z"})
	if !strings.Contains(out, `"Z"`) || !strings.Contains(out, "C, D, E, F, G, A, B") {
		t.Errorf("error %q", out)
	}
}
