package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var tokenTests = map[string][]string{
	"":                      {},
	"C D E":                 {"C", "D", "E"},
	"c,d#,  e\n f\tg":       {"c", "d#", "e", "f", "g"},
	"A // the A\n// all\nB": {"A", "B"},
	",,,":                   {},
	"C## H":                 {"C##", "H"},
}

func TestTokens(t *testing.T) {
	p := DefaultParser{}
	for in, expected := range tokenTests {
		out, err := p.Tokens(strings.NewReader(in))
		if nil != err {
			t.Fatal(err)
		}
		if strings.Join(out, "|") != strings.Join(expected, "|") || len(out) != len(expected) {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	if err := os.WriteFile(path, []byte("C C# Z\n"), 0o644); nil != err {
		t.Fatal(err)
	}
	p := DefaultParser{}
	out, err := p.Parse(path)
	if nil != err {
		t.Fatal(err)
	}
	if strings.Join(out, " ") != "C C# Z" {
		t.Errorf("parsed %v", out)
	}
	if _, err := p.Parse(filepath.Join(t.TempDir(), "missing")); nil == err {
		t.Error("missing file parsed")
	}
}
