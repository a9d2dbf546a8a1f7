package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

const commentPrefix = "//"

// DefaultParser reads note tokens separated by whitespace or commas.
// Anything after // on a line is ignored.
type DefaultParser struct{}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

func (p *DefaultParser) Tokens(r io.Reader) ([]string, error) {
	tokens := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, commentPrefix); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.FieldsFunc(line, isSeparator)...)
	}
	if err := scanner.Err(); nil != err {
		return nil, fmt.Errorf("unable to read notes: %w", err)
	}
	return tokens, nil
}

func (p *DefaultParser) Parse(file string) ([]string, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return p.Tokens(f)
}
