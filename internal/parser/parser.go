package parser

import "io"

type Parser interface {
	Tokens(r io.Reader) ([]string, error)
	Parse(file string) ([]string, error)
}
