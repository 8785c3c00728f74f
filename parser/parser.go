package parser

import (
	"io"

	"github.com/aboluo/elki/model"
)

// ParseResult is the output of parsing one source: parsed objects and their
// per-row label strings. Both sequences have the same length and share row
// order with the source.
type ParseResult struct {
	Objects []model.Representation
	Labels  []string
}

// Len returns the number of parsed objects.
func (r *ParseResult) Len() int {
	return len(r.Objects)
}

// Parser turns a source byte stream into a ParseResult.
//
// A Parser consumes the stream fully in one call. It does not close the
// stream; stream ownership stays with the caller.
type Parser interface {
	Parse(r io.Reader) (*ParseResult, error)
}
