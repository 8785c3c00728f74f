package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/aboluo/elki/parser"
	"github.com/aboluo/elki/source"
)

// ParallelSourceReader opens N aligned sources, runs each through its parser
// and validates that all sources yield the same number of objects.
type ParallelSourceReader struct {
	sources []string
	parsers []parser.Parser
	opener  source.Opener
}

// NewParallelSourceReader creates a reader over the ordered sources, each
// bound 1:1 to the parser at the same position.
func NewParallelSourceReader(sources []string, parsers []parser.Parser, opener source.Opener) (*ParallelSourceReader, error) {
	if len(sources) == 0 {
		return nil, errors.New("no sources specified")
	}
	if len(parsers) != len(sources) {
		return nil, &ErrParserCount{Parsers: len(parsers), Sources: len(sources)}
	}
	if opener == nil {
		opener = source.NewLocal("")
	}

	return &ParallelSourceReader{
		sources: sources,
		parsers: parsers,
		opener:  opener,
	}, nil
}

// NumberOfSources returns how many sources the reader is bound to.
func (r *ParallelSourceReader) NumberOfSources() int {
	return len(r.sources)
}

// Read opens and fully parses all sources in order and returns one
// ParseResult per source. Every opened stream is released before Read
// returns, on success and on failure alike. The first error aborts the read.
func (r *ParallelSourceReader) Read(ctx context.Context) ([]*parser.ParseResult, error) {
	results := make([]*parser.ParseResult, 0, len(r.sources))
	numberOfObjects := 0

	for i, name := range r.sources {
		result, err := r.readSource(ctx, i, name)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}

		if i == 0 {
			numberOfObjects = result.Len()
		} else if result.Len() != numberOfObjects {
			return nil, &ErrAlignment{Source: name, Expected: numberOfObjects, Actual: result.Len()}
		}
		results = append(results, result)
	}

	return results, nil
}

// readSource opens one source, parses it fully and releases the stream.
func (r *ParallelSourceReader) readSource(ctx context.Context, i int, name string) (*parser.ParseResult, error) {
	rc, err := r.opener.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return r.parsers[i].Parse(rc)
}
