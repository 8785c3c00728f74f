package ingest

import "fmt"

// ErrAlignment indicates that parallel per-representation sequences disagree
// on their object count, either across sources or across rows.
type ErrAlignment struct {
	Source   string
	Expected int
	Actual   int
}

func (e *ErrAlignment) Error() string {
	return fmt.Sprintf("%s: object count mismatch: expected %d, got %d", e.Source, e.Expected, e.Actual)
}

// ErrParserCount indicates that an explicit parser list does not match the
// number of sources.
type ErrParserCount struct {
	Parsers int
	Sources int
}

func (e *ErrParserCount) Error() string {
	return fmt.Sprintf("number of parsers (%d) and sources (%d) does not match", e.Parsers, e.Sources)
}
