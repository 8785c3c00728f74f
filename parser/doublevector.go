package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aboluo/elki/model"
)

// CommentPrefix marks lines that are skipped entirely.
const CommentPrefix = "#"

// labelSeparator joins trailing label tokens of one row.
const labelSeparator = " "

// DoubleVector parses whitespace-separated rows of floating point values.
//
// Leading tokens that parse as floats become the vector; the first token that
// does not parse as a float starts the label, which runs to the end of the
// line. Blank lines and lines starting with CommentPrefix are skipped. All
// rows of one source must share the same dimensionality.
//
// Each Parse call stamps its records with sequential 1-based identities in
// row order.
type DoubleVector struct{}

// NewDoubleVector creates a parser for whitespace-separated double vectors
// with optional trailing labels.
func NewDoubleVector() *DoubleVector {
	return &DoubleVector{}
}

// Parse reads r fully and returns the parsed objects and labels.
func (p *DoubleVector) Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{}

	dimensionality := -1
	lineNumber := 0
	var nextID model.RecordID

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		values, label, err := splitRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		if dimensionality < 0 {
			dimensionality = len(values)
		} else if len(values) != dimensionality {
			return nil, fmt.Errorf("line %d: differing dimensionality: expected %d values, got %d", lineNumber, dimensionality, len(values))
		}

		nextID++
		result.Objects = append(result.Objects, model.Representation{
			ID:     nextID,
			Values: values,
		})
		result.Labels = append(result.Labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNumber, err)
	}

	return result, nil
}

// splitRow separates one row into its numeric prefix and trailing label.
func splitRow(line string) (model.Vector, string, error) {
	fields := strings.Fields(line)

	var values model.Vector
	label := ""
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			// First non-numeric token starts the label.
			label = strings.Join(fields[i:], labelSeparator)
			break
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, "", fmt.Errorf("no numeric values in row %q", line)
	}

	return values, label, nil
}
