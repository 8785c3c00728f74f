package ingest

import (
	"fmt"
	"strings"

	"github.com/aboluo/elki/model"
	"github.com/aboluo/elki/parser"
)

// LabelConcatenation separates the per-representation segments of a merged
// label.
const LabelConcatenation = " "

// CompositeRecordAssembler zips per-representation parse results row-wise
// into composite records and merges their labels.
type CompositeRecordAssembler struct{}

// NewCompositeRecordAssembler creates an assembler.
func NewCompositeRecordAssembler() *CompositeRecordAssembler {
	return &CompositeRecordAssembler{}
}

// Assemble builds one composite record per row. The composite record adopts
// the identity of representation 0's source record at that row. Labels merge
// in representation order, skipping empty segments, with a single space
// before every non-first non-empty segment.
//
// Result lengths are re-validated against representation 0 even though the
// reader already checked them; a mismatch fails with ErrAlignment.
func (a *CompositeRecordAssembler) Assemble(results []*parser.ParseResult) ([]model.CompositeRecord, []string, error) {
	if len(results) == 0 {
		return []model.CompositeRecord{}, []string{}, nil
	}

	numberOfObjects := results[0].Len()
	for r, result := range results {
		if result.Len() != numberOfObjects {
			return nil, nil, &ErrAlignment{
				Source:   fmt.Sprintf("representation %d", r),
				Expected: numberOfObjects,
				Actual:   result.Len(),
			}
		}
		if len(result.Labels) != result.Len() {
			return nil, nil, &ErrAlignment{
				Source:   fmt.Sprintf("representation %d labels", r),
				Expected: result.Len(),
				Actual:   len(result.Labels),
			}
		}
	}

	records := make([]model.CompositeRecord, numberOfObjects)
	labels := make([]string, numberOfObjects)

	for i := 0; i < numberOfObjects; i++ {
		representations := make([]model.Vector, len(results))
		var label strings.Builder

		for r, result := range results {
			representations[r] = result.Objects[i].Values

			segment := result.Labels[i]
			if segment == "" {
				continue
			}
			if label.Len() > 0 {
				label.WriteString(LabelConcatenation)
			}
			label.WriteString(segment)
		}

		records[i] = model.CompositeRecord{
			ID:              results[0].Objects[i].ID,
			Representations: representations,
		}
		labels[i] = label.String()
	}

	return records, labels, nil
}
