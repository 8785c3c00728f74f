package ingest

import (
	"testing"

	"github.com/aboluo/elki/model"
	"github.com/aboluo/elki/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(labels []string, vectors ...model.Vector) *parser.ParseResult {
	r := &parser.ParseResult{Labels: labels}
	for i, v := range vectors {
		r.Objects = append(r.Objects, model.Representation{ID: model.RecordID(i + 1), Values: v})
	}
	return r
}

func TestAssembleComposites(t *testing.T) {
	results := []*parser.ParseResult{
		result([]string{"a1", "a2"}, model.Vector{1, 2}, model.Vector{3, 4}),
		result([]string{"b1", "b2"}, model.Vector{10}, model.Vector{20}),
	}

	records, labels, err := NewCompositeRecordAssembler().Assemble(results)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, model.CompositeRecord{
		ID:              1,
		Representations: []model.Vector{{1, 2}, {10}},
	}, records[0])
	assert.Equal(t, model.CompositeRecord{
		ID:              2,
		Representations: []model.Vector{{3, 4}, {20}},
	}, records[1])

	assert.Equal(t, []string{"a1 b1", "a2 b2"}, labels)
}

func TestAssembleLabelMerge(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"all present", []string{"a", "b", "c"}, "a b c"},
		{"middle empty", []string{"a", "", "c"}, "a c"},
		{"leading empty", []string{"", "b", "c"}, "b c"},
		{"all empty", []string{"", "", ""}, ""},
		{"only last", []string{"", "", "c"}, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]*parser.ParseResult, len(tt.segments))
			for r, segment := range tt.segments {
				results[r] = result([]string{segment}, model.Vector{float64(r)})
			}

			_, labels, err := NewCompositeRecordAssembler().Assemble(results)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, labels)
		})
	}
}

func TestAssembleIdentityFromFirstRepresentation(t *testing.T) {
	first := result([]string{"x", "y"}, model.Vector{1}, model.Vector{2})
	first.Objects[0].ID = 41
	first.Objects[1].ID = 42

	second := result([]string{"", ""}, model.Vector{3}, model.Vector{4})
	second.Objects[0].ID = 91
	second.Objects[1].ID = 92

	records, _, err := NewCompositeRecordAssembler().Assemble([]*parser.ParseResult{first, second})
	require.NoError(t, err)

	assert.Equal(t, model.RecordID(41), records[0].ID)
	assert.Equal(t, model.RecordID(42), records[1].ID)
}

func TestAssembleRowCountMismatch(t *testing.T) {
	results := []*parser.ParseResult{
		result([]string{"a1", "a2"}, model.Vector{1}, model.Vector{2}),
		result([]string{"b1"}, model.Vector{10}),
	}

	_, _, err := NewCompositeRecordAssembler().Assemble(results)
	require.Error(t, err)

	var alignErr *ErrAlignment
	require.ErrorAs(t, err, &alignErr)
	assert.Equal(t, 2, alignErr.Expected)
	assert.Equal(t, 1, alignErr.Actual)
}

func TestAssembleEmpty(t *testing.T) {
	records, labels, err := NewCompositeRecordAssembler().Assemble(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, labels)
}
