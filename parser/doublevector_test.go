package parser

import (
	"strings"
	"testing"

	"github.com/aboluo/elki/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoubleVectorParse(t *testing.T) {
	input := strings.Join([]string{
		"# header comment",
		"1.0 2.0 3.0 setosa",
		"",
		"4.5 5.5 6.5",
		"-7 8e-1 9.25 class one",
	}, "\n")

	result, err := NewDoubleVector().Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, result.Len())
	assert.Equal(t, model.Vector{1.0, 2.0, 3.0}, result.Objects[0].Values)
	assert.Equal(t, model.Vector{4.5, 5.5, 6.5}, result.Objects[1].Values)
	assert.Equal(t, model.Vector{-7, 0.8, 9.25}, result.Objects[2].Values)

	assert.Equal(t, []string{"setosa", "", "class one"}, result.Labels)

	// Identities are sequential in row order, 1-based.
	assert.Equal(t, model.RecordID(1), result.Objects[0].ID)
	assert.Equal(t, model.RecordID(2), result.Objects[1].ID)
	assert.Equal(t, model.RecordID(3), result.Objects[2].ID)
}

func TestDoubleVectorParseDimensionMismatch(t *testing.T) {
	input := "1.0 2.0\n3.0 4.0 5.0\n"

	_, err := NewDoubleVector().Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differing dimensionality")
	assert.Contains(t, err.Error(), "line 2")
}

func TestDoubleVectorParseNoValues(t *testing.T) {
	_, err := NewDoubleVector().Parse(strings.NewReader("label only\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no numeric values")
}

func TestDoubleVectorParseEmpty(t *testing.T) {
	result, err := NewDoubleVector().Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Len())
}

func TestRegistry(t *testing.T) {
	p, err := New(TypeDoubleVector)
	require.NoError(t, err)
	assert.IsType(t, &DoubleVector{}, p)

	_, err = New("no-such-parser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parser type")

	assert.Contains(t, Names(), TypeDoubleVector)
}
