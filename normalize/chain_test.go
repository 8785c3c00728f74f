package normalize

import (
	"errors"
	"testing"

	"github.com/aboluo/elki/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []model.CompositeRecord {
	return []model.CompositeRecord{
		{ID: 1, Representations: []model.Vector{{1, 2}, {10}}},
		{ID: 2, Representations: []model.Vector{{3, 4}, {20}}},
		{ID: 3, Representations: []model.Vector{{5, 6}, {30}}},
	}
}

func TestChainRoundTripExact(t *testing.T) {
	chain := NewChain(
		func() Normalization { return NewIdentity() },
		func() Normalization { return NewIdentity() },
	)

	records := testRecords()
	normalized, err := chain.Normalize(records)
	require.NoError(t, err)
	require.Len(t, normalized, len(records))

	restored, err := chain.Restore(normalized)
	require.NoError(t, err)
	assert.Equal(t, records, restored)
}

func TestChainRoundTripWithinTolerance(t *testing.T) {
	chain := NewChain() // default min-max, length inferred from the batch

	records := testRecords()
	normalized, err := chain.Normalize(records)
	require.NoError(t, err)
	assert.Equal(t, 2, chain.Length())

	// Min-max maps the fitted batch into [0,1].
	for _, rec := range normalized {
		for _, rep := range rec.Representations {
			for _, x := range rep {
				assert.GreaterOrEqual(t, x, 0.0)
				assert.LessOrEqual(t, x, 1.0)
			}
		}
	}

	restored, err := chain.Restore(normalized)
	require.NoError(t, err)
	for i, rec := range restored {
		for r, rep := range rec.Representations {
			require.Len(t, rep, len(records[i].Representations[r]))
			for d, x := range rep {
				assert.InDelta(t, records[i].Representations[r][d], x, 1e-12)
			}
		}
	}
}

func TestChainIdentityPreservation(t *testing.T) {
	chain := NewChain()
	records := testRecords()

	normalized, err := chain.Normalize(records)
	require.NoError(t, err)
	restored, err := chain.Restore(normalized)
	require.NoError(t, err)

	for i := range records {
		assert.Equal(t, records[i].ID, normalized[i].ID)
		assert.Equal(t, records[i].ID, restored[i].ID)
	}
}

func TestChainIdempotentFit(t *testing.T) {
	chain := NewChain()
	first := testRecords()

	_, err := chain.Normalize(first)
	require.NoError(t, err)

	// Second batch exceeds the fitted ranges; the chain must reuse the
	// parameters fitted on the first batch rather than refit.
	second := []model.CompositeRecord{
		{ID: 4, Representations: []model.Vector{{9, 10}, {50}}},
	}
	normalized, err := chain.Normalize(second)
	require.NoError(t, err)

	// With first-batch minima/maxima (rep 0: [1,5]x[2,6], rep 1: [10,30]),
	// the out-of-range values land above 1.
	assert.InDelta(t, 2.0, normalized[0].Representations[0][0], 1e-12)
	assert.InDelta(t, 2.0, normalized[0].Representations[0][1], 1e-12)
	assert.InDelta(t, 2.0, normalized[0].Representations[1][0], 1e-12)

	restored, err := chain.Restore(normalized)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, restored[0].Representations[0][0], 1e-12)
	assert.InDelta(t, 50.0, restored[0].Representations[1][0], 1e-12)
}

func TestChainEmptyInputLeavesUnfit(t *testing.T) {
	chain := NewChain()

	out, err := chain.Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, chain.Fitted())

	// A later call with real data still infers the chain from that batch.
	_, err = chain.Normalize(testRecords())
	require.NoError(t, err)
	assert.True(t, chain.Fitted())
	assert.Equal(t, 2, chain.Length())
}

func TestChainRestoreBeforeNormalize(t *testing.T) {
	chain := NewChain()

	_, err := chain.RestoreRecord(testRecords()[0])
	require.Error(t, err)

	var schemaErr *ErrSchema
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Error(), "not fitted")
}

func TestChainRepresentationCountMismatch(t *testing.T) {
	chain := NewChain()
	_, err := chain.Normalize(testRecords())
	require.NoError(t, err)

	narrow := model.CompositeRecord{ID: 9, Representations: []model.Vector{{1, 2}}}

	_, err = chain.RestoreRecord(narrow)
	var schemaErr *ErrSchema
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, 2, schemaErr.Expected)
	assert.Equal(t, 1, schemaErr.Actual)

	_, err = chain.Normalize([]model.CompositeRecord{narrow})
	require.ErrorAs(t, err, &schemaErr)
}

func TestChainExplicitFactoriesFixLength(t *testing.T) {
	chain := NewChain(
		func() Normalization { return NewMinMax() },
		func() Normalization { return NewZScore() },
		func() Normalization { return NewIdentity() },
	)

	// Records carry 2 representations, chain is configured for 3.
	_, err := chain.Normalize(testRecords())
	var schemaErr *ErrSchema
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, 3, schemaErr.Expected)
	assert.False(t, chain.Fitted())
}

func TestChainTransformUnsupported(t *testing.T) {
	chain := NewChain()
	_, err := chain.Transform([][]float64{{1, 0}, {0, 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedOperation))
}

func TestChainDescribe(t *testing.T) {
	chain := NewChain()
	assert.Contains(t, chain.Describe("> "), "not fitted")

	_, err := chain.Normalize(testRecords())
	require.NoError(t, err)

	desc := chain.Describe("> ")
	assert.Contains(t, desc, "> attribute-wise min-max normalization")
	assert.Contains(t, desc, "minima")
}
