package sink

import (
	"context"
	"testing"

	"github.com/aboluo/elki/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(ids ...model.RecordID) ([]model.CompositeRecord, []model.Associations) {
	records := make([]model.CompositeRecord, len(ids))
	associations := make([]model.Associations, len(ids))
	for i, id := range ids {
		records[i] = model.CompositeRecord{ID: id, Representations: []model.Vector{{float64(id)}}}
		associations[i] = model.Associations{model.AssociationLabel: "x"}
	}
	return records, associations
}

func TestMemoryInsert(t *testing.T) {
	m := NewMemory()
	records, associations := batch(1, 2, 3)

	require.NoError(t, m.Insert(context.Background(), records, associations))
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Contains(2))
	assert.False(t, m.Contains(4))

	rec, assoc, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, model.RecordID(2), rec.ID)
	assert.Equal(t, "x", assoc[model.AssociationLabel])

	assert.Equal(t, records, m.Records())
	assert.Equal(t, associations, m.Associations())
}

func TestMemoryInsertDuplicateIsAtomic(t *testing.T) {
	m := NewMemory()
	records, associations := batch(1, 2)
	require.NoError(t, m.Insert(context.Background(), records, associations))

	// 4 collides with nothing, 2 is already present: nothing may be stored.
	more, moreAssoc := batch(4, 2)
	err := m.Insert(context.Background(), more, moreAssoc)
	require.Error(t, err)

	var dupErr *ErrDuplicateID
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, model.RecordID(2), dupErr.ID)

	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Contains(4))
}

func TestMemoryInsertMisaligned(t *testing.T) {
	m := NewMemory()
	records, _ := batch(1, 2)

	err := m.Insert(context.Background(), records, make([]model.Associations, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not align")
	assert.Equal(t, 0, m.Len())
}

func TestMemoryInsertUnassignedIdentity(t *testing.T) {
	m := NewMemory()
	err := m.Insert(context.Background(),
		[]model.CompositeRecord{{ID: 0}},
		[]model.Associations{nil},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without identity")
}
