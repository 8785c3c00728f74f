package sink

import (
	"context"
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/aboluo/elki/model"
)

// ErrDuplicateID is returned when an insert would reuse an existing record
// identity.
type ErrDuplicateID struct {
	ID model.RecordID
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("record %d already inserted", e.ID)
}

// Memory is an in-memory Sink keeping records in insertion order, with a
// roaring bitmap over record identities for membership checks.
type Memory struct {
	mu           sync.RWMutex
	records      []model.CompositeRecord
	associations []model.Associations
	ids          *roaring64.Bitmap
	byID         map[model.RecordID]int
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{
		ids:  roaring64.New(),
		byID: map[model.RecordID]int{},
	}
}

// Insert stores the records with their associations. The whole batch is
// validated before anything is stored: a length mismatch, an unassigned
// identity or a duplicate identity rejects the batch without mutation.
func (m *Memory) Insert(ctx context.Context, records []model.CompositeRecord, associations []model.Associations) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(records) != len(associations) {
		return fmt.Errorf("records (%d) and associations (%d) do not align", len(records), len(associations))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	seen := roaring64.New()
	for _, rec := range records {
		id := uint64(rec.ID)
		if id == 0 {
			return fmt.Errorf("record without identity")
		}
		if m.ids.Contains(id) || seen.Contains(id) {
			return &ErrDuplicateID{ID: rec.ID}
		}
		seen.Add(id)
	}

	for i, rec := range records {
		m.byID[rec.ID] = len(m.records)
		m.records = append(m.records, rec)
		m.associations = append(m.associations, associations[i])
		m.ids.Add(uint64(rec.ID))
	}
	return nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Contains reports whether a record with the given identity was inserted.
func (m *Memory) Contains(id model.RecordID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ids.Contains(uint64(id))
}

// Get returns the record with the given identity and its associations.
func (m *Memory) Get(id model.RecordID) (model.CompositeRecord, model.Associations, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return model.CompositeRecord{}, nil, false
	}
	return m.records[i], m.associations[i], true
}

// Records returns the stored records in insertion order.
func (m *Memory) Records() []model.CompositeRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.CompositeRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Associations returns the stored association sets in insertion order.
func (m *Memory) Associations() []model.Associations {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Associations, len(m.associations))
	copy(out, m.associations)
	return out
}
