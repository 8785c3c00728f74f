package model

import (
	"fmt"
	"slices"
)

// RecordID is the stable identity of a source record and of the composite
// record built from it. It is assigned once, at parse time, and is never
// regenerated by later pipeline stages. Zero means unassigned.
type RecordID uint64

// Vector holds the ordered numeric values of one representation.
// Dimensionality is fixed per representation slot but may differ across slots.
type Vector []float64

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Representation is one parsed source record: a single numeric view of a
// multi-part logical object, carrying the identity assigned by its parser.
type Representation struct {
	ID     RecordID
	Values Vector
}

// CompositeRecord is an object assembled from one representation per
// configured source. All representations share the single record identity.
type CompositeRecord struct {
	ID              RecordID
	Representations []Vector
}

// NumberOfRepresentations returns how many representation slots the record has.
func (r CompositeRecord) NumberOfRepresentations() int {
	return len(r.Representations)
}

// Representation returns the vector in slot i.
func (r CompositeRecord) Representation(i int) Vector {
	return r.Representations[i]
}

// String returns a compact description of the record.
func (r CompositeRecord) String() string {
	return fmt.Sprintf("Record(%d:%d reps)", r.ID, len(r.Representations))
}

// AssociationKey identifies one kind of association attached to a record.
type AssociationKey string

// AssociationLabel is the key under which the merged source label (raw string
// or structured class label) is attached to a record.
const AssociationLabel AssociationKey = "label"

// Associations is the set of key/value pairs attached to one record for
// downstream consumption. Values are either raw strings or structured label
// instances, depending on the configured label type.
type Associations map[AssociationKey]any
