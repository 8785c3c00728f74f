package normalize

import (
	"fmt"

	"github.com/aboluo/elki/model"
)

// Identity is a pass-through normalization. It only records the
// dimensionality it was fitted on, so restore round-trips are exact.
type Identity struct {
	dimensionality int
	isFitted       bool
}

// NewIdentity creates an unfitted identity normalization.
func NewIdentity() *Identity {
	return &Identity{}
}

// Normalize records the dimensionality on first use and returns copies of the
// input vectors.
func (n *Identity) Normalize(vectors []model.Vector) ([]model.Vector, error) {
	if len(vectors) == 0 {
		return []model.Vector{}, nil
	}

	dim := n.dimensionality
	if !n.isFitted {
		dim = len(vectors[0])
	}

	out := make([]model.Vector, len(vectors))
	for i, v := range vectors {
		if len(v) != dim {
			return nil, &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: dim, Actual: len(v)}
		}
		out[i] = v.Clone()
	}

	n.dimensionality = dim
	n.isFitted = true
	return out, nil
}

// Restore returns a copy of the vector.
func (n *Identity) Restore(v model.Vector) (model.Vector, error) {
	if !n.isFitted {
		return nil, &ErrSchema{Reason: "restore before normalize: identity normalization not fitted"}
	}
	if len(v) != n.dimensionality {
		return nil, &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: n.dimensionality, Actual: len(v)}
	}
	return v.Clone(), nil
}

// RestoreAll returns copies of the vectors.
func (n *Identity) RestoreAll(vectors []model.Vector) ([]model.Vector, error) {
	return restoreAll(n, vectors)
}

// Describe renders the fitted dimensionality.
func (n *Identity) Describe(prefix string) string {
	if !n.isFitted {
		return prefix + "identity normalization\n" + prefix + "not fitted\n"
	}
	return prefix + "identity normalization\n" + fmt.Sprintf("%sdimensionality: %d\n", prefix, n.dimensionality)
}
