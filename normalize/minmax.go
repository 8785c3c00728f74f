package normalize

import (
	"fmt"
	"strings"

	"github.com/aboluo/elki/model"
)

// MinMax normalizes each attribute independently into [0,1] using the minima
// and maxima of the batch it was fitted on. A constant attribute maps to 0
// and restores to its constant value.
type MinMax struct {
	minima []float64
	maxima []float64
}

// NewMinMax creates an unfitted attribute-wise min-max normalization.
func NewMinMax() *MinMax {
	return &MinMax{}
}

func (n *MinMax) fitted() bool { return n.minima != nil }

// Normalize fits minima/maxima on first use and maps the column into [0,1].
func (n *MinMax) Normalize(vectors []model.Vector) ([]model.Vector, error) {
	if len(vectors) == 0 {
		return []model.Vector{}, nil
	}

	if !n.fitted() {
		if err := n.fit(vectors); err != nil {
			return nil, err
		}
	}

	out := make([]model.Vector, len(vectors))
	for i, v := range vectors {
		if len(v) != len(n.minima) {
			return nil, &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: len(n.minima), Actual: len(v)}
		}
		w := make(model.Vector, len(v))
		for d, x := range v {
			spread := n.maxima[d] - n.minima[d]
			if spread == 0 {
				w[d] = 0
				continue
			}
			w[d] = (x - n.minima[d]) / spread
		}
		out[i] = w
	}
	return out, nil
}

// Restore maps one normalized vector back to the original attribute ranges.
func (n *MinMax) Restore(v model.Vector) (model.Vector, error) {
	if !n.fitted() {
		return nil, &ErrSchema{Reason: "restore before normalize: min-max normalization not fitted"}
	}
	if len(v) != len(n.minima) {
		return nil, &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: len(n.minima), Actual: len(v)}
	}

	w := make(model.Vector, len(v))
	for d, x := range v {
		w[d] = x*(n.maxima[d]-n.minima[d]) + n.minima[d]
	}
	return w, nil
}

// RestoreAll maps a column of normalized vectors back to the original space.
func (n *MinMax) RestoreAll(vectors []model.Vector) ([]model.Vector, error) {
	return restoreAll(n, vectors)
}

// Describe renders the fitted minima and maxima.
func (n *MinMax) Describe(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix + "attribute-wise min-max normalization\n")
	if !n.fitted() {
		b.WriteString(prefix + "not fitted\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%sminima: %v\n", prefix, n.minima)
	fmt.Fprintf(&b, "%smaxima: %v\n", prefix, n.maxima)
	return b.String()
}

func (n *MinMax) fit(vectors []model.Vector) error {
	dim := len(vectors[0])
	minima := make([]float64, dim)
	maxima := make([]float64, dim)
	copy(minima, vectors[0])
	copy(maxima, vectors[0])

	for _, v := range vectors[1:] {
		if len(v) != dim {
			return &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: dim, Actual: len(v)}
		}
		for d, x := range v {
			if x < minima[d] {
				minima[d] = x
			}
			if x > maxima[d] {
				maxima[d] = x
			}
		}
	}

	n.minima = minima
	n.maxima = maxima
	return nil
}

// restoreAll is the shared column restore loop.
func restoreAll(n Normalization, vectors []model.Vector) ([]model.Vector, error) {
	out := make([]model.Vector, len(vectors))
	for i, v := range vectors {
		w, err := n.Restore(v)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}
