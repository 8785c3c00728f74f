package normalize

import (
	"fmt"
	"math"
	"strings"

	"github.com/aboluo/elki/model"
)

// ZScore normalizes each attribute independently to zero mean and unit
// standard deviation, using the statistics of the batch it was fitted on.
// An attribute with zero deviation maps to 0 and restores to its mean.
type ZScore struct {
	means   []float64
	stddevs []float64
}

// NewZScore creates an unfitted attribute-wise z-score normalization.
func NewZScore() *ZScore {
	return &ZScore{}
}

func (n *ZScore) fitted() bool { return n.means != nil }

// Normalize fits mean/stddev on first use and standardizes the column.
func (n *ZScore) Normalize(vectors []model.Vector) ([]model.Vector, error) {
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
		if len(v) != len(n.means) {
			return nil, &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: len(n.means), Actual: len(v)}
		}
		w := make(model.Vector, len(v))
		for d, x := range v {
			if n.stddevs[d] == 0 {
				w[d] = 0
				continue
			}
			w[d] = (x - n.means[d]) / n.stddevs[d]
		}
		out[i] = w
	}
	return out, nil
}

// Restore maps one standardized vector back to the original attribute ranges.
func (n *ZScore) Restore(v model.Vector) (model.Vector, error) {
	if !n.fitted() {
		return nil, &ErrSchema{Reason: "restore before normalize: z-score normalization not fitted"}
	}
	if len(v) != len(n.means) {
		return nil, &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: len(n.means), Actual: len(v)}
	}

	w := make(model.Vector, len(v))
	for d, x := range v {
		w[d] = x*n.stddevs[d] + n.means[d]
	}
	return w, nil
}

// RestoreAll maps a column of standardized vectors back to the original space.
func (n *ZScore) RestoreAll(vectors []model.Vector) ([]model.Vector, error) {
	return restoreAll(n, vectors)
}

// Describe renders the fitted means and standard deviations.
func (n *ZScore) Describe(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix + "attribute-wise z-score normalization\n")
	if !n.fitted() {
		b.WriteString(prefix + "not fitted\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%smeans: %v\n", prefix, n.means)
	fmt.Fprintf(&b, "%sstddevs: %v\n", prefix, n.stddevs)
	return b.String()
}

func (n *ZScore) fit(vectors []model.Vector) error {
	dim := len(vectors[0])
	means := make([]float64, dim)
	stddevs := make([]float64, dim)

	for _, v := range vectors {
		if len(v) != dim {
			return &ErrSchema{Reason: "attribute dimensionality mismatch", Expected: dim, Actual: len(v)}
		}
		for d, x := range v {
			means[d] += x
		}
	}
	for d := range means {
		means[d] /= float64(len(vectors))
	}

	for _, v := range vectors {
		for d, x := range v {
			diff := x - means[d]
			stddevs[d] += diff * diff
		}
	}
	for d := range stddevs {
		stddevs[d] = math.Sqrt(stddevs[d] / float64(len(vectors)))
	}

	n.means = means
	n.stddevs = stddevs
	return nil
}
