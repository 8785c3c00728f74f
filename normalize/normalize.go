package normalize

import (
	"errors"
	"fmt"

	"github.com/aboluo/elki/model"
)

// ErrUnsupportedOperation is returned by operations that are permanently out
// of scope, such as cross-representation matrix transforms.
var ErrUnsupportedOperation = errors.New("operation not supported")

// ErrSchema indicates a shape mismatch against an established normalization:
// a record whose representation count differs from the chain length, a vector
// whose dimensionality differs from the fitted one, or a restore attempted
// before any normalize.
type ErrSchema struct {
	Reason   string
	Expected int
	Actual   int
}

func (e *ErrSchema) Error() string {
	if e.Expected == 0 && e.Actual == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: expected %d, got %d", e.Reason, e.Expected, e.Actual)
}

// Normalization is an invertible transform fit to a batch of vectors within
// one representation's space.
//
// Normalize fits the transform's parameters on its first call and applies
// them; later calls reuse the fitted parameters. Restore must be invoked on
// the same fitted instance that produced the normalized values.
type Normalization interface {
	// Normalize transforms a column of vectors, fitting on first use.
	Normalize(vectors []model.Vector) ([]model.Vector, error)
	// Restore maps one normalized vector back to the original space.
	Restore(v model.Vector) (model.Vector, error)
	// RestoreAll maps a column of normalized vectors back to the original space.
	RestoreAll(vectors []model.Vector) ([]model.Vector, error)
	// Describe renders the fitted parameters, prefixing every line with prefix.
	Describe(prefix string) string
}

// Factory produces a fresh, unfitted Normalization instance.
type Factory func() Normalization
