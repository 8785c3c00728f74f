package normalize

import (
	"fmt"
	"strings"

	"github.com/aboluo/elki/model"
)

// Chain owns one Normalization per representation of a composite dataset and
// applies normalize/restore across all representations of all records,
// preserving record identity.
//
// The chain fits lazily: its length and its normalization instances are
// established on the first non-empty Normalize call, either from the
// explicitly configured factories or by replicating the default factory to
// the first batch's representation count. Once fitted the chain is immutable.
//
// A Chain is scoped to one dataset run. It carries fitted state and must not
// be shared across unrelated runs; concurrent use is undefined.
type Chain struct {
	factories []Factory
	norms     []Normalization
}

// NewChain creates an unfitted chain. With no factories the chain length is
// inferred from the first normalized batch using DefaultFactory; explicit
// factories fix the chain length up front.
func NewChain(factories ...Factory) *Chain {
	return &Chain{factories: factories}
}

// Fitted reports whether the chain has established its normalizations.
func (c *Chain) Fitted() bool { return c.norms != nil }

// Length returns the number of representations the chain is fitted for,
// or 0 if the chain is unfit.
func (c *Chain) Length() int { return len(c.norms) }

// Normalize transforms all representations of all records.
//
// An empty input returns an empty output and leaves the chain unfit. The
// chain also stays unfit when any validation or normalization step fails.
// Output records carry the input records' identities unchanged.
func (c *Chain) Normalize(records []model.CompositeRecord) ([]model.CompositeRecord, error) {
	if len(records) == 0 {
		return []model.CompositeRecord{}, nil
	}

	norms := c.norms
	if norms == nil {
		norms = c.instantiate(records[0].NumberOfRepresentations())
	}
	length := len(norms)

	for _, rec := range records {
		if rec.NumberOfRepresentations() != length {
			return nil, &ErrSchema{Reason: "representation count mismatch", Expected: length, Actual: rec.NumberOfRepresentations()}
		}
	}

	// Normalize column-wise: the ordered values of representation r across
	// all records form one column, handled by the r-th normalization.
	columns := make([][]model.Vector, length)
	for r := 0; r < length; r++ {
		column := make([]model.Vector, len(records))
		for i, rec := range records {
			column[i] = rec.Representation(r)
		}

		normalized, err := norms[r].Normalize(column)
		if err != nil {
			return nil, err
		}
		columns[r] = normalized
	}

	out := make([]model.CompositeRecord, len(records))
	for i, rec := range records {
		representations := make([]model.Vector, length)
		for r := 0; r < length; r++ {
			representations[r] = columns[r][i]
		}
		out[i] = model.CompositeRecord{ID: rec.ID, Representations: representations}
	}

	c.norms = norms
	return out, nil
}

// Restore maps normalized records back to the original space.
func (c *Chain) Restore(records []model.CompositeRecord) ([]model.CompositeRecord, error) {
	out := make([]model.CompositeRecord, len(records))
	for i, rec := range records {
		restored, err := c.RestoreRecord(rec)
		if err != nil {
			return nil, err
		}
		out[i] = restored
	}
	return out, nil
}

// RestoreRecord maps one normalized record back to the original space,
// preserving its identity. It fails with ErrSchema if the chain was never
// fitted or the record's representation count differs from the chain length.
func (c *Chain) RestoreRecord(rec model.CompositeRecord) (model.CompositeRecord, error) {
	if !c.Fitted() {
		return model.CompositeRecord{}, &ErrSchema{Reason: "restore before normalize: chain not fitted"}
	}
	if rec.NumberOfRepresentations() != len(c.norms) {
		return model.CompositeRecord{}, &ErrSchema{Reason: "representation count mismatch", Expected: len(c.norms), Actual: rec.NumberOfRepresentations()}
	}

	representations := make([]model.Vector, len(c.norms))
	for r, norm := range c.norms {
		restored, err := norm.Restore(rec.Representation(r))
		if err != nil {
			return model.CompositeRecord{}, err
		}
		representations[r] = restored
	}
	return model.CompositeRecord{ID: rec.ID, Representations: representations}, nil
}

// Transform would remap a linear-dependency equation system derived on the
// normalized space back to the original space. Cross-representation linear
// dependencies are explicitly unsupported; the call always fails.
func (c *Chain) Transform(matrix [][]float64) ([][]float64, error) {
	return nil, fmt.Errorf("%w: cross-representation linear-dependency transform", ErrUnsupportedOperation)
}

// Describe renders the per-representation normalization parameters, prefixing
// every line with prefix.
func (c *Chain) Describe(prefix string) string {
	if !c.Fitted() {
		return prefix + "normalization chain not fitted\n"
	}

	var b strings.Builder
	for _, norm := range c.norms {
		b.WriteString(norm.Describe(prefix))
	}
	return b.String()
}

func (c *Chain) instantiate(representations int) []Normalization {
	if len(c.factories) > 0 {
		norms := make([]Normalization, len(c.factories))
		for i, factory := range c.factories {
			norms[i] = factory()
		}
		return norms
	}

	norms := make([]Normalization, representations)
	for i := range norms {
		norms[i] = DefaultFactory()
	}
	return norms
}
