package label

import (
	"fmt"

	"github.com/aboluo/elki/model"
)

// ErrInstantiation indicates that constructing or initializing a structured
// class label failed. The underlying cause can be accessed via errors.Unwrap.
type ErrInstantiation struct {
	TypeName string
	Label    string
	cause    error
}

func (e *ErrInstantiation) Error() string {
	return fmt.Sprintf("instantiating class label %q from %q: %v", e.TypeName, e.Label, e.cause)
}

func (e *ErrInstantiation) Unwrap() error { return e.cause }

// Binder converts merged label strings into per-record association sets.
//
// Without a configured class label factory the association value is the raw
// label string; with one, each label is instantiated through the factory and
// initialized from the string.
type Binder struct {
	key      model.AssociationKey
	typeName string
	factory  Factory
}

// NewBinder creates a binder attaching values under the given association
// key. A nil factory keeps labels as raw strings; typeName is only used in
// diagnostics.
func NewBinder(key model.AssociationKey, typeName string, factory Factory) *Binder {
	return &Binder{key: key, typeName: typeName, factory: factory}
}

// NewRawBinder creates a binder that keeps labels as raw strings under the
// default label association key.
func NewRawBinder() *Binder {
	return NewBinder(model.AssociationLabel, "", nil)
}

// Bind converts the ordered label strings, aligned 1:1 with the records they
// belong to, into ordered association sets.
func (b *Binder) Bind(labels []string) ([]model.Associations, error) {
	out := make([]model.Associations, len(labels))

	for i, s := range labels {
		var value any
		if b.factory == nil {
			value = s
		} else {
			classLabel := b.factory()
			if err := classLabel.Init(s); err != nil {
				return nil, &ErrInstantiation{TypeName: b.typeName, Label: s, cause: err}
			}
			value = classLabel
		}
		out[i] = model.Associations{b.key: value}
	}
	return out, nil
}
