package normalize

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Normalization type identifiers.
const (
	TypeMinMax   = "minmax"
	TypeZScore   = "zscore"
	TypeIdentity = "identity"
)

// DefaultType is the normalization type replicated per representation when
// none is configured.
const DefaultType = TypeMinMax

// DefaultFactory produces the default normalization used when a chain infers
// its length from the first batch.
var DefaultFactory Factory = func() Normalization { return NewMinMax() }

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register binds a normalization type identifier to its factory. Registering
// an empty name, a nil factory or a duplicate name panics; registration
// happens at init time where misuse is a programming error.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || factory == nil {
		panic("normalize: Register requires a name and a factory")
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("normalize: type %q already registered", name))
	}
	registry[name] = factory
}

// FactoryFor returns the factory registered under the given type identifier.
func FactoryFor(name string) (Factory, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown normalization type %q (registered: %v)", name, Names())
	}
	return factory, nil
}

// ParseTypes resolves a comma-delimited list of normalization type
// identifiers into factories, e.g. "minmax,zscore,identity".
func ParseTypes(list string) ([]Factory, error) {
	parts := strings.Split(list, ",")
	factories := make([]Factory, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("empty normalization type in list %q", list)
		}
		factory, err := FactoryFor(name)
		if err != nil {
			return nil, err
		}
		factories = append(factories, factory)
	}
	return factories, nil
}

// Names returns the registered type identifiers in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(TypeMinMax, func() Normalization { return NewMinMax() })
	Register(TypeZScore, func() Normalization { return NewZScore() })
	Register(TypeIdentity, func() Normalization { return NewIdentity() })
}
