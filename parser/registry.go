package parser

import (
	"fmt"
	"sort"
	"sync"
)

// TypeDoubleVector is the identifier of the default whitespace double-vector
// parser.
const TypeDoubleVector = "doublevector"

// DefaultType is the parser type replicated per source when none is
// configured.
const DefaultType = TypeDoubleVector

// Factory produces a fresh Parser instance. Parsers may carry per-source
// state, so every source gets its own instance.
type Factory func() Parser

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register binds a parser type identifier to its factory. Registering an
// empty name, a nil factory or a duplicate name panics; registration happens
// at init time where misuse is a programming error.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || factory == nil {
		panic("parser: Register requires a name and a factory")
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("parser: type %q already registered", name))
	}
	registry[name] = factory
}

// New creates a parser instance for the given type identifier.
func New(name string) (Parser, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown parser type %q (registered: %v)", name, Names())
	}
	return factory(), nil
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
	Register(TypeDoubleVector, func() Parser { return NewDoubleVector() })
}
