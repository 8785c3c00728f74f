package label

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ClassLabel is a structured label value attached to a record. Instances are
// created unset and initialized exactly once from the record's merged label
// string.
type ClassLabel interface {
	// Init parses the label string into the structured value.
	Init(s string) error
	String() string
}

// Factory produces a fresh, uninitialized ClassLabel instance.
type Factory func() ClassLabel

// Class label type identifiers.
const (
	TypeSimple       = "simple"
	TypeHierarchical = "hierarchical"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register binds a class label type identifier to its factory. Registering an
// empty name, a nil factory or a duplicate name panics; registration happens
// at init time where misuse is a programming error.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || factory == nil {
		panic("label: Register requires a name and a factory")
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("label: type %q already registered", name))
	}
	registry[name] = factory
}

// FactoryFor returns the factory registered under the given type identifier.
func FactoryFor(name string) (Factory, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown class label type %q (registered: %v)", name, Names())
	}
	return factory, nil
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

// Simple is a class label holding the entire label string as one class name.
type Simple struct {
	name string
}

// NewSimple creates an uninitialized simple class label.
func NewSimple() *Simple {
	return &Simple{}
}

// Init stores the trimmed label string as the class name.
func (l *Simple) Init(s string) error {
	name := strings.TrimSpace(s)
	if name == "" {
		return fmt.Errorf("empty class label")
	}
	l.name = name
	return nil
}

func (l *Simple) String() string { return l.name }

// HierarchySeparator splits the levels of a hierarchical class label.
const HierarchySeparator = "/"

// Hierarchical is a class label whose name encodes a path of classes,
// most general level first, separated by HierarchySeparator.
type Hierarchical struct {
	levels []string
}

// NewHierarchical creates an uninitialized hierarchical class label.
func NewHierarchical() *Hierarchical {
	return &Hierarchical{}
}

// Init splits the label string into its hierarchy levels.
func (l *Hierarchical) Init(s string) error {
	trimmed := strings.Trim(strings.TrimSpace(s), HierarchySeparator)
	if trimmed == "" {
		return fmt.Errorf("empty class label")
	}

	levels := strings.Split(trimmed, HierarchySeparator)
	for _, level := range levels {
		if level == "" {
			return fmt.Errorf("empty level in hierarchical class label %q", s)
		}
	}
	l.levels = levels
	return nil
}

// Depth returns the number of hierarchy levels.
func (l *Hierarchical) Depth() int { return len(l.levels) }

// Level returns the class name at depth i, most general level first.
func (l *Hierarchical) Level(i int) string { return l.levels[i] }

func (l *Hierarchical) String() string {
	return strings.Join(l.levels, HierarchySeparator)
}

func init() {
	Register(TypeSimple, func() ClassLabel { return NewSimple() })
	Register(TypeHierarchical, func() ClassLabel { return NewHierarchical() })
}
