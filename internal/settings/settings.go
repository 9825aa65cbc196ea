// Package settings implements the ordered key/value bundle passed across
// the provider boundary. Values are cty.Value so a bundle can carry both
// plain strings and opaque payloads like the graph capsule.
package settings

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/pathgrid/internal/graph"
)

// Entry is a single typed key/value pair.
type Entry struct {
	Key   string
	Value cty.Value
}

// Bundle is an ordered sequence of entries. Keys are not required to be
// unique; readers take the first match in insertion order.
type Bundle struct {
	entries []Entry
}

// New returns an empty bundle.
func New() *Bundle {
	return &Bundle{}
}

// Append adds an entry, preserving insertion order.
func (b *Bundle) Append(key string, v cty.Value) {
	b.entries = append(b.entries, Entry{Key: key, Value: v})
}

// Get returns the first value stored under key.
func (b *Bundle) Get(key string) (cty.Value, bool) {
	if b == nil {
		return cty.NilVal, false
	}
	for _, e := range b.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return cty.NilVal, false
}

// GetString returns the first string-typed value stored under key.
func (b *Bundle) GetString(key string) (string, bool) {
	v, ok := b.Get(key)
	if !ok || v.IsNull() || !v.Type().Equals(cty.String) {
		return "", false
	}
	return v.AsString(), true
}

// Len reports the number of entries; safe on a nil bundle.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Entries returns the entries in insertion order.
func (b *Bundle) Entries() []Entry {
	if b == nil {
		return nil
	}
	return b.entries
}

// GraphKey is the well-known bundle key the provider contract reads the
// graph payload from.
const GraphKey = "graph"

// GraphType is the capsule type that carries a *graph.Graph through a
// bundle, the typed equivalent of the boundary's binary payload kind.
var GraphType = cty.Capsule("graph", reflect.TypeOf(graph.Graph{}))

// GraphVal wraps g for transport inside a bundle.
func GraphVal(g *graph.Graph) cty.Value {
	return cty.CapsuleVal(GraphType, g)
}

// GraphFromBundle scans b in order for the first usable graph entry:
// keyed GraphKey, capsule-typed, non-nil, and holding at least one node.
// Entries failing any of those checks are skipped, not errors.
func GraphFromBundle(b *Bundle) (*graph.Graph, bool) {
	if b == nil {
		return nil, false
	}
	for _, e := range b.entries {
		if e.Key != GraphKey {
			continue
		}
		if e.Value.IsNull() || !e.Value.Type().Equals(GraphType) {
			continue
		}
		g, ok := e.Value.EncapsulatedValue().(*graph.Graph)
		if !ok || g.Len() == 0 {
			continue
		}
		return g, true
	}
	return nil, false
}
