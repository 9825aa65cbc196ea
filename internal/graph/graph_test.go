package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	g := &Graph{Nodes: []Node{
		{Name: "A", Links: []string{"B"}},
		{Name: "B"},
		{Name: "C"},
	}}

	t.Run("exact match returns index", func(t *testing.T) {
		assert.Equal(t, 0, g.Lookup("A"))
		assert.Equal(t, 2, g.Lookup("C"))
	})

	t.Run("missing name returns NotFound", func(t *testing.T) {
		assert.Equal(t, NotFound, g.Lookup("Z"))
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		assert.Equal(t, NotFound, g.Lookup("a"))
	})

	t.Run("nil graph and empty name are safe", func(t *testing.T) {
		var nilGraph *Graph
		assert.Equal(t, NotFound, nilGraph.Lookup("A"))
		assert.Equal(t, NotFound, g.Lookup(""))
	})

	t.Run("duplicate names resolve to first occurrence", func(t *testing.T) {
		dup := &Graph{Nodes: []Node{
			{Name: "X", Links: []string{"A"}},
			{Name: "X", Links: []string{"B"}},
		}}
		assert.Equal(t, 0, dup.Lookup("X"))
	})
}

func TestIndex(t *testing.T) {
	t.Run("maps every name to its index", func(t *testing.T) {
		g := &Graph{Nodes: []Node{{Name: "A"}, {Name: "B"}}}
		idx := g.Index()
		require.Len(t, idx, 2)
		assert.Equal(t, 0, idx["A"])
		assert.Equal(t, 1, idx["B"])
	})

	t.Run("keeps Lookup's duplicate tie-break", func(t *testing.T) {
		g := &Graph{Nodes: []Node{{Name: "A"}, {Name: "X"}, {Name: "X"}}}
		idx := g.Index()
		require.Len(t, idx, 2)
		assert.Equal(t, g.Lookup("X"), idx["X"])
	})

	t.Run("nil graph yields nil index", func(t *testing.T) {
		var g *Graph
		assert.Nil(t, g.Index())
	})
}

func TestLen(t *testing.T) {
	var nilGraph *Graph
	assert.Equal(t, 0, nilGraph.Len())
	assert.Equal(t, 1, (&Graph{Nodes: []Node{{Name: "A"}}}).Len())
}
