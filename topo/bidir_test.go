package topo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBidirectional_ConfirmedPair(t *testing.T) {
	view := AdjacencyView{
		"a": {adj("a", "b", "eth0", "eth1", 1)},
		"b": {adj("b", "a", "eth1", "eth0", 1)},
	}

	resolved := ResolveBidirectional(view)

	assert.Len(t, resolved["a"], 1)
	assert.Len(t, resolved["b"], 1)
}

func TestResolveBidirectional_OneSidedClaimDropped(t *testing.T) {
	// a claims b, but b has no record of a
	view := AdjacencyView{
		"a": {adj("a", "b", "eth0", "eth1", 1)},
		"b": {},
	}

	resolved := ResolveBidirectional(view)

	assert.Empty(t, resolved["a"])
	assert.Empty(t, resolved["b"])
	// both nodes stay present in the view
	assert.Contains(t, resolved, NodeID("a"))
	assert.Contains(t, resolved, NodeID("b"))
}

func TestResolveBidirectional_InterfaceMismatchDropped(t *testing.T) {
	// both sides claim each other, but the interface pairing disagrees
	view := AdjacencyView{
		"a": {adj("a", "b", "eth0", "eth1", 1)},
		"b": {adj("b", "a", "eth9", "eth0", 1)},
	}

	resolved := ResolveBidirectional(view)

	assert.Empty(t, resolved["a"])
	assert.Empty(t, resolved["b"])
}

func TestResolveBidirectional_MonotonicallyNonIncreasing(t *testing.T) {
	view := AdjacencyView{
		"a": {
			adj("a", "b", "eth0", "eth1", 1),
			adj("a", "c", "eth1", "eth0", 2),
		},
		"b": {adj("b", "a", "eth1", "eth0", 1)},
		"c": {adj("c", "d", "eth0", "eth0", 5)},
	}

	resolved := ResolveBidirectional(view)

	for node, recs := range resolved {
		assert.LessOrEqual(t, len(recs), len(view[node]), "node %s grew", node)
	}
}

func TestResolveBidirectional_InputNotMutated(t *testing.T) {
	view := AdjacencyView{
		"a": {adj("a", "b", "eth0", "eth1", 1)},
		"b": {},
	}

	_ = ResolveBidirectional(view)

	assert.Len(t, view["a"], 1)
}
