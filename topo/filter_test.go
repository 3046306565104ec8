package topo

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSubnetOf(t *testing.T) {
	assert.True(t, IsSubnetOf(netip.MustParsePrefix("10.0.0.0/8"), netip.MustParsePrefix("10.1.0.0/16")))
	assert.False(t, IsSubnetOf(netip.MustParsePrefix("10.0.0.0/8"), netip.MustParsePrefix("11.1.0.0/16")))
	assert.True(t, IsSubnetOf(netip.MustParsePrefix("10.0.0.0/8"), netip.MustParsePrefix("10.0.0.0/8")))
	// the more specific network never contains the less specific one
	assert.False(t, IsSubnetOf(netip.MustParsePrefix("10.1.0.0/16"), netip.MustParsePrefix("10.0.0.0/8")))
}

func TestContainsAnyPrefix_EmptySetIsWildcard(t *testing.T) {
	assert.True(t, ContainsAnyPrefix(netip.MustParsePrefix("192.0.2.0/24"), nil))
}

func TestContainsAnyPrefix(t *testing.T) {
	nets := []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.0.2.0/24"),
	}
	assert.True(t, ContainsAnyPrefix(netip.MustParsePrefix("10.20.0.0/16"), nets))
	assert.True(t, ContainsAnyPrefix(netip.MustParsePrefix("192.0.2.128/25"), nets))
	assert.False(t, ContainsAnyPrefix(netip.MustParsePrefix("172.16.0.0/12"), nets))
}

func TestPrefixFilter_NilMatchesEverything(t *testing.T) {
	var f *PrefixFilter
	assert.True(t, f.Match(pfx("a", "10.0.0.1/32", ClientLoopback)))

	view := PrefixView{"a": {pfx("a", "10.0.0.1/32", ClientLoopback)}}
	assert.Equal(t, view, f.Apply(view))
}

func TestPrefixFilter_ClientType(t *testing.T) {
	f := NewPrefixFilter(nil, ClientBGP, nil)

	assert.True(t, f.Match(pfx("a", "198.51.100.0/24", ClientBGP)))
	assert.False(t, f.Match(pfx("a", "10.0.0.1/32", ClientLoopback)))
}

func TestPrefixFilter_Exact(t *testing.T) {
	target := netip.MustParsePrefix("198.51.100.0/24")
	f := NewPrefixFilter(&target, "", nil)

	assert.True(t, f.Match(pfx("a", "198.51.100.0/24", ClientBGP)))
	assert.False(t, f.Match(pfx("a", "198.51.100.0/25", ClientBGP)))
	assert.False(t, f.Match(pfx("a", "10.0.0.0/24", ClientBGP)))
}

func TestPrefixFilter_Within(t *testing.T) {
	f := NewPrefixFilter(nil, "", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")})

	assert.True(t, f.Match(pfx("a", "10.1.0.0/16", ClientBGP)))
	assert.False(t, f.Match(pfx("a", "11.1.0.0/16", ClientBGP)))
}

func TestPrefixFilter_PredicatesCompose(t *testing.T) {
	f := NewPrefixFilter(nil, ClientBGP, []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")})

	assert.True(t, f.Match(pfx("a", "10.1.0.0/16", ClientBGP)))
	// right network, wrong client type
	assert.False(t, f.Match(pfx("a", "10.1.0.0/16", ClientLoopback)))
	// right client type, wrong network
	assert.False(t, f.Match(pfx("a", "172.16.0.0/16", ClientBGP)))
}

func TestPrefixFilter_ApplyKeepsFilteredNodes(t *testing.T) {
	f := NewPrefixFilter(nil, ClientBGP, nil)
	view := PrefixView{
		"a": {pfx("a", "10.0.0.1/32", ClientLoopback)},
		"b": {pfx("b", "198.51.100.0/24", ClientBGP)},
	}

	out := f.Apply(view)

	assert.Contains(t, out, NodeID("a"))
	assert.Empty(t, out["a"])
	assert.Len(t, out["b"], 1)
	// input untouched
	assert.Len(t, view["a"], 1)
}
