package topo

import (
	"net/netip"

	"github.com/gaissmai/bart"
)

// IsSubnetOf reports whether b is nested inside a: a covers b's network
// address and is no more specific than b.
func IsSubnetOf(a, b netip.Prefix) bool {
	return a.Bits() <= b.Bits() && a.Contains(b.Masked().Addr())
}

// ContainsAnyPrefix reports whether candidate is a subnet of at least one of
// networks. An empty set is a wildcard and matches everything.
func ContainsAnyPrefix(candidate netip.Prefix, networks []netip.Prefix) bool {
	if len(networks) == 0 {
		return true
	}
	for _, net := range networks {
		if IsSubnetOf(net, candidate) {
			return true
		}
	}
	return false
}

// PrefixFilter restricts prefix views before comparison. Predicates compose
// by AND; the zero filter matches everything. The same filter must be applied
// to both sides of a diff, otherwise the comparison is meaningless.
type PrefixFilter struct {
	exact      *netip.Prefix
	clientType string
	within     bart.Table[struct{}]
	hasWithin  bool
}

// NewPrefixFilter builds a filter from its three optional predicates. The
// containment set is loaded into a routing table so matching is a single
// longest-prefix lookup per record.
func NewPrefixFilter(exact *netip.Prefix, clientType string, within []netip.Prefix) *PrefixFilter {
	f := &PrefixFilter{
		exact:      exact,
		clientType: clientType,
		hasWithin:  len(within) > 0,
	}
	for _, net := range within {
		f.within.Insert(net.Masked(), struct{}{})
	}
	return f
}

func (f *PrefixFilter) Match(rec PrefixRecord) bool {
	if f == nil {
		return true
	}
	if f.exact != nil && rec.Prefix != *f.exact {
		return false
	}
	if f.clientType != "" && rec.Type != f.clientType {
		return false
	}
	if f.hasWithin {
		if _, ok := f.within.LookupPrefix(rec.Prefix); !ok {
			return false
		}
	}
	return true
}

// Apply returns a new view containing only matching records. Nodes whose
// records are all filtered away keep an empty entry, so "node present with
// nothing to compare" stays distinguishable from "node unknown".
func (f *PrefixFilter) Apply(view PrefixView) PrefixView {
	if f == nil {
		return view
	}
	out := make(PrefixView, len(view))
	for node, recs := range view {
		kept := make([]PrefixRecord, 0, len(recs))
		for _, rec := range recs {
			if f.Match(rec) {
				kept = append(kept, rec)
			}
		}
		out[node] = kept
	}
	return out
}
