package topo

import (
	"cmp"
	"fmt"
	"net/netip"
)

type NodeID string

// Well-known announcing client types, mirroring what the daemon reports.
const (
	ClientLoopback = "loopback"
	ClientBGP      = "bgp"
	ClientConfig   = "config"
)

// AdjacencyRecord is a directed claim that LocalNode has a usable link to
// RemoteNode over LocalIfName. Records are plain values; nothing in the
// engine mutates one after it has been fetched.
type AdjacencyRecord struct {
	LocalNode    NodeID `json:"local_node" yaml:"local_node"`
	RemoteNode   NodeID `json:"remote_node" yaml:"remote_node"`
	LocalIfName  string `json:"local_if_name" yaml:"local_if_name"`
	RemoteIfName string `json:"remote_if_name" yaml:"remote_if_name"`
	Metric       uint32 `json:"metric" yaml:"metric"`
	Weight       uint32 `json:"weight" yaml:"weight"`
	AdjLabel     uint32 `json:"adj_label,omitempty" yaml:"adj_label,omitempty"`
	Overloaded   bool   `json:"overloaded,omitempty" yaml:"overloaded,omitempty"`
	// Timestamp is when the advertising node last refreshed the record.
	// It is flooding bookkeeping, not topology, and is excluded from equality.
	Timestamp int64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// AdjacencyKey is the identity of an adjacency record. Two records with the
// same key describe the same directed edge.
type AdjacencyKey struct {
	LocalNode   NodeID
	RemoteNode  NodeID
	LocalIfName string
}

func (a AdjacencyRecord) Key() AdjacencyKey {
	return AdjacencyKey{
		LocalNode:   a.LocalNode,
		RemoteNode:  a.RemoteNode,
		LocalIfName: a.LocalIfName,
	}
}

// SemanticEqual reports whether two records agree on every routing-affecting
// field. Timestamp is the only bookkeeping field on an adjacency.
func (a AdjacencyRecord) SemanticEqual(b AdjacencyRecord) bool {
	a.Timestamp = 0
	b.Timestamp = 0
	return a == b
}

func (k AdjacencyKey) Compare(o AdjacencyKey) int {
	return cmp.Or(
		cmp.Compare(k.LocalNode, o.LocalNode),
		cmp.Compare(k.RemoteNode, o.RemoteNode),
		cmp.Compare(k.LocalIfName, o.LocalIfName),
	)
}

func (k AdjacencyKey) String() string {
	return fmt.Sprintf("%s->%s@%s", k.LocalNode, k.RemoteNode, k.LocalIfName)
}

// PrefixRecord is one announced reachable network together with the metadata
// describing how it should be forwarded. Every field is routing-affecting,
// so equality is plain structural equality.
type PrefixRecord struct {
	Node                NodeID       `json:"node" yaml:"node"`
	Prefix              netip.Prefix `json:"prefix" yaml:"prefix"`
	Type                string       `json:"type" yaml:"type"`
	ForwardingType      string       `json:"forwarding_type,omitempty" yaml:"forwarding_type,omitempty"`
	ForwardingAlgorithm string       `json:"forwarding_algorithm,omitempty" yaml:"forwarding_algorithm,omitempty"`
	Ephemeral           bool         `json:"ephemeral,omitempty" yaml:"ephemeral,omitempty"`
}

type PrefixKey struct {
	Node   NodeID
	Prefix netip.Prefix
}

func (p PrefixRecord) Key() PrefixKey {
	return PrefixKey{Node: p.Node, Prefix: p.Prefix}
}

func (p PrefixRecord) SemanticEqual(b PrefixRecord) bool {
	return p == b
}

func (k PrefixKey) Compare(o PrefixKey) int {
	if c := cmp.Compare(k.Node, o.Node); c != 0 {
		return c
	}
	if c := k.Prefix.Addr().Compare(o.Prefix.Addr()); c != 0 {
		return c
	}
	return cmp.Compare(k.Prefix.Bits(), o.Prefix.Bits())
}

func (k PrefixKey) String() string {
	return fmt.Sprintf("%s@%s", k.Prefix, k.Node)
}
