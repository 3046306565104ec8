package topo

import (
	"fmt"
	"maps"
	"slices"
)

// AdjacencyDatabase is one node's raw advertised adjacency set, as carried on
// the wire by the daemon ctl API and by the distributed store. Seq is the
// flooding sequence number; it never participates in comparison.
type AdjacencyDatabase struct {
	Node        NodeID            `json:"node" yaml:"node"`
	Seq         uint64            `json:"seq,omitempty" yaml:"seq,omitempty"`
	Adjacencies []AdjacencyRecord `json:"adjacencies" yaml:"adjacencies"`
}

// PrefixDatabase is one node's raw announced prefix set.
type PrefixDatabase struct {
	Node     NodeID         `json:"node" yaml:"node"`
	Prefixes []PrefixRecord `json:"prefixes" yaml:"prefixes"`
}

// AdjacencyView is a normalized snapshot: per node, records are deduplicated
// and sorted by identity key. Views are treated as immutable once built.
type AdjacencyView map[NodeID][]AdjacencyRecord

type PrefixView map[NodeID][]PrefixRecord

// MalformedDatabaseError indicates that one node's raw snapshot advertised
// the same identity key twice with conflicting content. Such input cannot be
// diffed meaningfully and aborts the run.
type MalformedDatabaseError struct {
	Node NodeID
	Key  string
}

func (e *MalformedDatabaseError) Error() string {
	return fmt.Sprintf("malformed database for node %s: conflicting duplicate records for %s", e.Node, e.Key)
}

// NormalizeAdjacencies merges raw per-node databases into a canonical view.
// The store may hold several payloads for the same node (merges from multiple
// flooding peers); identical duplicates collapse silently, keeping the record
// with the freshest timestamp, while conflicting duplicates are fatal.
// Records with an empty LocalNode inherit the owning database's node; a
// record claiming a different local node than its database is conflicting
// source data too.
func NormalizeAdjacencies(dbs []AdjacencyDatabase) (AdjacencyView, error) {
	merged := make(map[NodeID]map[AdjacencyKey]AdjacencyRecord)
	for _, db := range dbs {
		node := merged[db.Node]
		if node == nil {
			node = make(map[AdjacencyKey]AdjacencyRecord)
			merged[db.Node] = node
		}
		for _, rec := range db.Adjacencies {
			if rec.LocalNode == "" {
				rec.LocalNode = db.Node
			}
			if rec.LocalNode != db.Node {
				return nil, &MalformedDatabaseError{Node: db.Node, Key: rec.Key().String()}
			}
			key := rec.Key()
			prev, ok := node[key]
			if !ok {
				node[key] = rec
				continue
			}
			if !prev.SemanticEqual(rec) {
				return nil, &MalformedDatabaseError{Node: db.Node, Key: key.String()}
			}
			if rec.Timestamp > prev.Timestamp {
				node[key] = rec
			}
		}
	}

	view := make(AdjacencyView, len(merged))
	for node, recs := range merged {
		ordered := slices.Collect(maps.Values(recs))
		slices.SortFunc(ordered, func(a, b AdjacencyRecord) int {
			return a.Key().Compare(b.Key())
		})
		view[node] = ordered
	}
	return view, nil
}

// NormalizePrefixes is the prefix analogue of NormalizeAdjacencies.
func NormalizePrefixes(dbs []PrefixDatabase) (PrefixView, error) {
	merged := make(map[NodeID]map[PrefixKey]PrefixRecord)
	for _, db := range dbs {
		node := merged[db.Node]
		if node == nil {
			node = make(map[PrefixKey]PrefixRecord)
			merged[db.Node] = node
		}
		for _, rec := range db.Prefixes {
			if rec.Node == "" {
				rec.Node = db.Node
			}
			if rec.Node != db.Node {
				return nil, &MalformedDatabaseError{Node: db.Node, Key: rec.Key().String()}
			}
			key := rec.Key()
			prev, ok := node[key]
			if !ok {
				node[key] = rec
				continue
			}
			if !prev.SemanticEqual(rec) {
				return nil, &MalformedDatabaseError{Node: db.Node, Key: key.String()}
			}
		}
	}

	view := make(PrefixView, len(merged))
	for node, recs := range merged {
		ordered := slices.Collect(maps.Values(recs))
		slices.SortFunc(ordered, func(a, b PrefixRecord) int {
			return a.Key().Compare(b.Key())
		})
		view[node] = ordered
	}
	return view, nil
}

// Flatten merges the per-node record sets into one key-indexed map, the shape
// the classifier consumes. Normalization guarantees key uniqueness.
func (v AdjacencyView) Flatten() map[AdjacencyKey]AdjacencyRecord {
	flat := make(map[AdjacencyKey]AdjacencyRecord)
	for _, recs := range v {
		for _, rec := range recs {
			flat[rec.Key()] = rec
		}
	}
	return flat
}

func (v PrefixView) Flatten() map[PrefixKey]PrefixRecord {
	flat := make(map[PrefixKey]PrefixRecord)
	for _, recs := range v {
		for _, rec := range recs {
			flat[rec.Key()] = rec
		}
	}
	return flat
}

// Nodes returns the node names in the view in sorted order.
func (v AdjacencyView) Nodes() []NodeID {
	return slices.Sorted(maps.Keys(v))
}

func (v PrefixView) Nodes() []NodeID {
	return slices.Sorted(maps.Keys(v))
}
