package topo

import (
	"maps"
	"slices"
)

// DiffKind classifies a single divergence between the reference and observed
// snapshots.
type DiffKind uint8

const (
	// Down: present in the reference, missing from the observed side.
	Down DiffKind = iota
	// Up: present in the observed side, missing from the reference.
	Up
	// Update: present on both sides with differing routing-affecting fields.
	Update
)

func (k DiffKind) String() string {
	switch k {
	case Down:
		return "down"
	case Up:
		return "up"
	case Update:
		return "update"
	}
	return "unknown"
}

// DiffKey is the constraint for classifier keys: comparable for map identity,
// with a total order for deterministic output.
type DiffKey[K any] interface {
	comparable
	Compare(K) int
}

// DiffEntry records one divergence. Old is the reference record, New the
// observed one; exactly one of them is nil for Down and Up entries.
type DiffEntry[K comparable, V any] struct {
	Key  K
	Old  *V
	New  *V
	Kind DiffKind
}

// Partition is the three-way classified output of Classify. The three slices
// are disjoint and each is sorted by key.
type Partition[K comparable, V any] struct {
	Down   []DiffEntry[K, V]
	Up     []DiffEntry[K, V]
	Update []DiffEntry[K, V]
}

func (p Partition[K, V]) Empty() bool {
	return len(p.Down) == 0 && len(p.Up) == 0 && len(p.Update) == 0
}

// Classify computes the three-way diff between a reference and an observed
// key-indexed snapshot. It is a pure function: swapping the arguments swaps
// the Down and Up partitions and flips Old/New on Update entries.
func Classify[K DiffKey[K], V any](reference, observed map[K]V, equal func(a, b V) bool) Partition[K, V] {
	keys := make(map[K]struct{}, len(reference))
	for k := range reference {
		keys[k] = struct{}{}
	}
	for k := range observed {
		keys[k] = struct{}{}
	}
	ordered := slices.Collect(maps.Keys(keys))
	slices.SortFunc(ordered, func(a, b K) int { return a.Compare(b) })

	var p Partition[K, V]
	for _, k := range ordered {
		ref, inRef := reference[k]
		obs, inObs := observed[k]
		switch {
		case inRef && !inObs:
			p.Down = append(p.Down, DiffEntry[K, V]{Key: k, Old: &ref, Kind: Down})
		case !inRef && inObs:
			p.Up = append(p.Up, DiffEntry[K, V]{Key: k, New: &obs, Kind: Up})
		case !equal(ref, obs):
			p.Update = append(p.Update, DiffEntry[K, V]{Key: k, Old: &ref, New: &obs, Kind: Update})
		}
	}
	return p
}
