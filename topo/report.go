package topo

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Report aggregates the adjacency and prefix partitions of one validation
// run. It is built once per run and never updated afterwards.
type Report struct {
	RunID     string
	Area      string
	Adjacency Partition[AdjacencyKey, AdjacencyRecord]
	Prefix    Partition[PrefixKey, PrefixRecord]
}

// Consistent reports whether all six partitions are empty.
func (r *Report) Consistent() bool {
	return r.Adjacency.Empty() && r.Prefix.Empty()
}

type adjChange struct {
	OldAdj *AdjacencyRecord `json:"old_adj"`
	NewAdj *AdjacencyRecord `json:"new_adj"`
}

type prefixChange struct {
	OldPrefix *PrefixRecord `json:"old_prefix"`
	NewPrefix *PrefixRecord `json:"new_prefix"`
}

// reportJSON is the stable wire shape consumed by downstream tooling. Field
// names and ordering must not change even when the engine internals do.
type reportJSON struct {
	NeighborDown   []adjChange    `json:"neighbor_down"`
	NeighborUp     []adjChange    `json:"neighbor_up"`
	NeighborUpdate []adjChange    `json:"neighbor_update"`
	PrefixDown     []prefixChange `json:"prefix_down"`
	PrefixUp       []prefixChange `json:"prefix_up"`
	PrefixUpdate   []prefixChange `json:"prefix_update"`
	Consistent     bool           `json:"consistent"`
	Area           string         `json:"area"`
	RunID          string         `json:"run_id"`
}

func toAdjChanges(entries []DiffEntry[AdjacencyKey, AdjacencyRecord]) []adjChange {
	return lo.Map(entries, func(e DiffEntry[AdjacencyKey, AdjacencyRecord], _ int) adjChange {
		return adjChange{OldAdj: e.Old, NewAdj: e.New}
	})
}

func toPrefixChanges(entries []DiffEntry[PrefixKey, PrefixRecord]) []prefixChange {
	return lo.Map(entries, func(e DiffEntry[PrefixKey, PrefixRecord], _ int) prefixChange {
		return prefixChange{OldPrefix: e.Old, NewPrefix: e.New}
	})
}

func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		NeighborDown:   toAdjChanges(r.Adjacency.Down),
		NeighborUp:     toAdjChanges(r.Adjacency.Up),
		NeighborUpdate: toAdjChanges(r.Adjacency.Update),
		PrefixDown:     toPrefixChanges(r.Prefix.Down),
		PrefixUp:       toPrefixChanges(r.Prefix.Up),
		PrefixUpdate:   toPrefixChanges(r.Prefix.Update),
		Consistent:     r.Consistent(),
		Area:           r.Area,
		RunID:          r.RunID,
	})
}
