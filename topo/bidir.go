package topo

import "slices"

// ResolveBidirectional keeps only adjacencies confirmed by the remote side.
// A record (n1->n2 over ifL, remote ifR) is confirmed iff n2's own record set
// contains the mirrored claim (n2->n1 over ifR, remote ifL). One-sided
// adjacencies are expected during link establishment; dropping them keeps
// transient bring-up out of the diff. The input view is never modified.
func ResolveBidirectional(view AdjacencyView) AdjacencyView {
	out := make(AdjacencyView, len(view))
	for node, recs := range view {
		kept := make([]AdjacencyRecord, 0, len(recs))
		for _, rec := range recs {
			if confirmed(view, rec) {
				kept = append(kept, rec)
			}
		}
		out[node] = kept
	}
	return out
}

func confirmed(view AdjacencyView, rec AdjacencyRecord) bool {
	return slices.ContainsFunc(view[rec.RemoteNode], func(mirror AdjacencyRecord) bool {
		return mirror.RemoteNode == rec.LocalNode &&
			mirror.LocalIfName == rec.RemoteIfName &&
			mirror.RemoteIfName == rec.LocalIfName
	})
}
