package fetch

import (
	"context"

	"github.com/lsnet/topodiff/topo"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one side's raw material for a run, fetched fresh every time.
type Snapshot struct {
	Adjacencies []topo.AdjacencyDatabase
	Prefixes    []topo.PrefixDatabase
}

// Snapshots fetches the observed (daemon) and reference (store) snapshots for
// one area concurrently. The four requests are independent reads with no
// ordering between them; the first failure cancels the rest and aborts the
// run, so a partial snapshot can never reach the diff.
func Snapshots(ctx context.Context, observed, reference Source, area string) (*Snapshot, *Snapshot, error) {
	var obs, ref Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dbs, err := observed.AdjacencyDatabases(ctx, area)
		obs.Adjacencies = dbs
		return err
	})
	g.Go(func() error {
		dbs, err := observed.PrefixDatabases(ctx, area)
		obs.Prefixes = dbs
		return err
	})
	g.Go(func() error {
		dbs, err := reference.AdjacencyDatabases(ctx, area)
		ref.Adjacencies = dbs
		return err
	})
	g.Go(func() error {
		dbs, err := reference.PrefixDatabases(ctx, area)
		ref.Prefixes = dbs
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return &obs, &ref, nil
}
