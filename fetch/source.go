package fetch

import (
	"context"
	"fmt"

	"github.com/lsnet/topodiff/topo"
)

// Source is one side of a validation run: either the local daemon's computed
// view or the distributed store's merged view. Implementations must be safe
// for concurrent use; the validator fetches both sides in parallel.
type Source interface {
	AdjacencyDatabases(ctx context.Context, area string) ([]topo.AdjacencyDatabase, error)
	PrefixDatabases(ctx context.Context, area string) ([]topo.PrefixDatabase, error)
	Areas(ctx context.Context) ([]string, error)
}

// UnreachableDependencyError wraps any transport failure (connect, timeout,
// bad status, decode). A run that hits one produces no report at all; diffing
// against a half-fetched snapshot would misreport missing data as divergence.
type UnreachableDependencyError struct {
	Endpoint string
	Op       string
	Err      error
}

func (e *UnreachableDependencyError) Error() string {
	return fmt.Sprintf("dependency %s unreachable during %s: %v", e.Endpoint, e.Op, e.Err)
}

func (e *UnreachableDependencyError) Unwrap() error {
	return e.Err
}
