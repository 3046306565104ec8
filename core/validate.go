package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lsnet/topodiff/fetch"
	"github.com/lsnet/topodiff/state"
	"github.com/lsnet/topodiff/topo"
)

// RunOptions selects what one validation run compares.
type RunOptions struct {
	Area string
	// Bidirectional restricts both adjacency views to mutually confirmed
	// links before diffing. Default on: one-sided adjacencies are expected
	// while a link is coming up and would otherwise flood the report.
	Bidirectional bool
	Filter        *topo.PrefixFilter
}

// Validator runs the diff between the daemon's computed view (observed) and
// the distributed store's merged view (reference). It holds no state across
// runs; every Run is independent.
type Validator struct {
	Env    *state.Env
	Daemon fetch.Source
	Store  fetch.Source
}

// Run validates one area: fetch both sides in parallel, normalize, resolve,
// filter, classify. It either returns a complete report or an error; there is
// no partial result.
func (v *Validator) Run(ctx context.Context, opts RunOptions) (*topo.Report, error) {
	runID := uuid.NewString()
	log := v.Env.Log.With("run", runID, "area", opts.Area)

	ctx, cancel := context.WithTimeout(ctx, v.Env.Cfg.Timeout.Duration())
	defer cancel()

	start := time.Now()
	observed, reference, err := fetch.Snapshots(ctx, v.Daemon, v.Store, opts.Area)
	if err != nil {
		return nil, err
	}
	log.Debug("snapshots fetched",
		"elapsed", time.Since(start),
		"daemon_adj_dbs", len(observed.Adjacencies),
		"store_adj_dbs", len(reference.Adjacencies))

	obsAdj, err := topo.NormalizeAdjacencies(observed.Adjacencies)
	if err != nil {
		return nil, err
	}
	refAdj, err := topo.NormalizeAdjacencies(reference.Adjacencies)
	if err != nil {
		return nil, err
	}
	obsPfx, err := topo.NormalizePrefixes(observed.Prefixes)
	if err != nil {
		return nil, err
	}
	refPfx, err := topo.NormalizePrefixes(reference.Prefixes)
	if err != nil {
		return nil, err
	}

	if opts.Bidirectional {
		obsAdj = topo.ResolveBidirectional(obsAdj)
		refAdj = topo.ResolveBidirectional(refAdj)
	}
	obsPfx = opts.Filter.Apply(obsPfx)
	refPfx = opts.Filter.Apply(refPfx)

	report := &topo.Report{
		RunID: runID,
		Area:  opts.Area,
		Adjacency: topo.Classify(refAdj.Flatten(), obsAdj.Flatten(),
			topo.AdjacencyRecord.SemanticEqual),
		Prefix: topo.Classify(refPfx.Flatten(), obsPfx.Flatten(),
			topo.PrefixRecord.SemanticEqual),
	}
	if report.Consistent() {
		log.Debug("area consistent")
	} else {
		log.Info("area divergent",
			"neighbor_down", len(report.Adjacency.Down),
			"neighbor_up", len(report.Adjacency.Up),
			"neighbor_update", len(report.Adjacency.Update),
			"prefix_down", len(report.Prefix.Down),
			"prefix_up", len(report.Prefix.Up),
			"prefix_update", len(report.Prefix.Update))
	}
	return report, nil
}

// Areas resolves which areas a run should cover: the configured pin list if
// present, otherwise whatever the daemon reports.
func (v *Validator) Areas(ctx context.Context) ([]string, error) {
	if len(v.Env.Cfg.Areas) > 0 {
		return v.Env.Cfg.Areas, nil
	}
	ctx, cancel := context.WithTimeout(ctx, v.Env.Cfg.Timeout.Duration())
	defer cancel()
	return v.Daemon.Areas(ctx)
}

// RunAll validates every area and returns one report per area, in area order.
func (v *Validator) RunAll(ctx context.Context, opts RunOptions) ([]*topo.Report, error) {
	areas, err := v.Areas(ctx)
	if err != nil {
		return nil, err
	}
	reports := make([]*topo.Report, 0, len(areas))
	for _, area := range areas {
		areaOpts := opts
		areaOpts.Area = area
		report, err := v.Run(ctx, areaOpts)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
