package core

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lsnet/topodiff/metrics"
	"github.com/lsnet/topodiff/topo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Watcher periodically re-validates all areas and exports the results as
// Prometheus metrics. It owns no cross-run state beyond the metric values.
type Watcher struct {
	Validator *Validator
	Interval  time.Duration
	Listen    string
}

// Run blocks until ctx is cancelled. One validation sweep runs immediately,
// then once per interval tick.
func (w *Watcher) Run(ctx context.Context) error {
	log := w.Validator.Env.Log

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: w.Listen, Handler: mux}
	srvErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Info("watch started", "interval", w.Interval, "metrics", w.Listen)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for {
		w.sweep(ctx)
		select {
		case <-ctx.Done():
			return nil
		case err := <-srvErr:
			return err
		case <-ticker.C:
		}
	}
}

func (w *Watcher) sweep(ctx context.Context) {
	log := w.Validator.Env.Log
	areas, err := w.Validator.Areas(ctx)
	if err != nil {
		log.Error("area discovery failed", "err", err)
		metrics.FetchErrors.WithLabelValues("").Inc()
		return
	}
	for _, area := range areas {
		start := time.Now()
		report, err := w.Validator.Run(ctx, RunOptions{Area: area, Bidirectional: true})
		metrics.ValidationDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			log.Error("validation run failed", "area", area, "err", err)
			metrics.FetchErrors.WithLabelValues(area).Inc()
			metrics.ValidationRuns.WithLabelValues(area, "error").Inc()
			continue
		}
		record(area, report)
	}
}

func record(area string, report *topo.Report) {
	consistent := 0.0
	result := "divergent"
	if report.Consistent() {
		consistent = 1.0
		result = "consistent"
	}
	metrics.AreaConsistent.WithLabelValues(area).Set(consistent)
	metrics.ValidationRuns.WithLabelValues(area, result).Inc()

	metrics.DiffEntries.WithLabelValues(area, "adjacency", "down").Set(float64(len(report.Adjacency.Down)))
	metrics.DiffEntries.WithLabelValues(area, "adjacency", "up").Set(float64(len(report.Adjacency.Up)))
	metrics.DiffEntries.WithLabelValues(area, "adjacency", "update").Set(float64(len(report.Adjacency.Update)))
	metrics.DiffEntries.WithLabelValues(area, "prefix", "down").Set(float64(len(report.Prefix.Down)))
	metrics.DiffEntries.WithLabelValues(area, "prefix", "up").Set(float64(len(report.Prefix.Up)))
	metrics.DiffEntries.WithLabelValues(area, "prefix", "update").Set(float64(len(report.Prefix.Update)))
}
