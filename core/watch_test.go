package core

import (
	"testing"

	"github.com/lsnet/topodiff/metrics"
	"github.com/lsnet/topodiff/topo"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecord_UpdatesMetrics(t *testing.T) {
	report := &topo.Report{Area: "area0"}
	report.Adjacency.Down = append(report.Adjacency.Down,
		topo.DiffEntry[topo.AdjacencyKey, topo.AdjacencyRecord]{Kind: topo.Down})

	record("area0", report)

	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.AreaConsistent.WithLabelValues("area0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DiffEntries.WithLabelValues("area0", "adjacency", "down")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.DiffEntries.WithLabelValues("area0", "prefix", "up")))

	record("area0", &topo.Report{Area: "area0"})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AreaConsistent.WithLabelValues("area0")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.DiffEntries.WithLabelValues("area0", "adjacency", "down")))
}
