package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lsnet/topodiff/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// idle keep-alive connections wind down asynchronously
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func ctlServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/decision/adjacencies", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "area0", r.URL.Query().Get("area"))
		w.Write([]byte(`[{"node":"a","seq":12,"adjacencies":[
			{"local_node":"a","remote_node":"b","local_if_name":"eth0","remote_if_name":"eth1","metric":1,"weight":1}
		]}]`))
	})
	mux.HandleFunc("/decision/prefixes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"node":"a","prefixes":[
			{"node":"a","prefix":"10.0.0.1/32","type":"loopback","forwarding_type":"ip"}
		]}]`))
	})
	mux.HandleFunc("/decision/areas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["area0","area1"]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPSource_AdjacencyDatabases(t *testing.T) {
	srv := ctlServer(t)
	src, err := NewHTTPSource(srv.URL + "/decision")
	require.NoError(t, err)

	dbs, err := src.AdjacencyDatabases(context.Background(), "area0")
	require.NoError(t, err)
	require.Len(t, dbs, 1)
	assert.Equal(t, topo.NodeID("a"), dbs[0].Node)
	assert.EqualValues(t, 12, dbs[0].Seq)
	require.Len(t, dbs[0].Adjacencies, 1)
	assert.Equal(t, "eth0", dbs[0].Adjacencies[0].LocalIfName)
}

func TestHTTPSource_PrefixDatabasesAndAreas(t *testing.T) {
	srv := ctlServer(t)
	src, err := NewHTTPSource(srv.URL + "/decision/")
	require.NoError(t, err)

	dbs, err := src.PrefixDatabases(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, dbs, 1)
	assert.Equal(t, "10.0.0.1/32", dbs[0].Prefixes[0].Prefix.String())

	areas, err := src.Areas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"area0", "area1"}, areas)
}

func TestNewHTTPSource_RejectsBadEndpoints(t *testing.T) {
	_, err := NewHTTPSource("unix:///tmp/ctl.sock")
	assert.Error(t, err)
}

func TestHTTPSource_BadStatusIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "decision module not ready", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	src, err := NewHTTPSource(srv.URL)
	require.NoError(t, err)
	_, err = src.AdjacencyDatabases(context.Background(), "area0")

	var unreachable *UnreachableDependencyError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, "adjacencies", unreachable.Op)
	assert.ErrorContains(t, err, "decision module not ready")
}

func TestHTTPSource_DecodeFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"`))
	}))
	t.Cleanup(srv.Close)

	src, err := NewHTTPSource(srv.URL)
	require.NoError(t, err)
	_, err = src.Areas(context.Background())

	var unreachable *UnreachableDependencyError
	assert.ErrorAs(t, err, &unreachable)
}

func TestHTTPSource_ContextTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	src, err := NewHTTPSource(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = src.AdjacencyDatabases(ctx, "area0")

	var unreachable *UnreachableDependencyError
	assert.ErrorAs(t, err, &unreachable)
}

func TestSnapshots_ParallelFetch(t *testing.T) {
	srv := ctlServer(t)
	daemon, err := NewHTTPSource(srv.URL + "/decision")
	require.NoError(t, err)

	obs, ref, err := Snapshots(context.Background(), daemon, daemon, "area0")
	require.NoError(t, err)
	assert.Len(t, obs.Adjacencies, 1)
	assert.Len(t, obs.Prefixes, 1)
	assert.Len(t, ref.Adjacencies, 1)
	assert.Len(t, ref.Prefixes, 1)
}

func TestSnapshots_AnyFailureAbortsTheRun(t *testing.T) {
	srv := ctlServer(t)
	daemon, err := NewHTTPSource(srv.URL + "/decision")
	require.NoError(t, err)
	broken, err := NewHTTPSource("http://127.0.0.1:1") // nothing listens here
	require.NoError(t, err)

	obs, ref, err := Snapshots(context.Background(), daemon, broken, "area0")

	var unreachable *UnreachableDependencyError
	assert.ErrorAs(t, err, &unreachable)
	assert.Nil(t, obs)
	assert.Nil(t, ref)
}
