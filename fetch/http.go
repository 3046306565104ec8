package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lsnet/topodiff/topo"
)

// HTTPSource talks JSON over HTTP to a daemon ctl endpoint or to a store
// endpoint; the two expose the same surface under different base URLs.
type HTTPSource struct {
	base   string
	client *http.Client
}

func NewHTTPSource(endpoint string) (*HTTPSource, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint %s: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %s: unsupported scheme %q", endpoint, u.Scheme)
	}
	return &HTTPSource{
		base:   strings.TrimRight(u.String(), "/"),
		client: &http.Client{},
	}, nil
}

func (s *HTTPSource) AdjacencyDatabases(ctx context.Context, area string) ([]topo.AdjacencyDatabase, error) {
	var dbs []topo.AdjacencyDatabase
	if err := s.getJSON(ctx, "adjacencies", area, &dbs); err != nil {
		return nil, err
	}
	return dbs, nil
}

func (s *HTTPSource) PrefixDatabases(ctx context.Context, area string) ([]topo.PrefixDatabase, error) {
	var dbs []topo.PrefixDatabase
	if err := s.getJSON(ctx, "prefixes", area, &dbs); err != nil {
		return nil, err
	}
	return dbs, nil
}

func (s *HTTPSource) Areas(ctx context.Context) ([]string, error) {
	var areas []string
	if err := s.getJSON(ctx, "areas", "", &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, op, area string, out any) error {
	target := s.base + "/" + op
	if area != "" {
		target += "?area=" + url.QueryEscape(area)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &UnreachableDependencyError{Endpoint: s.base, Op: op, Err: err}
	}
	res, err := s.client.Do(req)
	if err != nil {
		return &UnreachableDependencyError{Endpoint: s.base, Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &UnreachableDependencyError{
			Endpoint: s.base,
			Op:       op,
			Err:      fmt.Errorf("unexpected status %s: %s", res.Status, strings.TrimSpace(string(body))),
		}
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &UnreachableDependencyError{Endpoint: s.base, Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
