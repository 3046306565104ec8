package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"os/signal"
	"syscall"

	"github.com/lsnet/topodiff/core"
	"github.com/lsnet/topodiff/fetch"
	"github.com/lsnet/topodiff/state"
	"github.com/lsnet/topodiff/topo"
)

// Exit codes: 0 consistent, 1 divergence found, 2 fatal (fetch failure or
// malformed input).
const (
	exitInconsistent = 1
	exitFatal        = 2
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err.Error())
	os.Exit(exitFatal)
}

// setup loads config, builds the env and the validator. Shared by every
// command that talks to the daemon or the store.
func setup() (*state.Env, *core.Validator) {
	cfg, err := state.LoadConfig(configPath)
	if err != nil {
		fatal(err)
	}
	if err := state.ConfigValidator(cfg); err != nil {
		fatal(err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger, err := core.NewLogger(level, cfg.LogPath)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-c
		cancel(fmt.Errorf("received shutdown signal"))
	}()

	env := &state.Env{
		Context: ctx,
		Cancel:  cancel,
		Log:     logger,
		Cfg:     *cfg,
	}

	daemon, err := fetch.NewHTTPSource(cfg.DaemonEndpoint)
	if err != nil {
		fatal(err)
	}
	store, err := fetch.NewHTTPSource(cfg.StoreEndpoint)
	if err != nil {
		fatal(err)
	}

	return env, &core.Validator{Env: env, Daemon: daemon, Store: store}
}

// prefixFilterFromFlags builds the shared prefix filter out of the --prefix,
// --client-type and --within flags.
func prefixFilterFromFlags(exact, clientType string, within []string) (*topo.PrefixFilter, error) {
	var exactPfx *netip.Prefix
	if exact != "" {
		p, err := netip.ParsePrefix(exact)
		if err != nil {
			return nil, fmt.Errorf("invalid --prefix %q: %w", exact, err)
		}
		p = p.Masked()
		exactPfx = &p
	}
	nets := make([]netip.Prefix, 0, len(within))
	for _, s := range within {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return nil, fmt.Errorf("invalid --within %q: %w", s, err)
		}
		nets = append(nets, p)
	}
	if exactPfx == nil && clientType == "" && len(nets) == 0 {
		return nil, nil
	}
	return topo.NewPrefixFilter(exactPfx, clientType, nets), nil
}
