package state

import (
	"fmt"
	"net/url"
	"slices"
)

func endpointValidator(name, endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%s endpoint must not be empty", name)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s endpoint is not a valid url: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s endpoint must be http or https, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s endpoint has no host", name)
	}
	return nil
}

func ConfigValidator(cfg *Config) error {
	if err := endpointValidator("daemon", cfg.DaemonEndpoint); err != nil {
		return err
	}
	if err := endpointValidator("store", cfg.StoreEndpoint); err != nil {
		return err
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval must be positive, got %s", cfg.WatchInterval)
	}
	for i, area := range cfg.Areas {
		if area == "" {
			return fmt.Errorf("areas must not contain empty names")
		}
		if slices.Contains(cfg.Areas[:i], area) {
			return fmt.Errorf("duplicate area: %s", area)
		}
	}
	return nil
}
