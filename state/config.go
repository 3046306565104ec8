package state

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the validator's on-disk configuration. Both endpoints speak the
// same JSON ctl surface; the daemon one serves the locally computed view and
// the store one serves the flooded, network-wide merged view.
type Config struct {
	DaemonEndpoint string `yaml:"daemon_endpoint"`
	StoreEndpoint  string `yaml:"store_endpoint"`
	// Timeout bounds one whole fetch round (all requests of a run share it).
	Timeout Duration `yaml:"timeout,omitempty"`
	// Areas pins the set of areas to validate. Empty means discover from the
	// daemon at run time.
	Areas         []string `yaml:"areas,omitempty"`
	WatchInterval Duration `yaml:"watch_interval,omitempty"`
	MetricsListen string   `yaml:"metrics_listen,omitempty"`
	LogPath       string   `yaml:"log_path,omitempty"`
}

// DefaultConfig returns a config pointing at a daemon on localhost.
func DefaultConfig() Config {
	return Config{
		DaemonEndpoint: DefaultDaemonEndpoint,
		StoreEndpoint:  DefaultStoreEndpoint,
		Timeout:        Duration(DefaultTimeout),
		WatchInterval:  Duration(DefaultWatchInterval),
		MetricsListen:  DefaultMetricsListen,
	}
}

// LoadConfig reads path and fills in defaults for anything left unset.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// no config file is fine, defaults target localhost
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = Duration(DefaultTimeout)
	}
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = Duration(DefaultWatchInterval)
	}
	if cfg.MetricsListen == "" {
		cfg.MetricsListen = DefaultMetricsListen
	}
	return &cfg, nil
}
