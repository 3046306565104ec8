package state

import "time"

var (
	DefaultConfigPath     = "topodiff.yaml"
	DefaultDaemonEndpoint = "http://127.0.0.1:2023/decision"
	DefaultStoreEndpoint  = "http://127.0.0.1:2023/store"

	DefaultTimeout       = 5 * time.Second
	DefaultWatchInterval = 30 * time.Second
	DefaultMetricsListen = "127.0.0.1:9641"

	// AreaCacheTTL bounds how stale the watch loop's view of the area set may
	// get before it asks the daemon again.
	AreaCacheTTL = 5 * time.Minute
)
