package cmd

import (
	"time"

	"github.com/lsnet/topodiff/core"
	"github.com/lsnet/topodiff/fetch"
	"github.com/lsnet/topodiff/state"
	"github.com/spf13/cobra"
)

var (
	watchInterval time.Duration
	watchListen   string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously validate all areas and export Prometheus metrics",
	Run: func(cmd *cobra.Command, args []string) {
		env, validator := setup()

		interval := env.Cfg.WatchInterval.Duration()
		if watchInterval > 0 {
			interval = watchInterval
		}
		listen := env.Cfg.MetricsListen
		if watchListen != "" {
			listen = watchListen
		}

		// area sets change rarely; don't rediscover on every sweep
		validator.Daemon = fetch.NewAreaCache(validator.Daemon, state.AreaCacheTTL)

		w := &core.Watcher{
			Validator: validator,
			Interval:  interval,
			Listen:    listen,
		}
		if err := w.Run(env.Context); err != nil {
			fatal(err)
		}
	},
	GroupID: "check",
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 0, "validation interval (default from config)")
	watchCmd.Flags().StringVarP(&watchListen, "listen", "l", "", "metrics listen address (default from config)")
}
