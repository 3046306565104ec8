package cmd

import (
	"os"

	"github.com/lsnet/topodiff/state"
	"github.com/spf13/cobra"
)

var (
	configPath = state.DefaultConfigPath
	verbose    = false
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "topodiff",
	Short: "Consistency validator for the link-state routing control plane",
	Long: `topodiff compares a routing daemon's locally computed topology against the
network-wide view held by the distributed store, and reports any divergence
between the two. Divergence signals flooding lag, stale entries, or
computation bugs before they show up as lost traffic.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "check",
		Title: "Validation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "dump",
		Title: "Topology Dump Commands",
	})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", configPath, "path to the topodiff config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
