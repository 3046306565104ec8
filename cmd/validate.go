package cmd

import (
	"fmt"
	"os"

	"github.com/lsnet/topodiff/core"
	"github.com/lsnet/topodiff/topo"
	"github.com/spf13/cobra"
)

var (
	validateArea       string
	validateBidir      = true
	validateJSON       = false
	validatePrefix     string
	validateClientType string
	validateWithin     []string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the daemon's adjacency and prefix databases against the store",
	Long: `Fetches the locally computed topology from the routing daemon and the merged
topology from the distributed store, then reports every divergence classified
as down (expected but missing), up (present but unexpected) or update
(attributes changed). Exits 0 when every area is consistent, 1 on divergence,
2 when either side cannot be fetched.`,
	Run: func(cmd *cobra.Command, args []string) {
		env, validator := setup()

		filter, err := prefixFilterFromFlags(validatePrefix, validateClientType, validateWithin)
		if err != nil {
			fatal(err)
		}
		opts := core.RunOptions{
			Area:          validateArea,
			Bidirectional: validateBidir,
			Filter:        filter,
		}

		var reports []*topo.Report
		if validateArea != "" {
			report, err := validator.Run(env.Context, opts)
			if err != nil {
				fatal(err)
			}
			reports = append(reports, report)
		} else {
			reports, err = validator.RunAll(env.Context, opts)
			if err != nil {
				fatal(err)
			}
		}

		consistent := true
		for _, report := range reports {
			if validateJSON {
				printJSON(report)
			} else {
				fmt.Print(renderReport(report))
			}
			consistent = consistent && report.Consistent()
		}
		if !consistent {
			os.Exit(exitInconsistent)
		}
	},
	GroupID: "check",
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateArea, "area", "a", "", "area to validate (default: every discovered area)")
	validateCmd.Flags().BoolVar(&validateBidir, "bidir", true, "only compare bidirectionally confirmed adjacencies")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "dump reports in JSON format")
	validateCmd.Flags().StringVarP(&validatePrefix, "prefix", "p", "", "exact prefix filter")
	validateCmd.Flags().StringVar(&validateClientType, "client-type", "", "announcing client type filter, e.g. loopback, bgp")
	validateCmd.Flags().StringSliceVar(&validateWithin, "within", nil, "only compare prefixes nested in these networks")
}
