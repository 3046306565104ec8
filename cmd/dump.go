package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lsnet/topodiff/fetch"
	"github.com/lsnet/topodiff/topo"
	"github.com/spf13/cobra"
)

var (
	dumpArea       string
	dumpNodes      string
	dumpGlobal     = false
	dumpJSON       = false
	dumpBidir      = true
	dumpPrefix     string
	dumpClientType string
)

// pickSource returns the daemon view by default, or the store view with --global.
func pickSource(daemon, store fetch.Source) fetch.Source {
	if dumpGlobal {
		return store
	}
	return daemon
}

// restrictNodes drops view entries not named in the comma-separated nodes
// flag. Empty or "all" keeps everything.
func restrictNodes[V any](view map[topo.NodeID][]V, nodes string) {
	if nodes == "" || nodes == "all" {
		return
	}
	want := strings.Split(nodes, ",")
	for node := range view {
		if !slices.Contains(want, string(node)) {
			delete(view, node)
		}
	}
}

var adjCmd = &cobra.Command{
	Use:   "adj",
	Short: "Dump the link-state adjacency view",
	Run: func(cmd *cobra.Command, args []string) {
		env, validator := setup()
		src := pickSource(validator.Daemon, validator.Store)

		dbs, err := src.AdjacencyDatabases(env.Context, dumpArea)
		if err != nil {
			fatal(err)
		}
		view, err := topo.NormalizeAdjacencies(dbs)
		if err != nil {
			fatal(err)
		}
		if dumpBidir {
			view = topo.ResolveBidirectional(view)
		}
		restrictNodes(view, dumpNodes)

		if dumpJSON {
			printJSON(view)
		} else {
			fmt.Print(renderAdjacencyView(view))
		}
	},
	GroupID: "dump",
}

var prefixesCmd = &cobra.Command{
	Use:   "prefixes",
	Short: "Dump the announced prefix view",
	Run: func(cmd *cobra.Command, args []string) {
		env, validator := setup()
		src := pickSource(validator.Daemon, validator.Store)

		dbs, err := src.PrefixDatabases(env.Context, dumpArea)
		if err != nil {
			fatal(err)
		}
		view, err := topo.NormalizePrefixes(dbs)
		if err != nil {
			fatal(err)
		}
		filter, err := prefixFilterFromFlags(dumpPrefix, dumpClientType, nil)
		if err != nil {
			fatal(err)
		}
		view = filter.Apply(view)
		restrictNodes(view, dumpNodes)

		if dumpJSON {
			printJSON(view)
		} else {
			fmt.Print(renderPrefixView(view))
		}
	},
	GroupID: "dump",
}

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List the areas known to the daemon",
	Run: func(cmd *cobra.Command, args []string) {
		env, validator := setup()
		areas, err := validator.Areas(env.Context)
		if err != nil {
			fatal(err)
		}
		if dumpJSON {
			printJSON(areas)
			return
		}
		for _, area := range areas {
			fmt.Println(area)
		}
	},
	GroupID: "dump",
}

func init() {
	rootCmd.AddCommand(adjCmd)
	adjCmd.Flags().StringVarP(&dumpArea, "area", "a", "", "area to dump")
	adjCmd.Flags().StringVar(&dumpNodes, "nodes", "", "comma-separated node list, or 'all'")
	adjCmd.Flags().BoolVar(&dumpBidir, "bidir", true, "only bidirectional adjacencies")
	adjCmd.Flags().BoolVar(&dumpGlobal, "global", false, "dump the store view instead of the daemon view")
	adjCmd.Flags().BoolVar(&dumpJSON, "json", false, "dump in JSON format")

	rootCmd.AddCommand(prefixesCmd)
	prefixesCmd.Flags().StringVarP(&dumpArea, "area", "a", "", "area to dump")
	prefixesCmd.Flags().StringVar(&dumpNodes, "nodes", "", "comma-separated node list, or 'all'")
	prefixesCmd.Flags().StringVarP(&dumpPrefix, "prefix", "p", "", "exact prefix filter")
	prefixesCmd.Flags().StringVar(&dumpClientType, "client-type", "", "announcing client type filter")
	prefixesCmd.Flags().BoolVar(&dumpGlobal, "global", false, "dump the store view instead of the daemon view")
	prefixesCmd.Flags().BoolVar(&dumpJSON, "json", false, "dump in JSON format")

	rootCmd.AddCommand(areasCmd)
	areasCmd.Flags().BoolVar(&dumpJSON, "json", false, "dump in JSON format")
}
