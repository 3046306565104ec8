package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lsnet/topodiff/topo"
)

// Presentation lives here, on purpose: the engine returns typed reports and
// anything in this file can be swapped without touching it.

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

func sprintAdjacency(a topo.AdjacencyRecord) string {
	flags := ""
	if a.Overloaded {
		flags = " overloaded"
	}
	return fmt.Sprintf("%s -> %s (%s/%s) metric=%d weight=%d label=%d%s",
		a.LocalNode, a.RemoteNode, a.LocalIfName, a.RemoteIfName,
		a.Metric, a.Weight, a.AdjLabel, flags)
}

func sprintPrefix(p topo.PrefixRecord) string {
	flags := ""
	if p.Ephemeral {
		flags = " ephemeral"
	}
	return fmt.Sprintf("%s type=%s fwd=%s/%s%s",
		p.Prefix, p.Type, p.ForwardingType, p.ForwardingAlgorithm, flags)
}

func renderAdjacencyView(view topo.AdjacencyView) string {
	sb := strings.Builder{}
	for _, node := range view.Nodes() {
		sb.WriteString(fmt.Sprintf("%s:\n", node))
		recs := view[node]
		if len(recs) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, rec := range recs {
			sb.WriteString(fmt.Sprintf("  %s\n", sprintAdjacency(rec)))
		}
	}
	return sb.String()
}

func renderPrefixView(view topo.PrefixView) string {
	sb := strings.Builder{}
	for _, node := range view.Nodes() {
		sb.WriteString(fmt.Sprintf("%s:\n", node))
		recs := view[node]
		if len(recs) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, rec := range recs {
			sb.WriteString(fmt.Sprintf("  %s\n", sprintPrefix(rec)))
		}
	}
	return sb.String()
}

func renderReport(report *topo.Report) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Area %s: ", report.Area))
	if report.Consistent() {
		sb.WriteString("consistent\n")
		return sb.String()
	}
	sb.WriteString("INCONSISTENT\n")

	section := func(title string) { sb.WriteString(fmt.Sprintf(" %s:\n", title)) }
	for _, part := range []struct {
		title   string
		entries []topo.DiffEntry[topo.AdjacencyKey, topo.AdjacencyRecord]
	}{
		{"Neighbors missing from daemon (down)", report.Adjacency.Down},
		{"Unexpected neighbors in daemon (up)", report.Adjacency.Up},
		{"Neighbors with changed attributes (update)", report.Adjacency.Update},
	} {
		if len(part.entries) == 0 {
			continue
		}
		section(part.title)
		for _, e := range part.entries {
			switch e.Kind {
			case topo.Down:
				sb.WriteString(fmt.Sprintf("  - %s\n", sprintAdjacency(*e.Old)))
			case topo.Up:
				sb.WriteString(fmt.Sprintf("  + %s\n", sprintAdjacency(*e.New)))
			case topo.Update:
				sb.WriteString(fmt.Sprintf("  ~ store:  %s\n", sprintAdjacency(*e.Old)))
				sb.WriteString(fmt.Sprintf("    daemon: %s\n", sprintAdjacency(*e.New)))
			}
		}
	}

	for _, part := range []struct {
		title   string
		entries []topo.DiffEntry[topo.PrefixKey, topo.PrefixRecord]
	}{
		{"Prefixes missing from daemon (down)", report.Prefix.Down},
		{"Unexpected prefixes in daemon (up)", report.Prefix.Up},
		{"Prefixes with changed attributes (update)", report.Prefix.Update},
	} {
		if len(part.entries) == 0 {
			continue
		}
		section(part.title)
		for _, e := range part.entries {
			switch e.Kind {
			case topo.Down:
				sb.WriteString(fmt.Sprintf("  - %s: %s\n", e.Key.Node, sprintPrefix(*e.Old)))
			case topo.Up:
				sb.WriteString(fmt.Sprintf("  + %s: %s\n", e.Key.Node, sprintPrefix(*e.New)))
			case topo.Update:
				sb.WriteString(fmt.Sprintf("  ~ %s store:  %s\n", e.Key.Node, sprintPrefix(*e.Old)))
				sb.WriteString(fmt.Sprintf("    %s daemon: %s\n", strings.Repeat(" ", len(e.Key.Node)), sprintPrefix(*e.New)))
			}
		}
	}
	return sb.String()
}
