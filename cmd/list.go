package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mj1618/screencap/internal/output"
	"github.com/mj1618/screencap/internal/platform"
	"github.com/spf13/cobra"
)

// runList prints the visible applications, optionally ranked against a
// fuzzy filter, and exits successfully even when nothing is running.
func runList(cmd *cobra.Command) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	filter, _ := cmd.Flags().GetString("filter")
	return listApps(provider.AppLister, filter, os.Stdout)
}

// listApps treats a lister failure as "no apps known": the error is
// reported but the (empty) listing still prints and the run succeeds.
func listApps(lister platform.AppLister, filter string, out io.Writer) error {
	apps, err := lister.VisibleApps()
	if err != nil {
		fmt.Fprintf(out, "Error getting visible applications: %v\n", err)
		apps = nil
	}
	apps = filterApps(apps, filter)

	if output.OutputFormat != output.FormatText {
		return output.Print(apps)
	}
	fmt.Fprintln(out, "Visible applications:")
	for _, app := range apps {
		fmt.Fprintf(out, "  %s\n", app)
	}
	return nil
}

// filterApps sorts apps alphabetically, or ranks them by fuzzy-match
// distance when a filter is given (dropping non-matches).
func filterApps(apps []string, filter string) []string {
	if filter == "" {
		sorted := append([]string(nil), apps...)
		sort.Strings(sorted)
		return sorted
	}

	ranks := fuzzy.RankFindNormalizedFold(filter, apps)
	sort.Sort(ranks)
	matched := make([]string, 0, len(ranks))
	for _, r := range ranks {
		matched = append(matched, r.Target)
	}
	return matched
}
