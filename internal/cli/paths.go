package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vietddude/relaywatch/internal/control"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the configured paths and their token thresholds",
	Run:   runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	printPaths(cfg.Fleet())
}

func printPaths(fleet control.Config) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "CATEGORY\tPATH\tCHAIN\tCHANNEL\tDENOM\tWARN AT\tERROR AT")

	for _, category := range fleet.Categories {
		for _, denom := range sortedDenoms(fleet.Native) {
			pair := fleet.Native[denom]
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
				category.Name, "(native)", category.BaseChain, "-", denom, pair.WarnAt, pair.ErrorAt)
		}
		for _, path := range category.Paths {
			denoms := sortedDenoms(path.Tokens)
			if len(denoms) == 0 {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t-\t-\t-\n", category.Name, path.Key, path.ChainName, path.Channel)
				continue
			}
			for _, denom := range denoms {
				pair := path.Tokens[denom]
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
					category.Name, path.Key, path.ChainName, path.Channel, denom, pair.WarnAt, pair.ErrorAt)
			}
		}
	}
	_ = w.Flush()
}

func sortedDenoms[V any](m map[string]V) []string {
	denoms := make([]string, 0, len(m))
	for d := range m {
		denoms = append(denoms, d)
	}
	sort.Strings(denoms)
	return denoms
}
