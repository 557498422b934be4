package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reasoncore/core/clog"
)

// NewLoadCmd bulk-loads CLOUD_DB_URL (or a local triples file) and reports
// the resulting store statistics, without serving or proving anything. It
// exists to let an operator sanity-check a bulk-load source independent of
// `serve`.
func NewLoadCmd() *cobra.Command {
	var factsFile string
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Bulk-load triples and report store statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			g := buildGraph(cfg)
			if factsFile != "" {
				if err := loadTriplesFile(g, factsFile); err != nil {
					return err
				}
			}
			stats := g.Stats()
			clog.Infof("loaded %d triples (%d subjects, %d predicates, %d objects)",
				stats.TripleCount, stats.SubjectCount, stats.PredicateCount, stats.ObjectCount)
			fmt.Println(mustJSON(stats))
			return nil
		},
	}
	cmd.Flags().StringVar(&factsFile, "facts", "", "newline-delimited subject\\tpredicate\\tobject file to seed the store")
	registerCommonFlags(cmd)
	return cmd
}
