package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reasoncore/core/term"
)

type pathRequest struct {
	Start string   `json:"start"`
	Path  []string `json:"path"`
}

// NewPathCmd answers a breadth-forward path query read as JSON from a file
// or stdin.
func NewPathCmd() *cobra.Command {
	var factsFile string
	cmd := &cobra.Command{
		Use:   "path [request-file]",
		Short: "Answer a path query against the triple store.",
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

			reqPath := ""
			if len(args) > 0 {
				reqPath = args[0]
			}
			data, err := readInput(reqPath)
			if err != nil {
				return err
			}
			var req pathRequest
			if err := json.Unmarshal(data, &req); err != nil {
				fmt.Println(mustJSON(queryResult{QueryType: "error", Bindings: []map[string]string{{"error": err.Error()}}}))
				return nil
			}

			predicates := make([]term.Reference, len(req.Path))
			for i, p := range req.Path {
				predicates[i] = term.ReferenceFromString(p)
			}
			matches := g.Path(term.FromString(req.Start), predicates)

			fmt.Println(mustJSON(queryResult{
				Success:   true,
				QueryType: "path",
				Triples:   toTripleJSON(matches),
				Bindings:  []map[string]string{},
				Count:     len(matches),
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&factsFile, "facts", "", "newline-delimited subject\\tpredicate\\tobject file to seed the store")
	registerCommonFlags(cmd)
	return cmd
}
