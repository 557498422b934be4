package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reasoncore/core/store"
	"github.com/reasoncore/core/term"
)

type patternRequest struct {
	Subject   *string `json:"subject,omitempty"`
	Predicate *string `json:"predicate,omitempty"`
	Object    *string `json:"object,omitempty"`
	Construct bool    `json:"construct,omitempty"`
}

type tripleJSON struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Context   string `json:"context,omitempty"`
}

type queryResult struct {
	Success   bool                `json:"success"`
	QueryType string              `json:"query_type"`
	Triples   []tripleJSON        `json:"triples"`
	Bindings  []map[string]string `json:"bindings"`
	Count     int                 `json:"count"`
}

// NewQueryCmd answers a single pattern query read as JSON from a file or
// stdin, against a store built from --facts (a newline-delimited triple
// file) or CLOUD_DB_URL, and prints a QueryResult to stdout.
func NewQueryCmd() *cobra.Command {
	var factsFile string
	cmd := &cobra.Command{
		Use:   "query [request-file]",
		Short: "Answer a pattern query against the triple store.",
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
			var req patternRequest
			if err := json.Unmarshal(data, &req); err != nil {
				fmt.Println(mustJSON(queryResult{QueryType: "error", Bindings: []map[string]string{{"error": err.Error()}}}))
				return nil
			}

			subject := term.Reference("")
			if req.Subject != nil {
				subject = term.ReferenceFromString(*req.Subject)
			}
			predicate := term.Reference("")
			if req.Predicate != nil {
				predicate = term.ReferenceFromString(*req.Predicate)
			}
			var object term.Term
			if req.Object != nil {
				object = term.FromString(*req.Object)
			}
			matches := g.Match(subject, predicate, object)

			queryType := "pattern"
			switch {
			case req.Subject != nil && req.Predicate != nil && req.Object != nil:
				queryType = "ask"
			case req.Construct:
				queryType = "construct"
			}

			fmt.Println(mustJSON(queryResult{
				Success:   true,
				QueryType: queryType,
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

func toTripleJSON(ts []store.Triple) []tripleJSON {
	out := make([]tripleJSON, len(ts))
	for i, t := range ts {
		out[i] = tripleJSON{
			Subject:   t.Subject.String(),
			Predicate: t.Predicate.String(),
			Object:    term.ToString(t.Object),
			Context:   t.Context,
		}
	}
	return out
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err.Error())
	}
	return string(data)
}
