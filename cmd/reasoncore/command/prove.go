package command

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reasoncore/core/proof"
	"github.com/reasoncore/core/rules"
)

type ruleJSON struct {
	Premises   []string `json:"premises"`
	Conclusion string   `json:"conclusion"`
	Name       string   `json:"name,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
}

type proofRequest struct {
	Goal     string     `json:"goal"`
	Facts    []string   `json:"facts"`
	Rules    []ruleJSON `json:"rules"`
	Strategy string     `json:"strategy"`
}

type proofStepJSON struct {
	Conclusion string   `json:"conclusion"`
	Premises   []string `json:"premises"`
	RuleName   string   `json:"rule_name"`
	Confidence float64  `json:"confidence"`
}

type proofTreeJSON struct {
	Goal       string          `json:"goal"`
	Success    bool            `json:"success"`
	Strategy   string          `json:"strategy"`
	Steps      []proofStepJSON `json:"steps"`
	Confidence float64         `json:"confidence"`
	Depth      int             `json:"depth"`
}

// NewProveCmd runs the proof searcher over a {goal, facts, rules, strategy}
// request read as JSON from a file or stdin and prints the resulting
// ProofTree.
func NewProveCmd() *cobra.Command {
	var rulesFile string
	cmd := &cobra.Command{
		Use:   "prove [request-file]",
		Short: "Search for a proof of a goal given facts and rules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			reqPath := ""
			if len(args) > 0 {
				reqPath = args[0]
			}
			data, err := readInput(reqPath)
			if err != nil {
				return err
			}
			var req proofRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return err
			}

			facts := make([]proof.Fact, len(req.Facts))
			for i, f := range req.Facts {
				facts[i] = proof.Fact{Proposition: f, Confidence: 1.0, Provenance: "asserted"}
			}
			rs := make([]rules.Rule, len(req.Rules))
			for i, rj := range req.Rules {
				conf := rj.Confidence
				if conf == 0 {
					conf = 1.0
				}
				rs[i] = rules.Rule{Premises: rj.Premises, Conclusion: rj.Conclusion, Name: rj.Name, Confidence: conf}
			}
			if rulesFile != "" {
				extra, err := rules.LoadYAMLFile(rulesFile)
				if err != nil {
					return err
				}
				rs = append(rs, extra...)
			}

			searcher := proof.NewSearcherDepth(facts, rs, cfg.MaxDepth)
			tree := searcher.Search(req.Goal, req.Strategy)

			steps := make([]proofStepJSON, len(tree.Steps))
			for i, s := range tree.Steps {
				steps[i] = proofStepJSON{Conclusion: s.Conclusion, Premises: s.Premises, RuleName: s.RuleName, Confidence: s.Confidence}
			}
			fmt.Println(mustJSON(proofTreeJSON{
				Goal:       tree.Goal,
				Success:    tree.Success,
				Strategy:   tree.Strategy,
				Steps:      steps,
				Confidence: tree.Confidence,
				Depth:      tree.Depth,
			}))
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "YAML file of additional rules to merge with the request's own rules")
	registerCommonFlags(cmd)
	return cmd
}
