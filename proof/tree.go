// Package proof implements the Proof Searcher: forward-chaining saturation
// and backward-chaining depth-limited recursive search with a visited-goal
// cycle guard, producing a transparent ProofTree.
//
// Grounded on the pack's theRebelliousNerd-codenerd internal/mangle
// proof_tree.go (DerivationNode / ProofTreeTracer vocabulary, EDB/IDB
// provenance split) and on the teacher's inference package (a Store that
// derives new facts from existing ones via a fixed rule set), generalized to
// the spec's open rule set and single confidence-floor aggregation instead
// of RDFS-specific rules.
package proof

// MaxDepth bounds both forward-chaining rounds and backward-chaining
// recursion depth (spec §4.3 defaults).
const MaxDepth = 10

// ProofStep records one inference application: a conclusion derived from
// zero or more premises by a named rule (or "given_fact" for a base case),
// with the confidence of that single step.
type ProofStep struct {
	Conclusion string
	Premises   []string
	RuleName   string
	Confidence float64
}

// ProofTree is the ordered record of steps leading from given facts to a
// goal. Steps appear in postorder: sub-proofs before the step that depends
// on them.
type ProofTree struct {
	Goal       string
	Success    bool
	Strategy   string
	Steps      []ProofStep
	Confidence float64
	Depth      int
}

// confidenceFloor computes the tree-level confidence: the minimum
// confidence among steps, or 1.0 if there are no steps.
func confidenceFloor(steps []ProofStep) float64 {
	if len(steps) == 0 {
		return 1.0
	}
	min := steps[0].Confidence
	for _, s := range steps[1:] {
		if s.Confidence < min {
			min = s.Confidence
		}
	}
	return min
}
