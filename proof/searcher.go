package proof

import (
	"github.com/reasoncore/core/clog"
	"github.com/reasoncore/core/rules"
)

// Fact is a propositional fact available to the searcher as a base case:
// a proposition string, the confidence it was asserted with, and a
// provenance tag describing where it came from (SPEC_FULL.md §C.2's restored
// provenance field, e.g. "asserted", "bulkload", or a prior proof's id).
type Fact struct {
	Proposition string
	Confidence  float64
	Provenance  string
}

// Searcher holds a fixed fact base and rule set and answers goals against
// them under the forward, backward, and resolution strategies. It is not
// safe for concurrent Search calls: the backward-chaining visited-goal
// stack is reset and owned by each top-level call.
type Searcher struct {
	facts map[string]Fact
	rules []rules.Rule

	maxDepth int
	visited  map[string]bool
	deepest  int
}

// NewSearcher builds a Searcher over the given facts and rules, bounding
// both chaining strategies at MaxDepth.
func NewSearcher(facts []Fact, rs []rules.Rule) *Searcher {
	return NewSearcherDepth(facts, rs, MaxDepth)
}

// NewSearcherDepth is NewSearcher with an explicit depth bound, used by
// configuration to honor a MAX_DEPTH override (SPEC_FULL.md §B).
func NewSearcherDepth(facts []Fact, rs []rules.Rule, maxDepth int) *Searcher {
	byProp := make(map[string]Fact, len(facts))
	for _, f := range facts {
		if f.Confidence == 0 {
			f.Confidence = 1.0
		}
		byProp[f.Proposition] = f
	}
	return &Searcher{
		facts:    byProp,
		rules:    rs,
		maxDepth: maxDepth,
	}
}

// Search answers goal under the named strategy ("forward", "backward", or
// "resolution"). Resolution is aliased to backward chaining: this version
// implements no distinct clausal-resolution procedure, but the strategy
// name is preserved on the returned tree so callers can still distinguish
// which one they asked for.
func (s *Searcher) Search(goal string, strategy string) ProofTree {
	switch strategy {
	case "forward":
		return s.forward(goal)
	case "backward", "resolution":
		s.visited = make(map[string]bool)
		s.deepest = 0
		tree := s.backward(goal, 0)
		tree.Strategy = strategy
		tree.Depth = s.deepest
		return tree
	default:
		return ProofTree{Goal: goal, Success: false, Strategy: strategy}
	}
}

// forward saturates the known-fact set by repeatedly applying every rule
// whose premises are all already known, stopping at the first round in
// which the goal becomes known (success) or no round produces anything new
// (failure), whichever comes first, within MaxDepth rounds.
func (s *Searcher) forward(goal string) ProofTree {
	known := make(map[string]Fact, len(s.facts))
	for prop, f := range s.facts {
		known[prop] = f
	}
	var steps []ProofStep

	if _, ok := known[goal]; ok {
		return ProofTree{Goal: goal, Success: true, Strategy: "forward", Depth: 0, Confidence: 1.0}
	}

	round := 0
	for round < s.maxDepth {
		round++
		changed := false
		for _, r := range s.rules {
			if _, already := known[r.Conclusion]; already {
				continue
			}
			allKnown := true
			for _, p := range r.Premises {
				if _, ok := known[p]; !ok {
					allKnown = false
					break
				}
			}
			if !allKnown {
				continue
			}
			known[r.Conclusion] = Fact{Proposition: r.Conclusion, Confidence: r.Confidence, Provenance: "derived:" + r.Name}
			steps = append(steps, ProofStep{
				Conclusion: r.Conclusion,
				Premises:   append([]string{}, r.Premises...),
				RuleName:   r.Name,
				Confidence: r.Confidence,
			})
			changed = true
			clog.Tracef(2, "forward round %d: %q fired, derived %q", round, r.Name, r.Conclusion)
		}

		if _, ok := known[goal]; ok {
			return ProofTree{Goal: goal, Success: true, Strategy: "forward", Steps: steps, Confidence: confidenceFloor(steps), Depth: round}
		}
		if !changed {
			clog.Tracef(1, "forward saturated at round %d without reaching %q", round, goal)
			break
		}
	}
	return ProofTree{Goal: goal, Success: false, Strategy: "forward", Steps: steps, Confidence: confidenceFloor(steps), Depth: round}
}

// backward proves goal by finding a rule whose conclusion is literally
// equal to it (spec §9 Open Question #1: string equality, never the
// variable-aware pattern matcher) and recursively proving every premise in
// order. goal is pushed onto the visited stack for the duration of this
// call only, so sibling subgoals may still attempt it fresh; only an
// ancestor repeating the same goal is rejected as a cycle.
func (s *Searcher) backward(goal string, depth int) ProofTree {
	if depth > s.deepest {
		s.deepest = depth
	}
	if depth > s.maxDepth {
		return ProofTree{Goal: goal, Success: false, Strategy: "backward", Depth: depth}
	}
	if s.visited[goal] {
		clog.Tracef(2, "backward depth %d: %q already on the recursion stack, rejecting as a cycle", depth, goal)
		return ProofTree{Goal: goal, Success: false, Strategy: "backward", Depth: depth}
	}
	s.visited[goal] = true
	defer delete(s.visited, goal)

	if f, ok := s.facts[goal]; ok {
		step := ProofStep{Conclusion: goal, RuleName: "given_fact", Confidence: f.Confidence}
		return ProofTree{Goal: goal, Success: true, Strategy: "backward", Steps: []ProofStep{step}, Confidence: f.Confidence, Depth: depth}
	}

	for _, r := range s.rules {
		if r.Conclusion != goal {
			continue
		}
		var steps []ProofStep
		ok := true
		for _, premise := range r.Premises {
			sub := s.backward(premise, depth+1)
			if !sub.Success {
				ok = false
				break
			}
			steps = append(steps, sub.Steps...)
		}
		if !ok {
			continue
		}
		steps = append(steps, ProofStep{
			Conclusion: goal,
			Premises:   append([]string{}, r.Premises...),
			RuleName:   r.Name,
			Confidence: r.Confidence,
		})
		return ProofTree{Goal: goal, Success: true, Strategy: "backward", Steps: steps, Confidence: confidenceFloor(steps), Depth: depth}
	}
	return ProofTree{Goal: goal, Success: false, Strategy: "backward", Depth: depth}
}
