package proof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reasoncore/core/rules"
)

func TestForwardSimpleDerivation(t *testing.T) {
	facts := []Fact{{Proposition: "socrates is_a man", Confidence: 1.0}}
	rs := []rules.Rule{
		{Name: "mortality", Premises: []string{"socrates is_a man"}, Conclusion: "socrates is_a mortal", Confidence: 0.95},
	}
	s := NewSearcher(facts, rs)
	tree := s.Search("socrates is_a mortal", "forward")
	require.True(t, tree.Success)
	require.Equal(t, "forward", tree.Strategy)
	require.Len(t, tree.Steps, 1)
	require.Equal(t, 0.95, tree.Confidence)
}

func TestForwardUnreachableGoalFails(t *testing.T) {
	s := NewSearcher(nil, nil)
	tree := s.Search("unicorns exist", "forward")
	require.False(t, tree.Success)
}

func TestForwardSaturatesWithoutExceedingRoundsOnStablePoint(t *testing.T) {
	facts := []Fact{{Proposition: "a", Confidence: 1.0}}
	rs := []rules.Rule{
		{Name: "r1", Premises: []string{"a"}, Conclusion: "b", Confidence: 1.0},
		{Name: "r2", Premises: []string{"b"}, Conclusion: "c", Confidence: 1.0},
	}
	s := NewSearcher(facts, rs)
	tree := s.Search("c", "forward")
	require.True(t, tree.Success)
	require.Len(t, tree.Steps, 2)
	// r2 sees b as soon as r1 derives it, so both fire in the first round.
	require.Equal(t, 1, tree.Depth)

	// Re-running from the same facts and rules is stable: same steps, same
	// confidence (spec invariant 9, forward saturation stability).
	s2 := NewSearcher(facts, rs)
	tree2 := s2.Search("c", "forward")
	require.Equal(t, tree.Steps, tree2.Steps)
	require.Equal(t, tree.Confidence, tree2.Confidence)
}

func TestForwardStepConfidenceIsRuleConfidenceAlone(t *testing.T) {
	// Spec §4.3 step 5 gives a rule-application step's confidence as
	// rule.confidence, independent of any premise's own confidence; a weak
	// premise does not drag a high-confidence rule's step down.
	facts := []Fact{{Proposition: "a", Confidence: 0.5}}
	rs := []rules.Rule{
		{Name: "r1", Premises: []string{"a"}, Conclusion: "b", Confidence: 0.99},
	}
	s := NewSearcher(facts, rs)
	tree := s.Search("b", "forward")
	require.True(t, tree.Success)
	require.Equal(t, 0.99, tree.Steps[0].Confidence)
}

func TestBackwardGivenFact(t *testing.T) {
	facts := []Fact{{Proposition: "sky is_a blue", Confidence: 1.0}}
	s := NewSearcher(facts, nil)
	tree := s.Search("sky is_a blue", "backward")
	require.True(t, tree.Success)
	require.Equal(t, "backward", tree.Strategy)
	require.Equal(t, []ProofStep{{Conclusion: "sky is_a blue", RuleName: "given_fact", Confidence: 1.0}}, tree.Steps)
	require.Equal(t, 1.0, tree.Confidence)
}

func TestBackwardOneStepRule(t *testing.T) {
	facts := []Fact{{Proposition: "socrates is_a man", Confidence: 1.0}}
	rs := []rules.Rule{
		{Name: "mortality", Premises: []string{"socrates is_a man"}, Conclusion: "socrates is_a mortal", Confidence: 0.9},
	}
	s := NewSearcher(facts, rs)
	tree := s.Search("socrates is_a mortal", "backward")
	require.True(t, tree.Success)
	require.Len(t, tree.Steps, 2)
	require.Equal(t, "given_fact", tree.Steps[0].RuleName)
	require.Equal(t, "mortality", tree.Steps[1].RuleName)
	require.Equal(t, 0.9, tree.Confidence)
}

func TestBackwardIgnoresVariableRules(t *testing.T) {
	// A rule with an unbound variable in its conclusion can never string-
	// equal a concrete goal, so it is inert under backward chaining (spec
	// §9 Open Question #1).
	facts := []Fact{{Proposition: "socrates is_a man", Confidence: 1.0}}
	rs := []rules.Rule{
		{Name: "mortality", Premises: []string{"X is_a man"}, Conclusion: "X is_a mortal", Confidence: 0.9},
	}
	s := NewSearcher(facts, rs)
	tree := s.Search("socrates is_a mortal", "backward")
	require.False(t, tree.Success)
}

func TestBackwardCycleFails(t *testing.T) {
	rs := []rules.Rule{
		{Name: "r1", Premises: []string{"q"}, Conclusion: "p", Confidence: 1.0},
		{Name: "r2", Premises: []string{"p"}, Conclusion: "q", Confidence: 1.0},
	}
	s := NewSearcher(nil, rs)
	tree := s.Search("p", "backward")
	require.False(t, tree.Success)
}

func TestBackwardSiblingGoalsAreNotPoisonedByCycleGuard(t *testing.T) {
	// p and q form a cycle, so proving p fails; a later Search on the same
	// Searcher for the fact r is unaffected by that failed cyclic attempt.
	facts := []Fact{{Proposition: "r", Confidence: 1.0}}
	rs := []rules.Rule{
		{Name: "r1", Premises: []string{"q"}, Conclusion: "p", Confidence: 1.0},
		{Name: "r2", Premises: []string{"p"}, Conclusion: "q", Confidence: 1.0},
	}
	s := NewSearcher(facts, rs)
	require.False(t, s.Search("p", "backward").Success)
	require.True(t, s.Search("r", "backward").Success)

	// Within one search: goal needs a and b, and both need r. r is popped
	// from the visited stack once a's branch returns, so b's branch may
	// still prove it.
	siblings := []rules.Rule{
		{Name: "ra", Premises: []string{"r"}, Conclusion: "a", Confidence: 1.0},
		{Name: "rb", Premises: []string{"r"}, Conclusion: "b", Confidence: 1.0},
		{Name: "rg", Premises: []string{"a", "b"}, Conclusion: "goal", Confidence: 1.0},
	}
	tree := NewSearcher(facts, siblings).Search("goal", "backward")
	require.True(t, tree.Success)
	require.Len(t, tree.Steps, 5)
}

func TestResolutionAliasesBackward(t *testing.T) {
	facts := []Fact{{Proposition: "sky is_a blue", Confidence: 1.0}}
	s := NewSearcher(facts, nil)
	tree := s.Search("sky is_a blue", "resolution")
	require.True(t, tree.Success)
	require.Equal(t, "resolution", tree.Strategy)
}

func TestUnknownStrategyFails(t *testing.T) {
	s := NewSearcher(nil, nil)
	tree := s.Search("anything", "bogus")
	require.False(t, tree.Success)
}

func TestBackwardRespectsMaxDepth(t *testing.T) {
	// A long premise chain with no base fact must terminate, not recurse
	// unboundedly (spec invariant 7, backward termination).
	rs := make([]rules.Rule, 0, 20)
	for i := 0; i < 20; i++ {
		rs = append(rs, rules.Rule{
			Name:       "chain",
			Premises:   []string{"g" + itoa(i+1)},
			Conclusion: "g" + itoa(i),
			Confidence: 1.0,
		})
	}
	s := NewSearcherDepth(nil, rs, 5)
	tree := s.Search("g0", "backward")
	require.False(t, tree.Success)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
