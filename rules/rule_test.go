package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchLiteral(t *testing.T) {
	env, ok := Match("sky is_a blue", "sky is_a blue")
	require.True(t, ok)
	require.Empty(t, env)
}

func TestMatchVariableBinding(t *testing.T) {
	env, ok := Match("X is_a man", "socrates is_a man")
	require.True(t, ok)
	require.Equal(t, "socrates", env["X"])
}

func TestMatchVariableMustRebindConsistently(t *testing.T) {
	_, ok := Match("X loves X", "alice loves bob")
	require.False(t, ok)

	env, ok := Match("X loves X", "alice loves alice")
	require.True(t, ok)
	require.Equal(t, "alice", env["X"])
}

func TestMatchTokenCountMismatch(t *testing.T) {
	_, ok := Match("X is_a man", "socrates is_a wise man")
	require.False(t, ok)
}

func TestMatchDeterministicMinimumBinding(t *testing.T) {
	// A single pass over tokens yields exactly one binding environment;
	// there is no ambiguity to resolve (spec invariant #6).
	env1, ok1 := Match("X rel Y", "a rel b")
	env2, ok2 := Match("X rel Y", "a rel b")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, env1, env2)
}

func TestInstantiate(t *testing.T) {
	r := Rule{
		Premises:   []string{"X is_a man"},
		Conclusion: "X is_a mortal",
		Name:       "r1",
		Confidence: 0.9,
	}
	got := r.Instantiate(Binding{"X": "socrates"})
	require.Equal(t, []string{"socrates is_a man"}, got.Premises)
	require.Equal(t, "socrates is_a mortal", got.Conclusion)
	require.Equal(t, "r1", got.Name)
	require.Equal(t, 0.9, got.Confidence)
}

func TestConclusionMatchesGoal(t *testing.T) {
	r := Rule{Conclusion: "X is_a mortal"}
	env, ok := r.ConclusionMatchesGoal("socrates is_a mortal")
	require.True(t, ok)
	require.Equal(t, "socrates", env["X"])

	_, ok = r.ConclusionMatchesGoal("socrates is_a man")
	require.False(t, ok)
}
