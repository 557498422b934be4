package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reasoncore/core/term"
)

func TestInsertIdempotent(t *testing.T) {
	g := New()
	tr := New("alpha", "rel", "beta", "")
	require.True(t, g.Insert(tr))
	require.False(t, g.Insert(tr))
	require.Equal(t, 1, g.Stats().TripleCount)
}

func TestMatchWildcardSoundnessAndMonotonicity(t *testing.T) {
	g := New()
	t1 := New("alpha", "rel", "beta", "")
	t2 := New("alpha", "rel", "gamma", "")
	g.Insert(t1)
	g.Insert(t2)

	// match(t.s, t.p, t.o) contains t
	exact := g.Match(t1.Subject, t1.Predicate, t1.Object)
	require.Contains(t, exact, t1)

	spOnly := g.Match(t1.Subject, t1.Predicate, nil)
	sOnly := g.Match(t1.Subject, "", nil)

	require.GreaterOrEqual(t, len(sOnly), len(spOnly))
	require.GreaterOrEqual(t, len(spOnly), len(exact))

	for _, tr := range exact {
		require.Contains(t, spOnly, tr)
	}
	for _, tr := range spOnly {
		require.Contains(t, sOnly, tr)
	}
}

func TestMatchCompleteness(t *testing.T) {
	g := New()
	g.Insert(New("alpha", "rel", "beta", ""))
	g.Insert(New("alpha", "rel", "gamma", ""))
	g.Insert(New("alpha", "other", "beta", ""))
	g.Insert(New("delta", "rel", "beta", ""))

	got := g.Match(term.ReferenceFromString("alpha"), term.ReferenceFromString("rel"), nil)
	require.ElementsMatch(t, []Triple{
		New("alpha", "rel", "beta", ""),
		New("alpha", "rel", "gamma", ""),
	}, got)
}

func TestPathBreadthForward(t *testing.T) {
	g := New()
	g.Insert(New("x", "p1", "y", ""))
	g.Insert(New("y", "p2", "z", ""))
	g.Insert(New("y", "p2", "w", ""))

	got := g.Path(term.ReferenceFromString("x"), []term.Reference{
		term.ReferenceFromString("p1"),
		term.ReferenceFromString("p2"),
	})
	require.ElementsMatch(t, []Triple{
		New("x", "p1", "y", ""),
		New("y", "p2", "z", ""),
		New("y", "p2", "w", ""),
	}, got)
}

func TestPathMonotonicity(t *testing.T) {
	g := New()
	g.Insert(New("x", "p1", "y", ""))
	g.Insert(New("y", "p2", "z", ""))

	short := g.Path(term.ReferenceFromString("x"), []term.Reference{term.ReferenceFromString("p1")})
	long := g.Path(term.ReferenceFromString("x"), []term.Reference{
		term.ReferenceFromString("p1"),
		term.ReferenceFromString("p2"),
	})
	for _, tr := range short {
		require.Contains(t, long, tr)
	}
}

func TestPathTerminatesEarlyOnEmptyFrontier(t *testing.T) {
	g := New()
	g.Insert(New("x", "p1", "y", ""))
	got := g.Path(term.ReferenceFromString("x"), []term.Reference{
		term.ReferenceFromString("p1"),
		term.ReferenceFromString("dead_end"),
		term.ReferenceFromString("never_reached"),
	})
	require.Equal(t, []Triple{New("x", "p1", "y", "")}, got)
}

func TestStatsTopPredicate(t *testing.T) {
	g := New()
	g.Insert(New("a", "rel", "b", ""))
	g.Insert(New("a", "rel", "c", ""))
	g.Insert(New("a", "other", "b", ""))

	s := g.Stats()
	require.Equal(t, 3, s.TripleCount)
	require.Equal(t, 1, s.SubjectCount)
	require.Equal(t, 2, s.PredicateCount)
	require.Equal(t, term.ReferenceFromString("rel").String(), s.TopPredicate)
}

func TestMatchMalformedInputReturnsEmpty(t *testing.T) {
	g := New()
	got := g.Match(term.ReferenceFromString("nonexistent"), "", nil)
	require.Empty(t, got)
}
