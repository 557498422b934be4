// Package store implements the Triple Store: an in-memory, multiply-indexed
// collection of (subject, predicate, object) triples supporting insertion,
// wildcard pattern lookup, path traversal, and simple statistics.
//
// Grounded on the teacher's graph/memstore quad indexing (a direction-keyed
// index of triple references) and on the pack's beyondcivic-goreasoner
// TripleStore (bySubject/byPredicate/byObject slices over a deduplicated
// triple set), generalized to the spec's wildcard match and predicate-path
// contract instead of an iterator algebra.
package store

import (
	"fmt"

	"github.com/reasoncore/core/term"
)

// Triple is an ordered (subject, predicate, object) assertion plus an
// optional context tag. Equality is structural over the three terms;
// Context is metadata and does not participate in identity.
type Triple struct {
	Subject   term.Reference
	Predicate term.Reference
	Object    term.Term
	Context   string
}

// key returns the deduplication/index key for the triple's three terms.
// Context is deliberately excluded: two triples differing only in Context
// are the same stored triple, per spec §3 ("Context is metadata").
func (t Triple) key() string {
	return fmt.Sprintf("%s\x00%s\x00%s", t.Subject, t.Predicate, term.ToString(t.Object))
}

// Equal reports whether two triples share the same subject, predicate and
// object (Context is ignored).
func (t Triple) Equal(o Triple) bool {
	return t.Subject == o.Subject && t.Predicate == o.Predicate && term.Equal(t.Object, o.Object)
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.Subject, t.Predicate, term.ToString(t.Object))
}

// New builds a Triple from raw strings, canonicalizing each position per the
// Term Model: subject and predicate are namespaced references, object is
// classified by term.FromString.
func New(subject, predicate, object, context string) Triple {
	return Triple{
		Subject:   term.ReferenceFromString(subject),
		Predicate: term.ReferenceFromString(predicate),
		Object:    term.FromString(object),
		Context:   context,
	}
}
