package store

import (
	"sort"
	"sync"

	"github.com/reasoncore/core/term"
)

// Graph is a multiset-suppressing, multiply-indexed collection of triples.
// Inserting the same (s,p,o) twice yields one stored triple; Context does
// not affect identity. A Graph is safe for concurrent use; the HTTP server
// shares one Graph across all of its concurrently served requests.
type Graph struct {
	mu sync.RWMutex

	triples map[string]Triple // triple key -> triple

	bySubject   map[string]map[string]struct{} // subject string -> set of triple keys
	byPredicate map[string]map[string]struct{}
	byObject    map[string]map[string]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		triples:     make(map[string]Triple),
		bySubject:   make(map[string]map[string]struct{}),
		byPredicate: make(map[string]map[string]struct{}),
		byObject:    make(map[string]map[string]struct{}),
	}
}

func index(idx map[string]map[string]struct{}, key, tripleKey string) {
	set, ok := idx[key]
	if !ok {
		set = make(map[string]struct{})
		idx[key] = set
	}
	set[tripleKey] = struct{}{}
}

func unindex(idx map[string]map[string]struct{}, key, tripleKey string) {
	set, ok := idx[key]
	if !ok {
		return
	}
	delete(set, tripleKey)
	if len(set) == 0 {
		delete(idx, key)
	}
}

// Insert adds a triple to the graph. It is idempotent: inserting the same
// (subject, predicate, object) twice leaves the graph unchanged the second
// time and reports false.
func (g *Graph) Insert(t Triple) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.insertLocked(t)
}

func (g *Graph) insertLocked(t Triple) bool {
	k := t.key()
	if _, exists := g.triples[k]; exists {
		return false
	}
	g.triples[k] = t
	index(g.bySubject, string(t.Subject), k)
	index(g.byPredicate, string(t.Predicate), k)
	index(g.byObject, term.ToString(t.Object), k)
	return true
}

// InsertMany inserts a batch of triples, returning the number that were
// newly added (already-present triples are skipped per Insert's semantics).
func (g *Graph) InsertMany(ts []Triple) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, t := range ts {
		if g.insertLocked(t) {
			n++
		}
	}
	return n
}

// Remove deletes a triple if present, reporting whether anything was removed.
// Not exercised by the read-mostly proof/query surface, but kept symmetric
// with Insert for the bulk-load/refresh path.
func (g *Graph) Remove(t Triple) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := t.key()
	if _, exists := g.triples[k]; !exists {
		return false
	}
	delete(g.triples, k)
	unindex(g.bySubject, string(t.Subject), k)
	unindex(g.byPredicate, string(t.Predicate), k)
	unindex(g.byObject, term.ToString(t.Object), k)
	return true
}

// wildcard is the empty string: subjects and predicates are always
// non-empty namespaced references (spec §3), so "" can never collide with a
// bound value and safely doubles as the "no constraint" marker.
const wildcard = ""

// Match returns every stored triple whose non-wildcard positions equal the
// given terms under term equality. Pass an empty subject/predicate or a nil
// object to leave that position unconstrained. At least one bound position
// allows an indexed lookup instead of a full scan.
func (g *Graph) Match(subject term.Reference, predicate term.Reference, object term.Term) []Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	boundS := subject != wildcard
	boundP := predicate != wildcard
	boundO := object != nil

	var candidates map[string]struct{}
	switch {
	case boundS:
		candidates = g.bySubject[string(subject)]
	case boundP:
		candidates = g.byPredicate[string(predicate)]
	case boundO:
		candidates = g.byObject[term.ToString(object)]
	default:
		// Full scan: no position bound.
		out := make([]Triple, 0, len(g.triples))
		for _, t := range g.triples {
			out = append(out, t)
		}
		return sortTriples(out)
	}

	out := make([]Triple, 0, len(candidates))
	for k := range candidates {
		t := g.triples[k]
		if boundS && t.Subject != subject {
			continue
		}
		if boundP && t.Predicate != predicate {
			continue
		}
		if boundO && !term.Equal(t.Object, object) {
			continue
		}
		out = append(out, t)
	}
	return sortTriples(out)
}

func sortTriples(ts []Triple) []Triple {
	sort.Slice(ts, func(i, j int) bool { return ts[i].key() < ts[j].key() })
	return ts
}

// Path performs a breadth-forward traversal: starting from the singleton
// frontier {start}, for each predicate in order it replaces the frontier
// with the objects reachable from the current frontier via that predicate,
// emitting every triple consumed along the way. Traversal stops early,
// returning the steps collected so far, once the frontier becomes empty.
func (g *Graph) Path(start term.Term, predicates []term.Reference) []Triple {
	frontier := []term.Term{start}
	var out []Triple
	for _, p := range predicates {
		if len(frontier) == 0 {
			break
		}
		seen := make(map[string]struct{})
		var next []term.Term
		for _, n := range frontier {
			subj := term.ReferenceFromString(term.ToString(n))
			for _, t := range g.Match(subj, p, nil) {
				out = append(out, t)
				ok := term.ToString(t.Object)
				if _, dup := seen[ok]; !dup {
					seen[ok] = struct{}{}
					next = append(next, t.Object)
				}
			}
		}
		frontier = next
	}
	return out
}

// Stats summarizes the graph's size and the shape of its index.
type Stats struct {
	TripleCount    int
	SubjectCount   int
	PredicateCount int
	ObjectCount    int
	// TopPredicate is the predicate with the most triples, or "" if the
	// graph is empty. Restored from original_source/graph_engine.py, which
	// reports it alongside the raw cardinalities (see SPEC_FULL.md §C.3).
	TopPredicate string
}

// Stats returns the triple count and the cardinalities of the distinct
// subject, predicate, and object sets.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var top string
	max := -1
	for p, set := range g.byPredicate {
		if len(set) > max || (len(set) == max && p < top) {
			max = len(set)
			top = p
		}
	}
	return Stats{
		TripleCount:    len(g.triples),
		SubjectCount:   len(g.bySubject),
		PredicateCount: len(g.byPredicate),
		ObjectCount:    len(g.byObject),
		TopPredicate:   top,
	}
}
