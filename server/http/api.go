package cayleyhttp

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/reasoncore/core/internal/config"
	"github.com/reasoncore/core/proof"
	"github.com/reasoncore/core/rules"
	"github.com/reasoncore/core/store"
	"github.com/reasoncore/core/term"
)

// API holds the per-process dependencies each request handler needs: the
// populated store (built once at startup from an optional bulk load) and
// the configuration that bounds proof search depth.
type API struct {
	cfg   *config.Config
	graph *store.Graph
}

// New builds an API over an already-populated graph.
func New(cfg *config.Config, g *store.Graph) *API {
	return &API{cfg: cfg, graph: g}
}

// SetupRoutes registers every route this core serves on r.
func (api *API) SetupRoutes(r *httprouter.Router) {
	r.GET("/health", LogRequest(api.ServeHealth))
	r.POST("/api/v1/triples", LogRequest(api.ServeInsert))
	r.POST("/api/v1/query", LogRequest(api.ServeQuery))
	r.POST("/api/v1/path", LogRequest(api.ServePath))
	r.POST("/api/v1/prove", LogRequest(api.ServeProve))
}

func (api *API) ServeHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	return http.StatusOK
}

// ServeInsert decodes an ordered sequence of TripleJSON and inserts them
// into the store, returning the number newly added.
func (api *API) ServeInsert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	var in []TripleJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		errorResponse(w, http.StatusBadRequest, err)
		return http.StatusBadRequest
	}
	triples := make([]store.Triple, len(in))
	for i, t := range in {
		triples[i] = store.New(t.Subject, t.Predicate, t.Object, t.Context)
	}
	n := api.graph.InsertMany(triples)
	jsonResponse(w, http.StatusOK, map[string]int{"inserted": n})
	return http.StatusOK
}

// ServeQuery answers a pattern query, classifying the response's query_type
// per SPEC_FULL.md §C.1: "ask" when every position is bound, "construct"
// when the caller opted in, "pattern" otherwise.
func (api *API) ServeQuery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	var req PatternQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQueryError(w, err)
		return http.StatusOK
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

	matches := api.graph.Match(subject, predicate, object)

	queryType := "pattern"
	switch {
	case req.Subject != nil && req.Predicate != nil && req.Object != nil:
		queryType = "ask"
	case req.Construct:
		queryType = "construct"
	}

	result := QueryResult{
		Success:   true,
		QueryType: queryType,
		Triples:   toTripleJSON(matches),
		Bindings:  []map[string]string{},
		Count:     len(matches),
	}
	jsonResponse(w, http.StatusOK, result)
	return http.StatusOK
}

// ServePath answers a path query: {start, path: [...]}.
func (api *API) ServePath(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	var req PathQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQueryError(w, err)
		return http.StatusOK
	}
	predicates := make([]term.Reference, len(req.Path))
	for i, p := range req.Path {
		predicates[i] = term.ReferenceFromString(p)
	}
	start := term.FromString(req.Start)
	matches := api.graph.Path(start, predicates)

	result := QueryResult{
		Success:   true,
		QueryType: "path",
		Triples:   toTripleJSON(matches),
		Bindings:  []map[string]string{},
		Count:     len(matches),
	}
	jsonResponse(w, http.StatusOK, result)
	return http.StatusOK
}

// ServeProve runs the proof searcher over an inline fact/rule set and
// returns the resulting ProofTree. This does not touch api.graph: proof
// search operates over the facts and rules supplied in the request body
// (spec §4.3), independent of the persistent pattern/path store.
func (api *API) ServeProve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) int {
	var req ProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, err)
		return http.StatusBadRequest
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

	searcher := proof.NewSearcherDepth(facts, rs, api.cfg.MaxDepth)
	tree := searcher.Search(req.Goal, req.Strategy)

	jsonResponse(w, http.StatusOK, toProofTreeJSON(tree))
	return http.StatusOK
}

// writeQueryError reports a malformed query request as a QueryResult with
// query_type "error" rather than an HTTP error status, per spec §7's "Query
// engine failure ... returned as a QueryResult with success=false,
// query_type='error', and the error string in bindings. Never raised."
func writeQueryError(w http.ResponseWriter, err error) {
	jsonResponse(w, http.StatusOK, QueryResult{
		Success:   false,
		QueryType: "error",
		Triples:   []TripleJSON{},
		Bindings:  []map[string]string{{"error": err.Error()}},
	})
}

func toTripleJSON(ts []store.Triple) []TripleJSON {
	out := make([]TripleJSON, len(ts))
	for i, t := range ts {
		out[i] = TripleJSON{
			Subject:   t.Subject.String(),
			Predicate: t.Predicate.String(),
			Object:    term.ToString(t.Object),
			Context:   t.Context,
		}
	}
	return out
}

func toProofTreeJSON(tree proof.ProofTree) ProofTreeJSON {
	steps := make([]ProofStepJSON, len(tree.Steps))
	for i, s := range tree.Steps {
		steps[i] = ProofStepJSON{
			Conclusion: s.Conclusion,
			Premises:   s.Premises,
			RuleName:   s.RuleName,
			Confidence: s.Confidence,
		}
	}
	return ProofTreeJSON{
		Goal:       tree.Goal,
		Success:    tree.Success,
		Strategy:   tree.Strategy,
		Steps:      steps,
		Confidence: tree.Confidence,
		Depth:      tree.Depth,
	}
}
