package cayleyhttp

// TripleJSON is the wire shape of one triple at the process boundary
// (spec §6).
type TripleJSON struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Context   string `json:"context,omitempty"`
}

// PatternQueryRequest is {subject?, predicate?, object?}; any field may be
// omitted to leave that position a wildcard. Construct requests the
// "construct" query_type label instead of "pattern" for an otherwise
// identical match.
type PatternQueryRequest struct {
	Subject   *string `json:"subject,omitempty"`
	Predicate *string `json:"predicate,omitempty"`
	Object    *string `json:"object,omitempty"`
	Construct bool    `json:"construct,omitempty"`
}

// PathQueryRequest is {start, path}.
type PathQueryRequest struct {
	Start string   `json:"start"`
	Path  []string `json:"path"`
}

// QueryResult is the unified query response shape (spec §6).
type QueryResult struct {
	Success   bool              `json:"success"`
	Query     string            `json:"query"`
	QueryType string            `json:"query_type"`
	Triples   []TripleJSON      `json:"triples"`
	Bindings  []map[string]string `json:"bindings"`
	Count     int               `json:"count"`
}

// RuleJSON is one rule in a proof request.
type RuleJSON struct {
	Premises   []string `json:"premises"`
	Conclusion string   `json:"conclusion"`
	Name       string   `json:"name,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
}

// ProofRequest is {goal, facts, rules, strategy} (spec §6).
type ProofRequest struct {
	Goal     string     `json:"goal"`
	Facts    []string   `json:"facts"`
	Rules    []RuleJSON `json:"rules"`
	Strategy string     `json:"strategy"`
}

// ProofStepJSON is one step of a ProofTreeJSON.
type ProofStepJSON struct {
	Conclusion string   `json:"conclusion"`
	Premises   []string `json:"premises"`
	RuleName   string   `json:"rule_name"`
	Confidence float64  `json:"confidence"`
}

// ProofTreeJSON is the wire shape of a proof.ProofTree (spec §6).
type ProofTreeJSON struct {
	Goal       string          `json:"goal"`
	Success    bool            `json:"success"`
	Strategy   string          `json:"strategy"`
	Steps      []ProofStepJSON `json:"steps"`
	Confidence float64         `json:"confidence"`
	Depth      int             `json:"depth"`
}
