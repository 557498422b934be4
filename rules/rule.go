// Package rules implements the Rule Engine: inference rules expressed as
// whitespace-tokenized pattern templates with single-uppercase-letter
// variables, and the matching/instantiation machinery the Proof Searcher
// drives.
//
// Grounded on the pack's cognicore-io-korel inference.Engine contract (rules
// as named, confidence-carrying premises→conclusion templates) and on
// beyondcivic-goreasoner's Rule.Apply shape, adapted to the spec's
// single-letter-variable substitution instead of full unification.
package rules

import "strings"

// Rule is a template: an ordered sequence of premise patterns and a
// conclusion pattern, with a name and a confidence in [0,1]. A pattern is a
// whitespace-tokenized string whose single-uppercase-letter tokens are
// variables; every other token is matched literally.
type Rule struct {
	Premises   []string
	Conclusion string
	Name       string
	Confidence float64
}

// Binding is an environment mapping variable tokens to the concrete tokens
// they matched.
type Binding map[string]string

// isVariable reports whether a token is a single uppercase letter (A-Z).
func isVariable(token string) bool {
	if len(token) != 1 {
		return false
	}
	c := token[0]
	return c >= 'A' && c <= 'Z'
}

// Match attempts to match a pattern against a concrete fact string,
// returning the resulting binding environment and whether the match
// succeeded. Token counts must agree; a variable may only rebind to the
// token it first bound to.
func Match(pattern, fact string) (Binding, bool) {
	return matchInto(pattern, fact, Binding{})
}

// matchInto matches pattern against fact, extending (and requiring
// consistency with) an existing binding environment, which it copies rather
// than modifies. Match is its only caller and passes an empty environment.
func matchInto(pattern, fact string, env Binding) (Binding, bool) {
	pTokens := strings.Fields(pattern)
	fTokens := strings.Fields(fact)
	if len(pTokens) != len(fTokens) {
		return nil, false
	}
	out := make(Binding, len(env))
	for k, v := range env {
		out[k] = v
	}
	for i, pt := range pTokens {
		ft := fTokens[i]
		if isVariable(pt) {
			if bound, ok := out[pt]; ok {
				if bound != ft {
					return nil, false
				}
				continue
			}
			out[pt] = ft
			continue
		}
		if pt != ft {
			return nil, false
		}
	}
	return out, true
}

// Substitute replaces every variable token in pattern with its bound value
// from env; non-variable tokens are copied verbatim. A variable with no
// binding is left unsubstituted (callers should only substitute patterns
// whose variables are all covered by env).
func Substitute(pattern string, env Binding) string {
	tokens := strings.Fields(pattern)
	for i, t := range tokens {
		if isVariable(t) {
			if v, ok := env[t]; ok {
				tokens[i] = v
			}
		}
	}
	return strings.Join(tokens, " ")
}

// Instantiate substitutes every variable in the rule's premises and
// conclusion using env, producing a new concrete Rule with the same name
// and confidence.
func (r Rule) Instantiate(env Binding) Rule {
	premises := make([]string, len(r.Premises))
	for i, p := range r.Premises {
		premises[i] = Substitute(p, env)
	}
	return Rule{
		Premises:   premises,
		Conclusion: Substitute(r.Conclusion, env),
		Name:       r.Name,
		Confidence: r.Confidence,
	}
}

// ConclusionMatchesGoal reports whether the rule's conclusion pattern
// matches the goal string (spec §4.2's "conclusion matches goal": plain
// pattern-match, not unification).
func (r Rule) ConclusionMatchesGoal(goal string) (Binding, bool) {
	return Match(r.Conclusion, goal)
}
