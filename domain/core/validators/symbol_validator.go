package validators

import (
	"regexp"
	"sort"
	"strings"
)

// identifierPattern matches maximal identifier tokens inside a constraint line
var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// constraintLabelPattern matches constraint labels such as C1 or c12, which
// name a constraint rather than a relation symbol
var constraintLabelPattern = regexp.MustCompile(`(?i)^C\d+$`)

// SymbolValidator flags identifier tokens in constraint lines that do not
// appear in the known relation-type vocabulary. Findings are advisory; they
// never block a computation.
type SymbolValidator struct {
	reservedWords map[string]struct{}
}

// NewSymbolValidator creates a validator with the reserved logical operators
func NewSymbolValidator() *SymbolValidator {
	return &SymbolValidator{
		reservedWords: map[string]struct{}{
			"AND": {},
			"OR":  {},
			"NOT": {},
		},
	}
}

// FindUnknown extracts identifier tokens from each constraint line and returns
// the deduplicated set of tokens absent from the vocabulary. Constraint labels
// and reserved operators are skipped; vocabulary membership is an exact,
// case-sensitive match. The result is sorted for stable rendering, but callers
// must not depend on ordering.
func (v *SymbolValidator) FindUnknown(constraints []string, vocabulary map[string]struct{}) []string {
	unknown := make(map[string]struct{})

	for _, line := range constraints {
		for _, token := range identifierPattern.FindAllString(line, -1) {
			if v.isReserved(token) {
				continue
			}
			if _, known := vocabulary[token]; !known {
				unknown[token] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(unknown))
	for token := range unknown {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// isReserved reports whether a token is structural rather than a symbol:
// either a constraint label (C1, C12, ...) or a logical operator.
func (v *SymbolValidator) isReserved(token string) bool {
	if constraintLabelPattern.MatchString(token) {
		return true
	}
	_, ok := v.reservedWords[strings.ToUpper(token)]
	return ok
}
