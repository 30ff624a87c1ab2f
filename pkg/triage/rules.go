// Package triage classifies failures in a test/run log, recovers the
// stack-trace context around each occurrence, and correlates failures back
// to the source locations that originated them.
package triage

import (
	"fmt"
	"regexp"
)

// Rule is a named detector used to classify log text into an error
// category. Pattern is a Go regular expression; literal phrases work
// unchanged. Rules are operator-supplied configuration, not derived.
type Rule struct {
	Name            string `koanf:"name" json:"name"`
	Pattern         string `koanf:"pattern" json:"pattern"`
	CaseInsensitive bool   `koanf:"case_insensitive" json:"case_insensitive,omitempty"`
}

// CompiledRule pairs a Rule with its compiled matcher.
type CompiledRule struct {
	Rule
	re *regexp.Regexp
}

// CompileRules compiles every rule, preserving declaration order. Any
// malformed pattern fails the whole set — silently skipping a rule would
// corrupt the frequency summary.
func CompileRules(rules []Rule) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(rules))
	for _, r := range rules {
		pat := r.Pattern
		if r.CaseInsensitive {
			pat = "(?i)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("malformed pattern for rule %q: %w", r.Name, err)
		}
		compiled = append(compiled, CompiledRule{Rule: r, re: re})
	}
	return compiled, nil
}

// CompileGrammar compiles the mention reference grammar.
func CompileGrammar(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("malformed mention grammar %q: %w", pattern, err)
	}
	return re, nil
}
