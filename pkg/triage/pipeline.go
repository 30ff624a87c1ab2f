package triage

import (
	"fmt"

	"github.com/jmylchreest/logtriage/pkg/logdoc"
)

// Options configures one triage run. Zero values fall back to the package
// defaults in constants.go.
type Options struct {
	// Rules is the ordered set of named error detectors. Order does not
	// affect matching but is the tie-break in the category report.
	Rules []Rule
	// MentionGrammar describes valid reference tokens (e.g. test-spec
	// identifiers) whose frequency is tracked across the document.
	MentionGrammar string
	// ProvenanceRule names the rule whose matches get per-occurrence
	// context analysis. Empty selects the first configured rule.
	ProvenanceRule string
	// Lookback and Lookahead bound each occurrence's context window.
	Lookback  int
	Lookahead int
	// SnippetMaxLen truncates occurrence snippets.
	SnippetMaxLen int
	// Suspect selects which call sites count as likely origins.
	Suspect SuspectFilter
}

// Result is the structured output of one run, ready for rendering or
// programmatic use. Every field is a read-only derivation of the input
// document; nothing holds a reference back to it.
type Result struct {
	Categories  []MatchCount
	Mentions    *Tally
	Occurrences []Occurrence
	Origins     *Tally
}

// Run performs the single-pass triage pipeline: classify the document
// against every rule, tally mention references, extract per-occurrence
// context for the provenance rule, and correlate suspect origins. The run
// is a batch, idempotent transformation of a static document — no state
// survives between calls.
func Run(doc *logdoc.Document, opts Options) (*Result, error) {
	rules, err := CompileRules(opts.Rules)
	if err != nil {
		return nil, err
	}
	if err := validateProvenanceRule(opts.Rules, opts.ProvenanceRule); err != nil {
		return nil, err
	}
	grammar, err := CompileGrammar(defaultGrammar(opts.MentionGrammar))
	if err != nil {
		return nil, err
	}

	res := &Result{
		Categories: CountMatches(doc, rules),
		Mentions:   CountMentions(doc, grammar),
	}

	if rule, ok := provenanceRule(rules, opts.ProvenanceRule); ok {
		parser := NewFrameParser(grammar)
		res.Occurrences = ScanOccurrences(doc, rule, parser,
			defaultLookback(opts.Lookback),
			defaultLookahead(opts.Lookahead),
			defaultSnippetMax(opts.SnippetMaxLen))
	}
	res.Origins = CorrelateOrigins(res.Occurrences, opts.Suspect)

	return res, nil
}

// provenanceRule resolves the named rule, falling back to the first one.
// A run with no rules performs no provenance analysis.
func provenanceRule(rules []CompiledRule, name string) (CompiledRule, bool) {
	if len(rules) == 0 {
		return CompiledRule{}, false
	}
	if name == "" {
		return rules[0], true
	}
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return CompiledRule{}, false
}

// validateProvenanceRule rejects a ProvenanceRule naming no configured
// rule, so a typo is not silently ignored.
func validateProvenanceRule(rules []Rule, name string) error {
	if name == "" {
		return nil
	}
	for _, r := range rules {
		if r.Name == name {
			return nil
		}
	}
	return fmt.Errorf("provenance rule %q matches no configured pattern rule", name)
}

func defaultGrammar(g string) string {
	if g != "" {
		return g
	}
	return `test/[^\s]+\.spec\.ts`
}

func defaultLookback(n int) int {
	if n > 0 {
		return n
	}
	return DefaultLookback
}

func defaultLookahead(n int) int {
	if n > 0 {
		return n
	}
	return DefaultLookahead
}

func defaultSnippetMax(n int) int {
	if n > 0 {
		return n
	}
	return DefaultSnippetMaxLen
}
