package triage

import (
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/logtriage/pkg/logdoc"
)

// Occurrence records one qualifying match of the provenance rule: where it
// happened, the nearest call-site and test-identifier references recovered
// from its context window, and a truncated context snippet for human
// inspection. Occurrences are created once during the scan pass and never
// mutated.
type Occurrence struct {
	ID       string `json:"id"`
	Line     int    `json:"line"` // 1-indexed
	CallSite string `json:"call_site"`
	TestRef  string `json:"test_ref"`
	Snippet  string `json:"snippet"`
}

// ScanOccurrences walks the document line by line and emits one Occurrence
// per line matching the rule, with context parsed from a window of
// lookback lines before and lookahead lines from the match forward.
func ScanOccurrences(doc *logdoc.Document, rule CompiledRule, parser *FrameParser, lookback, lookahead, snippetMax int) []Occurrence {
	var occurrences []Occurrence
	for i, line := range doc.Lines() {
		if !rule.re.MatchString(line) {
			continue
		}
		window := doc.Window(i, lookback, lookahead)
		text := window.Text()
		frame := parser.Parse(text)
		occurrences = append(occurrences, Occurrence{
			ID:       ulid.Make().String(),
			Line:     i + 1,
			CallSite: frame.CallSite,
			TestRef:  frame.TestRef,
			Snippet:  truncateSnippet(text, snippetMax),
		})
	}
	return occurrences
}

// truncateSnippet bounds a context snippet to max bytes. max <= 0 keeps
// the snippet whole.
func truncateSnippet(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
