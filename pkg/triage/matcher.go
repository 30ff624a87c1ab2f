package triage

import (
	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/logtriage/pkg/logdoc"
)

// MatchCount is the occurrence count for one pattern rule. Zero-count
// rules are kept; the reporter decides what surfaces.
type MatchCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountMatches applies every compiled rule to the full log text and
// returns one MatchCount per rule in declaration order. Counts are
// non-overlapping matches over the whole document, not per line. Rules
// are independent and the document is read-only, so each rule counts on
// its own goroutine.
func CountMatches(doc *logdoc.Document, rules []CompiledRule) []MatchCount {
	counts := make([]MatchCount, len(rules))
	var g errgroup.Group
	for i, rule := range rules {
		g.Go(func() error {
			counts[i] = MatchCount{
				Name:  rule.Name,
				Count: len(rule.re.FindAllStringIndex(doc.Text(), -1)),
			}
			return nil
		})
	}
	_ = g.Wait() // counting never fails
	return counts
}
