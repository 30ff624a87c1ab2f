package triage

import (
	"regexp"

	"github.com/jmylchreest/logtriage/pkg/logdoc"
)

// CountMentions scans the full log text for tokens matching the reference
// grammar and tallies them per distinct reference. Overlapping candidates
// resolve the way the regexp engine does: leftmost match wins, greedy
// within each match.
func CountMentions(doc *logdoc.Document, grammar *regexp.Regexp) *Tally {
	tally := NewTally()
	for _, ref := range grammar.FindAllString(doc.Text(), -1) {
		tally.Add(ref)
	}
	return tally
}
