// Package report renders triage results as ranked, human-readable tables
// and as a machine-readable summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jmylchreest/logtriage/pkg/triage"
)

// Options bounds each ranked view. Zero values fall back to the triage
// package defaults.
type Options struct {
	TopMentions int
	TopOrigins  int
	DedupCap    int
}

// Location is one deduplicated error location: the first occurrence seen
// for a distinct (call site, test identifier) pair.
type Location struct {
	CallSite string `json:"call_site"`
	TestRef  string `json:"test_ref"`
	Line     int    `json:"line"`
}

// Summary is the report's data: four independently computed views over a
// triage result. It marshals directly to JSON for programmatic use.
type Summary struct {
	Categories       []triage.MatchCount `json:"categories"`
	Mentions         []triage.Entry      `json:"mentions"`
	DistinctMentions int                 `json:"distinct_mentions"`
	Locations        []Location          `json:"error_locations"`
	Origins          []triage.Entry      `json:"origins"`
}

// Build computes the four report views from a triage result. Each view is
// a pure function of the result; empty inputs yield empty views, never an
// error.
func Build(res *triage.Result, opts Options) *Summary {
	return &Summary{
		Categories:       rankCategories(res.Categories),
		Mentions:         res.Mentions.Top(defaultTop(opts.TopMentions, triage.DefaultTopMentions)),
		DistinctMentions: res.Mentions.Distinct(),
		Locations:        dedupLocations(res.Occurrences, defaultTop(opts.DedupCap, triage.DefaultDedupCap)),
		Origins:          res.Origins.Top(defaultTop(opts.TopOrigins, triage.DefaultTopOrigins)),
	}
}

// rankCategories keeps rules with a positive count, sorted by count
// descending. The sort is stable, so equal counts keep rule declaration
// order.
func rankCategories(counts []triage.MatchCount) []triage.MatchCount {
	ranked := make([]triage.MatchCount, 0, len(counts))
	for _, mc := range counts {
		if mc.Count > 0 {
			ranked = append(ranked, mc)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// dedupLocations walks occurrences in original order, keeps the first per
// distinct (call site, test) pair, and stops once cap pairs are collected
// even when more occurrences exist. This bounds output for operator
// review.
func dedupLocations(occurrences []triage.Occurrence, limit int) []Location {
	type pair struct{ site, test string }
	seen := make(map[pair]bool)
	var locations []Location
	for _, occ := range occurrences {
		if len(locations) >= limit {
			break
		}
		key := pair{occ.CallSite, occ.TestRef}
		if seen[key] {
			continue
		}
		seen[key] = true
		locations = append(locations, Location{
			CallSite: occ.CallSite,
			TestRef:  occ.TestRef,
			Line:     occ.Line,
		})
	}
	return locations
}

// Render writes the four report sections in order: error categories,
// mention frequencies, deduplicated error locations, suspect origins.
// The output is deterministic — two runs over the same result render
// byte-identical text.
func Render(w io.Writer, res *triage.Result, opts Options) error {
	s := Build(res, opts)

	section(w, "Error Pattern Analysis")
	if err := renderTally(w, "Category", "Occurrences", matchEntries(s.Categories)); err != nil {
		return err
	}

	section(w, "Most Mentioned References")
	if err := renderTally(w, "Reference", "Mentions", s.Mentions); err != nil {
		return err
	}
	fmt.Fprintf(w, "Total distinct references: %d\n", s.DistinctMentions)

	section(w, "Error Locations")
	if err := renderLocations(w, s.Locations); err != nil {
		return err
	}

	section(w, "Error Origin Analysis")
	if err := renderTally(w, "Origin", "Count", s.Origins); err != nil {
		return err
	}

	return nil
}

// RenderJSON writes the summary as indented JSON.
func RenderJSON(w io.Writer, res *triage.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(res, opts))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s:\n%s\n", title, strings.Repeat("=", 50))
}

func renderTally(w io.Writer, keyHeader, countHeader string, entries []triage.Entry) error {
	table := tablewriter.NewTable(w)
	table.Header(keyHeader, countHeader)
	for _, e := range entries {
		table.Append([]string{e.Key, strconv.Itoa(e.Count)})
	}
	return table.Render()
}

func renderLocations(w io.Writer, locations []Location) error {
	table := tablewriter.NewTable(w)
	table.Header("Call Site", "Test", "Line")
	for _, loc := range locations {
		table.Append([]string{loc.CallSite, loc.TestRef, strconv.Itoa(loc.Line)})
	}
	return table.Render()
}

// matchEntries adapts ranked categories to tally entries for rendering.
func matchEntries(counts []triage.MatchCount) []triage.Entry {
	entries := make([]triage.Entry, 0, len(counts))
	for _, mc := range counts {
		entries = append(entries, triage.Entry{Key: mc.Name, Count: mc.Count})
	}
	return entries
}

func defaultTop(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}
