package triage

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SuspectFilter selects occurrences likely originating from a known
// module. An occurrence qualifies when its call site matches Module, or
// when Marker appears anywhere in its context snippet — an inclusive OR:
// either condition alone is enough.
type SuspectFilter struct {
	// Module is a file-path substring or doublestar glob (e.g.
	// "**/database.manager.ts") matched against the call site's file.
	Module string
	// Marker is a plain substring (e.g. a triggering function name)
	// matched against the occurrence's context snippet.
	Marker string
}

// matchesModule reports whether the call site's file path matches the
// configured module name, by glob when the pattern contains glob
// metacharacters and by substring otherwise.
func (f SuspectFilter) matchesModule(callSite string) bool {
	if f.Module == "" || callSite == Unknown {
		return false
	}
	file := SiteFile(callSite)
	if strings.ContainsAny(f.Module, "*?[{") {
		ok, err := doublestar.Match(f.Module, file)
		return err == nil && ok
	}
	return strings.Contains(file, f.Module)
}

// matchesMarker reports whether the marker appears in the snippet.
func (f SuspectFilter) matchesMarker(snippet string) bool {
	return f.Marker != "" && strings.Contains(snippet, f.Marker)
}

// CorrelateOrigins filters occurrences through the suspect filter and
// tallies the originating file of each qualifying call site. Occurrences
// with an unknown call site carry no location to pin the failure on and
// are skipped even when the marker matches.
func CorrelateOrigins(occurrences []Occurrence, filter SuspectFilter) *Tally {
	tally := NewTally()
	for _, occ := range occurrences {
		if occ.CallSite == Unknown {
			continue
		}
		if !filter.matchesModule(occ.CallSite) && !filter.matchesMarker(occ.Snippet) {
			continue
		}
		tally.Add(SiteFile(occ.CallSite))
	}
	return tally
}
