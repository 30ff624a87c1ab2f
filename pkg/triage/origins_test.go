package triage

import "testing"

func TestCorrelateOrigins_InclusiveOr(t *testing.T) {
	occurrences := []Occurrence{
		// Module condition only.
		{CallSite: "src/db/database.manager.ts:42:15", Snippet: "no marker here"},
		// Marker condition only.
		{CallSite: "src/app/service.ts:10:1", Snippet: "called parseConnectionConfig with nil"},
		// Neither condition.
		{CallSite: "src/other/unrelated.ts:1:1", Snippet: "fine"},
	}
	filter := SuspectFilter{Module: "database.manager.ts", Marker: "parseConnectionConfig"}

	tally := CorrelateOrigins(occurrences, filter)
	if tally.Distinct() != 2 {
		t.Fatalf("Distinct() = %d, want 2 (either condition alone qualifies)", tally.Distinct())
	}
	if tally.Count("src/db/database.manager.ts") != 1 {
		t.Error("module-only occurrence missing from tally")
	}
	if tally.Count("src/app/service.ts") != 1 {
		t.Error("marker-only occurrence missing from tally")
	}
	if tally.Count("src/other/unrelated.ts") != 0 {
		t.Error("unmatched occurrence must not be tallied")
	}
}

func TestCorrelateOrigins_SkipsUnknownCallSites(t *testing.T) {
	occurrences := []Occurrence{
		{CallSite: Unknown, Snippet: "parseConnectionConfig"},
	}
	filter := SuspectFilter{Marker: "parseConnectionConfig"}
	if got := CorrelateOrigins(occurrences, filter).Distinct(); got != 0 {
		t.Errorf("Distinct() = %d, want 0 (unknown site carries no location)", got)
	}
}

func TestCorrelateOrigins_GlobModule(t *testing.T) {
	occurrences := []Occurrence{
		{CallSite: "src/db/database.manager.ts:42:15"},
		{CallSite: "src/db/redis.manager.ts:7:2"},
	}
	filter := SuspectFilter{Module: "**/database.manager.ts"}

	tally := CorrelateOrigins(occurrences, filter)
	if tally.Count("src/db/database.manager.ts") != 1 {
		t.Error("glob should match src/db/database.manager.ts")
	}
	if tally.Count("src/db/redis.manager.ts") != 0 {
		t.Error("glob must not match redis.manager.ts")
	}
}

func TestCorrelateOrigins_AggregatesByFile(t *testing.T) {
	occurrences := []Occurrence{
		{CallSite: "src/db/database.manager.ts:42:15"},
		{CallSite: "src/db/database.manager.ts:88:9"},
	}
	filter := SuspectFilter{Module: "database.manager.ts"}

	tally := CorrelateOrigins(occurrences, filter)
	if got := tally.Count("src/db/database.manager.ts"); got != 2 {
		t.Errorf("count = %d, want 2 (distinct lines collapse to one file)", got)
	}
}

func TestCorrelateOrigins_EmptyFilter(t *testing.T) {
	occurrences := []Occurrence{
		{CallSite: "src/db/database.manager.ts:42:15", Snippet: "anything"},
	}
	if got := CorrelateOrigins(occurrences, SuspectFilter{}).Distinct(); got != 0 {
		t.Errorf("Distinct() = %d, want 0 (empty filter selects nothing)", got)
	}
}
