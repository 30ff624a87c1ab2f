package triage

// Default configuration constants for the triage engine. These are the
// single source of truth — referenced by the pipeline's fallback logic,
// the config defaults, and the CLI help text. Keep them here so a value
// change is a one-line diff.
const (
	// DefaultLookback is the number of context lines captured before a
	// matching line.
	DefaultLookback = 5

	// DefaultLookahead is the number of context lines captured from the
	// matching line forward (the matching line counts toward it).
	DefaultLookahead = 10

	// DefaultSnippetMaxLen is the maximum character length of an
	// occurrence's context snippet before it is truncated.
	DefaultSnippetMaxLen = 500

	// DefaultDedupCap is the maximum number of distinct (call site, test)
	// pairs surfaced in the deduplicated error-location summary. Beyond
	// this limit the signal-to-noise ratio drops for operator review.
	DefaultDedupCap = 5

	// DefaultTopMentions is the default result count for the ranked
	// mention view.
	DefaultTopMentions = 10

	// DefaultTopOrigins is the default result count for the ranked
	// suspect-origin view.
	DefaultTopOrigins = 5
)

// Unknown is the placeholder reference reported when a context window
// contains no call-site or test-identifier match.
const Unknown = "unknown"
