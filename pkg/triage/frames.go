package triage

import (
	"regexp"
	"strings"
)

// callSiteRe matches a stack-frame call site of the form
// "at <fn> (<path>:<line>:<col>)" and captures path:line:col.
var callSiteRe = regexp.MustCompile(`at .*?\(([^()\s]+:\d+:\d+)\)`)

// Frame holds the provenance parsed out of one context window: the
// dominant call site and test identifier, or Unknown when absent.
type Frame struct {
	CallSite string `json:"call_site"`
	TestRef  string `json:"test_ref"`
}

// FrameParser extracts call-site and test-identifier references from
// stack-trace-like context text. Test references are the mention grammar
// anchored to a line number (e.g. "test/a.spec.ts:42").
type FrameParser struct {
	testRefRe *regexp.Regexp
}

// NewFrameParser builds a parser whose test-identifier shape derives from
// the configured mention grammar.
func NewFrameParser(grammar *regexp.Regexp) *FrameParser {
	return &FrameParser{
		testRefRe: regexp.MustCompile(grammar.String() + `:\d+`),
	}
}

// Parse returns the first call-site-shaped substring and the first
// test-identifier substring in document order within text. Context windows
// are small and typically contain one dominant frame; only the first of
// each is kept, since the goal is provenance, not a full trace. Zero
// matches yield Unknown, never an error.
func (p *FrameParser) Parse(text string) Frame {
	frame := Frame{CallSite: Unknown, TestRef: Unknown}
	if m := callSiteRe.FindStringSubmatch(text); m != nil {
		frame.CallSite = m[1]
	}
	if m := p.testRefRe.FindString(text); m != "" {
		frame.TestRef = m
	}
	return frame
}

// SiteFile strips the trailing :line:col from a call-site reference,
// leaving the file path. Unknown passes through unchanged.
func SiteFile(callSite string) string {
	if callSite == Unknown {
		return callSite
	}
	parts := strings.Split(callSite, ":")
	if len(parts) < 3 {
		return callSite
	}
	return strings.Join(parts[:len(parts)-2], ":")
}
