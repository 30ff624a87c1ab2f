package logdoc

import "strings"

// Window is a bounded slice of lines surrounding a center line. Start is
// inclusive, End exclusive, and 0 <= Start <= Center <= End <= LineCount
// always holds, even for out-of-range center indices (which are clamped).
type Window struct {
	Center int
	Start  int
	End    int
	lines  []string
}

// Window returns the context window anchored at center with lookback lines
// before it. Lookahead counts forward from the center line itself, so a
// window spans at most lookback+lookahead lines. Out-of-range centers and
// negative parameters clamp silently; the result is always in bounds.
func (d *Document) Window(center, lookback, lookahead int) Window {
	n := len(d.lines)
	if lookback < 0 {
		lookback = 0
	}
	if lookahead < 0 {
		lookahead = 0
	}
	if center < 0 {
		center = 0
	}
	if center > n {
		center = n
	}
	start := center - lookback
	if start < 0 {
		start = 0
	}
	end := center + lookahead
	if end > n {
		end = n
	}
	if end < center {
		end = center
	}
	return Window{
		Center: center,
		Start:  start,
		End:    end,
		lines:  d.lines[start:end],
	}
}

// Text returns the window's lines joined with newlines.
func (w Window) Text() string { return strings.Join(w.lines, "\n") }

// Len returns the number of lines in the window.
func (w Window) Len() int { return w.End - w.Start }
