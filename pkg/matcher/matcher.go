// Package matcher wraps a compiled regular expression and exposes the two
// scans a report is built from: per-line match enumeration and a whole-text
// find-all pass.
package matcher

import (
	"github.com/coregx/coregex"
)

// Captured is the value of one capture group within a match. A group that
// did not participate in the match (an unmatched alternation branch, an
// unmatched optional group) has Present == false, which is distinct from a
// group that matched the empty string.
type Captured struct {
	Value   string
	Present bool
}

// NamedCapture pairs a group name with its captured value. Order follows
// the group's position in the pattern.
type NamedCapture struct {
	Name string
	Captured
}

// MatchSpan is one match on a single line: the half-open byte range
// [Start, End), the matched text, and the capture group values.
type MatchSpan struct {
	Start  int
	End    int
	Text   string
	Groups []Captured     // numbered groups, Groups[0] is group 1
	Named  []NamedCapture // named groups in pattern order
}

// Pattern is a compiled pattern ready for scanning. Matching always runs in
// multiline mode: ^ and $ anchor at line boundaries within the scanned text.
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	re     *coregex.Regex
	source string
	names  []string
	groups int
}

// Compile builds a Pattern from its textual source. The source is compiled
// as written first, so a syntax error carries the engine's diagnostic for
// the pattern the user actually wrote; only then is it recompiled with
// multiline mode enabled for scanning.
func Compile(source string) (*Pattern, error) {
	if _, err := coregex.Compile(source); err != nil {
		return nil, err
	}
	re, err := coregex.Compile("(?m)" + source)
	if err != nil {
		return nil, err
	}
	// SubexpNames always holds one leading entry for the whole match
	// followed by one entry per explicit capture group, so the explicit
	// group count is its length minus one. NumSubexp is not used here:
	// engines disagree on whether it counts group 0.
	names := re.SubexpNames()
	return &Pattern{
		re:     re,
		source: source,
		names:  names,
		groups: len(names) - 1,
	}, nil
}

// Source returns the pattern text the Pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

// GroupCount returns the number of explicit capture groups in the
// pattern, not counting the whole match.
func (p *Pattern) GroupCount() int {
	return p.groups
}

// ScanLine finds every non-overlapping match on a single line, left to
// right, each scan resuming after the previous match's end. The engine
// advances past zero-length matches, so the scan always terminates.
func (p *Pattern) ScanLine(line string) []MatchSpan {
	idxs := p.re.FindAllStringSubmatchIndex(line, -1)
	if len(idxs) == 0 {
		return nil
	}

	spans := make([]MatchSpan, 0, len(idxs))
	for _, idx := range idxs {
		span := MatchSpan{
			Start: idx[0],
			End:   idx[1],
			Text:  line[idx[0]:idx[1]],
		}
		for g := 1; 2*g < len(idx); g++ {
			var c Captured
			if idx[2*g] >= 0 {
				c = Captured{Value: line[idx[2*g] : idx[2*g+1]], Present: true}
			}
			span.Groups = append(span.Groups, c)
			if name := p.names[g]; name != "" {
				span.Named = append(span.Named, NamedCapture{Name: name, Captured: c})
			}
		}
		spans = append(spans, span)
	}
	return spans
}

// ScanAll finds every non-overlapping match across the whole text in one
// pass, for the aggregate report. Each result holds the full matched text
// when the pattern has no capture groups, otherwise the ordered capture
// values; a group that did not participate contributes an empty string.
func (p *Pattern) ScanAll(text string) [][]string {
	idxs := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return nil
	}

	results := make([][]string, 0, len(idxs))
	for _, idx := range idxs {
		if p.groups == 0 {
			results = append(results, []string{text[idx[0]:idx[1]]})
			continue
		}
		vals := make([]string, 0, p.groups)
		for g := 1; 2*g < len(idx); g++ {
			if idx[2*g] >= 0 {
				vals = append(vals, text[idx[2*g]:idx[2*g+1]])
			} else {
				vals = append(vals, "")
			}
		}
		results = append(results, vals)
	}
	return results
}
