// Package annotate turns a pattern and a block of test text into the
// annotated match report embedded in generated example pages: per-line
// highlighting, capture group detail, and a whole-text find-all summary.
package annotate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/regexdoc/regexdoc/pkg/matcher"
)

// previewLimit bounds the aggregate preview to the first 200 characters of
// the raw find-all rendering.
const previewLimit = 200

// ErrorKind classifies a report failure.
type ErrorKind int

const (
	// PatternSyntaxError means the pattern source failed to compile.
	PatternSyntaxError ErrorKind = iota
	// ExecutionError means scanning or annotation failed after a
	// successful compile.
	ExecutionError
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	if k == PatternSyntaxError {
		return "PatternSyntaxError"
	}
	return "ExecutionError"
}

// ErrorReport replaces the line reports and aggregate when report
// generation fails.
type ErrorReport struct {
	Kind    ErrorKind
	Message string
}

// LineReport is the account of one line of test text. Text always holds
// the escaped original line; Highlighted and Matches are populated only
// when the line matched.
type LineReport struct {
	Number      int
	Text        string
	Matched     bool
	Highlighted string
	Matches     []matcher.MatchSpan
}

// Aggregate summarizes the whole-text find-all pass: how many matches
// there were and an escaped, bounded preview of the result list.
type Aggregate struct {
	Count     int
	Preview   string
	Truncated bool
}

// Report is the outcome of one BuildReport call. Err is set instead of,
// never alongside, Lines and Agg.
type Report struct {
	Lines []LineReport
	Agg   *Aggregate
	Err   *ErrorReport
}

// BuildReport compiles the pattern, scans every line of the test text and
// then the text as a whole, and returns the assembled report. It never
// returns an error or panics: a compile failure or a failure inside the
// engine comes back inside the report, with any partial line work
// discarded.
func BuildReport(pattern, text string) (rep *Report) {
	defer func() {
		if r := recover(); r != nil {
			rep = &Report{Err: &ErrorReport{
				Kind:    ExecutionError,
				Message: fmt.Sprint(r),
			}}
		}
	}()

	p, err := matcher.Compile(pattern)
	if err != nil {
		return &Report{Err: &ErrorReport{
			Kind:    PatternSyntaxError,
			Message: err.Error(),
		}}
	}

	text = strings.TrimRightFunc(text, unicode.IsSpace)
	lines := strings.Split(text, "\n")

	rep = &Report{Lines: make([]LineReport, 0, len(lines))}
	for i, line := range lines {
		lr := LineReport{
			Number: i + 1,
			Text:   escape(line),
		}
		if spans := p.ScanLine(line); len(spans) > 0 {
			lr.Matched = true
			lr.Matches = spans
			lr.Highlighted = highlight(line, spans)
		}
		rep.Lines = append(rep.Lines, lr)
	}

	if agg := aggregate(p, text); agg.Count > 0 {
		rep.Agg = &agg
	}
	return rep
}

// highlight rebuilds the line with each matched span wrapped in a <mark>
// element. Text is escaped segment by segment so the markers themselves
// are never escaped.
func highlight(line string, spans []matcher.MatchSpan) string {
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(escape(line[last:s.Start]))
		b.WriteString("<mark>")
		b.WriteString(escape(s.Text))
		b.WriteString("</mark>")
		last = s.End
	}
	b.WriteString(escape(line[last:]))
	return b.String()
}

// aggregate runs the whole-text find-all pass and renders its bounded
// preview. Truncation counts characters, not bytes, and applies to the
// raw rendering before escaping so the marker never splits an entity.
func aggregate(p *matcher.Pattern, text string) Aggregate {
	results := p.ScanAll(text)
	agg := Aggregate{Count: len(results)}
	if agg.Count == 0 {
		return agg
	}

	raw := previewText(results)
	if utf8.RuneCountInString(raw) > previewLimit {
		cut := 0
		for i := 0; i < previewLimit; i++ {
			_, size := utf8.DecodeRuneInString(raw[cut:])
			cut += size
		}
		raw = raw[:cut]
		agg.Truncated = true
	}
	agg.Preview = escape(raw)
	return agg
}

// previewText renders find-all results the way they read in the report: a
// bracketed list with single-value results as quoted strings and
// multi-group results as parenthesized tuples of quoted values.
func previewText(results [][]string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range results {
		if i > 0 {
			b.WriteString(", ")
		}
		if len(r) == 1 {
			writeQuoted(&b, r[0])
			continue
		}
		b.WriteByte('(')
		for j, v := range r {
			if j > 0 {
				b.WriteString(", ")
			}
			writeQuoted(&b, v)
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}

// writeQuoted single-quotes a value, switching to double quotes when the
// value itself contains a single quote and no double quote; a value with
// both keeps single quotes with the inner ones backslash-escaped.
func writeQuoted(b *strings.Builder, s string) {
	hasSingle := strings.Contains(s, "'")
	if hasSingle && !strings.Contains(s, `"`) {
		b.WriteByte('"')
		b.WriteString(s)
		b.WriteByte('"')
		return
	}
	if hasSingle {
		s = strings.ReplaceAll(s, "'", `\'`)
	}
	b.WriteByte('\'')
	b.WriteString(s)
	b.WriteByte('\'')
}
