package annotate

import (
	"fmt"
	"html"
	"strings"

	"github.com/regexdoc/regexdoc/pkg/matcher"
)

// escape makes a value safe for embedding in markup. Applied to embedded
// values only; the structural markup around them is fixed and never
// escaped.
func escape(s string) string {
	return html.EscapeString(s)
}

// HTML renders the report as a markup fragment ready to drop into the
// results slot of an example page. All user data inside the fragment is
// already escaped.
func (r *Report) HTML() string {
	if r.Err != nil {
		return r.Err.HTML()
	}

	var b strings.Builder
	for _, lr := range r.Lines {
		writeLine(&b, lr)
	}
	if r.Agg != nil {
		writeAggregate(&b, r.Agg)
	}
	return b.String()
}

// HTML renders the error as the single block shown in place of the
// report.
func (e *ErrorReport) HTML() string {
	label := "Error"
	if e.Kind == PatternSyntaxError {
		label = "Regex Error"
	}
	return fmt.Sprintf(`<div class="no-match"><strong>%s:</strong> %s</div>`, label, escape(e.Message))
}

func writeLine(b *strings.Builder, lr LineReport) {
	if !lr.Matched {
		fmt.Fprintf(b, `<div class="no-match"><strong>Line %d:</strong> "%s" - No match</div>`, lr.Number, lr.Text)
		return
	}

	fmt.Fprintf(b, `<div class="match-result"><strong>Line %d:</strong> "%s"<br>`, lr.Number, lr.Highlighted)
	for k, m := range lr.Matches {
		fmt.Fprintf(b, `<div class="match-detail"><strong>Match %d:</strong> "%s"`, k+1, escape(m.Text))
		if len(m.Groups) > 0 {
			b.WriteString(`<br><strong>Groups:</strong> `)
			b.WriteString(groupList(m.Groups))
		}
		if len(m.Named) > 0 {
			b.WriteString(`<br><strong>Named:</strong> `)
			b.WriteString(namedList(m.Named))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
}

func writeAggregate(b *strings.Builder, agg *Aggregate) {
	fmt.Fprintf(b, `<div class="group-info"><strong>All matches found:</strong> %d<br>Matches: %s`, agg.Count, agg.Preview)
	if agg.Truncated {
		b.WriteString("...")
	}
	b.WriteString(`</div>`)
}

// groupList renders numbered captures as `1: "value"` items. An absent
// group renders as the literal None, distinct from an empty capture's "".
func groupList(groups []matcher.Captured) string {
	items := make([]string, len(groups))
	for i, g := range groups {
		items[i] = fmt.Sprintf(`%d: "%s"`, i+1, capturedText(g))
	}
	return strings.Join(items, ", ")
}

func namedList(named []matcher.NamedCapture) string {
	items := make([]string, len(named))
	for i, n := range named {
		items[i] = fmt.Sprintf(`%s: "%s"`, n.Name, capturedText(n.Captured))
	}
	return strings.Join(items, ", ")
}

func capturedText(c matcher.Captured) string {
	if !c.Present {
		return "None"
	}
	return escape(c.Value)
}
