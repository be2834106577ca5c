// Package render assembles the generated HTML site: it substitutes
// report fragments and metadata into page templates and writes the topic
// and index pages.
package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/regexdoc/regexdoc/pkg/discover"
)

// Topic pairs a discovered topic with the pre-rendered results fragment
// for each of its examples. Results is parallel to Info.Examples.
type Topic struct {
	Info    discover.Topic
	Results []string
}

// Builder assembles and writes the site pages.
type Builder struct {
	templates *Templates
	outDir    string
	siteTitle string
}

// NewBuilder creates a Builder writing pages to outDir.
func NewBuilder(templates *Templates, outDir, siteTitle string) *Builder {
	return &Builder{
		templates: templates,
		outDir:    outDir,
		siteTitle: siteTitle,
	}
}

// NavLinks renders the shared navigation bar: Home first, then one link
// per topic.
func (b *Builder) NavLinks(topics []Topic) string {
	links := []string{`<a href="index.html"><strong>Home</strong></a>`}
	for _, t := range topics {
		links = append(links, fmt.Sprintf(`<a href="%s.html">%s</a>`, t.Info.Name, html.EscapeString(t.Info.Title)))
	}
	return strings.Join(links, " | ")
}

// TopicPage renders one topic's full page: header, overview, one block
// per example, footer.
func (b *Builder) TopicPage(topic Topic, nav string) string {
	var page strings.Builder

	header := strings.ReplaceAll(b.templates.Header, "{TITLE}", html.EscapeString(topic.Info.Title))
	header = strings.ReplaceAll(header, "{NAV_LINKS}", nav)
	page.WriteString(header)

	fmt.Fprintf(&page,
		"<div class=\"example\"><h2>Overview</h2><div class=\"description\"><p>%s</p></div></div>\n",
		html.EscapeString(topic.Info.Description))

	for i, ex := range topic.Info.Examples {
		block := strings.ReplaceAll(b.templates.Example, "{EXAMPLE_NAME}", html.EscapeString(ex.Name))
		block = strings.ReplaceAll(block, "{DESCRIPTION}", ex.Description)
		block = strings.ReplaceAll(block, "{PATTERN}", html.EscapeString(ex.Pattern))
		block = strings.ReplaceAll(block, "{TEST_INPUT}", html.EscapeString(ex.TestInput))
		block = strings.ReplaceAll(block, "{RESULTS}", topic.Results[i])
		page.WriteString(block)
	}

	page.WriteString(b.templates.Footer)
	return page.String()
}

// IndexPage renders the landing page: a short usage guide plus one card
// per topic.
func (b *Builder) IndexPage(topics []Topic, nav string) string {
	var page strings.Builder

	header := strings.ReplaceAll(b.templates.Header, "{TITLE}", html.EscapeString(b.siteTitle))
	header = strings.ReplaceAll(header, "{NAV_LINKS}", nav)
	page.WriteString(header)

	page.WriteString(`<div class="example">
<h2>How to Use This Guide</h2>
<div class="description">
<p>Each example shows a regular expression, sample input, and the annotated match
results side by side: highlighted match spans per line, numbered and named capture
values, and an overall find-all summary.</p>
</div>
<h3>Available Topics</h3>
`)

	for _, t := range topics {
		fmt.Fprintf(&page, `<div class="topic-card">
<h4><a href="%s.html">%s</a></h4>
<p>%s</p>
<p><em>%d examples</em></p>
</div>
`, t.Info.Name, html.EscapeString(t.Info.Title), html.EscapeString(t.Info.Description), len(t.Info.Examples))
	}

	page.WriteString("</div>\n")
	page.WriteString(b.templates.Footer)
	return page.String()
}

// WriteSite writes one page per topic plus the index page into the output
// directory, creating it if needed.
func (b *Builder) WriteSite(topics []Topic) error {
	if err := os.MkdirAll(b.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	nav := b.NavLinks(topics)
	for _, t := range topics {
		path := filepath.Join(b.outDir, t.Info.Name+".html")
		if err := os.WriteFile(path, []byte(b.TopicPage(t, nav)), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	path := filepath.Join(b.outDir, "index.html")
	if err := os.WriteFile(path, []byte(b.IndexPage(topics, nav)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
