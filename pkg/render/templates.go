package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Templates holds the three page fragments a site is assembled from.
type Templates struct {
	Header  string
	Footer  string
	Example string
}

// DefaultTemplates returns the built-in page fragments used when no
// template file overrides them.
func DefaultTemplates() *Templates {
	return &Templates{
		Header:  defaultHeader,
		Footer:  defaultFooter,
		Example: defaultExample,
	}
}

// LoadTemplates reads header.html, footer.html, and example.html from dir,
// falling back to the built-in default for any file that does not exist.
func LoadTemplates(dir string) (*Templates, error) {
	t := DefaultTemplates()

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{name: "header.html", dst: &t.Header},
		{name: "footer.html", dst: &t.Footer},
		{name: "example.html", dst: &t.Example},
	} {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	return t, nil
}

const defaultHeader = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{TITLE}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; color: #2c3e50; }
nav { padding: 10px 0; border-bottom: 1px solid #ddd; margin-bottom: 20px; }
nav a { margin-right: 8px; }
.example { background: #fff; border: 1px solid #ddd; border-radius: 5px; padding: 20px; margin: 20px 0; }
.example pre { background: #f6f8fa; padding: 10px; border-radius: 3px; overflow-x: auto; }
.match-result { margin: 8px 0; padding: 8px; background: #f1f8e9; border-radius: 3px; }
.match-detail { margin-top: 4px; margin-left: 10px; font-size: 0.9em; border-left: 2px solid #888; padding-left: 8px; }
.no-match { margin: 8px 0; padding: 8px; background: #fbe9e7; border-radius: 3px; }
.group-info { margin: 8px 0; padding: 8px; background: #e3f2fd; border-radius: 3px; }
mark { background-color: #a5d6a7; font-weight: bold; border-radius: 3px; padding: 0 2px; }
</style>
</head>
<body>
<nav>{NAV_LINKS}</nav>
<h1>{TITLE}</h1>
`

const defaultFooter = `</body>
</html>
`

const defaultExample = `<div class="example">
<h2>{EXAMPLE_NAME}</h2>
<div class="description">{DESCRIPTION}</div>
<h3>Pattern</h3>
<pre>{PATTERN}</pre>
<h3>Test Input</h3>
<pre>{TEST_INPUT}</pre>
<h3>Match Results</h3>
{RESULTS}
</div>
`
