package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestScanner_Topics(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "basic_patterns", "topic.yaml"),
		"title: Basic Patterns\ndescription: Literal characters and quantifiers.\n")
	writeFile(t, filepath.Join(root, "basic_patterns", "digits", "pattern.txt"), "(\\d+)\n")
	writeFile(t, filepath.Join(root, "basic_patterns", "digits", "test_input.txt"), "abc 123 def\n")
	writeFile(t, filepath.Join(root, "basic_patterns", "digits", "description.html"),
		"<p>Matches runs of digits.</p>")

	// Second example without a description falls back to the default.
	writeFile(t, filepath.Join(root, "basic_patterns", "word_chars", "pattern.txt"), "\\w+")
	writeFile(t, filepath.Join(root, "basic_patterns", "word_chars", "test_input.txt"), "one two\n")

	topics, err := NewScanner(root).Topics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Topic{
		{
			Name:        "basic_patterns",
			Title:       "Basic Patterns",
			Description: "Literal characters and quantifiers.",
			Examples: []Example{
				{
					Name:        "Digits",
					Topic:       "basic_patterns",
					Pattern:     `(\d+)`,
					TestInput:   "abc 123 def\n",
					Description: "<p>Matches runs of digits.</p>",
				},
				{
					Name:        "Word Chars",
					Topic:       "basic_patterns",
					Pattern:     `\w+`,
					TestInput:   "one two\n",
					Description: defaultDescription,
				},
			},
		},
	}
	if diff := cmp.Diff(want, topics); diff != "" {
		t.Errorf("unexpected topics (-want +got):\n%s", diff)
	}
}

func TestScanner_MetadataDerivedFromDirName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "character_classes", "ranges", "pattern.txt"), "[a-z]+")
	writeFile(t, filepath.Join(root, "character_classes", "ranges", "test_input.txt"), "abc\n")

	topics, err := NewScanner(root).Topics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 1 {
		t.Fatalf("expected 1 topic but got %d", len(topics))
	}
	if topics[0].Title != "Character Classes" {
		t.Errorf("expected derived title but got %q", topics[0].Title)
	}
	if topics[0].Description != "Examples for character_classes" {
		t.Errorf("expected derived description but got %q", topics[0].Description)
	}
}

func TestScanner_SkipsNonExamples(t *testing.T) {
	root := t.TempDir()

	// A topic whose only subdirectory has no pattern.txt yields no
	// examples and is dropped entirely.
	writeFile(t, filepath.Join(root, "empty_topic", "notes", "readme.txt"), "not an example")

	// Loose files at the root are ignored.
	writeFile(t, filepath.Join(root, "stray.txt"), "ignored")

	writeFile(t, filepath.Join(root, "anchors", "line_start", "pattern.txt"), "^x")
	writeFile(t, filepath.Join(root, "anchors", "line_start", "test_input.txt"), "x\ny\n")

	topics, err := NewScanner(root).Topics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 1 || topics[0].Name != "anchors" {
		t.Fatalf("expected only the anchors topic but got %+v", topics)
	}
}

func TestScanner_MissingTestInputIsError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "anchors", "broken", "pattern.txt"), "^x")

	if _, err := NewScanner(root).Topics(); err == nil {
		t.Fatal("expected an error for a pattern without test input")
	}
}

func TestScanner_MissingRootIsError(t *testing.T) {
	if _, err := NewScanner(filepath.Join(t.TempDir(), "missing")).Topics(); err == nil {
		t.Fatal("expected an error for a missing examples directory")
	}
}

func TestTitleize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "basic_patterns", want: "Basic Patterns"},
		{in: "anchors", want: "Anchors"},
		{in: "a", want: "A"},
		{in: "already Title", want: "Already Title"},
	}
	for _, tt := range tests {
		if got := Titleize(tt.in); got != tt.want {
			t.Errorf("Titleize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
