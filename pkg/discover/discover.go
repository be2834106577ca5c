// Package discover walks the examples tree and loads each topic's
// metadata and examples. The layout is one directory per topic, one
// subdirectory per example; an example directory is recognized by its
// pattern.txt file.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultDescription = "<p>No description provided.</p>"

// Example is one curated pattern with its test input and description.
type Example struct {
	Name        string
	Topic       string
	Pattern     string
	TestInput   string
	Description string
}

// Topic groups the examples of one topic directory together with its
// display metadata.
type Topic struct {
	Name        string
	Title       string
	Description string
	Examples    []Example
}

// Metadata is the optional topic.yaml file in a topic directory.
type Metadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Scanner discovers topics under a root examples directory.
type Scanner struct {
	root string
}

// NewScanner creates a Scanner rooted at the given examples directory.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Topics discovers every topic and its examples, in lexical directory
// order. Topics without any example are skipped.
func (s *Scanner) Topics() ([]Topic, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read examples directory: %w", err)
	}

	var topics []Topic
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		topic, err := s.loadTopic(entry.Name())
		if err != nil {
			return nil, err
		}
		if len(topic.Examples) == 0 {
			continue
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

func (s *Scanner) loadTopic(name string) (Topic, error) {
	dir := filepath.Join(s.root, name)

	meta, err := loadMetadata(dir)
	if err != nil {
		return Topic{}, fmt.Errorf("failed to load metadata for topic %q: %w", name, err)
	}
	topic := Topic{
		Name:        name,
		Title:       meta.Title,
		Description: meta.Description,
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Topic{}, fmt.Errorf("failed to read topic directory %q: %w", name, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ex, ok, err := s.loadExample(name, entry.Name())
		if err != nil {
			return Topic{}, err
		}
		if ok {
			topic.Examples = append(topic.Examples, ex)
		}
	}
	return topic, nil
}

// loadExample reads one example directory. Directories without a
// pattern.txt are not examples and are skipped; a missing test_input.txt
// next to a pattern is an error.
func (s *Scanner) loadExample(topic, name string) (Example, bool, error) {
	dir := filepath.Join(s.root, topic, name)

	pattern, err := os.ReadFile(filepath.Join(dir, "pattern.txt"))
	if errors.Is(err, os.ErrNotExist) {
		return Example{}, false, nil
	}
	if err != nil {
		return Example{}, false, fmt.Errorf("failed to read pattern for %s/%s: %w", topic, name, err)
	}

	input, err := os.ReadFile(filepath.Join(dir, "test_input.txt"))
	if err != nil {
		return Example{}, false, fmt.Errorf("failed to read test input for %s/%s: %w", topic, name, err)
	}

	description := defaultDescription
	if desc, err := os.ReadFile(filepath.Join(dir, "description.html")); err == nil {
		description = string(desc)
	} else if !errors.Is(err, os.ErrNotExist) {
		return Example{}, false, fmt.Errorf("failed to read description for %s/%s: %w", topic, name, err)
	}

	return Example{
		Name:        Titleize(name),
		Topic:       topic,
		Pattern:     strings.TrimSpace(string(pattern)),
		TestInput:   string(input),
		Description: description,
	}, true, nil
}

// loadMetadata reads topic.yaml if present and fills any missing field
// from the directory name.
func loadMetadata(dir string) (Metadata, error) {
	var meta Metadata

	data, err := os.ReadFile(filepath.Join(dir, "topic.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return Metadata{}, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Metadata{}, err
	}

	name := filepath.Base(dir)
	if meta.Title == "" {
		meta.Title = Titleize(name)
	}
	if meta.Description == "" {
		meta.Description = fmt.Sprintf("Examples for %s", name)
	}
	return meta, nil
}

// Titleize turns a directory name like "basic_patterns" into a display
// name like "Basic Patterns".
func Titleize(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
