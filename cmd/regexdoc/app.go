package main

import (
	"fmt"
	"io"
	"os"

	"github.com/regexdoc/regexdoc/pkg/annotate"
	"github.com/regexdoc/regexdoc/pkg/config"
	"github.com/regexdoc/regexdoc/pkg/discover"
	"github.com/regexdoc/regexdoc/pkg/render"
)

// TopicSource yields the discovered topics in render order.
type TopicSource interface {
	Topics() ([]discover.Topic, error)
}

// Dependencies holds all the dependencies for one generator run
type Dependencies struct {
	Config   *config.Config
	Scanner  TopicSource
	Builder  *render.Builder
	Progress io.Writer
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	templates, err := render.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}

	progress := io.Writer(os.Stdout)
	if cfg.Quiet {
		progress = io.Discard
	}

	return &Dependencies{
		Config:   cfg,
		Scanner:  discover.NewScanner(cfg.ExamplesDir),
		Builder:  render.NewBuilder(templates, cfg.OutputDir, cfg.SiteTitle),
		Progress: progress,
	}, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run discovers the examples, builds a report for each one, and writes
// the site. A pattern that fails to compile or scan still gets a page;
// its report area carries the error block instead.
func (a *Application) Run() error {
	fmt.Fprintln(a.deps.Progress, "Discovering topics and examples...")

	topics, err := a.deps.Scanner.Topics()
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		fmt.Fprintln(a.deps.Progress, "No topics found to generate")
		return nil
	}
	fmt.Fprintf(a.deps.Progress, "Found %d topics\n", len(topics))

	rendered := make([]render.Topic, 0, len(topics))
	for _, topic := range topics {
		rt := render.Topic{Info: topic}
		for _, ex := range topic.Examples {
			fmt.Fprintf(a.deps.Progress, "  Testing: %s/%s\n", topic.Name, ex.Name)
			rt.Results = append(rt.Results, annotate.BuildReport(ex.Pattern, ex.TestInput).HTML())
		}
		rendered = append(rendered, rt)
	}

	if err := a.deps.Builder.WriteSite(rendered); err != nil {
		return err
	}

	fmt.Fprintf(a.deps.Progress, "Generated %d topic pages in %s\n", len(rendered), a.deps.Config.OutputDir)
	return nil
}
