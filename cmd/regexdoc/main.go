package main

import (
	"fmt"
	"os"

	"github.com/regexdoc/regexdoc/pkg/config"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath   string
		examplesDir  string
		templatesDir string
		outputDir    string
		quiet        bool
		help         bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&examplesDir, "examples-dir", "", "Directory holding topic and example directories")
	flag.StringVar(&templatesDir, "templates-dir", "", "Directory holding page templates")
	flag.StringVar(&outputDir, "output-dir", "", "Directory to write generated pages into")
	flag.BoolVar(&quiet, "quiet", false, "Suppress progress output")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	if configPath != "" {
		if err := os.Setenv("REGEXDOC_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if examplesDir != "" {
		cfg.ExamplesDir = examplesDir
	}
	if templatesDir != "" {
		cfg.TemplatesDir = templatesDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if quiet {
		cfg.Quiet = true
	}

	deps, err := NewDependencies(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dependencies: %v\n", err)
		os.Exit(1)
	}

	app := NewApplication(deps)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating documentation: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("regexdoc - annotated regular expression documentation generator")
	fmt.Println()
	fmt.Println("Usage: regexdoc [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  REGEXDOC_CONFIG         Path to config file (default: ./regexdoc.yaml)")
	fmt.Println("  REGEXDOC_EXAMPLES_DIR   Directory holding topic and example directories")
	fmt.Println("  REGEXDOC_TEMPLATES_DIR  Directory holding page templates")
	fmt.Println("  REGEXDOC_OUTPUT_DIR     Directory to write generated pages into")
	fmt.Println("  REGEXDOC_SITE_TITLE     Title of the generated index page")
	fmt.Println("  REGEXDOC_QUIET          Suppress progress output (true/false)")
	fmt.Println()
	fmt.Println("Each example directory needs a pattern.txt and a test_input.txt;")
	fmt.Println("description.html and a per-topic topic.yaml are optional.")
}
