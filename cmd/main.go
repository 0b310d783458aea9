// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"curp-scan/internal/config"
	"curp-scan/internal/curp"
	"curp-scan/internal/formatters"
	"curp-scan/internal/help"
	"curp-scan/internal/scanner"
	"curp-scan/internal/version"

	_ "curp-scan/internal/formatters/json"
	_ "curp-scan/internal/formatters/text"
	_ "curp-scan/internal/formatters/yaml"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Exit codes
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// cliFlags holds the parsed command line flag values.
type cliFlags struct {
	code          string
	name          string
	firstSurname  string
	secondSurname string
	fullName      string

	file      string
	recursive bool

	format     string
	outputFile string
	noColor    bool
	verbose    bool
	quiet      bool

	configFile  string
	showHelp    bool
	showVersion bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f, set := parseFlags()

	if f.showVersion {
		fmt.Println(version.Info())
		return exitOK
	}

	cfg := loadConfiguration(f.configFile)
	applyConfigDefaults(f, set, cfg)

	// Colors are pointless when output is piped or redirected.
	if f.noColor || f.outputFile != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	if f.showHelp {
		help.NewSystem(f.noColor).ShowGeneralHelp()
		return exitOK
	}

	switch {
	case f.code != "" && f.file != "":
		fmt.Fprintln(os.Stderr, "Error: -curp and -file are mutually exclusive")
		return exitUsage
	case f.code != "":
		return validateCode(f)
	case f.file != "":
		return scanFiles(f)
	default:
		help.NewSystem(f.noColor).ShowGeneralHelp()
		return exitUsage
	}
}

func parseFlags() (*cliFlags, map[string]bool) {
	f := &cliFlags{}

	flag.StringVar(&f.code, "curp", "", "The 18-character CURP to validate")
	flag.StringVar(&f.name, "name", "", "Given name to reconcile against the code")
	flag.StringVar(&f.firstSurname, "first-surname", "", "First (paternal) surname to reconcile")
	flag.StringVar(&f.secondSurname, "second-surname", "", "Second (maternal) surname to reconcile")
	flag.StringVar(&f.fullName, "full-name", "", "Full name to partition and reconcile")
	flag.StringVar(&f.file, "file", "", "File, directory, or glob pattern to scan for CURPs")
	flag.BoolVar(&f.recursive, "recursive", false, "Recursively scan directories")
	flag.StringVar(&f.format, "format", "", "Output format: text, json, yaml (default: text)")
	flag.StringVar(&f.outputFile, "output", "", "Path to output file (default: stdout)")
	flag.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&f.verbose, "verbose", false, "Display detailed information")
	flag.BoolVar(&f.quiet, "quiet", false, "Suppress summaries and progress output")
	flag.StringVar(&f.configFile, "config", "", "Path to configuration file (YAML)")
	flag.BoolVar(&f.showHelp, "help", false, "Show help information")
	flag.BoolVar(&f.showVersion, "version", false, "Show version information")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set
}

// loadConfiguration loads the configuration file or returns the defaults.
func loadConfiguration(configFile string) *config.Config {
	path := configFile
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default configuration")
		return config.DefaultConfig()
	}
	return cfg
}

// applyConfigDefaults fills in every option the user did not set explicitly
// on the command line.
func applyConfigDefaults(f *cliFlags, set map[string]bool, cfg *config.Config) {
	if !set["format"] && f.format == "" {
		f.format = cfg.Defaults.Format
	}
	if !set["no-color"] {
		f.noColor = cfg.Defaults.NoColor
	}
	if !set["verbose"] {
		f.verbose = cfg.Defaults.Verbose
	}
	if !set["quiet"] {
		f.quiet = cfg.Defaults.Quiet
	}
	if !set["recursive"] {
		f.recursive = cfg.Defaults.Recursive
	}
}

func formatterOptions(f *cliFlags) formatters.Options {
	return formatters.Options{
		NoColor: f.noColor,
		Verbose: f.verbose,
		Quiet:   f.quiet,
	}
}

// validateCode validates a single CURP with any supplied name parts.
func validateCode(f *cliFlags) int {
	var opts []curp.Option
	if f.name != "" {
		opts = append(opts, curp.WithName(f.name))
	}
	if f.firstSurname != "" {
		opts = append(opts, curp.WithFirstSurname(f.firstSurname))
	}
	if f.secondSurname != "" {
		opts = append(opts, curp.WithSecondSurname(f.secondSurname))
	}
	if f.fullName != "" {
		opts = append(opts, curp.WithFullName(f.fullName))
	}

	c, err := curp.New(f.code, opts...)
	if err != nil {
		if errors.Is(err, curp.ErrNameConflict) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitUsage
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitInvalid
	}

	output, err := formatters.ExportRecord(f.format, c.Record(), formatterOptions(f))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	return writeOutput(output, f.outputFile)
}

// scanFiles scans files for CURP candidates and reports them.
func scanFiles(f *cliFlags) int {
	matches, err := scanner.ScanPath(f.file, f.recursive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	output, err := formatters.ExportMatches(f.format, matches, formatterOptions(f))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}
	if code := writeOutput(output, f.outputFile); code != exitOK {
		return code
	}

	for _, m := range matches {
		if !m.Valid {
			return exitInvalid
		}
	}
	return exitOK
}

func writeOutput(output, path string) int {
	if path == "" {
		fmt.Println(output)
		return exitOK
	}
	if err := os.WriteFile(path, []byte(output+"\n"), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		return exitUsage
	}
	if !color.NoColor {
		color.New(color.FgGreen).Printf("Results written to %s\n", path)
	} else {
		fmt.Printf("Results written to %s\n", path)
	}
	return exitOK
}
