package main

import (
	"fmt"
	"os"

	"github.com/go-tkview/tkview/pkg/behavior"
	"github.com/go-tkview/tkview/pkg/pyscan"
)

// runCheck implements the check subcommand.
// It scans .py files and reports diagnostics without writing previews.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	// Parse arguments
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	// Default to current directory if no paths specified
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectPyFiles(paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .py files found")
	}

	var errorCount, skipped int
	for _, inputPath := range files {
		source, err := os.ReadFile(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
			errorCount++
			continue
		}

		if !pyscan.HasTkinterImport(string(source)) {
			if verbose {
				fmt.Printf("Skipping %s (no tkinter import)\n", inputPath)
			}
			skipped++
			continue
		}

		if !checkFile(inputPath, string(source), verbose) {
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("Checked %d file(s), skipped %d\n", len(files)-skipped, skipped)
	}

	return nil
}

// checkFile scans one source and prints its diagnostics. It returns false
// when the scan itself failed.
func checkFile(inputPath, source string, verbose bool) bool {
	scan := pyscan.Parse(source)
	for _, msg := range scan.Errors {
		fmt.Fprintf(os.Stderr, "%s: %s\n", inputPath, msg)
	}
	if scan.HasErrors {
		return false
	}

	applied := behavior.Apply(scan.Widgets)
	for _, w := range applied.Warnings {
		fmt.Printf("%s: warning: %s\n", inputPath, w)
	}

	if verbose {
		fmt.Printf("%s: %d root widget(s), %d rule(s), %d warning(s)\n",
			inputPath, len(scan.Widgets), len(applied.AppliedRules), len(applied.Warnings))
	}
	return true
}
