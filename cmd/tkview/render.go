package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/go-tkview/tkview/cmd/tkview/internal/config"
	"github.com/go-tkview/tkview/internal/debug"
	"github.com/go-tkview/tkview/pkg/pyscan"
	"github.com/go-tkview/tkview/pkg/render"
)

// runRender implements the render subcommand.
// It processes .py files and writes standalone HTML previews next to them.
func runRender(args []string) error {
	verbose := false
	outDir := ""
	var paths []string

	// Parse arguments
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "-o" || arg == "--out":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a directory argument", arg)
			}
			i++
			outDir = args[i]
		default:
			paths = append(paths, arg)
		}
	}

	// Default to current directory if no paths specified
	if len(paths) == 0 {
		paths = []string{"."}
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	files, err := collectPyFiles(paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .py files found")
	}
	debug.Log("render: %d candidate file(s) from %v", len(files), paths)

	if verbose {
		fmt.Printf("Found %d .py file(s)\n", len(files))
	}

	conv := render.NewConverter(cfg.Theme)

	var mu sync.Mutex
	var rendered, skipped, errorCount int

	var g errgroup.Group
	g.SetLimit(8)
	for _, inputPath := range files {
		inputPath := inputPath
		g.Go(func() error {
			source, err := os.ReadFile(inputPath)
			if err != nil {
				mu.Lock()
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				errorCount++
				mu.Unlock()
				return nil
			}

			if !pyscan.HasTkinterImport(string(source)) {
				mu.Lock()
				if verbose {
					fmt.Printf("Skipping %s (no tkinter import)\n", inputPath)
				}
				skipped++
				mu.Unlock()
				return nil
			}

			outputPath := outputFileName(inputPath, outDir)
			debug.Log("render: %s -> %s", inputPath, outputPath)
			if err := renderFile(conv, string(source), outputPath); err != nil {
				mu.Lock()
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				errorCount++
				mu.Unlock()
				return nil
			}

			mu.Lock()
			if verbose {
				fmt.Printf("Rendered %s -> %s\n", inputPath, outputPath)
			}
			rendered++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("Successfully rendered %d file(s), skipped %d\n", rendered, skipped)
	}

	return nil
}

// collectPyFiles finds all .py files from the given paths.
// Supports:
//   - Direct file paths: "app.py"
//   - Directory paths: "./gui"
//   - Recursive pattern: "./..."
func collectPyFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "." || root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".py") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Collect all .py files in directory (non-recursive)
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".py") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
	}

	return files, nil
}

// outputFileName converts a .py filename to its preview filename.
// Examples:
//
//	app.py      -> app.preview.html
//	gui/main.py -> gui/main.preview.html
//
// When outDir is set the preview is written there instead of next to
// the source.
func outputFileName(inputPath, outDir string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)

	name := strings.TrimSuffix(base, ".py")
	output := name + ".preview.html"

	if outDir != "" {
		return filepath.Join(outDir, output)
	}
	return filepath.Join(dir, output)
}

// renderFile runs the full pipeline on one source and writes a
// standalone HTML document embedding the fragment and stylesheet.
func renderFile(conv *render.Converter, source, outputPath string) error {
	scan := pyscan.Parse(source)
	result := conv.Convert(scan.Widgets)

	for _, msg := range scan.Errors {
		fmt.Fprintf(os.Stderr, "%s: %s\n", outputPath, msg)
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(os.Stderr, "%s: %s\n", outputPath, msg)
	}

	doc := buildDocument(result.HTML, result.CSS)
	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// buildDocument wraps a preview fragment and stylesheet in a minimal
// HTML document so the output opens directly in a browser.
func buildDocument(fragment, css string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<style>\n")
	b.WriteString(css)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
