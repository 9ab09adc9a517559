package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	mdpress "github.com/ayase-lab/mdpress"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// discoverDocuments resolves files and directories into an ordered,
// duplicate-free document list. Directories are walked recursively for
// Markdown files; explicit files must carry a Markdown extension.
func discoverDocuments(inputs []string) (*mdpress.DocumentList, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	docs := mdpress.NewDocumentList()
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("reading input %s: %w", input, err)
		}

		if !info.IsDir() {
			if !isMarkdownFile(input) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, input)
			}
			addDocument(docs, input)
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !isMarkdownFile(path) {
				return nil
			}
			addDocument(docs, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return docs, nil
}

// addDocument adds a path, silently dropping duplicates.
func addDocument(docs *mdpress.DocumentList, path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	_ = docs.Add(path)
}

// isMarkdownFile reports whether the path has a Markdown extension.
func isMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}
