package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicolasfella/qtbridge/internal/errors"
)

// FileProcessor provides utilities for locating bridge definition files
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, entry os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be descended into
type DirectoryFilter func(path string, entry os.DirEntry) bool

// ExtensionFileFilter filters for regular files carrying the given extension
func ExtensionFileFilter(extension string) FileFilter {
	return func(path string, entry os.DirEntry) bool {
		if entry.IsDir() {
			return false
		}

		return strings.HasSuffix(entry.Name(), extension)
	}
}

// DefaultDirectoryFilter skips directories that never hold bridge definitions
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"node_modules": true,
		".git":         true,
		".svn":         true,
		".hg":          true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, entry os.DirEntry) bool {
		if !entry.IsDir() {
			return true
		}

		name := entry.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// FindFiles recursively collects the files accepted by the filter under each
// root directory. Entries are visited in directory order, so repeated runs
// over the same tree return the same list
func (fp *FileProcessor) FindFiles(rootDirs []string, filter FileFilter) ([]string, error) {
	var matched []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		files, err := fp.findFilesRecursive(rootDir, filter, visited)
		if err != nil {
			return nil, err
		}
		matched = append(matched, files...)
	}

	return matched, nil
}

// findFilesRecursive scans a single directory tree
func (fp *FileProcessor) findFilesRecursive(dir string, filter FileFilter, visited map[string]bool) ([]string, error) {
	// Resolve the absolute path so trees reachable through more than one root
	// are only scanned once
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("resolve", dir, err)
	}

	if visited[absDir] {
		return nil, nil
	}
	visited[absDir] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("read directory", dir, err).
			WithSuggestion(fmt.Sprintf("Check that '%s' exists and is readable", dir))
	}

	directoryFilter := DefaultDirectoryFilter()

	var matched []string
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if !directoryFilter(entryPath, entry) {
				continue
			}

			subMatches, err := fp.findFilesRecursive(entryPath, filter, visited)
			if err != nil {
				return nil, err
			}
			matched = append(matched, subMatches...)
			continue
		}

		if filter(entryPath, entry) {
			matched = append(matched, entryPath)
		}
	}

	return matched, nil
}

// HasMatchingFiles checks whether a directory directly contains a file
// accepted by the filter, without descending into subdirectories
func (fp *FileProcessor) HasMatchingFiles(dir string, filter FileFilter) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, errors.WrapFileSystemError("read directory", dir, err)
	}

	for _, entry := range entries {
		if filter(filepath.Join(dir, entry.Name()), entry) {
			return true, nil
		}
	}

	return false, nil
}
