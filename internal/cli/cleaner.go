package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicolasfella/qtbridge/internal/generator"
	"github.com/nicolasfella/qtbridge/internal/utils"
)

// Cleaner handles cleaning up generated files
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanGeneratedFiles removes generated artifacts from the specified
// directories and returns the removed paths. Only files carrying an artifact
// suffix whose first line matches the generated-code banner are touched, so
// hand-written files that happen to share a suffix survive
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removedFiles []string

	for _, dir := range directories {
		err := c.cleanDirectory(dir, &removedFiles)
		if err != nil {
			return removedFiles, fmt.Errorf("failed to clean directory %s: %w", dir, err)
		}
	}

	return removedFiles, nil
}

// cleanDirectory cleans a single directory tree. The Go-style './...' pattern
// is accepted for symmetry with generation, cleaning recurses either way
func (c *Cleaner) cleanDirectory(dir string, removedFiles *[]string) error {
	if strings.HasSuffix(dir, "/...") {
		dir = strings.TrimSuffix(dir, "/...")
		if dir == "" {
			dir = "."
		}
	}

	return c.cleanRecursively(dir, removedFiles)
}

// cleanRecursively walks the tree rooted at dir and removes artifacts below it
func (c *Cleaner) cleanRecursively(dir string, removedFiles *[]string) error {
	// Skip if directory doesn't exist
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	descend := utils.DefaultDirectoryFilter()

	return filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			// Skip entries that disappeared or can't be accessed
			return nil
		}

		if entry.IsDir() {
			// Explicitly named roots always clean, even inside skipped trees
			if path != dir && !descend(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isArtifactName(entry.Name()) {
			return nil
		}

		generated, err := isGeneratedFile(path)
		if err != nil || !generated {
			return nil
		}

		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove file %s: %w", path, err)
		}

		*removedFiles = append(*removedFiles, path)
		return nil
	})
}

// isArtifactName reports whether a file name carries a generated-artifact suffix
func isArtifactName(name string) bool {
	return strings.HasSuffix(name, generator.GeneratedHeaderSuffix) ||
		strings.HasSuffix(name, generator.GeneratedSourceSuffix)
}

// isGeneratedFile reports whether the file's first line is the generated-code banner
func isGeneratedFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	return scanner.Text() == generator.GeneratedFileBanner, nil
}
