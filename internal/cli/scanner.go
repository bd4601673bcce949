package cli

import (
	"path/filepath"
	"strings"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/parser"
	"github.com/nicolasfella/qtbridge/internal/utils"
)

// DirectoryScanner locates bridge definition files under the requested roots
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanDirectories recursively scans the provided directories for bridge
// files. Go-style patterns like "./..." are accepted, the trees are walked
// recursively either way
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var cleanDirs []string

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			rootDir = strings.TrimSuffix(rootDir, "/...")
			if rootDir == "" {
				rootDir = "."
			}
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, errors.WrapFileSystemError("resolve", rootDir, err)
		}

		cleanDirs = append(cleanDirs, cleanPath)
	}

	return s.fileProcessor.FindFiles(cleanDirs, utils.ExtensionFileFilter(parser.BridgeFileExtension))
}

// hasBridgeFiles reports whether a directory directly contains bridge files
func (s *DirectoryScanner) hasBridgeFiles(dir string) (bool, error) {
	return s.fileProcessor.HasMatchingFiles(dir, utils.ExtensionFileFilter(parser.BridgeFileExtension))
}
