// Package fileops bundles the file system access used when writing generated
// artifacts: path validation, consistent error wrapping, and atomic writes
package fileops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileOps provides a unified interface for the file operations the generator
// performs, combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ReadFile reads a file and returns its contents
func (fo *FileOps) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	return content, nil
}

// WriteFileAtomic writes content through a uniquely named temporary file in
// the target directory and renames it into place. Concurrent readers never
// observe a half-written artifact, and an interrupted run leaves the previous
// artifact untouched
func (fo *FileOps) WriteFileAtomic(filePath string, content []byte, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cleanPath)
	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(cleanPath), uuid.NewString()))

	if err := os.WriteFile(tempPath, content, perm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	if err := os.Rename(tempPath, cleanPath); err != nil {
		os.Remove(tempPath)
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	return nil
}

// RemoveFile removes a file with path validation and error handling
func (fo *FileOps) RemoveFile(filePath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return err
	}

	if err := os.Remove(cleanPath); err != nil {
		return fo.errorWrapper.WrapFileRemovalError(cleanPath, err)
	}

	return nil
}

// ReadDir reads a directory with path validation and error handling
func (fo *FileOps) ReadDir(dirPath string) ([]os.DirEntry, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(dirPath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapDirectoryReadError(cleanPath, err)
	}

	return entries, nil
}

// EnsureDirectory creates a directory and any missing parents
func (fo *FileOps) EnsureDirectory(dir string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cleanPath, 0755); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}

	return nil
}

// Exists checks if a path exists using the path validator
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
