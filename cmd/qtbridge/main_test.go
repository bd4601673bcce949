package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolasfella/qtbridge/internal/generator"
)

const testBridge = `qobject Counter {
    signal count_changed(count: i32)
}
`

// buildBinary compiles the CLI into dir and returns the binary path
func buildBinary(t *testing.T, dir string) string {
	t.Helper()

	binaryPath := filepath.Join(dir, "qtbridge")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = "."
	require.NoError(t, cmd.Run(), "Failed to build CLI binary")
	return binaryPath
}

// TestCLIArgumentParsing tests the CLI argument parsing by running the binary
func TestCLIArgumentParsing(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "qtbridge_cli_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	binaryPath := buildBinary(t, tempDir)

	t.Run("help flag", func(t *testing.T) {
		cmd := exec.Command(binaryPath, "--help")
		output, err := cmd.CombinedOutput()

		// Help should exit with code 0
		assert.NoError(t, err)

		outputStr := string(output)
		assert.Contains(t, outputStr, "Usage:")
		assert.Contains(t, outputStr, "qtbridge C++ Signal Code Generator")
		assert.Contains(t, outputStr, "-namespace")
		assert.Contains(t, outputStr, "-output-dir")
		assert.Contains(t, outputStr, "directory-paths")
	})

	t.Run("no arguments", func(t *testing.T) {
		cmd := exec.Command(binaryPath)
		output, err := cmd.CombinedOutput()

		// Should exit with error code
		assert.Error(t, err)

		outputStr := string(output)
		assert.Contains(t, outputStr, "At least one directory path is required")
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		cmd := exec.Command(binaryPath, filepath.Join(tempDir, "does-not-exist"))
		output, err := cmd.CombinedOutput()

		// Should exit with error code
		assert.Error(t, err)

		outputStr := string(output)
		assert.Contains(t, outputStr, "Generation failed")
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		cmd := exec.Command(binaryPath, "--config", filepath.Join(tempDir, "nope.yaml"), ".")
		output, err := cmd.CombinedOutput()

		assert.Error(t, err)
		assert.Contains(t, string(output), "Error:")
	})
}

// TestCLIGenerateAndClean drives a full generate/clean cycle through the binary
func TestCLIGenerateAndClean(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "qtbridge_cli_e2e_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	binaryPath := buildBinary(t, tempDir)

	projectDir := filepath.Join(tempDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "counter.qbridge"), []byte(testBridge), 0644))

	headerPath := filepath.Join(projectDir, "counter.qtbridge.h")
	sourcePath := filepath.Join(projectDir, "counter.qtbridge.cpp")

	t.Run("generate", func(t *testing.T) {
		cmd := exec.Command(binaryPath, projectDir)
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		assert.Contains(t, string(output), "Generation Complete!")
		assert.FileExists(t, headerPath)
		assert.FileExists(t, sourcePath)

		header, err := os.ReadFile(headerPath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(header), generator.GeneratedFileBanner))
		assert.Contains(t, string(header), "Q_SIGNAL void countChanged(::std::int32_t count);")
	})

	t.Run("clean", func(t *testing.T) {
		cmd := exec.Command(binaryPath, "--clean", projectDir)
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "clean failed: %s", output)

		assert.Contains(t, string(output), "Removed 2 generated artifacts")
		assert.NoFileExists(t, headerPath)
		assert.NoFileExists(t, sourcePath)

		// The bridge definition itself survives
		assert.FileExists(t, filepath.Join(projectDir, "counter.qbridge"))
	})
}

// TestCLIConfigPrecedence verifies the project file, environment, flag layering
func TestCLIConfigPrecedence(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "qtbridge_cli_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	binaryPath := buildBinary(t, tempDir)

	projectDir := filepath.Join(tempDir, "project")
	require.NoError(t, os.MkdirAll(projectDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "counter.qbridge"), []byte(testBridge), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "qtbridge.yaml"), []byte("namespace: conf_ns\n"), 0644))

	headerPath := filepath.Join(projectDir, "counter.qtbridge.h")

	readHeader := func(t *testing.T) string {
		t.Helper()
		data, err := os.ReadFile(headerPath)
		require.NoError(t, err)
		return string(data)
	}

	t.Run("project file value applies", func(t *testing.T) {
		cmd := exec.Command(binaryPath, ".")
		cmd.Dir = projectDir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		assert.Contains(t, readHeader(t), "namespace conf_ns {")
	})

	t.Run("environment beats the project file", func(t *testing.T) {
		cmd := exec.Command(binaryPath, ".")
		cmd.Dir = projectDir
		cmd.Env = append(os.Environ(), "QTBRIDGE_NAMESPACE=env_ns")
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		assert.Contains(t, readHeader(t), "namespace env_ns {")
	})

	t.Run("flag beats the environment", func(t *testing.T) {
		cmd := exec.Command(binaryPath, "--namespace", "flag_ns", ".")
		cmd.Dir = projectDir
		cmd.Env = append(os.Environ(), "QTBRIDGE_NAMESPACE=env_ns")
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		assert.Contains(t, readHeader(t), "namespace flag_ns {")
	})

	t.Run("output directory flag", func(t *testing.T) {
		outDir := filepath.Join(tempDir, "generated")

		cmd := exec.Command(binaryPath, "--output-dir", outDir, ".")
		cmd.Dir = projectDir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "generation failed: %s", output)

		assert.FileExists(t, filepath.Join(outDir, "counter.qtbridge.h"))
		assert.FileExists(t, filepath.Join(outDir, "counter.qtbridge.cpp"))
	})
}
