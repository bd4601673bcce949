package cli

import (
	stderrors "errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/models"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns what
// was written
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns what
// was written
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestDiagnosticReporter_ReportFileError(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	output := captureStderr(t, func() {
		reporter.ReportFileError("app/counter.qbridge", stderrors.New("boom"))
	})

	assert.Contains(t, output, "ERROR: Bridge Generation Failed")
	assert.Contains(t, output, "Bridge file: app/counter.qbridge")
	assert.Contains(t, output, "Message: boom")
}

func TestDiagnosticReporter_ReportError_BridgeError(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	err := errors.New(errors.TypeResolutionErrorCode, "unknown type 'Swatch'").
		WithLocation(errors.SourceLocation{File: "app.qbridge", Line: 3}).
		WithContext("qobject", "Counter").
		WithSuggestion("Declare the type with a 'type Swatch' entry")

	output := captureStderr(t, func() {
		reporter.ReportError(err)
	})

	assert.Contains(t, output, "Type: Type Resolution Error")
	assert.Contains(t, output, "Message: unknown type 'Swatch'")
	assert.Contains(t, output, "Location: app.qbridge:3")
	assert.Contains(t, output, "Object Type: Counter")
	assert.Contains(t, output, "1. Declare the type with a 'type Swatch' entry")
	assert.Contains(t, output, "Type Mapping Requirements:")
}

func TestDiagnosticReporter_ReportError_MultipleErrors(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	multi := errors.CollectErrors(
		errors.New(errors.SyntaxErrorCode, "first failure"),
		errors.New(errors.TypeResolutionErrorCode, "second failure"),
	)

	output := captureStderr(t, func() {
		reporter.ReportError(multi)
	})

	assert.Contains(t, output, "Message: first failure")
	assert.Contains(t, output, "Message: second failure")
	assert.Contains(t, output, "---")
}

func TestDiagnosticReporter_ReportError_GeneratorError(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	err := &models.GeneratorError{
		Type:        models.ErrorTypeConfig,
		Message:     "No bridge files found in specified directories",
		Suggestions: []string{"Try scanning parent directories"},
		Context:     map[string]interface{}{"directories": []string{"./app"}},
	}

	output := captureStderr(t, func() {
		reporter.ReportError(err)
	})

	assert.Contains(t, output, "Type: Configuration Error")
	assert.Contains(t, output, "Message: No bridge files found in specified directories")
	assert.Contains(t, output, "Directories: [./app]")
	assert.Contains(t, output, "1. Try scanning parent directories")
	assert.Contains(t, output, "Configuration Help:")
}

func TestDiagnosticReporter_ReportError_VerboseShowsCause(t *testing.T) {
	reporter := NewDiagnosticReporter(true)

	cause := stderrors.New("underlying disk failure")
	err := errors.Wrap(errors.FileSystemErrorCode, "cannot write artifact", cause)

	output := captureStderr(t, func() {
		reporter.ReportError(err)
	})

	assert.Contains(t, output, "Underlying cause: underlying disk failure")
	assert.Contains(t, output, "Error Chain:")
}

func TestDiagnosticReporter_ReportWarning(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	output := captureStderr(t, func() {
		reporter.ReportWarning("bridge file has no signals")
	})

	assert.Contains(t, output, "bridge file has no signals")
}

func TestDiagnosticReporter_Debug(t *testing.T) {
	quiet := NewDiagnosticReporter(false)
	output := captureStderr(t, func() {
		quiet.Debug("hidden %s", "detail")
	})
	assert.Empty(t, output)

	verbose := NewDiagnosticReporter(true)
	output = captureStderr(t, func() {
		verbose.Debug("shown %s", "detail")
		verbose.DebugSection("Phase")
	})
	assert.Contains(t, output, "[DEBUG] shown detail")
	assert.Contains(t, output, "[DEBUG] === Phase ===")
}

func TestDiagnosticReporter_ReportSuccess(t *testing.T) {
	reporter := NewDiagnosticReporter(false)

	summary := GenerationSummary{
		FilesScanned:     2,
		QObjects:         3,
		Signals:          5,
		ArtifactsWritten: 4,
		GeneratedFiles:   []string{"app/counter.qtbridge.h", "app/counter.qtbridge.cpp"},
	}

	output := captureStdout(t, func() {
		reporter.ReportSuccess(summary)
	})

	assert.Contains(t, output, "Bridge Generation Completed Successfully!")
	assert.Contains(t, output, "Processed 2 bridge files")
	assert.Contains(t, output, "Generated 3 object types")
	assert.Contains(t, output, "Bound 5 signals")
	assert.Contains(t, output, "app/counter.qtbridge.h")
}
