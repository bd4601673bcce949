package qtbridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBridge = `qobject Counter {
    signal count_changed(count: i32)
    signal reset()
}
`

func writeBridge(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestGenerate(t *testing.T) {
	tempDir := t.TempDir()
	writeBridge(t, tempDir, "counter.qbridge", sampleBridge)

	result, err := Generate(Options{
		Directories: []string{tempDir},
		Namespace:   "embedded",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 0, result.FilesFailed)
	assert.Equal(t, 1, result.QObjects)
	assert.Equal(t, 2, result.Signals)
	assert.Len(t, result.GeneratedFiles, 2)

	header, err := os.ReadFile(filepath.Join(tempDir, "counter.qtbridge.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "namespace embedded {")
	assert.Contains(t, string(header), "Q_SIGNAL void countChanged(::std::int32_t count);")
}

func TestGenerate_PartialFailure(t *testing.T) {
	tempDir := t.TempDir()
	writeBridge(t, tempDir, "broken.qbridge", "qobject Broken {\n    signal oops(\n")
	writeBridge(t, tempDir, "counter.qbridge", sampleBridge)

	result, err := Generate(Options{Directories: []string{tempDir}})
	require.Error(t, err)

	// The healthy bridge still generated and the result says so
	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 1, result.FilesFailed)
	assert.Len(t, result.GeneratedFiles, 2)
	assert.FileExists(t, filepath.Join(tempDir, "counter.qtbridge.h"))
}

func TestGenerate_CustomTypes(t *testing.T) {
	tempDir := t.TempDir()
	writeBridge(t, tempDir, "palette.qbridge", `qobject Palette {
    signal color_picked(color: UniquePtr<QColor>)
}
`)

	_, err := Generate(Options{
		Directories: []string{tempDir},
		Types: map[string]TypeConfig{
			"QColor": {Include: "<QtGui/QColor>"},
		},
	})
	require.NoError(t, err)

	header, err := os.ReadFile(filepath.Join(tempDir, "palette.qtbridge.h"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "#include <QtGui/QColor>")
	assert.Contains(t, string(header), "::std::unique_ptr<QColor> color")
}

func TestClean(t *testing.T) {
	tempDir := t.TempDir()
	writeBridge(t, tempDir, "counter.qbridge", sampleBridge)

	result, err := Generate(Options{Directories: []string{tempDir}})
	require.NoError(t, err)
	require.Len(t, result.GeneratedFiles, 2)

	removed, err := Clean(tempDir)
	require.NoError(t, err)

	assert.ElementsMatch(t, result.GeneratedFiles, removed)
	assert.NoFileExists(t, filepath.Join(tempDir, "counter.qtbridge.h"))
	assert.NoFileExists(t, filepath.Join(tempDir, "counter.qtbridge.cpp"))
	assert.FileExists(t, filepath.Join(tempDir, "counter.qbridge"))
}
