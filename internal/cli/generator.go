package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/nicolasfella/qtbridge/internal/generator"
	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/parser"
	"github.com/nicolasfella/qtbridge/internal/registry"
	"github.com/nicolasfella/qtbridge/internal/utils"
	"github.com/nicolasfella/qtbridge/internal/utils/fileops"
)

// Generator coordinates the CLI generation process: scan for bridge files,
// parse them, run C++ generation, write the artifacts
type Generator struct {
	scanner     *DirectoryScanner
	parser      parser.BridgeParser
	reporter    *DiagnosticReporter
	diagnostics *utils.DiagnosticSystem
	files       *fileops.FileOps
	parsed      *utils.Cache[string, *models.BridgeMetadata]
	summary     GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(verbose bool) *Generator {
	return &Generator{
		scanner:  NewDirectoryScanner(),
		parser:   parser.NewParser(),
		reporter: NewDiagnosticReporter(verbose),
		files:    fileops.NewFileOps(),
		parsed:   utils.NewCache[string, *models.BridgeMetadata](),
		summary:  GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// NewGeneratorWithDiagnostics creates a CLI generator wired to the given
// diagnostic system
func NewGeneratorWithDiagnostics(verbose bool, diagnostics *utils.DiagnosticSystem) *Generator {
	g := NewGenerator(verbose)
	g.diagnostics = diagnostics
	return g
}

// Generate executes the generation process for the given directories with
// default settings
func (g *Generator) Generate(directories []string) error {
	config := &Config{
		Directories: directories,
		Verbose:     g.reporter != nil && g.reporter.verbose,
	}

	return g.Run(config)
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process for the given configuration.
//
// Bridge files fail independently: a broken file is reported and counted,
// the remaining files still generate. The returned error summarizes how many
// files failed, the per-file details have already been reported
func (g *Generator) Run(config *Config) error {
	startTime := time.Now()

	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	if g.diagnostics != nil {
		g.diagnostics.Verbose("Starting bridge generation at %s", startTime.Format("15:04:05"))
		g.diagnostics.Debug("Scanning directories: %v", config.Directories)
		if config.OutputDir != "" {
			g.diagnostics.Debug("Output directory: %s", config.OutputDir)
		}
	}

	types, err := buildTypeRegistry(config)
	if err != nil {
		return err
	}

	if g.diagnostics != nil {
		g.diagnostics.StartProgress("Scanning directories for bridge files")
	}
	bridgeFiles, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		if g.diagnostics != nil {
			g.diagnostics.EndProgress(false, "")
		}
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("Failed to scan directories: %v", err),
			Cause:   err,
			Suggestions: []string{
				"Check that the specified directories exist",
				"Ensure you have read permissions for the directories",
			},
			Context: map[string]interface{}{
				"directories": config.Directories,
			},
		}
	}

	if len(bridgeFiles) == 0 {
		if g.diagnostics != nil {
			g.diagnostics.EndProgress(false, "")
			g.diagnostics.Warn("No bridge files found in specified directories")
		}
		return &models.GeneratorError{
			Type:    models.ErrorTypeConfig,
			Message: "No bridge files found in specified directories",
			Suggestions: []string{
				fmt.Sprintf("Bridge files carry the '%s' extension", parser.BridgeFileExtension),
				"Try scanning parent directories or use the './...' pattern",
			},
			Context: map[string]interface{}{
				"directories": config.Directories,
			},
		}
	}

	if g.diagnostics != nil {
		g.diagnostics.EndProgress(true, "")
		g.diagnostics.Info("Found %d bridge files to process", len(bridgeFiles))
		g.diagnostics.Indent()
		for _, file := range bridgeFiles {
			g.diagnostics.List("%s", file)
		}
		g.diagnostics.Unindent()
	}

	g.summary.FilesScanned = len(bridgeFiles)

	codeGenerator := generator.NewGeneratorWithRegistry(types).
		WithExtraIncludes(config.Includes...)

	for _, file := range bridgeFiles {
		if err := g.processBridgeFile(codeGenerator, config, file); err != nil {
			g.summary.FilesFailed++
			g.reporter.ReportFileError(file, err)
		}
	}

	if g.diagnostics != nil {
		g.diagnostics.Verbose("Generation finished in %v", time.Since(startTime))
	}

	if g.summary.FilesFailed > 0 {
		return &models.GeneratorError{
			Type: models.ErrorTypeGeneration,
			Message: fmt.Sprintf("%d of %d bridge files failed",
				g.summary.FilesFailed, g.summary.FilesScanned),
			Suggestions: []string{
				"Fix the reported bridge files and rerun",
			},
		}
	}

	return nil
}

// processBridgeFile runs the parse/generate/write pipeline for one bridge
// file. Parses are cached against the file's modification time, so unchanged
// files skip straight to generation on repeated runs
func (g *Generator) processBridgeFile(codeGenerator generator.BridgeGenerator, config *Config, path string) error {
	bridge, cached := g.parsed.GetWithFileValidation(path, path)
	if !cached {
		var err error
		bridge, err = g.parser.ParseFile(path)
		if err != nil {
			return err
		}

		// The cache is advisory, a failed store only costs a reparse
		_ = g.parsed.SetWithFileInfo(path, bridge, path)
	} else if g.diagnostics != nil {
		g.diagnostics.Debug("Using cached parse for %s", path)
	}

	unit, err := codeGenerator.GenerateBridge(applyConfig(config, bridge))
	if err != nil {
		return err
	}

	return g.writeUnit(config, path, unit)
}

// writeUnit writes a generated header/source pair. With an output directory
// configured the artifacts land there, otherwise next to the bridge file
func (g *Generator) writeUnit(config *Config, bridgePath string, unit *models.GeneratedUnit) error {
	dir := filepath.Dir(bridgePath)
	if config.OutputDir != "" {
		dir = config.OutputDir
		if err := g.files.EnsureDirectory(dir); err != nil {
			return err
		}
	}

	headerPath := filepath.Join(dir, unit.HeaderPath)
	sourcePath := filepath.Join(dir, unit.SourcePath)

	if err := g.files.WriteFileAtomic(headerPath, []byte(unit.Header), 0644); err != nil {
		return err
	}
	if err := g.files.WriteFileAtomic(sourcePath, []byte(unit.Source), 0644); err != nil {
		return err
	}

	if g.diagnostics != nil {
		g.diagnostics.PhaseProgress(fmt.Sprintf("Writing %s", headerPath))
		g.diagnostics.PhaseProgress(fmt.Sprintf("Writing %s", sourcePath))
	}

	g.summary.QObjects += unit.QObjects
	g.summary.Signals += unit.Signals
	g.summary.ArtifactsWritten += 2
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, headerPath, sourcePath)

	return nil
}

// applyConfig overlays project configuration onto a parsed bridge without
// mutating the cached metadata. Declarations inside the bridge file stay
// authoritative: config types are prepended, so the file's own declarations
// overwrite them when both name the same type
func applyConfig(config *Config, bridge *models.BridgeMetadata) *models.BridgeMetadata {
	if config.Namespace == "" && len(config.Types) == 0 {
		return bridge
	}

	merged := *bridge
	if merged.Namespace == "" {
		merged.Namespace = config.Namespace
	}

	if len(config.Types) > 0 {
		decls := make([]models.TypeDecl, 0, len(config.Types)+len(bridge.Types))
		for _, name := range sortedTypeNames(config.Types) {
			tc := config.Types[name]
			decls = append(decls, models.TypeDecl{
				Name:      name,
				CxxName:   tc.CxxName,
				Namespace: tc.Namespace,
				Include:   tc.Include,
			})
		}
		merged.Types = append(decls, bridge.Types...)
	}

	return &merged
}

// sortedTypeNames returns the configured type names in a stable order
func sortedTypeNames(types map[string]TypeConfig) []string {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildTypeRegistry seeds a type registry with the alias table from the
// configuration. Aliases register in name order so duplicate detection does
// not depend on map iteration
func buildTypeRegistry(config *Config) (*registry.TypeRegistry, error) {
	types := registry.NewTypeRegistry()

	names := make([]string, 0, len(config.Aliases))
	for name := range config.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := types.RegisterScalar(name, config.Aliases[name]); err != nil {
			return nil, err
		}
	}

	return types, nil
}
