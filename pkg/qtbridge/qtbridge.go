// Package qtbridge embeds the bridge generator in other Go tools. It mirrors
// the qtbridge command: scan directories for .qbridge definitions, generate
// the C++ signal glue, clean it up again.
package qtbridge

import (
	"github.com/nicolasfella/qtbridge/internal/cli"
)

// TypeConfig declares how one bridge-side type name maps to C++
type TypeConfig struct {
	CxxName   string // C++ spelling, empty keeps the bridge name
	Namespace string // C++ namespace the type lives in
	Include   string // header declaring the type
}

// Options configures a generation run
type Options struct {
	// Directories lists the scan roots for bridge files. Go-style './...'
	// patterns are accepted
	Directories []string

	// OutputDir collects all artifacts in one directory. Empty writes each
	// artifact next to its bridge file
	OutputDir string

	// Namespace applies to bridge files that declare no namespace of their own
	Namespace string

	// Includes are extra include directives for every generated header
	Includes []string

	// Types maps bridge-side type names to their C++ renderings. Declarations
	// inside a bridge file win over these on conflict
	Types map[string]TypeConfig

	// Aliases registers additional scalar spellings with the type registry
	Aliases map[string]string

	// Verbose enables detailed diagnostics on the standard streams
	Verbose bool
}

// Result summarizes a generation run
type Result struct {
	FilesScanned   int      // bridge files found
	FilesFailed    int      // bridge files that failed to generate
	QObjects       int      // object types generated
	Signals        int      // signals bound
	GeneratedFiles []string // paths of the written artifacts
}

// Generate runs the generator over the configured directories. Bridge files
// fail independently, so on error the result still describes everything that
// did generate
func Generate(opts Options) (*Result, error) {
	config := &cli.Config{
		Directories: opts.Directories,
		OutputDir:   opts.OutputDir,
		Namespace:   opts.Namespace,
		Includes:    opts.Includes,
		Aliases:     opts.Aliases,
		Verbose:     opts.Verbose,
	}
	if len(opts.Types) > 0 {
		config.Types = make(map[string]cli.TypeConfig, len(opts.Types))
		for name, tc := range opts.Types {
			config.Types[name] = cli.TypeConfig{
				CxxName:   tc.CxxName,
				Namespace: tc.Namespace,
				Include:   tc.Include,
			}
		}
	}

	generator := cli.NewGenerator(opts.Verbose)
	err := generator.Run(config)

	summary := generator.GetSummary()
	result := &Result{
		FilesScanned:   summary.FilesScanned,
		FilesFailed:    summary.FilesFailed,
		QObjects:       summary.QObjects,
		Signals:        summary.Signals,
		GeneratedFiles: summary.GeneratedFiles,
	}

	return result, err
}

// Clean removes generated artifacts under the given directories and returns
// the removed paths. Only files written by the generator are touched
func Clean(directories ...string) ([]string, error) {
	return cli.NewCleaner().CleanGeneratedFiles(directories)
}
