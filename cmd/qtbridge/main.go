package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nicolasfella/qtbridge/internal/cli"
	"github.com/nicolasfella/qtbridge/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		configFlag    = flag.String("config", "", "Path to the project configuration file (defaults to "+cli.DefaultConfigFile+")")
		namespaceFlag = flag.String("namespace", "", "Default C++ namespace for bridge files that declare none")
		outputDirFlag = flag.String("output-dir", "", "Write all artifacts into this directory instead of next to each bridge file")
		verboseFlag   = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag     = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag     = flag.Bool("clean", false, "Delete generated artifacts from the specified directories")
		helpFlag      = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "qtbridge C++ Signal Code Generator\n")
		fmt.Fprintf(os.Stderr, "Recursively scans directories for .qbridge definitions and generates Qt signal glue code.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for bridge files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nConfiguration:\n")
		fmt.Fprintf(os.Stderr, "  Settings resolve in three layers: %s in the working directory,\n", cli.DefaultConfigFile)
		fmt.Fprintf(os.Stderr, "  then QTBRIDGE_-prefixed environment variables, then command line flags.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./src/...                              # Scan src directory recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --namespace my_app ./src               # Namespace for bridges that declare none\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --output-dir build/generated ./src     # Collect artifacts in one directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config ci/qtbridge.yaml ./src        # Explicit project configuration\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./src/...                    # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --quiet ./...                          # Minimal output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...                          # Delete generated artifacts\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Load the project file and environment, then overlay explicit flags
	config, err := cli.LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "namespace":
			config.Namespace = *namespaceFlag
		case "output-dir":
			config.OutputDir = *outputDirFlag
		case "verbose":
			config.Verbose = *verboseFlag
		case "quiet":
			config.Quiet = *quietFlag
		}
	})

	// Positional directories override configured ones
	if args := flag.Args(); len(args) > 0 {
		config.Directories = args
	}

	if len(config.Directories) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on configuration
	var diagnostics *utils.DiagnosticSystem
	if config.Quiet {
		diagnostics = utils.NewQuietDiagnostics()
	} else if config.Verbose {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	// Show startup banner
	diagnostics.Section("qtbridge Code Generator")

	// Handle clean operation
	if *cleanFlag {
		diagnostics.Info("Starting cleanup operation...")
		diagnostics.StartProgress("Cleaning generated files")

		cleaner := cli.NewCleaner()
		removed, err := cleaner.CleanGeneratedFiles(config.Directories)
		if err != nil {
			diagnostics.EndProgress(false, "")
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}

		diagnostics.EndProgress(true, "")
		if len(removed) == 0 {
			diagnostics.Info("No generated artifacts found")
			return
		}

		if config.Verbose {
			diagnostics.Subsection("Removed Files")
			for _, file := range removed {
				diagnostics.List("%s", file)
			}
		}
		diagnostics.Success("Removed %d generated artifacts", len(removed))
		return
	}

	// Show configuration
	if config.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(config.Directories, ", "))
		if config.Namespace != "" {
			diagnostics.List("Default namespace: %s", config.Namespace)
		}
		if config.OutputDir != "" {
			diagnostics.List("Output directory: %s", config.OutputDir)
		}
		diagnostics.List("Verbose mode: enabled")
	}

	// Create and configure generator
	diagnostics.StartProgress("Initializing generator")
	generator := cli.NewGeneratorWithDiagnostics(config.Verbose, diagnostics)
	diagnostics.EndProgress(true, "")

	// Run the generation process
	diagnostics.Subsection("Code Generation")

	if err := generator.Run(config); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	// Show final summary
	summary := generator.GetSummary()
	stats := map[string]interface{}{
		"Bridge files processed": summary.FilesScanned,
		"Object types":           summary.QObjects,
		"Signals bound":          summary.Signals,
		"Artifacts written":      summary.ArtifactsWritten,
	}

	diagnostics.Summary("Generation Complete!", stats)

	// Show generated files in verbose mode
	if config.Verbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.Success("Your C++ bridge is ready to build!")
}
