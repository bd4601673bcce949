package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string, suggestions ...string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(os.Stderr, "! ")
	fmt.Fprintf(os.Stderr, "%s\n", message)
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(os.Stderr, "\nERROR: Bridge Generation Failed\n")
	fmt.Fprintf(os.Stderr, "===============================\n\n")

	r.reportErrorBody(err)

	fmt.Fprintf(os.Stderr, "\n")
}

// ReportFileError reports an error for one bridge file, naming the file even
// when the error itself carries no location
func (r *DiagnosticReporter) ReportFileError(path string, err error) {
	fmt.Fprintf(os.Stderr, "\nERROR: Bridge Generation Failed\n")
	fmt.Fprintf(os.Stderr, "===============================\n\n")
	fmt.Fprintf(os.Stderr, "Bridge file: %s\n\n", path)

	r.reportErrorBody(err)

	fmt.Fprintf(os.Stderr, "\n")
}

// reportErrorBody dispatches to the richest report the error supports.
// Collected errors unfold before the single-error checks, a MultipleErrors
// satisfies the BridgeError interface itself
func (r *DiagnosticReporter) reportErrorBody(err error) {
	var multi *errors.MultipleErrors
	if stderrors.As(err, &multi) {
		for i, sub := range multi.Errors {
			if i > 0 {
				fmt.Fprintf(os.Stderr, "---\n\n")
			}
			r.reportSingleError(sub)
		}
		return
	}

	r.reportSingleError(err)
}

// reportSingleError reports one error with as much context as it carries
func (r *DiagnosticReporter) reportSingleError(err error) {
	var bridgeErr errors.BridgeError
	if stderrors.As(err, &bridgeErr) {
		r.reportBridgeError(bridgeErr)
		return
	}

	if genErr := r.findGeneratorError(err); genErr != nil {
		r.reportGeneratorError(genErr)
		return
	}

	r.reportBasicError(err)
}

// reportBridgeError reports a BridgeError with location, context and suggestions
func (r *DiagnosticReporter) reportBridgeError(err errors.BridgeError) {
	r.printErrorHeader(errorCodeLabel(err.ErrorCode()))

	fmt.Fprintf(os.Stderr, "Message: %s\n\n", errorMessage(err))

	if r.verbose && err.Unwrap() != nil {
		fmt.Fprintf(os.Stderr, "Underlying cause: %s\n\n", err.Unwrap().Error())
	}

	if loc := err.Location(); !loc.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Location: %s\n\n", loc.String())
	}

	if context := err.Context(); len(context) > 0 {
		r.printContext(context)
	}

	if suggestions := err.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	r.printAdditionalHelp(err.ErrorCode())

	if r.verbose {
		r.printErrorChain(err.Unwrap())
	}
}

// reportGeneratorError reports a GeneratorError with full context and suggestions
func (r *DiagnosticReporter) reportGeneratorError(genErr *models.GeneratorError) {
	r.printErrorHeader(errorTypeLabel(genErr.Type))

	fmt.Fprintf(os.Stderr, "Message: %s\n\n", genErr.Message)

	if r.verbose && genErr.Cause != nil {
		fmt.Fprintf(os.Stderr, "Underlying cause: %s\n\n", genErr.Cause.Error())
	}

	if genErr.File != "" {
		if genErr.Line > 0 {
			fmt.Fprintf(os.Stderr, "Location: %s:%d\n\n", genErr.File, genErr.Line)
		} else {
			fmt.Fprintf(os.Stderr, "File: %s\n\n", genErr.File)
		}
	}

	if len(genErr.Context) > 0 {
		r.printContext(genErr.Context)
	}

	if len(genErr.Suggestions) > 0 {
		r.printSuggestions(genErr.Suggestions)
	}

	r.printAdditionalHelp(helpCode(genErr.Type))

	if r.verbose {
		r.printErrorChain(genErr.Cause)
	}
}

// reportBasicError reports a basic error without rich context
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(os.Stderr, "Message: %s\n\n", err.Error())

	errorMsg := strings.ToLower(err.Error())

	if strings.Contains(errorMsg, "parse") || strings.Contains(errorMsg, "syntax") {
		fmt.Fprintf(os.Stderr, "This appears to be a bridge syntax issue.\n")
		fmt.Fprintf(os.Stderr, "Common solutions:\n")
		fmt.Fprintf(os.Stderr, "  - Check the qobject and extern block syntax in your bridge file\n")
		fmt.Fprintf(os.Stderr, "  - Signals are declared as 'signal name(param: type)' inside a block\n")
		fmt.Fprintf(os.Stderr, "  - Options trail the declaration, like -cxx_name=\"cppName\"\n\n")
	} else if strings.Contains(errorMsg, "type") {
		fmt.Fprintf(os.Stderr, "This appears to be a type mapping issue.\n")
		fmt.Fprintf(os.Stderr, "Common solutions:\n")
		fmt.Fprintf(os.Stderr, "  - Declare custom types with a 'type' entry in the bridge file\n")
		fmt.Fprintf(os.Stderr, "  - Check spelling against the built-in type names\n")
		fmt.Fprintf(os.Stderr, "  - Register project-wide aliases in qtbridge.yaml\n\n")
	}
}

// printErrorHeader prints a formatted error header for the given error label
func (r *DiagnosticReporter) printErrorHeader(label string) {
	fmt.Fprintf(os.Stderr, "Type: %s\n", label)
	fmt.Fprintf(os.Stderr, "%s\n\n", strings.Repeat("-", len(label)+6))
}

// errorCodeLabel maps a BridgeError code to a human-readable label
func errorCodeLabel(code errors.ErrorCode) string {
	switch code {
	case errors.SyntaxErrorCode:
		return "Bridge Syntax Error"
	case errors.ValidationErrorCode:
		return "Validation Error"
	case errors.TypeResolutionErrorCode:
		return "Type Resolution Error"
	case errors.GenerationErrorCode:
		return "Code Generation Error"
	case errors.TemplateErrorCode:
		return "Template Error"
	case errors.FileSystemErrorCode:
		return "File System Error"
	case errors.ConfigurationErrorCode:
		return "Configuration Error"
	default:
		return "Unknown Error"
	}
}

// errorTypeLabel maps a GeneratorError type to a human-readable label
func errorTypeLabel(errorType models.ErrorType) string {
	switch errorType {
	case models.ErrorTypeParse:
		return "Bridge Parse Error"
	case models.ErrorTypeTypeResolution:
		return "Type Resolution Error"
	case models.ErrorTypeGeneration:
		return "Code Generation Error"
	case models.ErrorTypeConfig:
		return "Configuration Error"
	case models.ErrorTypeFileSystem:
		return "File System Error"
	default:
		return "Unknown Error"
	}
}

// helpCode maps a GeneratorError type onto the error code carrying the same
// additional help
func helpCode(errorType models.ErrorType) errors.ErrorCode {
	switch errorType {
	case models.ErrorTypeParse:
		return errors.SyntaxErrorCode
	case models.ErrorTypeTypeResolution:
		return errors.TypeResolutionErrorCode
	case models.ErrorTypeConfig:
		return errors.ConfigurationErrorCode
	case models.ErrorTypeFileSystem:
		return errors.FileSystemErrorCode
	default:
		return errors.GenerationErrorCode
	}
}

// errorMessage returns the message portion of a BridgeError without the
// location prefix the Error method prepends
func errorMessage(err errors.BridgeError) string {
	message := err.Error()
	if loc := err.Location(); !loc.IsEmpty() {
		message = strings.TrimPrefix(message, loc.String()+": ")
	}
	return message
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "Context:\n")

	// Print important context items first
	importantKeys := []string{"qobject", "signal", "type_name", "parameter", "directories"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	// Print remaining context items
	for key, value := range context {
		if !printed[key] {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", r.formatContextKey(key), value)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// formatContextKey formats context keys to be more readable
func (r *DiagnosticReporter) formatContextKey(key string) string {
	switch key {
	case "qobject":
		return "Object Type"
	case "signal":
		return "Signal"
	case "type_name":
		return "Type"
	case "parameter":
		return "Parameter"
	case "directories":
		return "Directories"
	case "expected":
		return "Expected"
	case "actual":
		return "Actual"
	default:
		// Convert snake_case to Title Case
		parts := strings.Split(key, "_")
		for i, part := range parts {
			if len(part) > 0 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, " ")
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(os.Stderr, "Suggestions:\n")

	for i, suggestion := range suggestions {
		// Format multi-line suggestions nicely
		lines := strings.Split(suggestion, "\n")
		if len(lines) == 1 {
			fmt.Fprintf(os.Stderr, "   %d. %s\n", i+1, suggestion)
		} else {
			fmt.Fprintf(os.Stderr, "   %d. %s\n", i+1, lines[0])
			for _, line := range lines[1:] {
				if strings.TrimSpace(line) != "" {
					fmt.Fprintf(os.Stderr, "      %s\n", line)
				}
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// printAdditionalHelp prints additional help based on the error code
func (r *DiagnosticReporter) printAdditionalHelp(code errors.ErrorCode) {
	switch code {
	case errors.SyntaxErrorCode:
		fmt.Fprintf(os.Stderr, "Bridge File Syntax:\n")
		fmt.Fprintf(os.Stderr, "  - Object types are declared as 'qobject Name { ... }' blocks\n")
		fmt.Fprintf(os.Stderr, "  - Signals are declared as 'signal fired(count: i32)'\n")
		fmt.Fprintf(os.Stderr, "  - Options trail a declaration, like -cxx_name=\"cppName\"\n\n")

	case errors.TypeResolutionErrorCode:
		fmt.Fprintf(os.Stderr, "Type Mapping Requirements:\n")
		fmt.Fprintf(os.Stderr, "  - Scalars like i32, f64, bool and String are built in\n")
		fmt.Fprintf(os.Stderr, "  - Custom types need a 'type Name -cxx_name=... -include=...' declaration\n")
		fmt.Fprintf(os.Stderr, "  - Project-wide aliases can live in qtbridge.yaml under 'aliases'\n\n")

	case errors.ConfigurationErrorCode:
		fmt.Fprintf(os.Stderr, "Configuration Help:\n")
		fmt.Fprintf(os.Stderr, "  - Settings load from qtbridge.yaml, QTBRIDGE_* variables, then flags\n")
		fmt.Fprintf(os.Stderr, "  - Check YAML indentation and key spelling\n")
		fmt.Fprintf(os.Stderr, "  - Aliases and types must not redefine built-in names\n\n")
	}

	// Always show general help
	fmt.Fprintf(os.Stderr, "For more help:\n")
	fmt.Fprintf(os.Stderr, "  - Check the qtbridge documentation\n")
	fmt.Fprintf(os.Stderr, "  - Run with --verbose for more detailed output\n")
	fmt.Fprintf(os.Stderr, "  - Review example bridge files in the examples/ directory\n")
}

// findGeneratorError recursively searches for a GeneratorError in wrapped errors
func (r *DiagnosticReporter) findGeneratorError(err error) *models.GeneratorError {
	if err == nil {
		return nil
	}

	if genErr, ok := err.(*models.GeneratorError); ok {
		return genErr
	}

	if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
		return r.findGeneratorError(unwrapper.Unwrap())
	}

	return nil
}

// printErrorChain prints the chain of underlying causes in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(os.Stderr, "  %d. %s\n", level, err.Error())
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			err = unwrapper.Unwrap()
			level++
		} else {
			break
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
}

// Debug prints debug information when verbose mode is enabled
func (r *DiagnosticReporter) Debug(format string, args ...interface{}) {
	if r.verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// DebugSection prints a debug section header when verbose mode is enabled
func (r *DiagnosticReporter) DebugSection(section string) {
	if r.verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] === %s ===\n", section)
	}
}

// ReportSuccess reports successful generation with summary information
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	fmt.Printf("\nBridge Generation Completed Successfully!\n")
	fmt.Printf("=========================================\n\n")

	if summary.FilesScanned > 0 {
		fmt.Printf("Processed %d bridge files\n", summary.FilesScanned)
	}

	if summary.QObjects > 0 {
		fmt.Printf("Generated %d object types\n", summary.QObjects)
	}

	if summary.Signals > 0 {
		fmt.Printf("Bound %d signals\n", summary.Signals)
	}

	if len(summary.GeneratedFiles) > 0 {
		fmt.Printf("\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Printf("  - %s\n", file)
		}
	}

	fmt.Printf("\nYour C++ bridge is ready to build!\n")
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	FilesScanned     int
	QObjects         int
	Signals          int
	ArtifactsWritten int
	FilesFailed      int
	GeneratedFiles   []string
}
