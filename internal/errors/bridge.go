package errors

import (
	"fmt"
	"strings"
)

// Bridge-file specific error types built on the unified base types

// DeclarationType represents the kind of bridge file declaration
type DeclarationType int

const (
	UnknownDeclaration DeclarationType = iota
	NamespaceDeclaration
	TypeDeclaration
	QObjectDeclaration
	ExternDeclaration
	SignalDeclaration
)

// String returns the string representation of the declaration type
func (d DeclarationType) String() string {
	switch d {
	case NamespaceDeclaration:
		return "namespace"
	case TypeDeclaration:
		return "type"
	case QObjectDeclaration:
		return "qobject"
	case ExternDeclaration:
		return "extern qobject"
	case SignalDeclaration:
		return "signal"
	default:
		return "unknown"
	}
}

// NewBridgeSyntaxError creates a syntax error specific to bridge files
func NewBridgeSyntaxError(message string, loc SourceLocation, context string) *SyntaxError {
	err := NewSyntaxError(message)
	err.WithLocation(loc)
	err.WithContext("parse_context", context)

	// Add context-aware suggestions
	suggestion := generateSyntaxSuggestion(message, context)
	if suggestion != "" {
		err.WithSuggestion(suggestion)
	}

	return err
}

// NewBridgeValidationError creates a validation error specific to bridge declarations
func NewBridgeValidationError(parameter, expected, actual string, loc SourceLocation, declType DeclarationType) *ValidationError {
	err := NewValidationError(parameter, expected, actual)
	err.WithLocation(loc)
	err.WithContext("declaration_type", declType.String())

	// Add context-aware suggestions
	suggestion := generateValidationSuggestion(parameter, expected, actual, declType)
	if suggestion != "" {
		err.WithSuggestion(suggestion)
	}

	return err
}

// BridgeErrorCollector helps collect multiple bridge file errors
type BridgeErrorCollector struct {
	*MultipleErrors
	maxErrors int
}

// NewBridgeErrorCollector creates a new error collector
func NewBridgeErrorCollector(maxErrors int) *BridgeErrorCollector {
	if maxErrors <= 0 {
		maxErrors = 100 // default maximum
	}

	return &BridgeErrorCollector{
		MultipleErrors: NewMultipleErrors(),
		maxErrors:      maxErrors,
	}
}

// AddSyntax adds a syntax error to the collection
func (c *BridgeErrorCollector) AddSyntax(message string, loc SourceLocation, context string) {
	if c.Count() >= c.maxErrors {
		return
	}

	err := NewBridgeSyntaxError(message, loc, context)
	c.Add(err)
}

// AddValidation adds a validation error to the collection
func (c *BridgeErrorCollector) AddValidation(parameter, expected, actual string, loc SourceLocation, declType DeclarationType) {
	if c.Count() >= c.maxErrors {
		return
	}

	err := NewBridgeValidationError(parameter, expected, actual, loc, declType)
	c.Add(err)
}

// ToError returns the collected errors as a single error
func (c *BridgeErrorCollector) ToError() BridgeError {
	if c.IsEmpty() {
		return nil
	}

	if c.Count() == 1 {
		return c.Errors[0]
	}

	// MultipleErrors implements BridgeError interface
	return c.MultipleErrors
}

// Context-aware error message generators with fix suggestions

// generateSyntaxSuggestion provides context-aware suggestions for syntax errors
func generateSyntaxSuggestion(msg, context string) string {
	msg = strings.ToLower(msg)
	context = strings.ToLower(context)

	switch {
	case strings.Contains(msg, "unterminated quoted string"):
		return "Make sure quoted strings are properly closed with matching quotes"
	case strings.Contains(msg, "invalid option format"):
		return "Options should be in format '-option=value' or '-flag' for boolean flags"
	case strings.Contains(msg, "unexpected token"):
		if strings.Contains(context, "signal") {
			return "Signal format: signal name(param: Type, ...) [-cxx_name=Name]"
		}
		if strings.Contains(context, "extern") {
			return "Extern format: extern qobject Name [-cxx_name=Name] [-namespace=ns] { ... }"
		}
		if strings.Contains(context, "qobject") {
			return "Object format: qobject Name [-base=QObject] { ... }"
		}
		if strings.Contains(context, "type") {
			return "Type format: type Name [-cxx_name=Name] [-namespace=ns] [-include=\"<header>\"]"
		}
		return "Check declaration syntax and option format"
	case strings.Contains(msg, "missing parameter type"):
		return "Parameters are declared as 'name: Type', for example 'count: i32'"
	default:
		return "Check bridge file syntax and refer to documentation for examples"
	}
}

// generateValidationSuggestion provides context-aware suggestions for validation errors
func generateValidationSuggestion(parameter, expected, actual string, declType DeclarationType) string {
	switch declType {
	case SignalDeclaration:
		return generateSignalValidationSuggestion(parameter, expected, actual)
	case QObjectDeclaration:
		return generateQObjectValidationSuggestion(parameter, expected, actual)
	case ExternDeclaration:
		return generateExternValidationSuggestion(parameter, expected, actual)
	case TypeDeclaration:
		return generateTypeValidationSuggestion(parameter, expected, actual)
	default:
		return fmt.Sprintf("Parameter '%s' should be %s, not '%s'", parameter, expected, actual)
	}
}

// generateSignalValidationSuggestion provides suggestions for signal declaration errors
func generateSignalValidationSuggestion(parameter, expected, actual string) string {
	switch parameter {
	case "name":
		return "Signal names use snake_case identifiers. Example: signal data_changed(...)"
	case "cxx_name":
		return "cxx_name overrides the emitted C++ name. Example: -cxx_name=dataChanged"
	case "parameter":
		return "Each parameter needs a distinct name. Example: signal moved(x: i32, y: i32)"
	default:
		return fmt.Sprintf("Signal option '%s' should be %s, got '%s'", parameter, expected, actual)
	}
}

// generateQObjectValidationSuggestion provides suggestions for qobject declaration errors
func generateQObjectValidationSuggestion(parameter, expected, actual string) string {
	switch parameter {
	case "base":
		return "base names the C++ base class. Example: -base=QAbstractListModel"
	case "name":
		return "Object names must be unique within a bridge file"
	default:
		return fmt.Sprintf("Object option '%s' should be %s, got '%s'", parameter, expected, actual)
	}
}

// generateExternValidationSuggestion provides suggestions for extern declaration errors
func generateExternValidationSuggestion(parameter, expected, actual string) string {
	switch parameter {
	case "namespace":
		return "namespace is the C++ namespace of the existing type. Example: -namespace=my::ns"
	case "include":
		return "include names the header declaring the type. Example: -include=\"<QtGui/QColor>\""
	default:
		return fmt.Sprintf("Extern option '%s' should be %s, got '%s'", parameter, expected, actual)
	}
}

// generateTypeValidationSuggestion provides suggestions for type declaration errors
func generateTypeValidationSuggestion(parameter, expected, actual string) string {
	switch parameter {
	case "cxx_name":
		return "cxx_name is the C++ spelling of the type. Example: -cxx_name=QStringList"
	case "include":
		return "include names the header declaring the type. Example: -include=\"<QtCore/QString>\""
	default:
		return fmt.Sprintf("Type option '%s' should be %s, got '%s'", parameter, expected, actual)
	}
}
