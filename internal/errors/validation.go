package errors

import "fmt"

// ValidationError represents a validation error with detailed context
type ValidationError struct {
	*BaseError
	Field      string      // field that failed validation
	Value      interface{} // the value that failed validation
	Expected   string      // what was expected
	Actual     string      // what was provided
	Constraint string      // the validation constraint that failed
}

// NewValidationError creates a new validation error
func NewValidationError(field, expected, actual string) *ValidationError {
	message := fmt.Sprintf("validation failed for field '%s': expected %s, got %s", field, expected, actual)

	return &ValidationError{
		BaseError: New(ValidationErrorCode, message),
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}

// NewValidationErrorWithValue creates a validation error with the actual value
func NewValidationErrorWithValue(field string, value interface{}, constraint string) *ValidationError {
	message := fmt.Sprintf("validation failed for field '%s': %s", field, constraint)

	return &ValidationError{
		BaseError:  New(ValidationErrorCode, message),
		Field:      field,
		Value:      value,
		Constraint: constraint,
	}
}

// WithLocation adds location information to the error
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithContext adds context data to the error
func (e *ValidationError) WithContext(key string, value interface{}) *ValidationError {
	e.BaseError.WithContext(key, value)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// SyntaxError represents a bridge file parsing error
type SyntaxError struct {
	*BaseError
	Token    string // the token that caused the error
	Position int    // position in the input where error occurred
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
	}
}

// NewSyntaxErrorWithToken creates a syntax error with token information
func NewSyntaxErrorWithToken(message, token string, position int) *SyntaxError {
	if token != "" {
		message = fmt.Sprintf("%s (near token '%s')", message, token)
	}

	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
		Token:     token,
		Position:  position,
	}
}

// WithToken sets the problematic token
func (e *SyntaxError) WithToken(token string) *SyntaxError {
	e.Token = token
	return e
}

// WithLocation adds location information to the error
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithContext adds context data to the error
func (e *SyntaxError) WithContext(key string, value interface{}) *SyntaxError {
	e.BaseError.WithContext(key, value)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *SyntaxError) WithSuggestion(suggestion string) *SyntaxError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// TypeResolutionError represents a failure to map a bridge type to its C++
// spelling. Signal generation surfaces these unchanged so callers can
// inspect the offending type with errors.As
type TypeResolutionError struct {
	*BaseError
	TypeName string // type expression that could not be resolved
	Signal   string // signal being generated when resolution failed
	QObject  string // owner type of that signal
}

// NewTypeResolutionError creates a new type resolution error
func NewTypeResolutionError(typeName string) *TypeResolutionError {
	message := fmt.Sprintf("unable to resolve C++ type for '%s'", typeName)

	return &TypeResolutionError{
		BaseError: New(TypeResolutionErrorCode, message),
		TypeName:  typeName,
	}
}

// WithSignal records the signal being generated when resolution failed
func (e *TypeResolutionError) WithSignal(qobject, signal string) *TypeResolutionError {
	e.QObject = qobject
	e.Signal = signal
	e.BaseError.WithContext("qobject", qobject)
	e.BaseError.WithContext("signal", signal)
	return e
}

// WithLocation adds location information to the error
func (e *TypeResolutionError) WithLocation(loc SourceLocation) *TypeResolutionError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a helpful suggestion
func (e *TypeResolutionError) WithSuggestion(suggestion string) *TypeResolutionError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// GenerationError represents an error during code generation
type GenerationError struct {
	*BaseError
	GenerationType string // type of generation (header, source, template)
	TargetFile     string // target file being generated
	Stage          string // stage of generation where error occurred
}

// NewGenerationError creates a new generation error
func NewGenerationError(message string) *GenerationError {
	return &GenerationError{
		BaseError: New(GenerationErrorCode, message),
	}
}

// NewGenerationErrorWithDetails creates a generation error with details
func NewGenerationErrorWithDetails(generationType, targetFile, stage, message string) *GenerationError {
	fullMessage := fmt.Sprintf("generation error in %s for '%s' at stage '%s': %s",
		generationType, targetFile, stage, message)

	return &GenerationError{
		BaseError:      New(GenerationErrorCode, fullMessage),
		GenerationType: generationType,
		TargetFile:     targetFile,
		Stage:          stage,
	}
}

// WithTargetFile sets the target file
func (e *GenerationError) WithTargetFile(targetFile string) *GenerationError {
	e.TargetFile = targetFile
	return e
}

// WithStage sets the generation stage
func (e *GenerationError) WithStage(stage string) *GenerationError {
	e.Stage = stage
	return e
}
