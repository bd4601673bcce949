// Package parser reads .qbridge declaration files into bridge metadata.
package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/models"
)

// Parser implements the BridgeParser interface
type Parser struct {
	parser *participle.Parser[bridgeFile]
}

// NewParser creates a new bridge file parser
func NewParser() *Parser {
	return &Parser{
		parser: buildBridgeParser(),
	}
}

// ParseFile parses a bridge file from disk
func (p *Parser) ParseFile(path string) (*models.BridgeMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	return p.ParseSource(path, string(data))
}

// ParseSource parses bridge declarations from a string. The filename is used
// for locations in the returned metadata and in errors
func (p *Parser) ParseSource(filename, source string) (*models.BridgeMetadata, error) {
	file, err := p.parser.ParseString(filename, source)
	if err != nil {
		return nil, convertParseError(filename, source, err)
	}

	return p.convert(filename, file)
}

// convert walks the parsed grammar tree and builds the bridge metadata,
// collecting declaration-level validation errors as it goes
func (p *Parser) convert(filename string, file *bridgeFile) (*models.BridgeMetadata, error) {
	metadata := &models.BridgeMetadata{
		Name: bridgeName(filename),
		Path: filename,
	}
	collector := errors.NewBridgeErrorCollector(0)

	for _, decl := range file.Decls {
		switch {
		case decl.Namespace != nil:
			p.convertNamespace(decl.Namespace, metadata, collector)
		case decl.Type != nil:
			p.convertType(decl.Type, filename, metadata, collector)
		case decl.Extern != nil:
			p.convertExtern(decl.Extern, filename, metadata, collector)
		case decl.QObject != nil:
			p.convertQObject(decl.QObject, filename, metadata, collector)
		}
	}

	if err := collector.ToError(); err != nil {
		return nil, err
	}

	return metadata, nil
}

// convertNamespace records the file-level namespace
func (p *Parser) convertNamespace(decl *namespaceDecl, metadata *models.BridgeMetadata, collector *errors.BridgeErrorCollector) {
	if metadata.Namespace != "" {
		collector.AddValidation("namespace", "at most one namespace declaration per file", decl.Path, location(decl.Pos), errors.NamespaceDeclaration)
		return
	}

	metadata.Namespace = decl.Path
}

// convertType records a standalone type mapping declaration
func (p *Parser) convertType(decl *typeDecl, filename string, metadata *models.BridgeMetadata, collector *errors.BridgeErrorCollector) {
	options := collectOptions(decl.Options, typeOptions, errors.TypeDeclaration, collector)

	metadata.Types = append(metadata.Types, models.TypeDecl{
		Name:      decl.Name,
		CxxName:   options[OptionCxxName],
		Namespace: options[OptionNamespace],
		Include:   options[OptionInclude],
		File:      filename,
		Line:      decl.Pos.Line,
	})
}

// convertQObject records a generated object type and its signals
func (p *Parser) convertQObject(decl *qobjectDecl, filename string, metadata *models.BridgeMetadata, collector *errors.BridgeErrorCollector) {
	options := collectOptions(decl.Options, qobjectOptions, errors.QObjectDeclaration, collector)

	base := options[OptionBase]
	if base == "" {
		base = DefaultBaseClass
	}

	qobject := models.QObjectMetadata{
		Name: models.Name{Source: decl.Name, Cxx: options[OptionCxxName]},
		Base: base,
		File: filename,
		Line: decl.Pos.Line,
	}
	for _, sig := range decl.Signals {
		qobject.Signals = append(qobject.Signals, p.convertSignal(sig, decl.Name, filename, collector))
	}

	metadata.QObjects = append(metadata.QObjects, qobject)
}

// convertExtern records a foreign type and its bridged signals
func (p *Parser) convertExtern(decl *externDecl, filename string, metadata *models.BridgeMetadata, collector *errors.BridgeErrorCollector) {
	options := collectOptions(decl.Options, externOptions, errors.ExternDeclaration, collector)

	extern := models.ExternMetadata{
		Name:      models.Name{Source: decl.Name, Cxx: options[OptionCxxName]},
		Namespace: options[OptionNamespace],
		Include:   options[OptionInclude],
		File:      filename,
		Line:      decl.Pos.Line,
	}
	for _, sig := range decl.Signals {
		extern.Signals = append(extern.Signals, p.convertSignal(sig, decl.Name, filename, collector))
	}

	metadata.Externs = append(metadata.Externs, extern)
}

// convertSignal records one signal declaration on its owner type
func (p *Parser) convertSignal(decl *signalDecl, owner, filename string, collector *errors.BridgeErrorCollector) models.ParsedSignal {
	options := collectOptions(decl.Options, signalOptions, errors.SignalDeclaration, collector)

	signal := models.ParsedSignal{
		QObject: owner,
		Name:    models.Name{Source: decl.Name, Cxx: options[OptionCxxName]},
		Mutable: !decl.Const,
		Safe:    !decl.Unsafe,
		Inherit: decl.Inherit,
		File:    filename,
		Line:    decl.Pos.Line,
	}

	seen := make(map[string]bool, len(decl.Parameters))
	for _, param := range decl.Parameters {
		if seen[param.Name] {
			collector.AddValidation("parameter", "a distinct name per parameter", param.Name, location(param.Pos), errors.SignalDeclaration)
			continue
		}
		seen[param.Name] = true

		signal.Parameters = append(signal.Parameters, models.FunctionParameter{
			Ident: param.Name,
			Type:  convertType(param.Type),
		})
	}

	return signal
}

// convertType turns a grammar type expression into its model form
func convertType(expr *typeExpr) models.Type {
	switch {
	case expr.RefMut != nil:
		return models.RefMutType(convertType(expr.RefMut))
	case expr.Ref != nil:
		return models.RefType(convertType(expr.Ref))
	case expr.PtrConst != nil:
		return models.PtrConstType(convertType(expr.PtrConst))
	case expr.PtrMut != nil:
		return models.PtrMutType(convertType(expr.PtrMut))
	}

	var args []models.Type
	for _, arg := range expr.Named.Args {
		args = append(args, convertType(arg))
	}

	return models.NamedType(expr.Named.Name, args...)
}

// optionSet lists the option names a declaration accepts
type optionSet map[string]bool

var (
	typeOptions    = optionSet{OptionCxxName: true, OptionNamespace: true, OptionInclude: true}
	qobjectOptions = optionSet{OptionBase: true, OptionCxxName: true}
	externOptions  = optionSet{OptionCxxName: true, OptionNamespace: true, OptionInclude: true}
	signalOptions  = optionSet{OptionCxxName: true}
)

// collectOptions validates a declaration's options and returns their values
// keyed by option name. Invalid options are reported and skipped
func collectOptions(opts []*option, allowed optionSet, declType errors.DeclarationType, collector *errors.BridgeErrorCollector) map[string]string {
	values := make(map[string]string)

	for _, opt := range opts {
		if !allowed[opt.Name] {
			collector.AddValidation(opt.Name, supportedOptions(allowed), "unsupported option", location(opt.Pos), declType)
			continue
		}
		if opt.Value == nil {
			collector.AddValidation(opt.Name, "a value ('-"+opt.Name+"=...')", "bare flag", location(opt.Pos), declType)
			continue
		}
		if _, seen := values[opt.Name]; seen {
			collector.AddValidation(opt.Name, "a single occurrence", "duplicate option", location(opt.Pos), declType)
			continue
		}

		values[opt.Name] = unquote(opt.Value.Text)
	}

	return values
}

// supportedOptions renders the accepted option names for error messages
func supportedOptions(allowed optionSet) string {
	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, "-"+name)
	}
	sort.Strings(names)

	return "one of " + strings.Join(names, ", ")
}

// unquote strips the surrounding quotes from a String token value. Bare
// identifier values pass through unchanged
func unquote(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		if unquoted, err := strconv.Unquote(text); err == nil {
			return unquoted
		}
		return text[1 : len(text)-1]
	}

	return text
}

// convertParseError turns a participle failure into a located syntax error
func convertParseError(filename, source string, err error) error {
	var perr participle.Error
	if stderrors.As(err, &perr) {
		pos := perr.Position()
		loc := errors.SourceLocation{File: pos.Filename, Line: pos.Line, Column: pos.Column}
		return errors.NewBridgeSyntaxError(perr.Message(), loc, declContext(source, pos.Offset))
	}

	return errors.WrapParseError(filename, err)
}

// declContext reports which declaration the parser was inside when it failed,
// so syntax errors carry targeted suggestions. It scans backwards from the
// failure offset for the nearest declaration keyword
func declContext(source string, offset int) string {
	if offset > len(source) {
		offset = len(source)
	}
	head := source[:offset]

	context := "bridge file"
	best := -1
	for _, keyword := range []string{KeywordNamespace, KeywordType, KeywordQObject, KeywordExtern, KeywordSignal} {
		if idx := lastKeywordIndex(head, keyword); idx > best {
			best = idx
			context = keyword
		}
	}

	return context
}

// lastKeywordIndex finds the last whole-word occurrence of keyword in s
func lastKeywordIndex(s, keyword string) int {
	for end := len(s); end > 0; {
		idx := strings.LastIndex(s[:end], keyword)
		if idx < 0 {
			return -1
		}
		if isWordBoundary(s, idx, len(keyword)) {
			return idx
		}
		end = idx
	}

	return -1
}

// isWordBoundary reports whether s[idx:idx+length] is not embedded in a
// larger identifier
func isWordBoundary(s string, idx, length int) bool {
	if idx > 0 && isIdentChar(s[idx-1]) {
		return false
	}
	if next := idx + length; next < len(s) && isIdentChar(s[next]) {
		return false
	}

	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// location converts a lexer position into an error source location
func location(pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{File: pos.Filename, Line: pos.Line, Column: pos.Column}
}

// bridgeName derives the bridge name from its file path
func bridgeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
