// Package generator assembles the C++ artifacts for parsed bridge files.
//
// The cpp subpackage renders the per-signal fragments; this package stitches
// them into complete header and source files. Emitted bytes are a function of
// the bridge metadata alone: iteration follows declaration order, include
// lists are sorted, and nothing environment-dependent is written
package generator

import (
	stderrors "errors"
	"sort"
	"strings"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/generator/cpp"
	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/naming"
	"github.com/nicolasfella/qtbridge/internal/registry"
)

// GeneratedFileBanner marks files written by this tool. The cleaner relies
// on it to tell generated artifacts from hand-written ones
const GeneratedFileBanner = "// Code generated by qtbridge. DO NOT EDIT."

// defaultIncludes are needed by every generated file: the connect machinery,
// the closure types, and the lock guard
var defaultIncludes = []string{
	"<QtCore/QMetaObject>",
	"<QtCore/QObject>",
	"rust/cxx.h",
	"rust/cxxqtlib1.h",
}

// Generator implements the BridgeGenerator interface
type Generator struct {
	types         *registry.TypeRegistry
	extraIncludes []string
}

// NewGenerator creates a generator backed by the built-in type registry
func NewGenerator() *Generator {
	return &Generator{
		types: registry.NewTypeRegistry(),
	}
}

// NewGeneratorWithRegistry creates a generator backed by a caller-provided
// type registry, typically one seeded from configuration
func NewGeneratorWithRegistry(types *registry.TypeRegistry) *Generator {
	return &Generator{
		types: types,
	}
}

// WithExtraIncludes adds include directives emitted into every generated
// header, on top of the defaults
func (g *Generator) WithExtraIncludes(includes ...string) *Generator {
	g.extraIncludes = append(g.extraIncludes, includes...)
	return g
}

// TypeRegistry exposes the registry backing this generator
func (g *Generator) TypeRegistry() *registry.TypeRegistry {
	return g.types
}

// GenerateBridge generates the header/source pair for one bridge file.
//
// Signals that fail to generate do not abort the rest of the bridge: every
// failure is collected and reported together. A bridge with any failure
// produces no artifacts, partial output never reaches disk
func (g *Generator) GenerateBridge(bridge *models.BridgeMetadata) (*models.GeneratedUnit, error) {
	mappings := models.BuildTypeMappings(bridge)

	var classes []classSection
	var frees []cpp.Fragment
	var failures *errors.MultipleErrors

	for i := range bridge.QObjects {
		qobject := &bridge.QObjects[i]
		className := naming.TypeName(qobject.Name)

		blocks, err := cpp.GenerateSignals(qobject.Signals, className, mappings, g.types)
		if err != nil {
			collectFailures(&failures, err)
		}

		classes = append(classes, classSection{
			Name:      className,
			Base:      qobject.Base,
			Fragments: blocks.Methods,
		})
	}

	for i := range bridge.Externs {
		extern := &bridge.Externs[i]
		for j := range extern.Signals {
			fragment, err := cpp.GenerateFreeSignal(&extern.Signals[j], mappings, g.types)
			if err != nil {
				collectFailures(&failures, err)
				continue
			}
			frees = append(frees, fragment)
		}
	}

	if failures != nil {
		if failures.Count() == 1 {
			return nil, failures.Errors[0]
		}
		return nil, failures
	}

	unit := &models.GeneratedUnit{
		BridgeName: bridge.Name,
		HeaderPath: HeaderFileName(bridge.Name),
		SourcePath: SourceFileName(bridge.Name),
		QObjects:   len(bridge.QObjects),
		Signals:    bridge.SignalCount(),
	}
	unit.Header = g.buildHeader(bridge, mappings, classes, frees)
	unit.Source = g.buildSource(bridge, unit.HeaderPath, classes, frees)

	return unit, nil
}

// Artifact name suffixes, shared with the cleaner
const (
	GeneratedHeaderSuffix = ".qtbridge.h"
	GeneratedSourceSuffix = ".qtbridge.cpp"
)

// HeaderFileName returns the header artifact name for a bridge
func HeaderFileName(bridgeName string) string {
	return bridgeName + GeneratedHeaderSuffix
}

// SourceFileName returns the source artifact name for a bridge
func SourceFileName(bridgeName string) string {
	return bridgeName + GeneratedSourceSuffix
}

// classSection holds everything needed to emit one generated class shell
type classSection struct {
	Name      string
	Base      string
	Fragments []cpp.Fragment
}

// buildHeader assembles the header file: banner, pragma, include groups,
// namespace, class shells, then free connect declarations
func (g *Generator) buildHeader(bridge *models.BridgeMetadata, mappings *models.TypeMappings, classes []classSection, frees []cpp.Fragment) string {
	angle, quoted := g.collectIncludes(bridge, mappings)

	var paragraphs []string
	paragraphs = append(paragraphs, GeneratedFileBanner+"\n#pragma once")
	if len(angle) > 0 {
		paragraphs = append(paragraphs, formatIncludes(angle))
	}
	if len(quoted) > 0 {
		paragraphs = append(paragraphs, formatIncludes(quoted))
	}
	if bridge.Namespace != "" {
		paragraphs = append(paragraphs, "namespace "+bridge.Namespace+" {")
	}
	for _, class := range classes {
		paragraphs = append(paragraphs, renderClass(class))
	}
	for _, fragment := range frees {
		paragraphs = append(paragraphs, strings.TrimSuffix(fragment.Header, "\n"))
	}
	if bridge.Namespace != "" {
		paragraphs = append(paragraphs, "} // namespace "+bridge.Namespace)
	}

	return strings.Join(paragraphs, "\n\n") + "\n"
}

// buildSource assembles the source file: banner, header include, namespace,
// then every definition in generation order, member connects before free ones
func (g *Generator) buildSource(bridge *models.BridgeMetadata, headerPath string, classes []classSection, frees []cpp.Fragment) string {
	var paragraphs []string
	paragraphs = append(paragraphs, GeneratedFileBanner)
	paragraphs = append(paragraphs, `#include "`+headerPath+`"`)
	if bridge.Namespace != "" {
		paragraphs = append(paragraphs, "namespace "+bridge.Namespace+" {")
	}
	for _, class := range classes {
		for _, fragment := range class.Fragments {
			if !fragment.IsPair() {
				continue
			}
			paragraphs = append(paragraphs, strings.TrimSuffix(fragment.Source, "\n"))
		}
	}
	for _, fragment := range frees {
		paragraphs = append(paragraphs, strings.TrimSuffix(fragment.Source, "\n"))
	}
	if bridge.Namespace != "" {
		paragraphs = append(paragraphs, "} // namespace "+bridge.Namespace)
	}

	return strings.Join(paragraphs, "\n\n") + "\n"
}

// renderClass emits the class shell with each member fragment's declaration
// indented one level
func renderClass(class classSection) string {
	var builder strings.Builder

	builder.WriteString("class " + class.Name + " : public " + class.Base + "\n")
	builder.WriteString("{\n")
	builder.WriteString("    Q_OBJECT\n")
	builder.WriteString("\n")
	builder.WriteString("public:\n")
	for _, fragment := range class.Fragments {
		builder.WriteString(indentLines(fragment.Header, "    "))
	}
	builder.WriteString("};")

	return builder.String()
}

// collectIncludes gathers the include directives for a bridge: the defaults,
// generator-level extras, and the declared includes of every referenced type.
// Directives are split into angle-bracket and quoted groups, each sorted
func (g *Generator) collectIncludes(bridge *models.BridgeMetadata, mappings *models.TypeMappings) (angle, quoted []string) {
	seen := make(map[string]bool)
	add := func(include string) {
		if include == "" || seen[include] {
			return
		}
		seen[include] = true

		if strings.HasPrefix(include, "<") {
			angle = append(angle, include)
		} else {
			quoted = append(quoted, include)
		}
	}

	for _, include := range defaultIncludes {
		add(include)
	}
	for _, include := range g.extraIncludes {
		add(include)
	}
	for _, name := range referencedTypes(bridge) {
		if include, ok := mappings.Include(name); ok {
			add(include)
		}
	}

	sort.Strings(angle)
	sort.Strings(quoted)

	return angle, quoted
}

// referencedTypes lists every type name a bridge file mentions: signal
// parameter types, foreign owner types, and base classes
func referencedTypes(bridge *models.BridgeMetadata) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	var walk func(t models.Type)
	walk = func(t models.Type) {
		if t.Elem != nil {
			walk(*t.Elem)
			return
		}
		add(t.Name)
		for _, arg := range t.Args {
			walk(arg)
		}
	}

	for _, qobject := range bridge.QObjects {
		add(qobject.Base)
		for _, signal := range qobject.Signals {
			for _, param := range signal.Parameters {
				walk(param.Type)
			}
		}
	}
	for _, extern := range bridge.Externs {
		add(extern.Name.Source)
		for _, signal := range extern.Signals {
			for _, param := range signal.Parameters {
				walk(param.Type)
			}
		}
	}

	return names
}

// formatIncludes renders include directives one per line, without a trailing
// newline
func formatIncludes(includes []string) string {
	lines := make([]string, 0, len(includes))
	for _, include := range includes {
		if strings.HasPrefix(include, "<") {
			lines = append(lines, "#include "+include)
		} else {
			lines = append(lines, `#include "`+include+`"`)
		}
	}

	return strings.Join(lines, "\n")
}

// indentLines prefixes every non-empty line of text and normalizes the
// result to end with a newline
func indentLines(text, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	var builder strings.Builder
	for _, line := range lines {
		if line == "" {
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(prefix + line + "\n")
	}

	return builder.String()
}

// collectFailures folds one generation failure, possibly already a
// collection, into the bridge-level failure set
func collectFailures(failures **errors.MultipleErrors, err error) {
	var multiple *errors.MultipleErrors
	if stderrors.As(err, &multiple) {
		for _, inner := range multiple.Errors {
			errors.AddToMultiple(failures, inner)
		}
		return
	}

	var bridgeErr errors.BridgeError
	if !stderrors.As(err, &bridgeErr) {
		bridgeErr = errors.Wrap(errors.GenerationErrorCode, err.Error(), err)
	}
	errors.AddToMultiple(failures, bridgeErr)
}
