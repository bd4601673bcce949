package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/models"
)

func TestParser_ParseSource(t *testing.T) {
	p := NewParser()

	source := `// Bridge declarations for the color demo
namespace my::ns

type A -cxx_name=A1
type QColor -include="<QtGui/QColor>"

qobject MyObject {
	signal data_changed(trivial: i32, opaque: UniquePtr<QColor>) -cxx_name=dataChanged
	inherit signal base_name()
	unsafe signal raw_frame(frame: *mut QImage)
}

extern qobject ObjRust -cxx_name=ObjCpp -namespace=mynamespace {
	signal signal_rust_name() -cxx_name=signalCxxName
}
`

	metadata, err := p.ParseSource("app.qbridge", source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := &models.BridgeMetadata{
		Name:      "app",
		Path:      "app.qbridge",
		Namespace: "my::ns",
		Types: []models.TypeDecl{
			{Name: "A", CxxName: "A1", File: "app.qbridge", Line: 4},
			{Name: "QColor", Include: "<QtGui/QColor>", File: "app.qbridge", Line: 5},
		},
		QObjects: []models.QObjectMetadata{
			{
				Name: models.Name{Source: "MyObject"},
				Base: "QObject",
				Signals: []models.ParsedSignal{
					{
						QObject: "MyObject",
						Name:    models.Name{Source: "data_changed", Cxx: "dataChanged"},
						Parameters: []models.FunctionParameter{
							{Ident: "trivial", Type: models.NamedType("i32")},
							{Ident: "opaque", Type: models.NamedType("UniquePtr", models.NamedType("QColor"))},
						},
						Mutable: true,
						Safe:    true,
						File:    "app.qbridge",
						Line:    8,
					},
					{
						QObject: "MyObject",
						Name:    models.Name{Source: "base_name"},
						Mutable: true,
						Safe:    true,
						Inherit: true,
						File:    "app.qbridge",
						Line:    9,
					},
					{
						QObject: "MyObject",
						Name:    models.Name{Source: "raw_frame"},
						Parameters: []models.FunctionParameter{
							{Ident: "frame", Type: models.PtrMutType(models.NamedType("QImage"))},
						},
						Mutable: true,
						File:    "app.qbridge",
						Line:    10,
					},
				},
				File: "app.qbridge",
				Line: 7,
			},
		},
		Externs: []models.ExternMetadata{
			{
				Name:      models.Name{Source: "ObjRust", Cxx: "ObjCpp"},
				Namespace: "mynamespace",
				Signals: []models.ParsedSignal{
					{
						QObject: "ObjRust",
						Name:    models.Name{Source: "signal_rust_name", Cxx: "signalCxxName"},
						Mutable: true,
						Safe:    true,
						File:    "app.qbridge",
						Line:    14,
					},
				},
				File: "app.qbridge",
				Line: 13,
			},
		},
	}

	if !reflect.DeepEqual(metadata, expected) {
		t.Errorf("parsed metadata mismatch:\ngot:      %+v\nexpected: %+v", metadata, expected)
	}

	if count := metadata.SignalCount(); count != 4 {
		t.Errorf("expected 4 signals, got %d", count)
	}
}

func TestParser_ParseSource_TypeExpressions(t *testing.T) {
	tests := []struct {
		name     string
		typeText string
		expected models.Type
	}{
		{
			name:     "bare primitive",
			typeText: "i32",
			expected: models.NamedType("i32"),
		},
		{
			name:     "generic wrapper",
			typeText: "UniquePtr<QColor>",
			expected: models.NamedType("UniquePtr", models.NamedType("QColor")),
		},
		{
			name:     "nested generics",
			typeText: "Vec<Vec<i32>>",
			expected: models.NamedType("Vec", models.NamedType("Vec", models.NamedType("i32"))),
		},
		{
			name:     "two generic arguments",
			typeText: "Map<QString, i32>",
			expected: models.NamedType("Map", models.NamedType("QString"), models.NamedType("i32")),
		},
		{
			name:     "string view reference",
			typeText: "&str",
			expected: models.RefType(models.NamedType("str")),
		},
		{
			name:     "shared reference to generic",
			typeText: "&UniquePtr<QColor>",
			expected: models.RefType(models.NamedType("UniquePtr", models.NamedType("QColor"))),
		},
		{
			name:     "mutable reference",
			typeText: "&mut MyObject",
			expected: models.RefMutType(models.NamedType("MyObject")),
		},
		{
			name:     "const pointer",
			typeText: "*const QImage",
			expected: models.PtrConstType(models.NamedType("QImage")),
		},
		{
			name:     "mutable pointer",
			typeText: "*mut QImage",
			expected: models.PtrMutType(models.NamedType("QImage")),
		},
		{
			name:     "pinned mutable reference",
			typeText: "Pin<&mut MyObject>",
			expected: models.NamedType("Pin", models.RefMutType(models.NamedType("MyObject"))),
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := "qobject Owner {\n\tsignal check(value: " + tt.typeText + ")\n}\n"

			metadata, err := p.ParseSource("types.qbridge", source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(metadata.QObjects) != 1 || len(metadata.QObjects[0].Signals) != 1 {
				t.Fatalf("expected one qobject with one signal, got %+v", metadata)
			}

			params := metadata.QObjects[0].Signals[0].Parameters
			if len(params) != 1 {
				t.Fatalf("expected one parameter, got %d", len(params))
			}
			if !reflect.DeepEqual(params[0].Type, tt.expected) {
				t.Errorf("type mismatch for %q:\ngot:      %#v\nexpected: %#v", tt.typeText, params[0].Type, tt.expected)
			}
		})
	}
}

func TestParser_ParseSource_SignalModifiers(t *testing.T) {
	tests := []struct {
		name        string
		declaration string
		mutable     bool
		safe        bool
		inherit     bool
	}{
		{
			name:        "plain signal",
			declaration: "signal plain()",
			mutable:     true,
			safe:        true,
		},
		{
			name:        "const signal",
			declaration: "const signal frozen()",
			safe:        true,
		},
		{
			name:        "unsafe signal",
			declaration: "unsafe signal raw()",
			mutable:     true,
		},
		{
			name:        "inherit signal",
			declaration: "inherit signal existing()",
			mutable:     true,
			safe:        true,
			inherit:     true,
		},
		{
			name:        "const unsafe inherit signal",
			declaration: "const unsafe inherit signal odd()",
			inherit:     true,
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := "qobject Owner {\n\t" + tt.declaration + "\n}\n"

			metadata, err := p.ParseSource("modifiers.qbridge", source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			signal := metadata.QObjects[0].Signals[0]
			if signal.Mutable != tt.mutable {
				t.Errorf("Mutable = %v, expected %v", signal.Mutable, tt.mutable)
			}
			if signal.Safe != tt.safe {
				t.Errorf("Safe = %v, expected %v", signal.Safe, tt.safe)
			}
			if signal.Inherit != tt.inherit {
				t.Errorf("Inherit = %v, expected %v", signal.Inherit, tt.inherit)
			}
		})
	}
}

func TestParser_ParseSource_SyntaxError(t *testing.T) {
	p := NewParser()

	source := "qobject Broken {\n\tsignal oops(x: i32\n}\n"

	_, err := p.ParseSource("broken.qbridge", source)
	if err == nil {
		t.Fatal("expected a syntax error, got none")
	}

	var syntaxErr *errors.SyntaxError
	if !stderrors.As(err, &syntaxErr) {
		t.Fatalf("expected a SyntaxError, got %T: %v", err, err)
	}
	if syntaxErr.Location().File != "broken.qbridge" {
		t.Errorf("expected location file 'broken.qbridge', got %q", syntaxErr.Location().File)
	}
	if syntaxErr.Location().Line < 2 {
		t.Errorf("expected the location to point into the signal, got line %d", syntaxErr.Location().Line)
	}
	if len(syntaxErr.Suggestions()) == 0 {
		t.Error("expected the syntax error to carry a suggestion")
	}
}

func TestParser_ParseSource_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		field  string
	}{
		{
			name:   "unsupported type option",
			source: "type A -bogus=x\n",
			field:  "bogus",
		},
		{
			name:   "option without value",
			source: "type A -cxx_name\n",
			field:  "cxx_name",
		},
		{
			name:   "duplicate option",
			source: "type A -cxx_name=A1 -cxx_name=A2\n",
			field:  "cxx_name",
		},
		{
			name:   "second namespace declaration",
			source: "namespace one\nnamespace two\n",
			field:  "namespace",
		},
		{
			name:   "unsupported signal option",
			source: "qobject O {\n\tsignal s() -base=QObject\n}\n",
			field:  "base",
		},
		{
			name:   "duplicate signal parameter",
			source: "qobject O {\n\tsignal s(a: i32, a: i32)\n}\n",
			field:  "parameter",
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseSource("invalid.qbridge", tt.source)
			if err == nil {
				t.Fatal("expected a validation error, got none")
			}

			var validationErr *errors.ValidationError
			if !stderrors.As(err, &validationErr) {
				t.Fatalf("expected a ValidationError, got %T: %v", err, err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, validationErr.Field)
			}
			if validationErr.Location().IsEmpty() {
				t.Error("expected the validation error to carry a location")
			}
		})
	}
}

func TestParser_ParseSource_CollectsMultipleValidationErrors(t *testing.T) {
	p := NewParser()

	source := "type A -bogus=x\ntype B -wrong=y\n"

	_, err := p.ParseSource("invalid.qbridge", source)
	if err == nil {
		t.Fatal("expected validation errors, got none")
	}

	var multiple *errors.MultipleErrors
	if !stderrors.As(err, &multiple) {
		t.Fatalf("expected MultipleErrors, got %T: %v", err, err)
	}
	if multiple.Count() != 2 {
		t.Errorf("expected 2 collected errors, got %d", multiple.Count())
	}
}

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.qbridge")

	source := "namespace demo\n\nqobject Demo {\n\tsignal ready()\n}\n"
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("failed to write bridge file: %v", err)
	}

	p := NewParser()
	metadata, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metadata.Name != "demo" {
		t.Errorf("expected bridge name 'demo', got %q", metadata.Name)
	}
	if metadata.Path != path {
		t.Errorf("expected bridge path %q, got %q", path, metadata.Path)
	}
	if metadata.Namespace != "demo" {
		t.Errorf("expected namespace 'demo', got %q", metadata.Namespace)
	}
	if len(metadata.QObjects) != 1 {
		t.Fatalf("expected one qobject, got %d", len(metadata.QObjects))
	}
	if metadata.QObjects[0].File != path {
		t.Errorf("expected qobject location file %q, got %q", path, metadata.QObjects[0].File)
	}
}

func TestParser_ParseFile_Missing(t *testing.T) {
	p := NewParser()

	_, err := p.ParseFile(filepath.Join(t.TempDir(), "missing.qbridge"))
	if err == nil {
		t.Fatal("expected an error for a missing file, got none")
	}

	var bridgeErr errors.BridgeError
	if !stderrors.As(err, &bridgeErr) {
		t.Fatalf("expected a BridgeError, got %T: %v", err, err)
	}
	if bridgeErr.ErrorCode() != errors.FileSystemErrorCode {
		t.Errorf("expected FileSystemErrorCode, got %v", bridgeErr.ErrorCode())
	}
}

func TestDeclContext(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{
			name:     "start of file",
			source:   "???",
			expected: "bridge file",
		},
		{
			name:     "inside a type declaration",
			source:   "type A -",
			expected: "type",
		},
		{
			name:     "inside a signal declaration",
			source:   "qobject O {\n\tsignal s(",
			expected: "signal",
		},
		{
			name:     "keyword embedded in an identifier does not count",
			source:   "type my_signal_holder -",
			expected: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			context := declContext(tt.source, len(tt.source))
			if context != tt.expected {
				t.Errorf("declContext(%q) = %q, expected %q", tt.source, context, tt.expected)
			}
		})
	}
}
