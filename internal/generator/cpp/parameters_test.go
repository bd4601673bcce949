package cpp

import (
	"testing"

	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/registry"
)

func TestBuildParameters(t *testing.T) {
	parameters := []models.FunctionParameter{
		{Ident: "trivial", Type: models.NamedType("i32")},
		{Ident: "opaque", Type: models.NamedType("UniquePtr", models.NamedType("QColor"))},
	}

	result, err := buildParameters(parameters, models.NewTypeMappings(), registry.NewTypeRegistry(), MemberSelf("MyObject"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TypesSignal != "::std::int32_t trivial, ::std::unique_ptr<QColor> opaque" {
		t.Errorf("unexpected signal types: %q", result.TypesSignal)
	}
	if result.TypesClosure != "MyObject&, ::std::int32_t trivial, ::std::unique_ptr<QColor> opaque" {
		t.Errorf("unexpected closure types: %q", result.TypesClosure)
	}
	if result.ValuesClosure != "*this, ::std::move(trivial), ::std::move(opaque)" {
		t.Errorf("unexpected closure values: %q", result.ValuesClosure)
	}
}

func TestBuildParametersEmpty(t *testing.T) {
	// With no declared parameters the closure lists still carry the owner
	result, err := buildParameters(nil, models.NewTypeMappings(), registry.NewTypeRegistry(), ForeignSelf("ObjRust"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TypesSignal != "" {
		t.Errorf("expected empty signal types, got %q", result.TypesSignal)
	}
	if result.TypesClosure != "ObjRust&" {
		t.Errorf("unexpected closure types: %q", result.TypesClosure)
	}
	if result.ValuesClosure != "self" {
		t.Errorf("unexpected closure values: %q", result.ValuesClosure)
	}
}

func TestBuildParametersOrderPreserved(t *testing.T) {
	parameters := []models.FunctionParameter{
		{Ident: "z", Type: models.NamedType("i32")},
		{Ident: "a", Type: models.NamedType("bool")},
		{Ident: "m", Type: models.NamedType("f64")},
	}

	result, err := buildParameters(parameters, models.NewTypeMappings(), registry.NewTypeRegistry(), MemberSelf("Widget"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TypesSignal != "::std::int32_t z, bool a, double m" {
		t.Errorf("expected declaration order to be preserved, got %q", result.TypesSignal)
	}
	if result.ValuesClosure != "*this, ::std::move(z), ::std::move(a), ::std::move(m)" {
		t.Errorf("expected declaration order in values, got %q", result.ValuesClosure)
	}
}

func TestSelfRefConstructors(t *testing.T) {
	member := MemberSelf("MyObject")
	if member.Value != "*this" || member.Type != "MyObject" {
		t.Errorf("unexpected member descriptor: %+v", member)
	}

	foreign := ForeignSelf("::mynamespace::ObjCpp")
	if foreign.Value != "self" || foreign.Type != "::mynamespace::ObjCpp" {
		t.Errorf("unexpected foreign descriptor: %+v", foreign)
	}
}
