package models

// Name pairs a bridge-side identifier with its optional C++ rendering
type Name struct {
	Source string // identifier as written in the bridge file
	Cxx    string // explicit C++ name override, empty when none was given
}

// FunctionParameter represents a single typed signal parameter
type FunctionParameter struct {
	Ident string // parameter name, passed through to the emitted C++
	Type  Type   // parsed type expression
}

// ParsedSignal represents one signal declaration on an owner type
type ParsedSignal struct {
	QObject    string              // source-side identifier of the owning type
	Name       Name                // signal name pair
	Parameters []FunctionParameter // declared parameters, order preserved end to end
	Mutable    bool                // whether handlers may mutate the owner
	Safe       bool                // whether the declaration was marked safe
	Inherit    bool                // signal already exists on the C++ base class

	// Source location for error reporting
	File string
	Line int
}
