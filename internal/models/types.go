package models

import "strings"

// TypeKind represents the shape of a parsed type expression
type TypeKind int

const (
	KindNamed    TypeKind = iota // bare identifier, possibly with generic arguments
	KindRef                      // &T
	KindRefMut                   // &mut T
	KindPtrConst                 // *const T
	KindPtrMut                   // *mut T
)

// Type represents a parameter type expression from a bridge file
type Type struct {
	Kind TypeKind // shape of the expression
	Name string   // identifier for KindNamed
	Args []Type   // generic arguments for KindNamed
	Elem *Type    // referent for reference and pointer kinds
}

// NamedType builds a KindNamed type, optionally with generic arguments
func NamedType(name string, args ...Type) Type {
	return Type{Kind: KindNamed, Name: name, Args: args}
}

// RefType builds a shared reference type (&T)
func RefType(elem Type) Type {
	return Type{Kind: KindRef, Elem: &elem}
}

// RefMutType builds a mutable reference type (&mut T)
func RefMutType(elem Type) Type {
	return Type{Kind: KindRefMut, Elem: &elem}
}

// PtrConstType builds a const raw pointer type (*const T)
func PtrConstType(elem Type) Type {
	return Type{Kind: KindPtrConst, Elem: &elem}
}

// PtrMutType builds a mutable raw pointer type (*mut T)
func PtrMutType(elem Type) Type {
	return Type{Kind: KindPtrMut, Elem: &elem}
}

// String renders the type in bridge-file syntax, used in diagnostics
func (t Type) String() string {
	switch t.Kind {
	case KindRef:
		return "&" + t.Elem.String()
	case KindRefMut:
		return "&mut " + t.Elem.String()
	case KindPtrConst:
		return "*const " + t.Elem.String()
	case KindPtrMut:
		return "*mut " + t.Elem.String()
	}

	if len(t.Args) == 0 {
		return t.Name
	}

	args := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		args = append(args, arg.String())
	}
	return t.Name + "<" + strings.Join(args, ", ") + ">"
}
