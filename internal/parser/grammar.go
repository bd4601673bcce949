package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// bridgeLexer tokenizes bridge files. The NsSep rule must come before Punct
// so that '::' lexes as one token instead of two colons.
var bridgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "NsSep", Pattern: `::`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-{}()<>,:=*&]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// bridgeFile is the grammar root: a sequence of top-level declarations
type bridgeFile struct {
	Decls []*declaration `parser:"@@*"`
}

// declaration is a single top-level declaration
type declaration struct {
	Namespace *namespaceDecl `parser:"@@"`
	Type      *typeDecl      `parser:"| @@"`
	Extern    *externDecl    `parser:"| @@"`
	QObject   *qobjectDecl   `parser:"| @@"`
}

// namespaceDecl sets the namespace emitted declarations live in
type namespaceDecl struct {
	Pos lexer.Position

	Path string `parser:"'namespace' @Ident ( @NsSep @Ident )*"`
}

// typeDecl maps a bridge type name onto its C++ rendering
type typeDecl struct {
	Pos lexer.Position

	Name    string    `parser:"'type' @Ident"`
	Options []*option `parser:"@@*"`
}

// qobjectDecl declares a generated object type and its signals
type qobjectDecl struct {
	Pos lexer.Position

	Name    string        `parser:"'qobject' @Ident"`
	Options []*option     `parser:"@@*"`
	Signals []*signalDecl `parser:"'{' @@* '}'"`
}

// externDecl declares signals on a pre-existing foreign type
type externDecl struct {
	Pos lexer.Position

	Name    string        `parser:"'extern' 'qobject' @Ident"`
	Options []*option     `parser:"@@*"`
	Signals []*signalDecl `parser:"'{' @@* '}'"`
}

// signalDecl is one signal declaration inside a qobject or extern block.
// Modifiers appear before the signal keyword in const, unsafe, inherit order.
type signalDecl struct {
	Pos lexer.Position

	Const      bool         `parser:"@'const'?"`
	Unsafe     bool         `parser:"@'unsafe'?"`
	Inherit    bool         `parser:"@'inherit'?"`
	Name       string       `parser:"'signal' @Ident"`
	Parameters []*paramDecl `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Options    []*option    `parser:"@@*"`
}

// paramDecl is a single named, typed signal parameter
type paramDecl struct {
	Pos lexer.Position

	Name string    `parser:"@Ident ':'"`
	Type *typeExpr `parser:"@@"`
}

// typeExpr is a bridge type expression. Reference and pointer forms wrap a
// nested expression; everything else is an identifier with optional generic
// arguments.
type typeExpr struct {
	Pos lexer.Position

	RefMut   *typeExpr  `parser:"'&' 'mut' @@"`
	Ref      *typeExpr  `parser:"| '&' @@"`
	PtrConst *typeExpr  `parser:"| '*' 'const' @@"`
	PtrMut   *typeExpr  `parser:"| '*' 'mut' @@"`
	Named    *namedType `parser:"| @@"`
}

// namedType is an identifier with optional generic arguments
type namedType struct {
	Name string      `parser:"@Ident"`
	Args []*typeExpr `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
}

// option is a trailing '-key=value' pair or bare '-flag'
type option struct {
	Pos lexer.Position

	Name  string       `parser:"'-' @Ident"`
	Value *optionValue `parser:"( '=' @@ )?"`
}

// optionValue is a quoted string, a bare identifier, or a namespace path
type optionValue struct {
	Text string `parser:"@String | @Ident ( @NsSep @Ident )*"`
}

// buildBridgeParser compiles the participle grammar
func buildBridgeParser() *participle.Parser[bridgeFile] {
	return participle.MustBuild[bridgeFile](
		participle.Lexer(bridgeLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
}
