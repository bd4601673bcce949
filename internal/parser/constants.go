package parser

const (
	// BridgeFileExtension is the file extension for bridge declaration files
	BridgeFileExtension = ".qbridge"

	// Declaration keyword constants
	KeywordNamespace = "namespace"
	KeywordType      = "type"
	KeywordQObject   = "qobject"
	KeywordExtern    = "extern"
	KeywordSignal    = "signal"
	KeywordInherit   = "inherit"
	KeywordUnsafe    = "unsafe"
	KeywordConst     = "const"

	// Option name constants
	OptionCxxName   = "cxx_name"
	OptionNamespace = "namespace"
	OptionInclude   = "include"
	OptionBase      = "base"

	// DefaultBaseClass is used when a qobject declares no -base option
	DefaultBaseClass = "QObject"
)
