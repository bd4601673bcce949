package models

// QObjectMetadata represents a generated object type declared in a bridge file
type QObjectMetadata struct {
	Name    Name           // type name pair
	Base    string         // C++ base class, empty means QObject
	Signals []ParsedSignal // signals declared on the type, in declaration order

	// Source location for error reporting
	File string
	Line int
}

// ExternMetadata represents signals declared on a pre-existing foreign type
type ExternMetadata struct {
	Name      Name           // type name pair
	Namespace string         // C++ namespace of the foreign type
	Include   string         // include directive needed for the type
	Signals   []ParsedSignal // signals declared on the type, in declaration order

	// Source location for error reporting
	File string
	Line int
}

// TypeDecl represents a standalone type mapping declared in a bridge file
type TypeDecl struct {
	Name      string // bridge-side identifier
	CxxName   string // C++ name override, empty when none was given
	Namespace string // C++ namespace, empty when none was given
	Include   string // include directive needed for the type

	// Source location for error reporting
	File string
	Line int
}

// BridgeMetadata represents everything parsed from one bridge file
type BridgeMetadata struct {
	Name      string            // stem of the bridge file name
	Path      string            // path of the bridge file
	Namespace string            // file-level namespace for emitted declarations
	Types     []TypeDecl        // standalone type mappings
	QObjects  []QObjectMetadata // generated object types
	Externs   []ExternMetadata  // foreign types with bridged signals
}

// SignalCount returns the total number of signals across all owner types
func (b *BridgeMetadata) SignalCount() int {
	count := 0
	for _, obj := range b.QObjects {
		count += len(obj.Signals)
	}
	for _, ext := range b.Externs {
		count += len(ext.Signals)
	}
	return count
}
