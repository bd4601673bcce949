package registry

// TypeResolver defines the interface for resolving bridge type names to C++
type TypeResolver interface {
	LookupScalar(name string) (string, bool)
	LookupTemplate(name string) (string, bool)
}
