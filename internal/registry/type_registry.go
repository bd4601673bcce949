package registry

import (
	"sync"

	"github.com/nicolasfella/qtbridge/internal/errors"
)

// Builtin scalar types and their C++ spellings. These mirror the types the
// cxx runtime ships conversions for
var builtinScalars = map[string]string{
	"bool":   "bool",
	"c_char": "char",
	"f32":    "float",
	"f64":    "double",
	"i8":     "::std::int8_t",
	"i16":    "::std::int16_t",
	"i32":    "::std::int32_t",
	"i64":    "::std::int64_t",
	"isize":  "::rust::isize",
	"String": "::rust::String",
	"str":    "::rust::Str",
	"u8":     "::std::uint8_t",
	"u16":    "::std::uint16_t",
	"u32":    "::std::uint32_t",
	"u64":    "::std::uint64_t",
	"usize":  "::std::size_t",
}

// Builtin generic wrappers and the C++ templates they map to
var builtinTemplates = map[string]string{
	"Box":       "::rust::Box",
	"CxxVector": "::std::vector",
	"SharedPtr": "::std::shared_ptr",
	"UniquePtr": "::std::unique_ptr",
	"Vec":       "::rust::Vec",
	"WeakPtr":   "::std::weak_ptr",
}

// TypeRegistry manages the mapping from bridge type names to C++ spellings
type TypeRegistry struct {
	scalars   map[string]string
	templates map[string]string
	mu        sync.RWMutex
}

// NewTypeRegistry creates a new type registry with built-in mappings
func NewTypeRegistry() *TypeRegistry {
	registry := &TypeRegistry{
		scalars:   make(map[string]string),
		templates: make(map[string]string),
	}

	for name, cxx := range builtinScalars {
		registry.scalars[name] = cxx
	}
	for name, cxx := range builtinTemplates {
		registry.templates[name] = cxx
	}

	return registry
}

// RegisterScalar registers a custom scalar type mapping
func (r *TypeRegistry) RegisterScalar(name, cxx string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.scalars[name]; exists {
		return errors.Newf(errors.ConfigurationErrorCode,
			"type alias '%s' already registered as '%s'", name, existing).
			WithSuggestion("Choose a different alias name or remove the duplicate entry")
	}

	r.scalars[name] = cxx
	return nil
}

// RegisterTemplate registers a custom generic wrapper mapping
func (r *TypeRegistry) RegisterTemplate(name, cxx string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.templates[name]; exists {
		return errors.Newf(errors.ConfigurationErrorCode,
			"template alias '%s' already registered as '%s'", name, existing).
			WithSuggestion("Choose a different alias name or remove the duplicate entry")
	}

	r.templates[name] = cxx
	return nil
}

// LookupScalar retrieves the C++ spelling for a scalar type name
func (r *TypeRegistry) LookupScalar(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cxx, exists := r.scalars[name]
	return cxx, exists
}

// LookupTemplate retrieves the C++ template for a generic wrapper name
func (r *TypeRegistry) LookupTemplate(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cxx, exists := r.templates[name]
	return cxx, exists
}

// HasScalar checks if a scalar mapping is registered for a name
func (r *TypeRegistry) HasScalar(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.scalars[name]
	return exists
}

// ListScalars returns all registered scalar type names
func (r *TypeRegistry) ListScalars() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.scalars))
	for name := range r.scalars {
		names = append(names, name)
	}
	return names
}

// ClearCustom removes custom mappings, keeping the built-in ones
func (r *TypeRegistry) ClearCustom() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scalars = make(map[string]string)
	r.templates = make(map[string]string)
	for name, cxx := range builtinScalars {
		r.scalars[name] = cxx
	}
	for name, cxx := range builtinTemplates {
		r.templates[name] = cxx
	}
}
