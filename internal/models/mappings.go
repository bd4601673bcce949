package models

// TypeMappings resolves bridge-side type names to their C++ spelling
type TypeMappings struct {
	CxxNames   map[string]string // bridge name -> C++ name override
	Namespaces map[string]string // bridge name -> C++ namespace
	Includes   map[string]string // bridge name -> include directive
}

// NewTypeMappings creates an empty mapping set
func NewTypeMappings() *TypeMappings {
	return &TypeMappings{
		CxxNames:   make(map[string]string),
		Namespaces: make(map[string]string),
		Includes:   make(map[string]string),
	}
}

// BuildTypeMappings collects the mappings declared across a bridge file
func BuildTypeMappings(bridge *BridgeMetadata) *TypeMappings {
	mappings := NewTypeMappings()

	for _, decl := range bridge.Types {
		if decl.CxxName != "" {
			mappings.CxxNames[decl.Name] = decl.CxxName
		}
		if decl.Namespace != "" {
			mappings.Namespaces[decl.Name] = decl.Namespace
		}
		if decl.Include != "" {
			mappings.Includes[decl.Name] = decl.Include
		}
	}

	for _, obj := range bridge.QObjects {
		if obj.Name.Cxx != "" {
			mappings.CxxNames[obj.Name.Source] = obj.Name.Cxx
		}
	}

	for _, ext := range bridge.Externs {
		if ext.Name.Cxx != "" {
			mappings.CxxNames[ext.Name.Source] = ext.Name.Cxx
		}
		if ext.Namespace != "" {
			mappings.Namespaces[ext.Name.Source] = ext.Namespace
		}
		if ext.Include != "" {
			mappings.Includes[ext.Name.Source] = ext.Include
		}
	}

	return mappings
}

// CxxName returns the C++ name for a bridge-side identifier, which is the
// identifier itself unless an override was declared
func (m *TypeMappings) CxxName(name string) string {
	if cxx, ok := m.CxxNames[name]; ok {
		return cxx
	}
	return name
}

// Namespace returns the declared C++ namespace for a bridge-side identifier
func (m *TypeMappings) Namespace(name string) (string, bool) {
	ns, ok := m.Namespaces[name]
	return ns, ok
}

// Include returns the declared include directive for a bridge-side identifier
func (m *TypeMappings) Include(name string) (string, bool) {
	inc, ok := m.Includes[name]
	return inc, ok
}

// ResolveQualified returns the fully qualified C++ spelling of a bridge-side
// identifier. Namespaced names are absolute, rooted at the global namespace
func (m *TypeMappings) ResolveQualified(name string) string {
	cxx := m.CxxName(name)
	if ns, ok := m.Namespaces[name]; ok && ns != "" {
		return "::" + ns + "::" + cxx
	}
	return cxx
}
