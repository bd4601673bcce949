package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerSignalTemplates()
	registry.registerConnectTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerSignalTemplates registers the Q_SIGNAL declaration templates
func (tr *TemplateRegistry) registerSignalTemplates() {
	// Declaration emitted into the class body for signals that do not
	// already exist on the base class
	tr.templates["signal-declaration"] = `Q_SIGNAL void {{.SignalIdent}}({{.TypesSignal}});`
}

// registerConnectTemplates registers the connect function templates
//
// The emitted bodies bind a ::rust::Fn closure to the signal and take the
// recursive mutex of the owner, when one exists, before invoking it. Their
// exact shape is contractual: downstream build systems diff generated
// output byte for byte
func (tr *TemplateRegistry) registerConnectTemplates() {
	// Connect method declared inside a generated class
	tr.templates["member-connect-header"] = `::QMetaObject::Connection {{.ConnectIdent}}(::rust::Fn<void({{.TypesClosure}})> func, ::Qt::ConnectionType type);`

	// Out-of-line definition for the member connect method
	tr.templates["member-connect-source"] = `::QMetaObject::Connection
{{.QObject}}::{{.ConnectIdent}}(::rust::Fn<void({{.TypesClosure}})> func, ::Qt::ConnectionType type)
{
    return ::QObject::connect(this,
        &{{.QObject}}::{{.SignalIdent}},
        this,
        [&, func = ::std::move(func)]({{.TypesSignal}}) {
            const ::rust::cxxqtlib1::MaybeLockGuard<{{.QObject}}> guard(*this);
            func({{.ValuesClosure}});
        },
        type);
}
`

	// Standalone connect function for signals on foreign types. The owner
	// arrives as an explicit reference parameter instead of this
	tr.templates["free-connect-header"] = `::QMetaObject::Connection
{{.ConnectName}}({{.SelfType}}& self, ::rust::Fn<void({{.TypesClosure}})> func, ::Qt::ConnectionType type);
`

	tr.templates["free-connect-source"] = `::QMetaObject::Connection
{{.ConnectName}}({{.SelfType}}& self, ::rust::Fn<void({{.TypesClosure}})> func, ::Qt::ConnectionType type)
{
    return ::QObject::connect(
        &self,
        &{{.SelfType}}::{{.SignalIdent}},
        &self,
        [&, func = ::std::move(func)]({{.TypesSignal}}) {
            const ::rust::cxxqtlib1::MaybeLockGuard<{{.SelfType}}> guard(self);
            func({{.ValuesClosure}});
        },
        type);
}
`
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
