// Package templates holds the text templates for the emitted C++ glue code.
package templates

import (
	"bytes"
	"text/template"

	"github.com/nicolasfella/qtbridge/internal/errors"
)

// SignalDeclData provides the fields for the Q_SIGNAL declaration template
type SignalDeclData struct {
	SignalIdent string // C++ name of the signal
	TypesSignal string // comma separated "type ident" pairs, without the owner
}

// MemberConnectData provides the fields for the member connect templates
type MemberConnectData struct {
	QObject       string // C++ class name of the owner
	SignalIdent   string // C++ name of the signal
	ConnectIdent  string // C++ name of the connect method
	TypesClosure  string // closure parameter list, owner reference first
	TypesSignal   string // signal parameter list, without the owner
	ValuesClosure string // forwarded arguments, owner value first
}

// FreeConnectData provides the fields for the free connect templates
type FreeConnectData struct {
	ConnectName   string // name of the standalone connect function
	SelfType      string // fully qualified C++ type of the owner
	SignalIdent   string // C++ name of the signal
	TypesClosure  string // closure parameter list, owner reference first
	TypesSignal   string // signal parameter list, without the owner
	ValuesClosure string // forwarded arguments, owner value first
}

// GenerateSignalDeclaration renders the Q_SIGNAL declaration for a signal
func GenerateSignalDeclaration(data SignalDeclData) (string, error) {
	return executeTemplate("signal-declaration", DefaultTemplateRegistry.MustGet("signal-declaration"), data)
}

// GenerateMemberConnect renders the declaration and definition of a connect
// method on a generated class
func GenerateMemberConnect(data MemberConnectData) (string, string, error) {
	header, err := executeTemplate("member-connect-header", DefaultTemplateRegistry.MustGet("member-connect-header"), data)
	if err != nil {
		return "", "", err
	}

	source, err := executeTemplate("member-connect-source", DefaultTemplateRegistry.MustGet("member-connect-source"), data)
	if err != nil {
		return "", "", err
	}

	return header, source, nil
}

// GenerateFreeConnect renders the declaration and definition of a standalone
// connect function for a signal on a foreign type
func GenerateFreeConnect(data FreeConnectData) (string, string, error) {
	header, err := executeTemplate("free-connect-header", DefaultTemplateRegistry.MustGet("free-connect-header"), data)
	if err != nil {
		return "", "", err
	}

	source, err := executeTemplate("free-connect-source", DefaultTemplateRegistry.MustGet("free-connect-source"), data)
	if err != nil {
		return "", "", err
	}

	return header, source, nil
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", errors.WrapTemplateError(name, "parse", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}

// ExecuteTemplate executes a Go template with the given data (exported version)
func ExecuteTemplate(name, templateStr string, data interface{}) (string, error) {
	return executeTemplate(name, templateStr, data)
}
