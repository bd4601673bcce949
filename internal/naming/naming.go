// Package naming derives the C++ identifiers emitted for bridge declarations.
package naming

import (
	"strings"

	"github.com/nicolasfella/qtbridge/internal/models"
)

// CamelCase converts a snake_case identifier to camelCase
func CamelCase(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}

	parts := strings.Split(s, "_")
	var b strings.Builder
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// SignalName returns the C++ name of a signal, which is the explicit
// override when one was declared and the camelized source name otherwise
func SignalName(name models.Name) string {
	if name.Cxx != "" {
		return name.Cxx
	}
	return CamelCase(name.Source)
}

// ConnectName returns the C++ name of the connect helper for a signal
func ConnectName(name models.Name) string {
	return SignalName(name) + "Connect"
}

// FreeConnectName returns the name of a standalone connect function for a
// signal on a foreign type. The source-side owner ident keeps the function
// name stable even when the type maps to a different C++ name
func FreeConnectName(qobject string, name models.Name) string {
	return qobject + "_" + ConnectName(name)
}

// TypeName returns the C++ class ident of an owner type
func TypeName(name models.Name) string {
	if name.Cxx != "" {
		return name.Cxx
	}
	return name.Source
}
