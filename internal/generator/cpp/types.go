package cpp

import (
	"strings"

	"github.com/nicolasfella/qtbridge/internal/errors"
	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/registry"
)

// TypeFor resolves a parsed type expression to its C++ spelling. Scalars and
// generic wrappers come from the type registry, everything else passes
// through the declared mappings. Unknown wrappers fail with a
// TypeResolutionError naming the offending expression
func TypeFor(ty models.Type, mappings *models.TypeMappings, types registry.TypeResolver) (string, error) {
	switch ty.Kind {
	case models.KindRef:
		// A borrowed str is a view type, passed by value on the C++ side
		if ty.Elem.Kind == models.KindNamed && ty.Elem.Name == "str" && len(ty.Elem.Args) == 0 {
			return "::rust::Str", nil
		}
		inner, err := TypeFor(*ty.Elem, mappings, types)
		if err != nil {
			return "", err
		}
		return "const " + inner + "&", nil

	case models.KindRefMut:
		inner, err := TypeFor(*ty.Elem, mappings, types)
		if err != nil {
			return "", err
		}
		return inner + "&", nil

	case models.KindPtrConst:
		inner, err := TypeFor(*ty.Elem, mappings, types)
		if err != nil {
			return "", err
		}
		return "const " + inner + "*", nil

	case models.KindPtrMut:
		inner, err := TypeFor(*ty.Elem, mappings, types)
		if err != nil {
			return "", err
		}
		return inner + "*", nil
	}

	if len(ty.Args) == 0 {
		if cxx, exists := types.LookupScalar(ty.Name); exists {
			return cxx, nil
		}
		// Custom types pass through the declared mappings
		return mappings.ResolveQualified(ty.Name), nil
	}

	// Pin wraps the reference that carries the actual type
	if ty.Name == "Pin" {
		if len(ty.Args) != 1 {
			return "", errors.NewTypeResolutionError(ty.String())
		}
		return TypeFor(ty.Args[0], mappings, types)
	}

	if template, exists := types.LookupTemplate(ty.Name); exists {
		args := make([]string, 0, len(ty.Args))
		for _, arg := range ty.Args {
			inner, err := TypeFor(arg, mappings, types)
			if err != nil {
				return "", err
			}
			args = append(args, inner)
		}
		return template + "<" + strings.Join(args, ", ") + ">", nil
	}

	return "", errors.NewTypeResolutionError(ty.String())
}
