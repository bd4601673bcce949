package cpp

import (
	"fmt"
	"strings"

	"github.com/nicolasfella/qtbridge/internal/models"
	"github.com/nicolasfella/qtbridge/internal/registry"
)

// Parameters carries the combined parameter lists shared by a signal
// declaration and its connect pair
type Parameters struct {
	TypesClosure  string // closure parameter types, owner reference first
	TypesSignal   string // declared parameter types only
	ValuesClosure string // forwarded values, owner expression first
}

// buildParameters resolves each declared parameter to its C++ type and
// builds the three comma separated lists. The signal list covers only the
// declared parameters; the closure lists additionally carry the owner in
// front, so the emitted callback hands the owner to the bound closure
// before any payload
func buildParameters(parameters []models.FunctionParameter, mappings *models.TypeMappings, types registry.TypeResolver, self SelfRef) (Parameters, error) {
	typesClosure := make([]string, 0, len(parameters)+1)
	valuesClosure := make([]string, 0, len(parameters)+1)

	for _, parameter := range parameters {
		cxxType, err := TypeFor(parameter.Type, mappings, types)
		if err != nil {
			return Parameters{}, err
		}
		typesClosure = append(typesClosure, fmt.Sprintf("%s %s", cxxType, parameter.Ident))
		valuesClosure = append(valuesClosure, fmt.Sprintf("::std::move(%s)", parameter.Ident))
	}

	typesSignal := strings.Join(typesClosure, ", ")

	// Insert the owner in front of the closure lists
	typesClosure = append([]string{self.Type + "&"}, typesClosure...)
	valuesClosure = append([]string{self.Value}, valuesClosure...)

	return Parameters{
		TypesClosure:  strings.Join(typesClosure, ", "),
		TypesSignal:   typesSignal,
		ValuesClosure: strings.Join(valuesClosure, ", "),
	}, nil
}
