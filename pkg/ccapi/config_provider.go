package ccapi

import "sort"

// Variable is a single environment variable, as exchanged with the
// config-provider addon and the addon/application env endpoints.
type Variable struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// VariablesToMap folds a variable list into a name→value map. Later entries
// win on duplicate names.
func VariablesToMap(variables []Variable) map[string]string {
	env := make(map[string]string, len(variables))
	for _, v := range variables {
		env[v.Name] = v.Value
	}

	return env
}

// MapToVariables expands a name→value map into a variable list sorted by
// name.
func MapToVariables(env map[string]string) []Variable {
	variables := make([]Variable, 0, len(env))
	for name, value := range env {
		variables = append(variables, Variable{Name: name, Value: value})
	}

	sort.Slice(variables, func(i, j int) bool { return variables[i].Name < variables[j].Name })

	return variables
}
