package swiftlet

import "fmt"

// Environment binds the parameters of one function call to their values.
type Environment struct {
	function string
	values   map[string]float64
}

func NewEnvironment(function string) *Environment {
	return &Environment{function, make(map[string]float64)}
}

func (env *Environment) Define(name string, value float64) {
	env.values[name] = value
}

func (env *Environment) Get(name string) (float64, error) {
	if value, ok := env.values[name]; ok {
		return value, nil
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name)
	return 0, NewRuntimeError(env.function, msg)
}
