package glox

import (
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

// Environment is a single frame in the lexical scope chain. Every block,
// function call, and method invocation gets its own frame; the frame holds
// only the bindings introduced directly inside it and defers to its
// enclosing frame for anything else.
//
// values is a swiss-table map rather than a built-in Go map: the global
// frame in particular accumulates every top-level declaration a script or
// REPL session makes over its lifetime, so it gets the same backing store a
// Lox runtime map value would use.
type Environment struct {
	// values uses string for the keys and not Token because token represents
	// a unit of code at a specific place in the source text, but when it comes
	// to variables, all identifier tokens using the same name should refer to
	// the same variable (ignorig scope for now).
	values *swiss.Map[string, interface{}]

	// enclosing works as the parent of this Environment. For the global scope,
	// this should be null breaking the chain. But for each local scope, we must
	// enclose the parent scope.
	enclosing *Environment
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, interface{}](8), enclosing: parent}
}

// Define defines a new variable in the current innermost scope.
func (e *Environment) Define(name string, value interface{}) {
	e.values.Put(name, value)
}

// Get looks up a variable in the environment. It starts by looking into the innermost
// environment and goes up till it reaches the global scope.
func (e *Environment) Get(name Token) (interface{}, error) {
	val, ok := e.values.Get(name.Lexeme)
	if ok {
		return val, nil
	}

	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}

	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'")
}

// Assign will assign value to the variable. If the variable is not available in the current
// environment, it will try to assign it recursively to the out environments until it reaches
// the global environment.
func (e *Environment) Assign(name Token, value interface{}) error {
	if e.values.Has(name.Lexeme) {
		e.values.Put(name.Lexeme, value)
		return nil
	}

	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}

	return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// GetAt will get the exact environment where the variable is defined in the environment chain and
// return the value.
func (e *Environment) GetAt(distance int, name string) interface{} {
	val, _ := e.ancestor(distance).values.Get(name)
	return val
}

// AssignAt walks fixed numbers of steps and stuffs the variable into that map.
func (e *Environment) AssignAt(distance int, name Token, value interface{}) {
	e.ancestor(distance).values.Put(name.Lexeme, value)
}

// ancestor walks a fixed number of hops up the parent chain and returns the environment there.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}

	return env
}

// Names returns every name bound directly in this frame, for the `resolve`
// command's global-scope report. The names are sorted, since swiss-table
// iteration order (like a built-in map's) is randomized. It does not walk
// the enclosing chain.
func (e *Environment) Names() []string {
	names := make([]string, 0, e.values.Count())
	e.values.Iter(func(k string, _ interface{}) bool {
		names = append(names, k)
		return false
	})

	slices.Sort(names)
	return names
}
