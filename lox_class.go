package glox

import (
	"errors"

	"github.com/dolthub/swiss"
)

var ErrMethodNotFound = errors.New("method not found with the given name")

// LoxClass is the runtime representation of a class declaration: a method
// table, an optional superclass link, and an initializer that Call always
// delegates to so construction behaves uniformly whether or not the user
// wrote an "init" method.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	methods    *swiss.Map[string, LoxFunction]

	initializer LoxCallable
}

func NewLoxClass(name string, superclass *LoxClass, methods map[string]LoxFunction) *LoxClass {
	table := swiss.NewMap[string, LoxFunction](uint32(len(methods)))
	for name, fn := range methods {
		table.Put(name, fn)
	}

	lc := &LoxClass{Name: name, Superclass: superclass, methods: table}

	if init, ok := table.Get("init"); ok {
		lc.initializer = init
	} else {
		lc.initializer = syntheticInit{class: lc}
	}

	return lc
}

func (lc *LoxClass) String() string {
	return lc.Name
}

// Call delegates construction to the class's initializer: a user-defined
// "init" is bound to a fresh instance and run against it, while the
// synthesized initializer builds the instance itself.
func (lc *LoxClass) Call(ip *Interpreter, arguments []interface{}) (interface{}, error) {
	init, ok := lc.initializer.(LoxFunction)
	if !ok {
		return lc.initializer.Call(ip, arguments)
	}

	instance := NewLoxInstance(lc)
	if _, err := init.Bind(instance).Call(ip, arguments); err != nil {
		return nil, err
	}

	return instance, nil
}

func (lc *LoxClass) Arity() int {
	return lc.initializer.Arity()
}

// findMethod looks up a method by name, walking the superclass chain when
// the class itself doesn't define it.
func (lc *LoxClass) findMethod(name string) (LoxFunction, error) {
	if method, ok := lc.methods.Get(name); ok {
		return method, nil
	}

	if lc.Superclass != nil {
		return lc.Superclass.findMethod(name)
	}

	return LoxFunction{}, ErrMethodNotFound
}

// syntheticInit stands in for a class with no user-defined "init": it
// constructs the instance but does no field assignment, and accepts no
// arguments.
type syntheticInit struct {
	class *LoxClass
}

func (s syntheticInit) Call(ip *Interpreter, arguments []interface{}) (interface{}, error) {
	return NewLoxInstance(s.class), nil
}

func (s syntheticInit) Arity() int {
	return 0
}

func (s syntheticInit) String() string {
	return "<fn init>"
}
