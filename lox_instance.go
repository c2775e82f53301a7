package glox

import "github.com/dolthub/swiss"

// LoxInstance is a runtime object: a bag of fields backed by a class for
// method lookup. Fields always shadow methods of the same name.
type LoxInstance struct {
	klass  *LoxClass
	fields *swiss.Map[string, interface{}]
}

func NewLoxInstance(klass *LoxClass) *LoxInstance {
	return &LoxInstance{klass: klass, fields: swiss.NewMap[string, interface{}](4)}
}

func (li *LoxInstance) String() string {
	return li.klass.Name + " instance"
}

// Get reads a field if one exists, otherwise falls back to a method bound
// to this instance so that `this` inside it resolves correctly.
func (li *LoxInstance) Get(name Token) (interface{}, error) {
	if val, ok := li.fields.Get(name.Lexeme); ok {
		return val, nil
	}

	if method, err := li.klass.findMethod(name.Lexeme); err == nil {
		return method.Bind(li), nil
	}

	return nil, NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'")
}

func (li *LoxInstance) Set(name Token, value interface{}) {
	li.fields.Put(name.Lexeme, value)
}
