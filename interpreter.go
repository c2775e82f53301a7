package glox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinylox/glox/tools"
)

// Interpreter walks the resolved AST and evaluates it directly; there is no
// intermediate bytecode. globals never changes once constructed (it is the
// frame native functions like clock live in); environment is the live frame
// and swings up and down as blocks, calls, and loops push and pop scopes.
type Interpreter struct {
	runtime     *Runtime
	globals     *Environment
	environment *Environment

	// locals records, per resolved expression, how many environment hops
	// separate its use from the frame that declares it. Populated entirely
	// by the resolver before Interpret runs; expressions missing from this
	// map are assumed global.
	locals map[Expr]int
}

func NewInterpreter(runtime *Runtime) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", Clock{})

	return &Interpreter{
		runtime:     runtime,
		globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
	}
}

type RuntimeError struct {
	token   Token
	message string
}

func (r *RuntimeError) Error() string {
	return r.message
}

func NewRuntimeError(token Token, message string) error {
	return &RuntimeError{token: token, message: message}
}

// ReturnErr carries a Lox `return` value out of a function body. It rides
// the normal error-return channel of Stmt.Accept/execute so that a return
// deep inside nested blocks and loops unwinds back to LoxFunction.Call
// without every statement needing to know about non-local exits.
type ReturnErr struct {
	Value interface{}
}

func (r *ReturnErr) Error() string {
	return "return"
}

func (i *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		err := i.execute(stmt)
		if err != nil {
			i.runtime.runtimeError(err)
			return
		}
	}
}

func (i *Interpreter) execute(stmt Stmt) error {
	return stmt.Accept(i)
}

// Globals returns the interpreter's top-level environment, letting the
// `resolve` CLI command report which names a program left defined at the
// global scope after running.
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// resolve is called by the resolver, once per variable reference, recording
// how many environment frames up that reference's binding lives.
func (i *Interpreter) resolve(expr Expr, depth int) {
	i.locals[expr] = depth
}

func (i *Interpreter) VisitBlockStmt(stmt *Block) error {
	return i.executeBlock(stmt.Statements, NewEnvironment(i.environment))
}

func (i *Interpreter) executeBlock(statements []Stmt, env *Environment) error {
	previousEnv := i.environment

	i.environment = env
	for _, stmt := range statements {
		err := i.execute(stmt)
		if err != nil {
			i.environment = previousEnv
			return err
		}
	}

	i.environment = previousEnv
	return nil
}

// VisitClassStmt declares a class. The superclass, if any, is evaluated and
// type-checked first (it must name a class). Each method's closure is the
// defining scope or, when there is a superclass, a frame binding "super"
// whose parent is the defining scope; LoxFunction.Bind later adds a frame
// binding "this" on top of that closure, so that `this` and `super` resolve
// exactly the way the resolver predicted.
func (i *Interpreter) VisitClassStmt(stmt *ClassStmt) error {
	var superclass *LoxClass
	if stmt.Superclass != nil {
		val, err := i.evaluate(stmt.Superclass)
		if err != nil {
			return err
		}

		class, ok := val.(*LoxClass)
		if !ok {
			return NewRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}

		superclass = class
	}

	i.environment.Define(stmt.Name.Lexeme, nil)

	classEnv := i.environment
	if stmt.Superclass != nil {
		classEnv = NewEnvironment(i.environment)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]LoxFunction, len(stmt.Methods))
	for _, method := range stmt.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = NewLoxFunction(method, classEnv, isInitializer).(LoxFunction)
	}

	class := NewLoxClass(stmt.Name.Lexeme, superclass, methods)

	return i.environment.Assign(stmt.Name, class)
}

// VisitVarStmt interprets an variable declaration. If the variable has an
// initialization part, we first evaluate it, otherwise we store the default
// nil value for it. Thus it allows us to define an uninitialized variable.
// Like other dynamically typed languages, we just assign nil if the variable
// is not initialized.
func (i *Interpreter) VisitVarStmt(expr *VarStmt) error {
	var val interface{}
	var err error
	if expr.Initializer != nil {
		val, err = i.evaluate(expr.Initializer)
		if err != nil {
			return err
		}
	}

	i.environment.Define(expr.Name.Lexeme, val)
	return nil
}

func (i *Interpreter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return i.lookUpVariable(expr.Name, expr)
}

// lookUpVariable consults the resolver's hop-count for expr; if the
// resolver recorded none (the name is global), it falls back to looking
// the name up in the global environment directly.
func (i *Interpreter) lookUpVariable(name Token, expr Expr) (interface{}, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.environment.GetAt(distance, name.Lexeme), nil
	}

	return i.globals.Get(name)
}

// VisitAssignExpr evaluates the right hand side expression to get the value and then stores it in the
// named variable. We use Assign method on the environment which only updates existing variable and is
// not allowed to create new variable. This method returns the assigned value because assignment is an
// expression and can be nested inside other expression.
// var a = 1;
// print a = 2; // "2"
func (i *Interpreter) VisitAssignExpr(expr *Assign) (interface{}, error) {
	val, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[expr]; ok {
		i.environment.AssignAt(distance, expr.Name, val)
		return val, nil
	}

	if err := i.globals.Assign(expr.Name, val); err != nil {
		return nil, err
	}

	return val, nil
}

// VisitExpressionExpr interprets expression statements. As statements do not
// produce any value, we are discarding the expression generated from evaluating
// the statement's expression.
func (i *Interpreter) VisitExpressionExpr(expr *Expression) error {
	_, err := i.evaluate(expr.Expression)
	if err != nil {
		return err
	}

	return nil
}

func (i *Interpreter) VisitIfStmt(stmt *IfStmt) error {
	condition, err := i.evaluate(stmt.Condition)
	if err != nil {
		return err
	}

	if i.isTruthy(condition) {
		err := i.execute(stmt.ThenBranch)
		if err != nil {
			return err
		}
	} else if stmt.ElseBranch != nil {
		err := i.execute(stmt.ElseBranch)
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) VisitWhileStmt(stmt *WhileStmt) error {
	for {
		condition, err := i.evaluate(stmt.Condition)
		if err != nil {
			return err
		}

		if !i.isTruthy(condition) {
			return nil
		}

		if err := i.execute(stmt.Body); err != nil {
			return err
		}
	}
}

func (i *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) error {
	function := NewLoxFunction(stmt, i.environment, false)
	i.environment.Define(stmt.Name.Lexeme, function)
	return nil
}

func (i *Interpreter) VisitReturnStmt(stmt *ReturnStmt) error {
	var value interface{}
	if stmt.Value != nil {
		val, err := i.evaluate(stmt.Value)
		if err != nil {
			return err
		}

		value = val
	}

	return &ReturnErr{Value: value}
}

func (i *Interpreter) VisitPrintExpr(expr *Print) error {
	val, err := i.evaluate(expr.Expression)
	if err != nil {
		return err
	}

	fmt.Fprintln(i.runtime.stdout, i.stringify(val))
	return nil
}

// stringify renders a Lox runtime value the way `print` and the REPL show
// it. Numbers round-trip through strconv rather than fmt so that integral
// values print without a trailing ".0" (matching every other Lox
// implementation) while fractional values keep their full precision.
func (i *Interpreter) stringify(val interface{}) string {
	if val == nil {
		return "nil"
	}

	if tools.IsFloat64(val) {
		text := strconv.FormatFloat(val.(float64), 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = strings.TrimSuffix(text, ".0")
		}

		return text
	}

	return fmt.Sprint(val)
}

func (i *Interpreter) VisitBinaryExpr(expr *Binary) (interface{}, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case Greater:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) > right.(float64), nil
	case GreaterEqual:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) >= right.(float64), nil
	case Less:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) < right.(float64), nil
	case LessEqual:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) <= right.(float64), nil
	case BangEqual:
		return !(left == right), nil
	case EqualEqual:
		return left == right, nil
	case Minus:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) - right.(float64), nil
	case Plus:
		// plus (+) handles both string concatenation and arithmetic addition.
		if tools.IsString(left) && tools.IsString(right) {
			return left.(string) + right.(string), nil
		}

		if tools.IsFloat64(left) && tools.IsFloat64(right) {
			return left.(float64) + right.(float64), nil
		}

		return nil, NewRuntimeError(expr.Operator, "The both operands must be either string or number")
	case Slash:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) / right.(float64), nil
	case Star:
		err := i.checkNumberOperandBoth(expr.Operator, left, right)
		if err != nil {
			return nil, err
		}

		return left.(float64) * right.(float64), nil
	}

	// unreachable
	return nil, nil
}

// VisitLogicalExpr evaluates "and"/"or" with short-circuiting: the right
// operand is never even evaluated when the left already settles the result.
func (i *Interpreter) VisitLogicalExpr(expr *Logical) (interface{}, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	if expr.Operator.Type == Or {
		if i.isTruthy(left) {
			return left, nil
		}
	} else {
		if !i.isTruthy(left) {
			return left, nil
		}
	}

	return i.evaluate(expr.Right)
}

// VisitCallExpr evaluates the callee and its arguments, checks that the
// callee is actually callable and that the argument count matches its
// arity, then dispatches through LoxCallable.Call.
func (i *Interpreter) VisitCallExpr(expr *Call) (interface{}, error) {
	callee, err := i.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(expr.Arguments))
	for _, arg := range expr.Arguments {
		val, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}

		arguments = append(arguments, val)
	}

	callable, ok := callee.(LoxCallable)
	if !ok {
		return nil, NewRuntimeError(expr.ClosingParen, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		return nil, NewRuntimeError(expr.ClosingParen,
			fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(arguments)))
	}

	return callable.Call(i, arguments)
}

// VisitGetExpr reads a property off an instance. Only instances carry
// properties; anything else (a number, a class itself) is a runtime error.
func (i *Interpreter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	object, err := i.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	if instance, ok := object.(*LoxInstance); ok {
		return instance.Get(expr.Name)
	}

	return nil, NewRuntimeError(expr.Name, "Only instances have properties.")
}

// VisitSetExpr writes a property on an instance. Unlike Get, there is no
// method fallback: assignment always creates or overwrites a field.
func (i *Interpreter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	object, err := i.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*LoxInstance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only instances have fields.")
	}

	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(expr.Name, value)
	return value, nil
}

func (i *Interpreter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return i.lookUpVariable(expr.Keyword, expr)
}

// VisitSuperExpr resolves `super.method`. "super" and "this" are bound in
// adjacent environment frames (see VisitClassStmt/LoxFunction.Bind), always
// exactly one hop apart, so the instance the method is bound to is found at
// distance-1 from wherever "super" itself was resolved.
func (i *Interpreter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	distance, ok := i.locals[expr]
	if !ok {
		return nil, NewRuntimeError(expr.Keyword, "Can't use 'super' outside of a class.")
	}

	superclass := i.environment.GetAt(distance, "super").(*LoxClass)
	instance := i.environment.GetAt(distance-1, "this").(*LoxInstance)

	method, err := superclass.findMethod(expr.Method.Lexeme)
	if err != nil {
		return nil, NewRuntimeError(expr.Method, "Undefined property '"+expr.Method.Lexeme+"'.")
	}

	return method.Bind(instance), nil
}

// VisitGroupingExpr evaluates the grouping expressions, the node that we get from
// using parenthesis around an expression. The grouping node has reference to the
// inner expression, so to evaluate it we recursively evaluate the inner subexpression.
func (i *Interpreter) VisitGroupingExpr(expr *Grouping) (interface{}, error) {
	return i.evaluate(expr.Expression)
}

// VisitLiteralExpr converts the literal tree node created during parsing to the
// runtime value. Which simply pulls the literal value back from the Token created
// during scanning.
func (i *Interpreter) VisitLiteralExpr(expr *Literal) (interface{}, error) {
	return expr.Value, nil
}

// VisitUnaryExpr evaluates the unary tree node. Unary expression have single subexpression that
// we need to evaluate first.
func (i *Interpreter) VisitUnaryExpr(expr *Unary) (interface{}, error) {
	// this will evaluate recursively for expressions like !!true, the right operand will be
	// evaluated first before evaluating the operator.
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case Bang:
		return !i.isTruthy(right), nil
	case Minus:
		if err := i.checkNumberOperand(expr.Operator, right); err != nil {
			return nil, err
		}

		return -right.(float64), nil
	}

	// unreachable.
	return nil, nil
}

// evaluate is a helper method that sends the expression back to the interpreter's visitor
// implementation.
func (i *Interpreter) evaluate(expr Expr) (interface{}, error) {
	return expr.Accept(i)
}

// isTruthy is a helper method that determines the truthfulness of a value. In lox the boolean value
// false and nil is considered falsy and everything else truthy.
func (i *Interpreter) isTruthy(val interface{}) bool {
	if val == nil {
		return false
	}

	switch val := val.(type) {
	case bool:
		return val
	}

	return true
}

func (i *Interpreter) checkNumberOperand(operator Token, operand interface{}) error {
	if tools.IsFloat64(operand) {
		return nil
	}

	return NewRuntimeError(operator, "Operand must me a number")
}

func (i *Interpreter) checkNumberOperandBoth(operator Token, left, right interface{}) error {
	if tools.IsFloat64(left) && tools.IsFloat64(right) {
		return nil
	}

	return NewRuntimeError(operator, "Both operands must be numbers")
}
