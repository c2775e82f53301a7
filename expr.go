package glox

// Expr's node types and fields match the Expr type list in
// tools/generate_ast.go, but this file is maintained by hand and differs
// from that tool's output (for example in the name of the visitor
// interface).
type Expr interface {
	Accept(visitor Visitor) (interface{}, error)
}

type Visitor interface {
	VisitAssignExpr(expr *Assign) (interface{}, error)
	VisitBinaryExpr(expr *Binary) (interface{}, error)
	VisitCallExpr(expr *Call) (interface{}, error)
	VisitGetExpr(expr *GetExpr) (interface{}, error)
	VisitGroupingExpr(expr *Grouping) (interface{}, error)
	VisitLiteralExpr(expr *Literal) (interface{}, error)
	VisitLogicalExpr(expr *Logical) (interface{}, error)
	VisitSetExpr(expr *SetExpr) (interface{}, error)
	VisitSuperExpr(expr *SuperExpr) (interface{}, error)
	VisitThisExpr(expr *ThisExpr) (interface{}, error)
	VisitUnaryExpr(expr *Unary) (interface{}, error)
	VisitVarExpr(expr *VarExpr) (interface{}, error)
}

type Assign struct {
	Name  Token
	Value Expr
}

func (a *Assign) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitAssignExpr(a)
}

type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (b *Binary) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitBinaryExpr(b)
}

// Call is a function/method/class invocation: callee(arg, arg, ...).
// ClosingParen is kept (rather than just the callee's token) because it is
// the token we want to blame when the arity check in the interpreter fails.
type Call struct {
	Callee       Expr
	ClosingParen Token
	Arguments    []Expr
}

func (c *Call) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitCallExpr(c)
}

// GetExpr reads a property off an instance: object.name.
type GetExpr struct {
	Object Expr
	Name   Token
}

func (g *GetExpr) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitGetExpr(g)
}

type Grouping struct {
	Expression Expr
}

func (g *Grouping) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitGroupingExpr(g)
}

type Literal struct {
	Value interface{}
}

func (l *Literal) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitLiteralExpr(l)
}

// Logical is "and"/"or". It is kept separate from Binary because, unlike
// every other binary operator, it short-circuits.
type Logical struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (l *Logical) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitLogicalExpr(l)
}

// SetExpr writes a property on an instance: object.name = value.
type SetExpr struct {
	Object Expr
	Name   Token
	Value  Expr
}

func (s *SetExpr) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitSetExpr(s)
}

// SuperExpr is `super.method`. Method is the token naming the method being
// looked up on the superclass; Keyword is the `super` token itself, used for
// resolving its lexical depth.
type SuperExpr struct {
	Keyword Token
	Method  Token
}

func (s *SuperExpr) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitSuperExpr(s)
}

// ThisExpr is the `this` keyword used inside a method body.
type ThisExpr struct {
	Keyword Token
}

func (t *ThisExpr) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitThisExpr(t)
}

type Unary struct {
	Operator Token
	Right    Expr
}

func (u *Unary) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitUnaryExpr(u)
}

type VarExpr struct {
	Name Token
}

func (v *VarExpr) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitVarExpr(v)
}
