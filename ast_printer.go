package glox

import (
	"fmt"
	"strings"
)

// AstPrinter renders a parsed program back out as a parenthesized
// s-expression tree, one line per top-level statement. It exists for the
// `parse` CLI command and for tests that want to assert on parser shape
// without constructing AST nodes by hand.
type AstPrinter struct {
	// last stashes the rendering of the most recently visited statement,
	// since the StmtVisitor methods return only error, unlike the
	// expression Visitor methods which hand the string straight back.
	last string
}

// Print renders every statement in the program, one per line.
func (ap *AstPrinter) Print(statements []Stmt) string {
	lines := make([]string, 0, len(statements))
	for _, stmt := range statements {
		lines = append(lines, ap.printStmt(stmt))
	}

	return strings.Join(lines, "\n")
}

func (ap *AstPrinter) printStmt(stmt Stmt) string {
	if stmt == nil {
		return "(nil)"
	}

	_ = stmt.Accept(ap)
	return ap.last
}

func (ap *AstPrinter) printExpr(expr Expr) string {
	if expr == nil {
		return "nil"
	}

	val, _ := expr.Accept(ap)
	s, _ := val.(string)
	return s
}

func (ap *AstPrinter) VisitBlockStmt(stmt *Block) error {
	parts := make([]string, 0, len(stmt.Statements))
	for _, s := range stmt.Statements {
		parts = append(parts, ap.printStmt(s))
	}

	ap.setLast(ap.parenthesizeRaw("block", parts...))
	return nil
}

func (ap *AstPrinter) VisitClassStmt(stmt *ClassStmt) error {
	name := stmt.Name.Lexeme
	if stmt.Superclass != nil {
		name += " < " + stmt.Superclass.Name.Lexeme
	}

	parts := make([]string, 0, len(stmt.Methods))
	for _, m := range stmt.Methods {
		parts = append(parts, ap.printStmt(m))
	}

	ap.setLast(ap.parenthesizeRaw("class "+name, parts...))
	return nil
}

func (ap *AstPrinter) VisitExpressionExpr(expr *Expression) error {
	ap.setLast(ap.parenthesize(";", expr.Expression))
	return nil
}

func (ap *AstPrinter) VisitPrintExpr(expr *Print) error {
	ap.setLast(ap.parenthesize("print", expr.Expression))
	return nil
}

func (ap *AstPrinter) VisitVarStmt(stmt *VarStmt) error {
	if stmt.Initializer == nil {
		ap.setLast(ap.parenthesizeRaw("var " + stmt.Name.Lexeme))
		return nil
	}

	ap.setLast(ap.parenthesize("var "+stmt.Name.Lexeme, stmt.Initializer))
	return nil
}

func (ap *AstPrinter) VisitIfStmt(stmt *IfStmt) error {
	parts := []string{ap.printExpr(stmt.Condition), ap.printStmt(stmt.ThenBranch)}
	if stmt.ElseBranch != nil {
		parts = append(parts, ap.printStmt(stmt.ElseBranch))
	}

	ap.setLast(ap.parenthesizeRaw("if", parts...))
	return nil
}

func (ap *AstPrinter) VisitWhileStmt(stmt *WhileStmt) error {
	ap.setLast(ap.parenthesizeRaw("while", ap.printExpr(stmt.Condition), ap.printStmt(stmt.Body)))
	return nil
}

func (ap *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) error {
	params := make([]string, 0, len(stmt.Params))
	for _, p := range stmt.Params {
		params = append(params, p.Lexeme)
	}

	body := make([]string, 0, len(stmt.Body))
	for _, s := range stmt.Body {
		body = append(body, ap.printStmt(s))
	}

	ap.setLast(ap.parenthesizeRaw("fun "+stmt.Name.Lexeme+"("+strings.Join(params, " ")+")", body...))
	return nil
}

func (ap *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) error {
	if stmt.Value == nil {
		ap.setLast(ap.parenthesizeRaw("return"))
		return nil
	}

	ap.setLast(ap.parenthesize("return", stmt.Value))
	return nil
}

func (ap *AstPrinter) VisitAssignExpr(expr *Assign) (interface{}, error) {
	return ap.parenthesize("= "+expr.Name.Lexeme, expr.Value), nil
}

func (ap *AstPrinter) VisitBinaryExpr(expr *Binary) (interface{}, error) {
	return ap.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

func (ap *AstPrinter) VisitCallExpr(expr *Call) (interface{}, error) {
	return ap.parenthesize("call", append([]Expr{expr.Callee}, expr.Arguments...)...), nil
}

func (ap *AstPrinter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	return ap.parenthesize("get "+expr.Name.Lexeme, expr.Object), nil
}

func (ap *AstPrinter) VisitGroupingExpr(expr *Grouping) (interface{}, error) {
	return ap.parenthesize("group", expr.Expression), nil
}

func (ap *AstPrinter) VisitLiteralExpr(expr *Literal) (interface{}, error) {
	if expr.Value == nil {
		return "nil", nil
	}

	return fmt.Sprintf("%v", expr.Value), nil
}

func (ap *AstPrinter) VisitLogicalExpr(expr *Logical) (interface{}, error) {
	return ap.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

func (ap *AstPrinter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	return ap.parenthesize("set "+expr.Name.Lexeme, expr.Object, expr.Value), nil
}

func (ap *AstPrinter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	return ap.parenthesizeRaw("super " + expr.Method.Lexeme), nil
}

func (ap *AstPrinter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return "this", nil
}

func (ap *AstPrinter) VisitUnaryExpr(expr *Unary) (interface{}, error) {
	return ap.parenthesize(expr.Operator.Lexeme, expr.Right), nil
}

func (ap *AstPrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (ap *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, ap.printExpr(expr))
	}

	return ap.parenthesizeRaw(name, parts...)
}

func (ap *AstPrinter) parenthesizeRaw(name string, parts ...string) string {
	s := strings.Builder{}
	s.WriteString("(" + name)

	for _, part := range parts {
		s.WriteString(" ")
		s.WriteString(part)
	}

	s.WriteString(")")
	return s.String()
}

func (ap *AstPrinter) setLast(s string) {
	ap.last = s
}
