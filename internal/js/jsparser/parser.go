// Package jsparser builds an ast.Program from a token stream by
// recursive descent, implementing the grammar spec.md §4.8 gives
// verbatim. Errors are tolerant in the same spirit as the HTML/CSS
// front ends: a statement the parser cannot make sense of is skipped
// rather than aborting the whole parse.
package jsparser

import (
	"strconv"

	"toybrowser/internal/js/ast"
	"toybrowser/internal/js/jslexer"
	"toybrowser/internal/js/token"
)

// Parser holds a one-token lookahead over the lexer's output.
type Parser struct {
	l         *jslexer.Lexer
	curToken  token.Token
	peekToken token.Token
}

// New creates a Parser over the given source text.
func New(input string) *Parser {
	p := &Parser{l: jslexer.New(input)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Parse implements the Program := Statement* production.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.next()
	}
	return prog
}

// parseStatement implements Statement := VariableDeclaration | ExpressionStatement.
func (p *Parser) parseStatement() ast.Statement {
	if p.curToken.Type == token.KEYWORD && p.curToken.Literal == "var" {
		return p.parseVariableDeclaration()
	}
	return p.parseExpressionStatement()
}

// parseVariableDeclaration implements
// VariableDeclaration := 'var' Identifier ( '=' AssignmentExpression )? ';'?
func (p *Parser) parseVariableDeclaration() ast.Statement {
	p.next() // consume 'var'
	if p.curToken.Type != token.IDENT {
		return nil
	}
	name := &ast.Identifier{Name: p.curToken.Literal}
	decl := &ast.VariableDeclaration{Name: name}

	if p.peekToken.Type == token.ASSIGN {
		p.next() // now on '='
		p.next() // now on the expression's first token
		decl.Value = p.parseAssignmentExpression()
	}
	if p.peekToken.Type == token.SEMICOLON {
		p.next()
	}
	return decl
}

// parseExpressionStatement implements
// ExpressionStatement := AssignmentExpression ';'?
func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseAssignmentExpression()
	if expr == nil {
		return nil
	}
	if p.peekToken.Type == token.SEMICOLON {
		p.next()
	}
	return &ast.ExpressionStatement{Expression: expr}
}

// parseAssignmentExpression implements
// AssignmentExpression := AdditiveExpression ( '=' AssignmentExpression )*
func (p *Parser) parseAssignmentExpression() ast.Expression {
	left := p.parseAdditiveExpression()
	if left == nil {
		return nil
	}
	if p.peekToken.Type == token.ASSIGN {
		p.next() // now on '='
		p.next() // now on the right-hand side's first token
		right := p.parseAssignmentExpression()
		return &ast.AssignmentExpression{Target: left, Value: right}
	}
	return left
}

// parseAdditiveExpression implements
// AdditiveExpression := LeftHandSide ( ('+'|'-') AssignmentExpression )*
//
// Note this checks for a trailing operator once, not in a loop: the
// right-hand side is itself an AssignmentExpression (which re-enters
// AdditiveExpression), so a chain like "1 + 2 - 3" is already
// consumed whole by that recursive call. The net result reads as
// right-associative: 1 + (2 - 3), not (1 + 2) - 3.
func (p *Parser) parseAdditiveExpression() ast.Expression {
	left := p.parseLeftHandSide()
	if left == nil {
		return nil
	}
	if p.peekToken.Type == token.PLUS || p.peekToken.Type == token.MINUS {
		op := string(p.peekToken.Type)
		p.next() // now on '+' or '-'
		p.next() // now on the right operand's first token
		right := p.parseAssignmentExpression()
		return &ast.AdditiveExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseLeftHandSide implements LeftHandSide := MemberExpression, where
// MemberExpression := PrimaryExpression: with no property-access
// production, the primary expression is returned as is.
func (p *Parser) parseLeftHandSide() ast.Expression {
	return p.parsePrimaryExpression()
}

// parsePrimaryExpression implements
// PrimaryExpression := Identifier | StringLiteral | NumericLiteral
func (p *Parser) parsePrimaryExpression() ast.Expression {
	switch p.curToken.Type {
	case token.IDENT:
		return &ast.Identifier{Name: p.curToken.Literal}
	case token.STRING:
		return &ast.StringLiteral{Value: p.curToken.Literal}
	case token.NUMBER:
		n, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
		if err != nil {
			return nil
		}
		return &ast.NumericLiteral{Value: n}
	default:
		return nil
	}
}
