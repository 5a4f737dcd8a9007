// Package parser builds an AST from a token stream with a small Pratt
// parser.
package parser

import (
	"fmt"
	"strconv"

	"github.com/petar-dambovaliev/soundbytes/internal/ast"
	"github.com/petar-dambovaliev/soundbytes/internal/lexer"
	"github.com/petar-dambovaliev/soundbytes/internal/token"
)

type precedence int

const (
	lowest precedence = iota + 1
	sum               // +
	product           // * /
	prefix            // -x
	call              // play(x)
)

var precedences = map[token.Type]precedence{
	token.Plus:     sum,
	token.Minus:    sum,
	token.Asterisk: product,
	token.Slash:    product,
	token.LParen:   call,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes a lexer's tokens and produces a Program.
type Parser struct {
	lex    *lexer.Lexer
	errors []string

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New returns a parser over the lexer's tokens.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.Ident:  p.parseIdentifier,
		token.Int:    p.parseIntegerLiteral,
		token.Minus:  p.parsePrefixExpression,
		token.LParen: p.parseGroupedExpression,
	}
	p.infixParseFns = map[token.Type]infixParseFn{
		token.Plus:     p.parseInfixExpression,
		token.Minus:    p.parseInfixExpression,
		token.Asterisk: p.parseInfixExpression,
		token.Slash:    p.parseInfixExpression,
		token.LParen:   p.parseCallExpression,
	}

	// populate curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the parse errors collected so far.
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseProgram parses the whole input.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	if p.curTokenIs(token.Let) {
		return p.parseLetStatement()
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.Ident) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.Assign) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(lowest)

	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(lowest)

	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefixFn := p.prefixParseFns[p.curToken.Type]
	if prefixFn == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefixFn()

	for !p.peekTokenIs(token.Semicolon) && prec < p.peekPrecedence() {
		infixFn := p.infixParseFns[p.peekToken.Type]
		if infixFn == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infixFn(leftExp)
	}
	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as integer", p.curToken.Literal))
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(prefix)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(lowest)
	if !p.expectPeek(token.RParen) {
		return nil
	}
	return exp
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	return &ast.CallExpression{
		Token:     p.curToken,
		Function:  function,
		Arguments: p.parseExpressionList(token.RParen),
	}
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var args []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return args
	}
	p.nextToken()

	if ex := p.parseExpression(lowest); ex != nil {
		args = append(args, ex)
	}

	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		p.nextToken()
		if ex := p.parseExpression(lowest); ex != nil {
			args = append(args, ex)
		}
	}

	if !p.expectPeek(end) {
		return nil
	}
	return args
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errors = append(p.errors, fmt.Sprintf(
		"expected next token to be %s, got %s instead", t, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(t token.Token) {
	p.errors = append(p.errors, fmt.Sprintf("no prefix parse function for %s found", t.Type))
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() precedence {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowest
}

func (p *Parser) curPrecedence() precedence {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowest
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}
