/*
File    : monkey/parser/parser.go

Package parser implements a Pratt (top-down operator-precedence) parser
that turns a token stream from the lexer package into an *ast.Program. It
never panics on malformed input: every failure is appended to Errors. A
malformed let statement is skipped up to the next semicolon (or EOF); after
any other error, parsing continues from the token where the error was
recorded.
*/
package parser

import (
	"fmt"

	"github.com/asha-lang/monkey/ast"
	"github.com/asha-lang/monkey/lexer"
)

// Error is a single parse failure: a message and the source location of
// the token where it was observed.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e Error) Error() string {
	return e.Message
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds parsing state: the lexer it pulls tokens from, the current
// and peek tokens, accumulated errors, and the prefix/infix dispatch
// tables keyed by token kind.
type Parser struct {
	lex *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []Error

	prefixParseFns map[lexer.TokenKind]prefixParseFn
	infixParseFns  map[lexer.TokenKind]infixParseFn
}

// New constructs a Parser reading from lex. Construction pre-fetches both
// curToken and peekToken, matching the embedding contract that a freshly
// constructed parser already has both lookahead slots filled.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}

	p.prefixParseFns = map[lexer.TokenKind]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parseIntegerLiteral,
		lexer.TRUE:     p.parseBoolean,
		lexer.FALSE:    p.parseBoolean,
		lexer.NULL:     p.parseNullLiteral,
		lexer.BANG:     p.parsePrefixExpression,
		lexer.MINUS:    p.parsePrefixExpression,
		lexer.LPAREN:   p.parseGroupedExpression,
		lexer.IF:       p.parseIfExpression,
		lexer.FUNCTION: p.parseFunctionLiteral,
	}

	p.infixParseFns = map[lexer.TokenKind]infixParseFn{
		lexer.PLUS:     p.parseInfixExpression,
		lexer.MINUS:    p.parseInfixExpression,
		lexer.SLASH:    p.parseInfixExpression,
		lexer.ASTERISK: p.parseInfixExpression,
		lexer.MODULO:   p.parseInfixExpression,
		lexer.EQ:       p.parseInfixExpression,
		lexer.NOT_EQ:   p.parseInfixExpression,
		lexer.LT:       p.parseInfixExpression,
		lexer.GT:       p.parseInfixExpression,
		lexer.LPAREN:   p.parseCallExpression,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error accumulated so far, in source order.
func (p *Parser) Errors() []Error {
	return p.errors
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, Error{
		Message: fmt.Sprintf(format, args...),
		Line:    p.curToken.Line,
		Column:  p.curToken.Column,
	})
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(kind lexer.TokenKind) bool  { return p.curToken.Kind == kind }
func (p *Parser) peekTokenIs(kind lexer.TokenKind) bool { return p.peekToken.Kind == kind }

// expectPeek advances past the peek token if it has the expected kind,
// returning true; otherwise it records an error and leaves the cursor in
// place.
func (p *Parser) expectPeek(kind lexer.TokenKind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.addError("expected %s, got %s", kind, p.peekToken.Literal)
	return false
}

func (p *Parser) peekPrecedence() int { return precedenceOf(p.peekToken.Kind) }
func (p *Parser) curPrecedence() int  { return precedenceOf(p.curToken.Kind) }

// ParseProgram consumes the entire token stream and returns the resulting
// Program. It never returns an error itself; check Errors() afterward.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}
