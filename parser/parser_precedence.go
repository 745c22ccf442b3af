/*
File    : monkey/parser/parser_precedence.go
*/
package parser

import "github.com/asha-lang/monkey/lexer"

// Precedence levels for the Pratt expression parser, lowest to tightest
// binding. Comparisons on these constants drive both operator dispatch and
// left-associativity (see parseExpression).
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x
	CALL        // fn(x)
)

var precedences = map[lexer.TokenKind]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.MODULO:   PRODUCT,
	lexer.LPAREN:   CALL,
}

// precedenceOf returns the binding power of kind in infix position, or
// LOWEST if kind never appears as an infix operator.
func precedenceOf(kind lexer.TokenKind) int {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return LOWEST
}
