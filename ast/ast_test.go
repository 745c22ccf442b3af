/*
File    : monkey/ast/ast_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asha-lang/monkey/lexer"
)

func ident(name string) *Identifier {
	return &Identifier{Token: lexer.New(lexer.IDENT, name, 1, 1), Value: name}
}

func TestLetStatement_String(t *testing.T) {
	stmt := &LetStatement{
		Token: lexer.New(lexer.LET, "let", 1, 1),
		Name:  ident("myVar"),
		Value: ident("anotherVar"),
	}
	assert.Equal(t, "let myVar = anotherVar;", stmt.String())
}

func TestInfixExpression_String(t *testing.T) {
	expr := &InfixExpression{
		Token:    lexer.New(lexer.PLUS, "+", 1, 1),
		Left:     &IntegerLiteral{Token: lexer.New(lexer.INT, "1", 1, 1), Value: 1},
		Operator: "+",
		Right:    &IntegerLiteral{Token: lexer.New(lexer.INT, "2", 1, 1), Value: 2},
	}
	assert.Equal(t, "(1 + 2)", expr.String())
}

func TestPrefixExpression_String(t *testing.T) {
	expr := &PrefixExpression{
		Token:    lexer.New(lexer.MINUS, "-", 1, 1),
		Operator: "-",
		Right:    ident("a"),
	}
	assert.Equal(t, "(-a)", expr.String())
}

func TestProgram_String_JoinsStatementsWithNewline(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&ExpressionStatement{Expression: &InfixExpression{
				Left: &IntegerLiteral{Token: lexer.New(lexer.INT, "3", 1, 1), Value: 3}, Operator: "+",
				Right: &IntegerLiteral{Token: lexer.New(lexer.INT, "4", 1, 6), Value: 4},
			}},
			&ExpressionStatement{Expression: &PrefixExpression{
				Operator: "-",
				Right:    &IntegerLiteral{Token: lexer.New(lexer.INT, "5", 1, 10), Value: 5},
			}},
		},
	}
	assert.Equal(t, "(3 + 4)\n(-5)", prog.String())
}

func TestFunctionLiteral_String(t *testing.T) {
	fn := &FunctionLiteral{
		Token:      lexer.New(lexer.FUNCTION, "fn", 1, 1),
		Parameters: []*Identifier{ident("x"), ident("y")},
		Body: &BlockStatement{Statements: []Statement{
			&ExpressionStatement{Expression: &InfixExpression{
				Left: ident("x"), Operator: "+", Right: ident("y"),
			}},
		}},
	}
	assert.Equal(t, "fn(x, y) (x + y)", fn.String())
}

func TestCallExpression_String(t *testing.T) {
	call := &CallExpression{
		Function:  ident("add"),
		Arguments: []Expression{ident("a"), ident("b")},
	}
	assert.Equal(t, "add(a, b)", call.String())
}
