/*
File    : monkey/function/function.go

Package function holds the Function object value. It is kept separate
from package object because a Function must reference ast.Identifier and
ast.BlockStatement, and object must not import ast (eval imports both
object and ast, and ast must stay leaf-level) -- folding Function into
object would create an object<->ast import cycle once eval wires them
together.
*/
package function

import (
	"strings"

	"github.com/asha-lang/monkey/ast"
	"github.com/asha-lang/monkey/object"
)

// Function is a user-defined closure: its parameter names, its body, and
// the environment that was active when the `fn` literal was evaluated.
// That captured environment, not the caller's, is what a call chains its
// fresh local scope to -- this is what makes it a closure rather than a
// plain procedure.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *object.Environment
}

func (f *Function) Kind() object.Kind { return object.FunctionKind }

// Inspect renders the function per the display contract:
// "fn(<params>) {\n<body>\n}".
func (f *Function) Inspect() string {
	var out strings.Builder

	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}

	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
