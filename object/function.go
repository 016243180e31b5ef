package object

import (
	"strings"

	"github.com/akashmaji946/lodestone/ast"
)

// Function is a user-defined closure: it captures the environment active
// at the point its FunctionLit was evaluated, by reference, so later
// mutations to that environment are visible when the function runs.
type Function struct {
	Params []*ast.Identifier
	Body   *ast.BlockStatement
	Env    *Environment
	slots  *Environment
}

// NewFunction returns a Function closing over env, with a fresh slot
// table of its own.
func NewFunction(params []*ast.Identifier, body *ast.BlockStatement, env *Environment) *Function {
	return &Function{Params: params, Body: body, Env: env, slots: NewEnvironment()}
}

func (f *Function) Type() ObjectType   { return FUNCTION_OBJ }
func (f *Function) Slots() *Environment { return f.slots }

func (f *Function) Inspect() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Value
	}
	return "fun(" + strings.Join(names, ", ") + ") { ... }"
}

func (f *Function) DeepClone() Object {
	return &Function{Params: f.Params, Body: f.Body, Env: f.Env, slots: f.slots}
}
