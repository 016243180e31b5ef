package object

import (
	"fmt"
	"os"
)

// Builtins is the fixed registry of names the evaluator falls back to when
// an identifier is unbound in the environment.
var Builtins = map[string]*Builtin{}

func registerBuiltin(name string, fn BuiltinFunction) {
	Builtins[name] = &Builtin{Name: name, Fn: fn}
}

func init() {
	registerBuiltin("print", builtinPrint)
	registerBuiltin("println", builtinPrintln)
	registerBuiltin("assert", builtinAssert)
	registerBuiltin("len", builtinLen)
	registerBuiltin("first", builtinFirst)
	registerBuiltin("rest", builtinRest)
	registerBuiltin("push", builtinPush)
	registerBuiltin("abs", builtinAbs)
	registerBuiltin("min", builtinMin)
	registerBuiltin("max", builtinMax)
}

// builtinPrint prints the debug form of every argument, space-separated,
// with no trailing newline.
func builtinPrint(args ...Object) Object {
	for i, a := range args {
		if i > 0 {
			fmt.Fprint(os.Stdout, " ")
		}
		fmt.Fprint(os.Stdout, a.Inspect())
	}
	return NULL
}

// builtinPrintln prints its first argument unquoted if it is a String,
// otherwise its Inspect() form, followed by a newline.
func builtinPrintln(args ...Object) Object {
	if len(args) == 0 {
		fmt.Fprintln(os.Stdout)
		return NULL
	}
	if s, ok := args[0].(*String); ok {
		fmt.Fprintln(os.Stdout, s.Value)
	} else {
		fmt.Fprintln(os.Stdout, args[0].Inspect())
	}
	return NULL
}

// builtinAssert requires exactly one Boolean argument; Null on true, a
// fatal panic on false, an Error on anything else.
func builtinAssert(args ...Object) Object {
	if len(args) != 1 {
		return NewError("One argument is required")
	}
	b, ok := args[0].(*Boolean)
	if !ok {
		return NewError("Argument must be Boolean")
	}
	if !b.Value {
		panic("assertion failed")
	}
	return NULL
}

// builtinLen reports the length of a String or Array.
func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch v := args[0].(type) {
	case *String:
		return NewInteger(int64(len(v.Value)))
	case *Array:
		return NewInteger(int64(len(v.Elements)))
	default:
		return NewError("argument to `len` not supported, got %s", args[0].Type())
	}
}

// builtinFirst returns an Array's first element, or Null if it is empty.
func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return NewError("argument to `first` must be Array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	return arr.Elements[0]
}

// builtinRest returns a new Array holding every element after the first,
// or Null if the input is empty.
func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return NewError("argument to `rest` must be Array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return NULL
	}
	rest := make([]Object, len(arr.Elements)-1)
	copy(rest, arr.Elements[1:])
	return NewArray(rest)
}

// builtinPush returns a new Array with value appended, leaving the
// original untouched.
func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return NewError("wrong number of arguments. got=%d, want=2", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return NewError("argument to `push` must be Array, got %s", args[0].Type())
	}
	grown := make([]Object, len(arr.Elements), len(arr.Elements)+1)
	copy(grown, arr.Elements)
	grown = append(grown, args[1])
	return NewArray(grown)
}

// builtinAbs returns the absolute value of an Integer.
func builtinAbs(args ...Object) Object {
	if len(args) != 1 {
		return NewError("wrong number of arguments. got=%d, want=1", len(args))
	}
	i, ok := args[0].(*Integer)
	if !ok {
		return NewError("argument to `abs` must be Integer, got %s", args[0].Type())
	}
	if i.Value < 0 {
		return NewInteger(-i.Value)
	}
	return NewInteger(i.Value)
}

// builtinMin returns the smaller of two Integers.
func builtinMin(args ...Object) Object {
	a, b, err := twoIntegers("min", args)
	if err != nil {
		return err
	}
	if a < b {
		return NewInteger(a)
	}
	return NewInteger(b)
}

// builtinMax returns the larger of two Integers.
func builtinMax(args ...Object) Object {
	a, b, err := twoIntegers("max", args)
	if err != nil {
		return err
	}
	if a > b {
		return NewInteger(a)
	}
	return NewInteger(b)
}

func twoIntegers(name string, args []Object) (int64, int64, *Error) {
	if len(args) != 2 {
		return 0, 0, NewError("wrong number of arguments. got=%d, want=2", len(args))
	}
	a, ok := args[0].(*Integer)
	if !ok {
		return 0, 0, NewError("first argument to `%s` must be Integer, got %s", name, args[0].Type())
	}
	b, ok := args[1].(*Integer)
	if !ok {
		return 0, 0, NewError("second argument to `%s` must be Integer, got %s", name, args[1].Type())
	}
	return a.Value, b.Value, nil
}
