package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinAssertTruePasses(t *testing.T) {
	assert.Equal(t, NULL, Builtins["assert"].Fn(TRUE))
}

func TestBuiltinAssertWrongArity(t *testing.T) {
	result := Builtins["assert"].Fn()
	err, ok := result.(*Error)
	assert.True(t, ok)
	assert.Equal(t, "One argument is required", err.Message)
}

func TestBuiltinAssertNonBoolean(t *testing.T) {
	result := Builtins["assert"].Fn(NewInteger(1))
	err, ok := result.(*Error)
	assert.True(t, ok)
	assert.Equal(t, "Argument must be Boolean", err.Message)
}

func TestBuiltinLenString(t *testing.T) {
	result := Builtins["len"].Fn(NewString("hello"))
	assert.Equal(t, int64(5), result.(*Integer).Value)
}

func TestBuiltinLenArray(t *testing.T) {
	result := Builtins["len"].Fn(NewArray([]Object{NewInteger(1), NewInteger(2), NewInteger(3)}))
	assert.Equal(t, int64(3), result.(*Integer).Value)
}

func TestBuiltinFirstAndRest(t *testing.T) {
	arr := NewArray([]Object{NewInteger(1), NewInteger(2), NewInteger(3)})
	first := Builtins["first"].Fn(arr)
	assert.Equal(t, int64(1), first.(*Integer).Value)

	rest := Builtins["rest"].Fn(arr).(*Array)
	assert.Len(t, rest.Elements, 2)
	assert.Equal(t, int64(2), rest.Elements[0].(*Integer).Value)
}

func TestBuiltinFirstEmptyIsNull(t *testing.T) {
	result := Builtins["first"].Fn(NewArray(nil))
	assert.Equal(t, NULL, result)
}

func TestBuiltinPushLeavesOriginalUntouched(t *testing.T) {
	arr := NewArray([]Object{NewInteger(1)})
	grown := Builtins["push"].Fn(arr, NewInteger(2)).(*Array)
	assert.Len(t, arr.Elements, 1)
	assert.Len(t, grown.Elements, 2)
	assert.Equal(t, int64(2), grown.Elements[1].(*Integer).Value)
}

func TestBuiltinAbs(t *testing.T) {
	assert.Equal(t, int64(5), Builtins["abs"].Fn(NewInteger(-5)).(*Integer).Value)
	assert.Equal(t, int64(5), Builtins["abs"].Fn(NewInteger(5)).(*Integer).Value)
}

func TestBuiltinMinMax(t *testing.T) {
	assert.Equal(t, int64(2), Builtins["min"].Fn(NewInteger(2), NewInteger(5)).(*Integer).Value)
	assert.Equal(t, int64(5), Builtins["max"].Fn(NewInteger(2), NewInteger(5)).(*Integer).Value)
}
