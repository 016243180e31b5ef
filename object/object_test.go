package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentGetMissingReturnsNull(t *testing.T) {
	env := NewEnvironment()
	assert.Equal(t, NULL, env.Get("nope"))
	assert.False(t, env.Has("nope"))
}

func TestEnvironmentInsertAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Insert("x", NewInteger(5))
	got, ok := env.Get("x").(*Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(5), got.Value)
	assert.True(t, env.Has("x"))
}

func TestEnvironmentSetChildDirect(t *testing.T) {
	env := NewEnvironment()
	env.SetChild(NewInteger(1), []string{"a"})
	assert.Equal(t, int64(1), env.Get("a").(*Integer).Value)
}

func TestEnvironmentSetChildNested(t *testing.T) {
	env := NewEnvironment()
	inner := NewLObject()
	env.Insert("a", inner)
	env.SetChild(NewInteger(2), []string{"a", "b"})
	assert.Equal(t, int64(2), inner.Slots().Get("b").(*Integer).Value)
}

func TestEnvironmentSetChildOverwritesNonLObject(t *testing.T) {
	env := NewEnvironment()
	env.Insert("a", NewInteger(1))
	env.SetChild(NewInteger(9), []string{"a", "b"})
	got, ok := env.Get("a").(*Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(9), got.Value)
}

func TestLObjectDeepCloneIsolatesSlots(t *testing.T) {
	x := NewLObject()
	x.Slots().Insert("a", NewInteger(1))

	y := x.DeepClone().(*LObject)
	y.Slots().Insert("a", NewInteger(2))

	assert.Equal(t, int64(1), x.Slots().Get("a").(*Integer).Value)
	assert.Equal(t, int64(2), y.Slots().Get("a").(*Integer).Value)
}

func TestIntegerDeepCloneSharesSlotsShallowly(t *testing.T) {
	i := NewInteger(5)
	i.Slots().Insert("tag", NewString("x"))

	clone := i.DeepClone().(*Integer)
	assert.Equal(t, int64(5), clone.Value)
	assert.Same(t, i.Slots(), clone.Slots())
}

func TestBooleanNativeBoolSharesSingletons(t *testing.T) {
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
}

func TestReturnValueInspectDelegates(t *testing.T) {
	rv := &ReturnValue{Value: NewInteger(7)}
	assert.Equal(t, "7", rv.Inspect())
}

func TestArrayInspect(t *testing.T) {
	arr := NewArray([]Object{NewInteger(1), NewInteger(2)})
	assert.Equal(t, "[1, 2]", arr.Inspect())
}
