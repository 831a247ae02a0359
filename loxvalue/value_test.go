/*
File    : golox/loxvalue/value_test.go
Package : loxvalue
*/
package loxvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(nil))
	assert.False(t, IsTruthy(false))
	assert.True(t, IsTruthy(true))
	assert.True(t, IsTruthy(0.0))
	assert.True(t, IsTruthy(""))
	assert.True(t, IsTruthy("anything"))
}

func TestIsEqual(t *testing.T) {
	assert.True(t, IsEqual(nil, nil))
	assert.False(t, IsEqual(nil, false))
	assert.True(t, IsEqual(1.0, 1.0))
	assert.False(t, IsEqual(1.0, "1"))
	assert.True(t, IsEqual("a", "a"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "3", Stringify(3.0))
	assert.Equal(t, "3.14", Stringify(3.14))
	assert.Equal(t, "hi", Stringify("hi"))
}

func TestClass_FindMethodFallsBackToSuperclass(t *testing.T) {
	base := NewClass("Base", nil, map[string]*Function{
		"greet": {},
	})
	sub := NewClass("Sub", base, map[string]*Function{})

	assert.NotNil(t, sub.FindMethod("greet"))
	assert.Nil(t, sub.FindMethod("missing"))
}

func TestInstance_GetUnsetFieldAndMethodReportsNotFound(t *testing.T) {
	class := NewClass("Thing", nil, map[string]*Function{})
	instance := NewInstance(class)
	_, ok := instance.Get("nope")
	assert.False(t, ok)
}

func TestInstance_SetThenGetReturnsField(t *testing.T) {
	class := NewClass("Thing", nil, map[string]*Function{})
	instance := NewInstance(class)
	instance.Set("x", 1.0)
	v, ok := instance.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}
