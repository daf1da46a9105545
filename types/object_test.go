package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zishang520/nobleclass/errors"
)

func TestObjectProperties(t *testing.T) {
	t.Run("own names keep insertion order", func(t *testing.T) {
		o := NewObject(nil)
		require.NoError(t, o.Set("b", 1))
		require.NoError(t, o.DefineProperty("hidden", Hidden(2)))
		require.NoError(t, o.Set("a", 3))

		assert.Equal(t, []string{"b", "hidden", "a"}, o.OwnPropertyNames())
		assert.Equal(t, []string{"b", "a"}, o.Keys())

		require.NoError(t, o.Delete("hidden"))
		assert.Equal(t, []string{"b", "a"}, o.OwnPropertyNames())
		assert.False(t, o.HasOwnProperty("hidden"))
	})

	t.Run("FromMap sorts keys", func(t *testing.T) {
		o := FromMap(map[string]any{"z": 1, "a": 2, "m": 3})
		assert.Equal(t, []string{"a", "m", "z"}, o.Keys())
	})

	t.Run("get walks the prototype chain", func(t *testing.T) {
		parent := FromMap(map[string]any{"x": 1})
		child := NewObject(parent)

		v, err := child.Get("x")
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.True(t, child.Has("x"))
		assert.False(t, child.HasOwnProperty("x"))

		v, err = child.Get("missing")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set shadows writable inherited properties", func(t *testing.T) {
		parent := FromMap(map[string]any{"x": 1})
		child := NewObject(parent)

		require.NoError(t, child.Set("x", 2))
		v, _ := parent.Get("x")
		assert.Equal(t, 1, v)
		v, _ = child.Get("x")
		assert.Equal(t, 2, v)
	})

	t.Run("set fails on read-only properties", func(t *testing.T) {
		parent := NewObject(nil)
		require.NoError(t, parent.DefineProperty("x", ReadOnly(1)))
		child := NewObject(parent)

		assert.ErrorIs(t, parent.Set("x", 2), errors.ErrTypeError)
		assert.ErrorIs(t, child.Set("x", 2), errors.ErrTypeError)
		assert.False(t, child.HasOwnProperty("x"))
	})

	t.Run("accessors run with the receiver", func(t *testing.T) {
		proto := NewObject(nil)
		getter := NewFunction("get", 0, func(this *Object, _ ...any) (any, error) {
			return this.Get("_v")
		})
		setter := NewFunction("set", 1, func(this *Object, args ...any) (any, error) {
			return nil, this.DefineProperty("_v", Hidden(args[0]))
		})
		require.NoError(t, proto.DefineProperty("v", PropertyDescriptor{Get: getter, Set: setter}))

		obj := NewObject(proto)
		require.NoError(t, obj.Set("v", 42))
		v, err := obj.Get("v")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
		assert.False(t, proto.HasOwnProperty("_v"))

		readOnly := NewObject(nil)
		require.NoError(t, readOnly.DefineProperty("v", PropertyDescriptor{Get: getter}))
		assert.ErrorIs(t, readOnly.Set("v", 1), errors.ErrTypeError)
	})

	t.Run("redefining non-configurable properties", func(t *testing.T) {
		o := NewObject(nil)
		require.NoError(t, o.DefineProperty("w", PropertyDescriptor{Value: 1, Writable: true}))
		require.NoError(t, o.DefineProperty("w", PropertyDescriptor{Value: 2, Writable: true}))
		require.NoError(t, o.DefineProperty("w", PropertyDescriptor{Value: 3}))

		assert.Error(t, o.DefineProperty("w", PropertyDescriptor{Value: 4}))
		assert.Error(t, o.DefineProperty("w", PropertyDescriptor{Value: 3, Writable: true}))
		assert.Error(t, o.DefineProperty("w", PropertyDescriptor{Value: 3, Configurable: true}))
		assert.Error(t, o.DefineProperty("w", PropertyDescriptor{Value: 3, Enumerable: true}))
		assert.NoError(t, o.DefineProperty("w", PropertyDescriptor{Value: 3}))
		assert.Error(t, o.Delete("w"))
	})

	t.Run("freeze", func(t *testing.T) {
		o := FromMap(map[string]any{"x": 1})
		assert.False(t, o.IsFrozen())
		o.Freeze()

		assert.True(t, o.IsFrozen())
		assert.False(t, o.IsExtensible())
		assert.ErrorIs(t, o.Set("x", 2), errors.ErrTypeError)
		assert.ErrorIs(t, o.Set("y", 2), errors.ErrTypeError)
		assert.ErrorIs(t, o.Delete("x"), errors.ErrTypeError)
		assert.ErrorIs(t, o.DefineProperty("y", Plain(1)), errors.ErrTypeError)
	})
}

func TestPrototypes(t *testing.T) {
	a := NewObject(nil)
	b := NewObject(a)
	c := NewObject(b)

	assert.True(t, a.IsPrototypeOf(c))
	assert.False(t, c.IsPrototypeOf(a))
	assert.Same(t, b, c.Prototype())

	assert.ErrorIs(t, a.SetPrototypeOf(c), errors.ErrTypeError)
	assert.NoError(t, c.SetPrototypeOf(a))
	assert.Same(t, a, c.Prototype())

	assert.Error(t, NewObject(nil).PreventExtensions().SetPrototypeOf(a))
}

func TestFunctions(t *testing.T) {
	t.Run("name and length are read-only", func(t *testing.T) {
		f := NewFunction("f", 2, func(*Object, ...any) (any, error) { return nil, nil })
		assert.Equal(t, "f", f.Name())
		assert.ErrorIs(t, f.Set("name", "g"), errors.ErrTypeError)
		assert.ErrorIs(t, f.Set("length", 0), errors.ErrTypeError)
		assert.Equal(t, "anonymous", NewFunction("", 0, nil).Name())
	})

	t.Run("call and invoke", func(t *testing.T) {
		obj := NewObject(nil)
		f := NewFunction("f", 0, func(this *Object, args ...any) (any, error) {
			return []any{this, args}, nil
		})
		require.NoError(t, obj.Set("f", f))

		res, err := obj.Invoke("f", 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []any{obj, []any{1, 2}}, res)

		_, err = obj.Invoke("missing")
		assert.ErrorIs(t, err, errors.ErrTypeError)
		_, err = obj.Call(nil)
		assert.ErrorIs(t, err, errors.ErrTypeError)
		assert.False(t, IsCallable(obj))
		assert.True(t, IsCallable(f))
	})

	t.Run("construct", func(t *testing.T) {
		ctor := NewConstructor("Point", 2, func(this *Object, args ...any) (any, error) {
			if err := this.Set("x", args[0]); err != nil {
				return nil, err
			}
			return nil, this.Set("y", args[1])
		})
		p, err := Construct(ctor, 1, 2)
		require.NoError(t, err)

		x, _ := p.Get("x")
		assert.Equal(t, 1, x)
		c, _ := p.Get("constructor")
		assert.Same(t, ctor, c)

		ok, err := InstanceOf(p, ctor)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = InstanceOf("nope", ctor)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = InstanceOf(p, NewObject(nil))
		assert.ErrorIs(t, err, errors.ErrTypeError)
	})

	t.Run("constructor returning an object replaces the instance", func(t *testing.T) {
		replacement := NewObject(nil)
		ctor := NewConstructor("Factory", 0, func(*Object, ...any) (any, error) {
			return replacement, nil
		})
		got, err := Construct(ctor)
		require.NoError(t, err)
		assert.Same(t, replacement, got)
	})
}
