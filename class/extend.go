// Package class builds constructible types on top of the types object model.
//
// NewBase returns a root type whose frozen prototype carries the listener
// methods of package events. Extend derives a child type from any type:
//
//	Base := class.NewBase(nil)
//	Model, err := class.Extend(Base, types.FromMap(map[string]any{
//		"save": types.NewFunction("save", 0, save),
//	}), nil)
//	m, err := class.New(Model)
//	err = events.On(m, "change", listener)
//
// A child's prototype delegates to its parent's prototype, so InstanceOf holds
// for every ancestor, and the child keeps a permanent "super" reference to the
// parent. Statics are copied with their descriptors; read-only members already
// on the child are never overwritten.
package class

import (
	"github.com/zishang520/nobleclass/errors"
	"github.com/zishang520/nobleclass/log"
	"github.com/zishang520/nobleclass/types"
)

var class_log = log.NewLog("nobleclass:extend")

const (
	superKey     = "super"
	prototypeKey = "prototype"
	ctorKey      = "constructor"
	extendKey    = "extend"
)

// extend is the static "extend" member; this is the type being extended.
func extend(parent *types.Object, args ...any) (any, error) {
	if parent == nil {
		return nil, errors.NewTypeError("extend called without a type")
	}
	protoProps, err := propsArg(args, 0)
	if err != nil {
		return nil, err
	}
	staticProps, err := propsArg(args, 1)
	if err != nil {
		return nil, err
	}

	var child *types.Object
	if protoProps != nil && protoProps.HasOwnProperty(ctorKey) {
		ctor, err := protoProps.Get(ctorKey)
		if err != nil {
			return nil, err
		}
		c, ok := ctor.(*types.Object)
		if !ok || c == nil {
			return nil, errors.NewTypeError("Object.defineProperty called on non-object")
		}
		child = c
	} else {
		child = types.NewConstructor("subClass", 0, func(this *types.Object, args ...any) (any, error) {
			sup, err := child.Get(superKey)
			if err != nil {
				return nil, err
			}
			s, ok := sup.(*types.Object)
			if !ok {
				return nil, errors.NewTypeError("super is not a constructor")
			}
			return s.Call(this, args...)
		})
	}

	if err := child.DefineProperty(superKey, types.ReadOnly(parent)); err != nil {
		return nil, err
	}

	if err := CopyProperties(child, parent); err != nil {
		return nil, err
	}
	if err := CopyProperties(child, staticProps); err != nil {
		return nil, err
	}

	p, err := parent.Get(prototypeKey)
	if err != nil {
		return nil, err
	}
	parentProto, ok := p.(*types.Object)
	if p != nil && !ok {
		return nil, errors.NewTypeError("Object prototype may only be an Object or null")
	}
	proto := types.NewObject(parentProto)
	if err := proto.DefineProperty(ctorKey, types.Hidden(child)); err != nil {
		return nil, err
	}
	if child.HasOwnProperty(prototypeKey) {
		err = child.Set(prototypeKey, proto)
	} else {
		err = child.DefineProperty(prototypeKey, types.PropertyDescriptor{Value: proto, Writable: true})
	}
	if err != nil {
		return nil, err
	}

	if err := CopyProperties(proto, protoProps); err != nil {
		return nil, err
	}

	class_log.Debug("extended %s into %s", parent.Name(), child.Name())
	return child, nil
}

func propsArg(args []any, i int) (*types.Object, error) {
	if i >= len(args) || args[i] == nil {
		return nil, nil
	}
	switch v := args[i].(type) {
	case *types.Object:
		return v, nil
	case map[string]any:
		return types.FromMap(v), nil
	}
	return nil, errors.NewTypeError("property bag must be an object, got %T", args[i])
}

// Extend derives a new type from parent through parent's own "extend" member,
// so a type that overrides extend keeps control over its children. Either bag
// may be nil.
func Extend(parent *types.Object, protoProps, staticProps *types.Object) (*types.Object, error) {
	if parent == nil {
		return nil, errors.NewTypeError("Cannot read properties of undefined (reading '%s')", extendKey)
	}
	res, err := parent.Invoke(extendKey, protoProps, staticProps)
	if err != nil {
		return nil, err
	}
	child, ok := res.(*types.Object)
	if !ok || child == nil {
		return nil, errors.NewTypeError("extend of %s did not return a type", parent.Name())
	}
	return child, nil
}

// New constructs an instance of ctor.
func New(ctor *types.Object, args ...any) (*types.Object, error) {
	return types.Construct(ctor, args...)
}

// Super returns the type ctor was extended from, or nil for a root type.
func Super(ctor *types.Object) *types.Object {
	if d, ok := ctor.GetOwnPropertyDescriptor(superKey); ok {
		if s, ok := d.Value.(*types.Object); ok {
			return s
		}
	}
	return nil
}

// InstanceOf reports whether v was built by ctor or one of its descendants.
func InstanceOf(v any, ctor *types.Object) bool {
	ok, err := types.InstanceOf(v, ctor)
	return err == nil && ok
}
