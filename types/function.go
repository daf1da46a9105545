package types

import (
	"github.com/zishang520/nobleclass/errors"
)

// Function is the behaviour behind a callable Object. this is the receiver the
// caller selected; it may be nil.
type Function func(this *Object, args ...any) (any, error)

// NewFunction wraps fn in a callable object owning read-only "name" and
// "length" properties.
func NewFunction(name string, length int, fn Function) *Object {
	f := NewObject(nil)
	f.call = fn
	f.put("length", PropertyDescriptor{Value: length, Configurable: true})
	f.put("name", PropertyDescriptor{Value: name, Configurable: true})
	return f
}

// NewConstructor is NewFunction plus a fresh "prototype" object whose
// "constructor" points back at the function.
func NewConstructor(name string, length int, fn Function) *Object {
	f := NewFunction(name, length, fn)
	proto := NewObject(nil)
	proto.put("constructor", Hidden(f))
	f.put("prototype", PropertyDescriptor{Value: proto, Writable: true})
	return f
}

// IsCallable reports whether v is a callable Object.
func IsCallable(v any) bool {
	f, ok := v.(*Object)
	return ok && f != nil && f.call != nil
}

func (o *Object) Callable() bool {
	return o != nil && o.call != nil
}

// Name returns the "name" property of a function object, or "anonymous".
func (o *Object) Name() string {
	if d, ok := o.props["name"]; ok {
		if s, ok := d.Value.(string); ok && s != "" {
			return s
		}
	}
	return "anonymous"
}

// Call runs a function object with the given receiver.
func (o *Object) Call(this *Object, args ...any) (any, error) {
	if !o.Callable() {
		return nil, errors.NewTypeError("object is not a function")
	}
	return o.call(this, args...)
}

// Invoke looks name up through the prototype chain and calls it with o as receiver.
func (o *Object) Invoke(name string, args ...any) (any, error) {
	m, err := o.Get(name)
	if err != nil {
		return nil, err
	}
	if !IsCallable(m) {
		return nil, errors.NewTypeError("%s is not a function", name)
	}
	return m.(*Object).Call(o, args...)
}

// Construct creates an object delegating to ctor.prototype and runs ctor on it.
// An Object returned by ctor replaces the freshly created one.
func Construct(ctor *Object, args ...any) (*Object, error) {
	if !ctor.Callable() {
		return nil, errors.NewTypeError("object is not a constructor")
	}
	p, err := ctor.Get("prototype")
	if err != nil {
		return nil, err
	}
	proto, _ := p.(*Object)
	obj := NewObject(proto)
	res, err := ctor.Call(obj, args...)
	if err != nil {
		return nil, err
	}
	if r, ok := res.(*Object); ok && r != nil {
		return r, nil
	}
	return obj, nil
}

// InstanceOf reports whether ctor.prototype is on v's prototype chain.
func InstanceOf(v any, ctor *Object) (bool, error) {
	if !ctor.Callable() {
		return false, errors.NewTypeError("Right-hand side of 'instanceof' is not callable")
	}
	obj, ok := v.(*Object)
	if !ok || obj == nil {
		return false, nil
	}
	p, err := ctor.Get("prototype")
	if err != nil {
		return false, err
	}
	proto, ok := p.(*Object)
	if !ok || proto == nil {
		return false, errors.NewTypeError("Function has non-object prototype in instanceof check")
	}
	return proto.IsPrototypeOf(obj), nil
}
