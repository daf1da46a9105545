package types

import (
	"reflect"
)

// PropertyDescriptor describes one own property of an Object. A descriptor with
// Get or Set is an accessor descriptor and Value/Writable are ignored.
type PropertyDescriptor struct {
	Value any
	Get   *Object
	Set   *Object

	Writable     bool
	Enumerable   bool
	Configurable bool
}

func (d PropertyDescriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

func (d PropertyDescriptor) IsData() bool {
	return !d.IsAccessor()
}

// Hidden returns a non-enumerable, writable, configurable data descriptor.
func Hidden(value any) PropertyDescriptor {
	return PropertyDescriptor{Value: value, Writable: true, Configurable: true}
}

// ReadOnly returns a non-writable, non-enumerable, non-configurable data descriptor.
func ReadOnly(value any) PropertyDescriptor {
	return PropertyDescriptor{Value: value}
}

// Plain returns the descriptor an ordinary assignment creates.
func Plain(value any) PropertyDescriptor {
	return PropertyDescriptor{Value: value, Writable: true, Enumerable: true, Configurable: true}
}

// SameValue reports whether two property values are identical. Values of
// incomparable dynamic types are never the same unless both are nil.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
