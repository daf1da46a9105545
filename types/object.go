package types

import (
	"sort"

	"github.com/zishang520/nobleclass/errors"
)

// Object is a property table with a prototype link. Lookups that miss the own
// table are delegated to the prototype until the chain ends.
//
// An Object created by NewFunction or NewConstructor is also callable.
type Object struct {
	proto      *Object
	keys       []string
	props      map[string]*PropertyDescriptor
	extensible bool
	call       Function
}

// NewObject returns an empty, extensible object delegating to proto (may be nil).
func NewObject(proto *Object) *Object {
	return &Object{
		proto:      proto,
		props:      map[string]*PropertyDescriptor{},
		extensible: true,
	}
}

// FromMap builds a plain object from a Go map. Properties are enumerable,
// writable and configurable, and are added in key order.
func FromMap(values map[string]any) *Object {
	o := NewObject(nil)
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		o.put(name, Plain(values[name]))
	}
	return o
}

func (o *Object) put(name string, desc PropertyDescriptor) {
	if cur, ok := o.props[name]; ok {
		*cur = desc
		return
	}
	o.keys = append(o.keys, name)
	o.props[name] = &desc
}

// Prototype returns the object this one delegates to.
func (o *Object) Prototype() *Object {
	return o.proto
}

// SetPrototypeOf relinks the object. Cycles and relinking a non-extensible
// object are rejected.
func (o *Object) SetPrototypeOf(proto *Object) error {
	if proto == o.proto {
		return nil
	}
	if !o.extensible {
		return errors.NewTypeError("#<Object> is not extensible")
	}
	seen := NewSet[*Object]()
	for p := proto; p != nil && seen.Add(p); p = p.proto {
		if p == o {
			return errors.NewTypeError("Cyclic __proto__ value")
		}
	}
	o.proto = proto
	return nil
}

// IsPrototypeOf reports whether o appears on v's prototype chain.
func (o *Object) IsPrototypeOf(v *Object) bool {
	if v == nil {
		return false
	}
	for p := v.proto; p != nil; p = p.proto {
		if p == o {
			return true
		}
	}
	return false
}

func (o *Object) HasOwnProperty(name string) bool {
	_, ok := o.props[name]
	return ok
}

// Has reports whether name is found on the object or its prototype chain.
func (o *Object) Has(name string) bool {
	for cur := o; cur != nil; cur = cur.proto {
		if _, ok := cur.props[name]; ok {
			return true
		}
	}
	return false
}

// GetOwnPropertyDescriptor returns a copy of the own descriptor for name.
func (o *Object) GetOwnPropertyDescriptor(name string) (PropertyDescriptor, bool) {
	if d, ok := o.props[name]; ok {
		return *d, true
	}
	return PropertyDescriptor{}, false
}

// OwnPropertyNames lists every own property, enumerable or not, in insertion order.
func (o *Object) OwnPropertyNames() []string {
	return append([]string(nil), o.keys...)
}

// Keys lists the enumerable own properties in insertion order.
func (o *Object) Keys() (keys []string) {
	for _, name := range o.keys {
		if o.props[name].Enumerable {
			keys = append(keys, name)
		}
	}
	return keys
}

// DefineProperty creates or redefines an own property.
func (o *Object) DefineProperty(name string, desc PropertyDescriptor) error {
	cur, ok := o.props[name]
	if !ok {
		if !o.extensible {
			return errors.NewTypeError("Cannot define property %s, object is not extensible", name)
		}
		o.put(name, desc)
		return nil
	}
	if !cur.Configurable {
		if desc.Configurable || desc.Enumerable != cur.Enumerable || desc.IsAccessor() != cur.IsAccessor() {
			return errors.NewTypeError("Cannot redefine property: %s", name)
		}
		if cur.IsAccessor() {
			if desc.Get != cur.Get || desc.Set != cur.Set {
				return errors.NewTypeError("Cannot redefine property: %s", name)
			}
		} else if !cur.Writable && (desc.Writable || !SameValue(desc.Value, cur.Value)) {
			return errors.NewTypeError("Cannot redefine property: %s", name)
		}
	}
	*cur = desc
	return nil
}

// Get reads name through the prototype chain. Accessors run with o as receiver.
// A missing property reads as nil.
func (o *Object) Get(name string) (any, error) {
	for cur := o; cur != nil; cur = cur.proto {
		d, ok := cur.props[name]
		if !ok {
			continue
		}
		if !d.IsAccessor() {
			return d.Value, nil
		}
		if d.Get == nil {
			return nil, nil
		}
		return d.Get.Call(o)
	}
	return nil, nil
}

// Set assigns name the way a strict-mode assignment does: read-only own or
// inherited data properties, getter-only accessors and non-extensible targets
// all fail with a TypeError.
func (o *Object) Set(name string, value any) error {
	for cur := o; cur != nil; cur = cur.proto {
		d, ok := cur.props[name]
		if !ok {
			continue
		}
		if d.IsAccessor() {
			if d.Set == nil {
				return errors.NewTypeError("Cannot set property %s of #<Object> which has only a getter", name)
			}
			_, err := d.Set.Call(o, value)
			return err
		}
		if !d.Writable {
			return errors.NewTypeError("Cannot assign to read only property '%s' of object", name)
		}
		if cur == o {
			d.Value = value
			return nil
		}
		break
	}
	if !o.extensible {
		return errors.NewTypeError("Cannot add property %s, object is not extensible", name)
	}
	o.put(name, Plain(value))
	return nil
}

// Delete removes an own property. Non-configurable properties cannot be deleted.
func (o *Object) Delete(name string) error {
	d, ok := o.props[name]
	if !ok {
		return nil
	}
	if !d.Configurable {
		return errors.NewTypeError("Cannot delete property '%s' of #<Object>", name)
	}
	delete(o.props, name)
	for i, key := range o.keys {
		if key == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (o *Object) IsExtensible() bool {
	return o.extensible
}

func (o *Object) PreventExtensions() *Object {
	o.extensible = false
	return o
}

// Freeze makes every own property non-configurable (and data properties
// read-only) and stops new properties from being added.
func (o *Object) Freeze() *Object {
	for _, d := range o.props {
		d.Configurable = false
		if d.IsData() {
			d.Writable = false
		}
	}
	o.extensible = false
	return o
}

func (o *Object) IsFrozen() bool {
	if o.extensible {
		return false
	}
	for _, d := range o.props {
		if d.Configurable || (d.IsData() && d.Writable) {
			return false
		}
	}
	return true
}
