// Package events provides the on/once/off/emit listener methods shared by
// every type derived from the base class.
//
// The methods are function objects living on a prototype. They keep their
// state in a hidden "_events" property created on the receiver the first time
// it is needed, so every instance owns its own listeners.
package events

import (
	"sort"

	"github.com/zishang520/nobleclass/config"
	"github.com/zishang520/nobleclass/errors"
	"github.com/zishang520/nobleclass/log"
	"github.com/zishang520/nobleclass/types"
)

var events_log = log.NewLog("nobleclass:events")

const (
	// Wildcard passed to off resets every listener.
	Wildcard = "*"
	// All listeners receive every emitted event, name first.
	All = "all"
	// Error is emitted as an UnhandledSignal when nobody listens.
	Error = "error"
	// OffPrefix + name is emitted after each off(name, ...).
	OffPrefix = "off:"

	storeKey    = "_events"
	listenerKey = "listener"
)

type (
	registration struct {
		callback *types.Object
		context  *types.Object
	}

	store struct {
		listeners map[string][]*registration
		warned    *types.Set[string]
	}

	// Emitter builds the listener methods. Its options apply to every
	// instance using those methods.
	Emitter struct {
		maxListeners uint
	}
)

func newStore() *store {
	return &store{listeners: map[string][]*registration{}, warned: types.NewSet[string]()}
}

func (s *store) has(name string) bool {
	return len(s.listeners[name]) > 0
}

// snapshot copies the list so listeners added while emitting wait for the next emit.
func (s *store) snapshot(name string) []*registration {
	return append([]*registration(nil), s.listeners[name]...)
}

// matches reports whether r is selected by an off(name, cb, ctx) filter.
func (r *registration) matches(cb, ctx any) bool {
	if cb != nil && !types.SameValue(any(r.callback), cb) && !types.SameValue(r.original(), cb) {
		return false
	}
	return ctx == nil || types.SameValue(any(r.context), ctx)
}

// original returns the callback a once-wrapper stands for.
func (r *registration) original() any {
	if d, ok := r.callback.GetOwnPropertyDescriptor(listenerKey); ok {
		return d.Value
	}
	return nil
}

func NewEmitter(opts config.BaseOptionsInterface) *Emitter {
	if opts == nil {
		opts = config.DefaultBaseOptions()
	}
	if opts.Debug() {
		events_log.SetDebug(true)
	}
	return &Emitter{maxListeners: opts.MaxListeners()}
}

// Define adds on, once, off and emit to proto.
func (e *Emitter) Define(proto *types.Object) error {
	for _, method := range []struct {
		name   string
		length int
		fn     types.Function
	}{
		{"on", 3, e.on},
		{"once", 3, e.once},
		{"off", 3, e.off},
		{"emit", 1, e.emit},
	} {
		if err := proto.DefineProperty(method.name, types.Plain(types.NewFunction(method.name, method.length, method.fn))); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) storeOf(self *types.Object, create bool) (*store, error) {
	if self == nil {
		return nil, errors.NewTypeError("listener methods called without a receiver")
	}
	if d, ok := self.GetOwnPropertyDescriptor(storeKey); ok {
		if s, ok := d.Value.(*store); ok {
			return s, nil
		}
	}
	if !create {
		return nil, nil
	}
	return e.reset(self)
}

func (e *Emitter) reset(self *types.Object) (*store, error) {
	s := newStore()
	if err := self.DefineProperty(storeKey, types.PropertyDescriptor{Value: s, Writable: true}); err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Emitter) on(self *types.Object, args ...any) (any, error) {
	s, err := e.storeOf(self, true)
	if err != nil {
		return nil, err
	}
	name := arg(args, 0)
	if name == nil || name == "" {
		return self, nil
	}
	if handled, err := dispatch(self, "on", name, args); err != nil || handled {
		if err != nil {
			return nil, err
		}
		return self, nil
	}

	evt := name.(string)
	cb, ok := arg(args, 1).(*types.Object)
	if !ok || !cb.Callable() {
		return nil, errors.NewInvalidArgument("listener for %s must be a function", evt)
	}
	ctx, err := contextOf(arg(args, 2))
	if err != nil {
		return nil, err
	}

	s.listeners[evt] = append(s.listeners[evt], &registration{callback: cb, context: ctx})
	events_log.Debug("on %q, %d listener(s)", evt, len(s.listeners[evt]))

	if e.maxListeners > 0 && uint(len(s.listeners[evt])) > e.maxListeners && s.warned.Add(evt) {
		events_log.Warning("possible EventEmitter memory leak detected. %d %s listeners added. Raise MaxListeners to increase limit.", len(s.listeners[evt]), evt)
	}
	return self, nil
}

func (e *Emitter) once(self *types.Object, args ...any) (any, error) {
	name := arg(args, 0)
	if name == nil || name == "" {
		return self, nil
	}
	if handled, err := dispatch(self, "once", name, args); err != nil || handled {
		if err != nil {
			return nil, err
		}
		return self, nil
	}

	evt := name.(string)
	cb, ok := arg(args, 1).(*types.Object)
	if !ok || !cb.Callable() {
		return nil, errors.NewInvalidArgument("listener for %s must be a function", evt)
	}

	// Detach before calling so a re-entrant emit cannot fire cb twice.
	var wrapper *types.Object
	wrapper = types.NewFunction(cb.Name(), 0, func(this *types.Object, a ...any) (any, error) {
		if _, err := self.Invoke("off", evt, wrapper); err != nil {
			return nil, err
		}
		return cb.Call(this, a...)
	})
	if err := wrapper.DefineProperty(listenerKey, types.ReadOnly(cb)); err != nil {
		return nil, err
	}

	onArgs := []any{evt, wrapper}
	if len(args) > 2 {
		onArgs = append(onArgs, args[2])
	}
	return self.Invoke("on", onArgs...)
}

func (e *Emitter) off(self *types.Object, args ...any) (any, error) {
	name := arg(args, 0)
	s, err := e.storeOf(self, false)
	if err != nil {
		return nil, err
	}
	if name == Wildcard || s == nil {
		if _, err := e.reset(self); err != nil {
			return nil, err
		}
		events_log.Debug("off %q, listeners reset", Wildcard)
		return self, nil
	}

	evt, _ := name.(string)
	cb, ctx := arg(args, 1), arg(args, 2)
	if name != nil && name != "" {
		if handled, err := dispatch(self, "off", name, args); err != nil || handled {
			if err != nil {
				return nil, err
			}
			return self, nil
		}
		if listeners, ok := s.listeners[evt]; ok {
			retain := make([]*registration, 0, len(listeners))
			for _, r := range listeners {
				if !r.matches(cb, ctx) {
					retain = append(retain, r)
				}
			}
			if len(retain) == 0 {
				delete(s.listeners, evt)
				s.warned.Delete(evt)
			} else {
				s.listeners[evt] = retain
			}
			events_log.Debug("off %q, %d of %d listener(s) removed", evt, len(listeners)-len(retain), len(listeners))
		}
	}

	if s.has(OffPrefix + evt) {
		if _, err := self.Invoke("emit", OffPrefix+evt, cb, ctx, self); err != nil {
			return nil, err
		}
	}
	return self, nil
}

func (e *Emitter) emit(self *types.Object, args ...any) (any, error) {
	name, ok := arg(args, 0).(string)
	if !ok {
		return nil, errors.NewInvalidArgument("event name must be a string, got %T", arg(args, 0))
	}
	var payload []any
	if len(args) > 1 {
		payload = args[1:]
	}

	s, err := e.storeOf(self, false)
	if err != nil {
		return nil, err
	}
	if name == Error && (s == nil || !s.has(Error)) {
		return nil, errors.NewUnhandledSignal(arg(payload, 0))
	}
	if s == nil {
		return self, nil
	}

	if s.has(name) {
		if err := call(self, s.snapshot(name), payload); err != nil {
			return nil, err
		}
	}

	// Listeners above may have reset the store.
	if s, err = e.storeOf(self, false); err != nil {
		return nil, err
	}
	if s != nil && s.has(All) {
		if err := call(self, s.snapshot(All), append([]any{name}, payload...)); err != nil {
			return nil, err
		}
	}
	return self, nil
}

// call runs listeners in order, stopping at the first error.
func call(self *types.Object, listeners []*registration, args []any) error {
	for _, r := range listeners {
		this := r.context
		if this == nil {
			this = self
		}
		if _, err := r.callback.Call(this, args...); err != nil {
			return err
		}
	}
	return nil
}

func invoke(obj *types.Object, method string, args []any) error {
	if obj == nil {
		return errors.NewTypeError("Cannot read properties of undefined (reading '%s')", method)
	}
	_, err := obj.Invoke(method, args...)
	return err
}

// On calls obj.on(name, cb, ctx?). name is a string, possibly holding several
// space separated events, or a Map.
func On(obj *types.Object, name any, args ...any) error {
	return invoke(obj, "on", append([]any{name}, args...))
}

// Once calls obj.once(name, cb, ctx?).
func Once(obj *types.Object, name any, args ...any) error {
	return invoke(obj, "once", append([]any{name}, args...))
}

// Off calls obj.off(name?, cb?, ctx?).
func Off(obj *types.Object, args ...any) error {
	return invoke(obj, "off", args)
}

// Emit calls obj.emit(name, args...).
func Emit(obj *types.Object, name string, args ...any) error {
	return invoke(obj, "emit", append([]any{name}, args...))
}

// ListenerCount returns how many listeners obj has for name.
func ListenerCount(obj *types.Object, name string) int {
	if d, ok := obj.GetOwnPropertyDescriptor(storeKey); ok {
		if s, ok := d.Value.(*store); ok {
			return len(s.listeners[name])
		}
	}
	return 0
}

// EventNames lists, sorted, the events obj has listeners for.
func EventNames(obj *types.Object) []string {
	d, ok := obj.GetOwnPropertyDescriptor(storeKey)
	if !ok {
		return nil
	}
	s, ok := d.Value.(*store)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(s.listeners))
	for name := range s.listeners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
