package events

import (
	"regexp"
	"sort"

	"github.com/zishang520/nobleclass/errors"
	"github.com/zishang520/nobleclass/types"
)

var eventSplitter = regexp.MustCompile(`\s+`)

// Listener is a map entry: either a function object or the name of a method
// looked up on the context when the entry is registered.
type Listener struct {
	fn     *types.Object
	method string
}

// Direct uses fn as the listener.
func Direct(fn *types.Object) Listener {
	return Listener{fn: fn}
}

// Named resolves method on the context each time the map is applied.
func Named(method string) Listener {
	return Listener{method: method}
}

func (l Listener) resolve(ctx *types.Object) (any, error) {
	if l.fn != nil {
		return l.fn, nil
	}
	if ctx == nil {
		return nil, errors.NewTypeError("Cannot read properties of undefined (reading '%s')", l.method)
	}
	return ctx.Get(l.method)
}

// Map binds several events at once, event name -> listener.
type Map map[string]Listener

func (m Map) names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dispatch expands multi-event call shapes into one self[action] call per
// event. It reports false when target is a single event name, leaving the
// caller to handle it.
func dispatch(self *types.Object, action string, target any, args []any) (bool, error) {
	cb, ctx := arg(args, 1), arg(args, 2)

	switch evts := target.(type) {
	case nil:
		return false, nil
	case string:
		if evts == "" || !eventSplitter.MatchString(evts) {
			return false, nil
		}
		for _, name := range eventSplitter.Split(evts, -1) {
			if _, err := self.Invoke(action, name, cb, ctx); err != nil {
				return true, err
			}
		}
		return true, nil
	case Map:
		// (map, ctx) rather than (map, cb, ctx)
		if o, ok := cb.(*types.Object); ok && !o.Callable() && len(args) < 3 {
			ctx = o
		}
		context, err := contextOf(ctx)
		if err != nil {
			return true, err
		}
		for _, name := range evts.names() {
			fn, err := evts[name].resolve(context)
			if err != nil {
				return true, err
			}
			if _, err := self.Invoke(action, name, fn, ctx); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	return false, errors.NewInvalidArgument("event name must be a string or events.Map, got %T", target)
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func contextOf(v any) (*types.Object, error) {
	if v == nil {
		return nil, nil
	}
	ctx, ok := v.(*types.Object)
	if !ok {
		return nil, errors.NewInvalidArgument("listener context must be an object, got %T", v)
	}
	return ctx, nil
}
