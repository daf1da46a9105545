package class

import (
	"github.com/zishang520/nobleclass/config"
	"github.com/zishang520/nobleclass/events"
	"github.com/zishang520/nobleclass/types"
)

// NewBase returns a new root type. Its prototype holds constructor, on, once,
// off and emit and is frozen; its static extend derives child types.
func NewBase(opts config.BaseOptionsInterface) *types.Object {
	if opts == nil {
		opts = config.DefaultBaseOptions()
	}
	if opts.Debug() {
		class_log.SetDebug(true)
	}

	base := types.NewConstructor(opts.Name(), 0, func(*types.Object, ...any) (any, error) {
		return nil, nil
	})
	p, _ := base.Get(prototypeKey)
	proto := p.(*types.Object)

	must(events.NewEmitter(opts).Define(proto))
	proto.Freeze()

	must(base.DefineProperty(extendKey, types.Hidden(types.NewFunction(extendKey, 2, extend))))

	class_log.Debug("new base type %s", opts.Name())
	return base
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
