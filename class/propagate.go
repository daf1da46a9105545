package class

import (
	"github.com/zishang520/nobleclass/errors"
	"github.com/zishang520/nobleclass/types"
)

// CopyProperties copies every own property of from, enumerable or not, onto
// onto with its full descriptor. Properties already on onto that are not
// writable (accessors included) are left untouched.
func CopyProperties(onto, from *types.Object) error {
	if onto == nil {
		return errors.NewTypeError("Cannot copy properties onto undefined")
	}
	if from == nil {
		return nil
	}
	for _, name := range from.OwnPropertyNames() {
		if replace, ok := onto.GetOwnPropertyDescriptor(name); ok && (!replace.Writable || replace.IsAccessor()) {
			class_log.Debug("skip read-only property %q", name)
			continue
		}
		desc, _ := from.GetOwnPropertyDescriptor(name)
		if err := onto.DefineProperty(name, desc); err != nil {
			return err
		}
	}
	return nil
}
