package config

type BaseOptionsInterface interface {
	SetName(string)
	GetRawName() *string
	Name() string

	SetMaxListeners(uint)
	GetRawMaxListeners() *uint
	MaxListeners() uint

	SetDebug(bool)
	GetRawDebug() *bool
	Debug() bool
}

type BaseOptions struct {
	// name given to the root constructor
	name *string `json:"name,omitempty"`

	// listeners per event before a leak warning is logged, 0 means unlimited
	maxListeners *uint `json:"maxListeners,omitempty"`

	// force debug output regardless of the DEBUG environment variable
	debug *bool `json:"debug,omitempty"`
}

func DefaultBaseOptions() *BaseOptions {
	b := &BaseOptions{}
	return b
}

func (b *BaseOptions) Assign(data BaseOptionsInterface) BaseOptionsInterface {
	if data == nil {
		return b
	}

	if b.GetRawName() == nil {
		b.SetName(data.Name())
	}
	if b.GetRawMaxListeners() == nil {
		b.SetMaxListeners(data.MaxListeners())
	}
	if b.GetRawDebug() == nil {
		b.SetDebug(data.Debug())
	}

	return b
}

// name given to the root constructor
// @default "NobleClass"
func (b *BaseOptions) SetName(name string) {
	b.name = &name
}
func (b *BaseOptions) GetRawName() *string {
	return b.name
}
func (b *BaseOptions) Name() string {
	if b.name == nil {
		return "NobleClass"
	}

	return *b.name
}

// listeners per event before a leak warning is logged, 0 means unlimited
// @default 0
func (b *BaseOptions) SetMaxListeners(maxListeners uint) {
	b.maxListeners = &maxListeners
}
func (b *BaseOptions) GetRawMaxListeners() *uint {
	return b.maxListeners
}
func (b *BaseOptions) MaxListeners() uint {
	if b.maxListeners == nil {
		return 0
	}

	return *b.maxListeners
}

// force debug output regardless of the DEBUG environment variable
// @default false
func (b *BaseOptions) SetDebug(debug bool) {
	b.debug = &debug
}
func (b *BaseOptions) GetRawDebug() *bool {
	return b.debug
}
func (b *BaseOptions) Debug() bool {
	if b.debug == nil {
		return false
	}

	return *b.debug
}
