package types

type Void struct{}

var (
	NULL Void
)
