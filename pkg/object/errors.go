package object

import "errors"

// Failure classes for store and codec operations. Callers match with
// errors.Is; every wrapped instance carries the offending path or address.
var (
	ErrNotInitialized   = errors.New("not a minigit repository (or any of the parent directories)")
	ErrInvalidAddress   = errors.New("invalid object address")
	ErrObjectNotFound   = errors.New("object not found")
	ErrCorruptObject    = errors.New("corrupt object")
	ErrInvalidReference = errors.New("invalid reference")
)
