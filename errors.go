package hashtab

import "errors"

var (
	// ErrTableFull is returned when an open-addressing probe sequence
	// visited every slot without finding a never-occupied one. The table is
	// left unchanged; callers recover by rebuilding at a larger size.
	ErrTableFull = errors.New("hashtab: table full")

	// ErrInvalidConfig is returned by constructors for a non-positive size
	// or an unusable hashing/collision parameter.
	ErrInvalidConfig = errors.New("hashtab: invalid configuration")
)
