package javarandom

import "errors"

var (
	// ErrInvalidArgument reports an out-of-domain bound or count.
	ErrInvalidArgument = errors.New("javarandom: invalid argument")

	// ErrUnsupported reports a platform lacking 64-bit integers. Go always
	// has them, so nothing in this package returns it.
	ErrUnsupported = errors.New("javarandom: unsupported")
)
