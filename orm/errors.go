package orm

import (
	"github.com/iov-one/quorum/errors"
)

// ErrInvalidIndex is returned when a bucket has no index of given name.
var ErrInvalidIndex = errors.Register(100, "invalid index")
