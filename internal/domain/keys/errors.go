package keys

import "errors"

// ErrKeyNotFound is returned when a catalog entry does not exist.
var ErrKeyNotFound = errors.New("key not found")
