package shell

import "errors"

// ErrUnknownItem is returned when an id matches no catalog item.
var ErrUnknownItem = errors.New("unknown item")
