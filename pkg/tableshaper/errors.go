package tableshaper

import "errors"

// ErrUnknownFormat indicates an unsupported presentation format.
var ErrUnknownFormat = errors.New("unknown format")
