package valuecodec

import "errors"

// ErrUnsupportedType indicates a value the codec cannot serialize,
// e.g. a non-string passed to the String codec.
var ErrUnsupportedType = errors.New("unsupported value type")
