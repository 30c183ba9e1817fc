package sessiontransport

import "errors"

// ErrNoCodec indicates the store was constructed without a session codec.
var ErrNoCodec = errors.New("session codec is required")
