package persist

import "errors"

// ErrMalformed indicates the stream being read does not match the
// expected ASCII or binary layout.
var ErrMalformed = errors.New("persist: malformed input")
