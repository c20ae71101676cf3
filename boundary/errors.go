package boundary

import "errors"

// ErrIndexOutOfRange indicates a column or row index fell outside [0, N).
// Representations are initialized once via Init-style constructors sized to
// N; this is a programmer error, not a runtime condition reduction can hit
// on well-formed input, so representations may panic with it instead of
// threading it through AddTo/Low/Col signatures.
var ErrIndexOutOfRange = errors.New("boundary: index out of range")

// ErrLowDidNotDecrease is a logic-violation assertion: a reducer's add_to
// call was expected to strictly decrease the target column's low, and
// didn't. Indicates a bug in the reducer or in the representation it runs
// against, never a property of well-formed input.
var ErrLowDidNotDecrease = errors.New("boundary: low did not decrease after add")

// ErrDuplicateLow is a logic-violation assertion: two distinct nonempty
// columns claim the same low after a reducer claims to have finished.
var ErrDuplicateLow = errors.New("boundary: duplicate low in reduced matrix")
