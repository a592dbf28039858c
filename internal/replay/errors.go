package replay

import "errors"

// ErrStepTimeout is returned by Run when a single Step exceeds the
// scenario's StepTimeout.
var ErrStepTimeout = errors.New("replay: step exceeded timeout budget")
