package evaluator

import "errors"

// Sentinel errors signalling evaluator misuse (spec §7). Each is
// constructor- or entry-point-level and fatal to the operation.
var (
	ErrInvalidHandSize = errors.New("evaluator: invalid hand size")
	ErrInvalidOrder    = errors.New("evaluator: invalid category order")
	ErrInvalidHandRank = errors.New("evaluator: invalid hand rank")
)
