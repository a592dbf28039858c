package config

import "errors"

// ErrInvalidConfig signals a malformed or internally inconsistent game
// configuration (spec §7): wrong-length per-player/per-street slices, a
// cards-for-hand count outside 1-5, and similar shape mismatches.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ErrInvalidRaiseSize signals a raise_sizes or num_raises entry that is
// neither a valid integer (positive for raise size, non-negative for
// raise count) nor one of the recognized sentinels ("pot"/"inf" for
// raise size, "inf" for raise count).
var ErrInvalidRaiseSize = errors.New("config: invalid raise size")
