package dealer

import "errors"

// ErrTooFewActivePlayers is returned by Reset when it is called without
// resetting stacks and at most one player has chips to play with (spec §7).
var ErrTooFewActivePlayers = errors.New("dealer: too few active players")

// ErrTableReset is returned by Step when called before the table has
// been (re)dealt via Reset.
var ErrTableReset = errors.New("dealer: table must be reset before stepping")
