package dealer

import "github.com/lox/pokerkernel/internal/config"

// betSizes returns the call amount and the [min, max] raise window
// (chips to put in on this action, call included) for the seat
// currently on action, clipped to that seat's stack. A
// min/max of (0, 0) signals raising is closed for the rest of the
// street (the raise cap has been hit, or a short all-in reopened
// nothing per the "short all-in doesn't reopen the action" rule).
func (d *Dealer) betSizes() (call, minRaise, maxRaise int) {
	maxCommit := maxInts(d.streetCommits)
	call = maxCommit - d.streetCommits[d.action]

	bigBlind := d.cfg.Blinds[1]
	rs := d.cfg.RaiseSizes[d.street]

	switch rs.Kind {
	case config.RaiseSizeFixed:
		minRaise = rs.Fixed + call
		maxRaise = rs.Fixed + call
	case config.RaiseSizePot:
		minRaise = maxInt(bigBlind, d.largestRaise+call)
		maxRaise = d.pot + 2*call
	case config.RaiseSizeNoLimit:
		minRaise = maxInt(bigBlind, d.largestRaise+call)
		maxRaise = d.stacks[d.action]
	}

	nr := d.cfg.NumRaises[d.street]
	raisingClosed := (!nr.Unlimited && d.streetRaises >= nr.Fixed) ||
		(d.streetRaises > 0 && call < d.largestRaise)
	if raisingClosed {
		minRaise, maxRaise = 0, 0
	}

	stack := d.stacks[d.action]
	call = clampInt(call, 0, stack)
	minRaise = clampInt(minRaise, 0, stack)
	maxRaise = clampInt(maxRaise, 0, stack)
	return call, minRaise, maxRaise
}

// cleanBet finds which of the four meaningful amounts (fold-to-zero,
// call, min raise, max raise) a requested bet is nearest to, preferring
// the smaller one on exact ties. A bet nearest to zero or the call is
// snapped to it; a bet nearest to either raise size is clamped into
// [min raise, max raise], so a raise between the two is kept as given.
func cleanBet(bet, call, minRaise, maxRaise int) int {
	options := [4]int{0, call, minRaise, maxRaise}
	best := 0
	bestDist := absInt(bet - options[0])
	for i := 1; i < len(options); i++ {
		dist := absInt(bet - options[i])
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	switch best {
	case 1:
		return call
	case 2, 3:
		return clampInt(bet, minRaise, maxRaise)
	default:
		return 0
	}
}

func maxInts(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
