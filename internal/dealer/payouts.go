package dealer

import "sort"

// handRow is one seat's showdown standing: its strength rank (lower is
// better) and how many chips it put into the pot this hand.
type handRow struct {
	seat      int
	strength  int32
	potCommit int
}

// evalHands scores every active seat's best hand; folded seats get a
// placeholder strength worse than any real hand so they never win a
// side pot.
func (d *Dealer) evalHands() []int32 {
	worst := d.evaluator.MaxRank() + 1
	strengths := make([]int32, d.cfg.NumPlayers)
	for i := range strengths {
		if !d.active[i] {
			strengths[i] = worst
			continue
		}
		strengths[i] = d.evaluator.Evaluate(d.holeCards[i], d.communityCards)
	}
	return strengths
}

// evalRound resolves the showdown into per-seat winnings (not yet netted
// against what each seat put in). It repeatedly gives the best remaining
// hand everything it is entitled to, capped by its own commitment, splits
// that layer among ties, and carries any leftover commitment from
// bigger stacks into the next layer for the next-best hand to contest.
//
// An odd chip left over after splitting a layer goes to the first seat
// clockwise from the button that won at least one chip this hand, not
// to whichever seat happens to sort first — a literal "player_idx +
// button" offset without a modulo can hand the remainder to a seat past
// the table or even fold money to nobody, so the scan below always
// wraps seats through button+1..button+N.
func (d *Dealer) evalRound() []int {
	n := d.cfg.NumPlayers
	strengths := d.evalHands()
	worst := d.evaluator.MaxRank() + 1

	rows := make([]handRow, n)
	for i := 0; i < n; i++ {
		rows[i] = handRow{seat: i, strength: strengths[i], potCommit: d.potCommits[i]}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].strength != rows[b].strength {
			return rows[a].strength < rows[b].strength
		}
		return rows[a].potCommit < rows[b].potCommit
	})

	shares := make([]int, n)
	pot := d.pot
	remainder := 0

	for i := 0; i < len(rows) && pot > 0; i++ {
		if rows[i].strength == worst {
			continue
		}

		var eligible []int
		for j := i; j < len(rows); j++ {
			if rows[j].strength == rows[i].strength {
				eligible = append(eligible, j)
			}
		}

		cuts := make([]int, len(rows))
		splitPot := 0
		for j := range rows {
			cut := rows[j].potCommit
			if cut > rows[i].potCommit {
				cut = rows[i].potCommit
			}
			cuts[j] = cut
			splitPot += cut
		}

		share := splitPot / len(eligible)
		remainder += splitPot % len(eligible)
		for _, j := range eligible {
			shares[rows[j].seat] += share
		}
		for j := range rows {
			rows[j].potCommit -= cuts[j]
		}
		pot -= splitPot
		rows[i].strength = worst
	}

	if remainder > 0 {
		for offset := 1; offset <= n; offset++ {
			seat := (d.button + offset) % n
			if shares[seat] > 0 {
				shares[seat] += remainder
				break
			}
		}
	}

	return shares
}

// computePayouts turns the hand's outcome into a per-seat chip delta
// relative to what each seat already committed to the pot this hand.
func (d *Dealer) computePayouts() []int {
	n := d.cfg.NumPlayers
	payouts := make([]int, n)

	activeCount := 0
	for i, a := range d.active {
		if a {
			activeCount++
		} else {
			payouts[i] = -d.potCommits[i]
		}
	}

	if activeCount == 1 {
		for i := range payouts {
			if d.active[i] {
				payouts[i] = d.pot - d.potCommits[i]
			}
		}
		return payouts
	}

	if d.street >= d.cfg.NumStreets {
		shares := d.evalRound()
		for i := range payouts {
			payouts[i] = shares[i] - d.potCommits[i]
		}
	}

	return payouts
}
