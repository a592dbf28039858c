package dealer

import "github.com/lox/pokerkernel/internal/card"

// Observation is what the acting player sees: their own hole cards, the
// shared board, and the current betting figures. Every other player's
// hole cards are withheld.
type Observation struct {
	Action         int
	Active         []bool
	Button         int
	Call           int
	CommunityCards []card.Card
	HoleCards      []card.Card
	MinRaise       int
	MaxRaise       int
	Pot            int
	Stacks         []int
	StreetCommits  []int
}

// Snapshot is a full-knowledge render of the table, suitable for
// spectators, logging, or a replay viewer: every seat's hole cards are
// visible regardless of whose turn it is.
type Snapshot struct {
	Action         int      `json:"action"`
	Active         []bool   `json:"active"`
	AllIn          []bool   `json:"all_in"`
	Button         int      `json:"button"`
	CommunityCards []string `json:"community_cards"`
	HoleCards      [][]string `json:"hole_cards"`
	Pot            int      `json:"pot"`
	Stacks         []int    `json:"stacks"`
	Street         int      `json:"street"`
	StreetCommits  []int    `json:"street_commits"`
}

func (d *Dealer) observation(done bool) Observation {
	var call, minRaise, maxRaise int
	if !done && d.action >= 0 {
		call, minRaise, maxRaise = d.betSizes()
	}

	var hole []card.Card
	if d.action >= 0 && d.action < len(d.holeCards) {
		hole = append(hole, d.holeCards[d.action]...)
	}

	return Observation{
		Action:         d.action,
		Active:         append([]bool(nil), d.active...),
		Button:         d.button,
		Call:           call,
		CommunityCards: append([]card.Card(nil), d.communityCards...),
		HoleCards:      hole,
		MinRaise:       minRaise,
		MaxRaise:       maxRaise,
		Pot:            d.pot,
		Stacks:         append([]int(nil), d.stacks...),
		StreetCommits:  append([]int(nil), d.streetCommits...),
	}
}

// Snapshot renders the dealer's full internal state for display or
// logging. Unlike Observation, it is not gated on whose turn it is.
func (d *Dealer) Snapshot() Snapshot {
	allIn := make([]bool, d.cfg.NumPlayers)
	for i := range allIn {
		allIn[i] = d.active[i] && d.stacks[i] == 0
	}

	community := make([]string, len(d.communityCards))
	for i, c := range d.communityCards {
		community[i] = c.String()
	}

	hole := make([][]string, len(d.holeCards))
	for i, hand := range d.holeCards {
		row := make([]string, len(hand))
		for j, c := range hand {
			row[j] = c.String()
		}
		hole[i] = row
	}

	return Snapshot{
		Action:         d.action,
		Active:         append([]bool(nil), d.active...),
		AllIn:          allIn,
		Button:         d.button,
		CommunityCards: community,
		HoleCards:      hole,
		Pot:            d.pot,
		Stacks:         append([]int(nil), d.stacks...),
		Street:         d.street,
		StreetCommits:  append([]int(nil), d.streetCommits...),
	}
}
