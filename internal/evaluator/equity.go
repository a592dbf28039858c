package evaluator

import "github.com/lox/pokerkernel/internal/card"

// WinProbabilities estimates each seat's chance of holding the strongest
// hand once the board is complete, by exhaustively enumerating every way
// to deal the remaining community cards from remaining. Folded seats
// (active[i] == false) are skipped and always report 0. Ties credit
// every tied seat a full win for that completion, so with ties the
// probabilities can sum to more than 1.
func (e *Evaluator) WinProbabilities(holeCards [][]card.Card, active []bool, community, remaining []card.Card, numCommunity int) []float64 {
	wins := make([]float64, len(holeCards))
	needed := numCommunity - len(community)

	if needed <= 0 {
		creditWinners(wins, e.strengths(holeCards, active, community), active, 1)
		return normalizeWins(wins, 1)
	}

	completions := combinationsCards(remaining, needed)
	if len(completions) == 0 {
		return wins
	}

	board := make([]card.Card, 0, len(community)+needed)
	for _, extra := range completions {
		board = board[:0]
		board = append(board, community...)
		board = append(board, extra...)
		creditWinners(wins, e.strengths(holeCards, active, board), active, 1)
	}
	return normalizeWins(wins, float64(len(completions)))
}

func (e *Evaluator) strengths(holeCards [][]card.Card, active []bool, community []card.Card) []int32 {
	out := make([]int32, len(holeCards))
	for i, hc := range holeCards {
		if !active[i] {
			out[i] = e.MaxRank() + 1
			continue
		}
		out[i] = e.Evaluate(hc, community)
	}
	return out
}

func creditWinners(wins []float64, strengths []int32, active []bool, amount float64) {
	best := int32(-1)
	for i, s := range strengths {
		if !active[i] {
			continue
		}
		if best == -1 || s < best {
			best = s
		}
	}
	if best == -1 {
		return
	}
	for i, s := range strengths {
		if active[i] && s == best {
			wins[i] += amount
		}
	}
}

func normalizeWins(wins []float64, total float64) []float64 {
	if total <= 0 {
		return wins
	}
	out := make([]float64, len(wins))
	for i, w := range wins {
		out[i] = w / total
	}
	return out
}
