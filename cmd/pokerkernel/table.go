package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerkernel/internal/evaluator"
)

// TableCmd builds a LookupTable for an arbitrary game shape, classifies
// every rank from 0 to max_rank with GetRankClass, and prints how many
// of those ranks fell in each hand category, the way a
// developer porting a new variant checks the table came out sane before
// wiring it into a Dealer.
type TableCmd struct {
	Suits          int    `default:"4" help:"Number of suits in the deck"`
	Ranks          int    `default:"13" help:"Number of ranks in the deck"`
	CardsForHand   int    `name:"cards" default:"5" help:"Cards that make up a hand"`
	LowEndStraight bool   `default:"true" help:"Count the ace-low wheel as a straight"`
	Order          string `help:"Comma-separated category order, best to worst (e.g. sf,fk,fl,fh,st,tk,tp,pa,hc); empty ranks by rarity"`
}

func (c *TableCmd) Run() error {
	var order []string
	if c.Order != "" {
		order = strings.Split(c.Order, ",")
	}

	ev, err := evaluator.NewEvaluator(c.Suits, c.Ranks, c.CardsForHand, 0, c.LowEndStraight, order)
	if err != nil {
		return err
	}

	fmt.Printf("max_rank: %d\n\n", ev.MaxRank())

	counts := make(map[evaluator.Category]int)
	var categories []evaluator.Category
	for rank := int32(0); rank <= ev.MaxRank(); rank++ {
		cat, err := ev.GetRankClass(rank)
		if err != nil {
			return fmt.Errorf("pokerkernel: classifying rank %d: %w", rank, err)
		}
		if counts[cat] == 0 {
			categories = append(categories, cat)
		}
		counts[cat]++
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "category\tranks\n")
	for _, cat := range categories {
		fmt.Fprintf(w, "%s\t%d\n", cat, counts[cat])
	}
	return w.Flush()
}
