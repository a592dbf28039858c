package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerkernel/internal/card"
	"github.com/lox/pokerkernel/internal/config"
	"github.com/lox/pokerkernel/internal/replay"
)

// DealCmd replays one scripted hand through a Dealer and prints the
// render snapshot after the deal and after every bet, as newline-
// delimited JSON so the output can be piped into a viewer or diffed
// between regression runs.
type DealCmd struct {
	Config      string `arg:"" help:"Path to an HCL game config file"`
	Bets        string `help:"Comma-separated bets to feed the dealer in order; a negative number folds" default:""`
	Seed        int64  `help:"Deck shuffle seed" default:"1"`
	Trick       string `help:"Space-separated cards to force to the top of the deck, e.g. \"Qs Ks Qh\""`
	ResetButton bool   `help:"Start the button at seat 0 rather than rotating it" default:"true"`
	ResetStacks bool   `help:"Top every seat back up to the configured start stack" default:"true"`
	TimeoutMs   int    `help:"Fail if any single Step takes longer than this many milliseconds; 0 disables the check"`
	Verbose     bool   `short:"d" help:"Log dealer activity to stderr"`
}

func (c *DealCmd) Run() error {
	cfg, err := config.LoadFile(c.Config)
	if err != nil {
		return err
	}

	var trick []card.Card
	if c.Trick != "" {
		for _, s := range strings.Fields(c.Trick) {
			cd, err := card.New(s)
			if err != nil {
				return fmt.Errorf("pokerkernel: parsing trick card %q: %w", s, err)
			}
			trick = append(trick, cd)
		}
	}

	var bets []int
	if c.Bets != "" {
		for _, s := range strings.Split(c.Bets, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("pokerkernel: parsing bet %q: %w", s, err)
			}
			bets = append(bets, n)
		}
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	scn := replay.Scenario{
		Config:      cfg,
		Seed:        c.Seed,
		Trick:       trick,
		ResetButton: c.ResetButton,
		ResetStacks: c.ResetStacks,
		Bets:        bets,
	}
	if c.TimeoutMs > 0 {
		scn.StepTimeout = time.Duration(c.TimeoutMs) * time.Millisecond
	}

	runner := replay.NewRunner(logger)
	steps, err := runner.Run(scn)

	enc := json.NewEncoder(os.Stdout)
	for _, step := range steps {
		if encErr := enc.Encode(step.Snapshot); encErr != nil {
			return encErr
		}
	}

	return err
}
