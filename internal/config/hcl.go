package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// rawConfig is the HCL wire shape: a single unlabeled game block whose
// attributes mirror Config field-for-field, except raise_sizes and
// num_raises stay strings so they can carry "pot"/"inf" sentinels.
type rawConfig struct {
	Game rawGame `hcl:"game,block"`
}

type rawGame struct {
	NumPlayers            int      `hcl:"num_players"`
	NumStreets            int      `hcl:"num_streets"`
	Blinds                []int    `hcl:"blinds"`
	Antes                 []int    `hcl:"antes"`
	RaiseSizes            []string `hcl:"raise_sizes"`
	NumRaises             []string `hcl:"num_raises"`
	NumSuits              int      `hcl:"num_suits"`
	NumRanks              int      `hcl:"num_ranks"`
	NumHoleCards          int      `hcl:"num_hole_cards"`
	NumCommunityCards     []int    `hcl:"num_community_cards"`
	NumCardsForHand       int      `hcl:"num_cards_for_hand"`
	MandatoryNumHoleCards int      `hcl:"mandatory_num_hole_cards,optional"`
	StartStack            int      `hcl:"start_stack"`
	LowEndStraight        bool     `hcl:"low_end_straight,optional"`
	Order                 []string `hcl:"order,optional"`
}

// LoadFile parses an HCL game configuration file and validates it.
func LoadFile(filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	var raw rawConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	return fromRawGame(raw.Game)
}

// LoadBytes behaves like LoadFile but reads HCL source already in
// memory, useful for embedding scripted scenarios in tests.
func LoadBytes(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	var raw rawConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %s", ErrInvalidConfig, filename, diags.Error())
	}

	return fromRawGame(raw.Game)
}

func fromRawGame(g rawGame) (*Config, error) {
	raiseSizes := make([]RaiseSize, len(g.RaiseSizes))
	for i, s := range g.RaiseSizes {
		rs, err := ParseRaiseSize(s)
		if err != nil {
			return nil, err
		}
		raiseSizes[i] = rs
	}

	numRaises := make([]RaiseCount, len(g.NumRaises))
	for i, s := range g.NumRaises {
		rc, err := ParseRaiseCount(s)
		if err != nil {
			return nil, err
		}
		numRaises[i] = rc
	}

	c := &Config{
		NumPlayers:            g.NumPlayers,
		NumStreets:            g.NumStreets,
		Blinds:                g.Blinds,
		Antes:                 g.Antes,
		RaiseSizes:            raiseSizes,
		NumRaises:             numRaises,
		NumSuits:              g.NumSuits,
		NumRanks:              g.NumRanks,
		NumHoleCards:          g.NumHoleCards,
		NumCommunityCards:     g.NumCommunityCards,
		NumCardsForHand:       g.NumCardsForHand,
		MandatoryNumHoleCards: g.MandatoryNumHoleCards,
		StartStack:            g.StartStack,
		LowEndStraight:        g.LowEndStraight,
		Order:                 g.Order,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
