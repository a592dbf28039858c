// Package config defines the dealer's game-shape configuration: table
// size, betting structure, and the deck/hand parameters handed to the
// evaluator. It loads from HCL (see LoadFile) or can be built
// programmatically with FromMap, which is what most tests use.
package config

import (
	"fmt"
	"strconv"
)

// RaiseSizeKind distinguishes the three raise-size conventions a street
// can use (spec §9: "represent raise size as a tagged variant").
type RaiseSizeKind int

const (
	// RaiseSizeFixed means every raise on this street must add exactly
	// Fixed chips on top of the call amount.
	RaiseSizeFixed RaiseSizeKind = iota
	// RaiseSizePot means the max raise is capped at the size of the pot
	// (pot-limit betting).
	RaiseSizePot
	// RaiseSizeNoLimit means the max raise is capped only by the
	// acting player's stack (no-limit betting).
	RaiseSizeNoLimit
)

// RaiseSize is the per-street raise-size rule.
type RaiseSize struct {
	Kind  RaiseSizeKind
	Fixed int
}

func (r RaiseSize) String() string {
	switch r.Kind {
	case RaiseSizePot:
		return "pot"
	case RaiseSizeNoLimit:
		return "inf"
	default:
		return strconv.Itoa(r.Fixed)
	}
}

// ParseRaiseSize parses one raise_sizes entry: a positive integer, "pot",
// or "inf".
func ParseRaiseSize(s string) (RaiseSize, error) {
	switch s {
	case "pot":
		return RaiseSize{Kind: RaiseSizePot}, nil
	case "inf", "unlimited":
		return RaiseSize{Kind: RaiseSizeNoLimit}, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return RaiseSize{}, fmt.Errorf("%w: must be a positive integer, \"pot\", or \"inf\", got %q", ErrInvalidRaiseSize, s)
		}
		return RaiseSize{Kind: RaiseSizeFixed, Fixed: n}, nil
	}
}

// RaiseCount is the per-street cap on the number of raises, or
// Unlimited for no cap.
type RaiseCount struct {
	Unlimited bool
	Fixed     int
}

func (r RaiseCount) String() string {
	if r.Unlimited {
		return "inf"
	}
	return strconv.Itoa(r.Fixed)
}

// ParseRaiseCount parses one num_raises entry: a non-negative integer or
// "inf".
func ParseRaiseCount(s string) (RaiseCount, error) {
	if s == "inf" || s == "unlimited" {
		return RaiseCount{Unlimited: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return RaiseCount{}, fmt.Errorf("%w: must be a non-negative integer or \"inf\", got %q", ErrInvalidRaiseSize, s)
	}
	return RaiseCount{Fixed: n}, nil
}

// Config is the fully resolved, fully validated shape of a poker
// variant: how many players and streets, the betting structure, and the
// deck/hand parameters passed straight through to evaluator.NewEvaluator.
type Config struct {
	NumPlayers int
	NumStreets int

	Blinds     []int
	Antes      []int
	RaiseSizes []RaiseSize
	NumRaises  []RaiseCount

	NumSuits              int
	NumRanks              int
	NumHoleCards          int
	NumCommunityCards     []int
	NumCardsForHand       int
	MandatoryNumHoleCards int

	StartStack int

	LowEndStraight bool
	Order          []string
}

// Validate checks that every per-player and per-street slice has the
// expected length and that the deck/hand parameters are in range (spec
// §7's InvalidConfig cases).
func (c *Config) Validate() error {
	if c.NumPlayers < 2 {
		return fmt.Errorf("%w: num_players must be at least 2, got %d", ErrInvalidConfig, c.NumPlayers)
	}
	if c.NumStreets < 1 {
		return fmt.Errorf("%w: num_streets must be at least 1, got %d", ErrInvalidConfig, c.NumStreets)
	}
	if err := checkLen("blinds", len(c.Blinds), c.NumPlayers); err != nil {
		return err
	}
	if err := checkLen("antes", len(c.Antes), c.NumPlayers); err != nil {
		return err
	}
	if err := checkLen("raise_sizes", len(c.RaiseSizes), c.NumStreets); err != nil {
		return err
	}
	if err := checkLen("num_raises", len(c.NumRaises), c.NumStreets); err != nil {
		return err
	}
	if err := checkLen("num_community_cards", len(c.NumCommunityCards), c.NumStreets); err != nil {
		return err
	}
	if c.NumCardsForHand < 1 || c.NumCardsForHand > 5 {
		return fmt.Errorf("%w: num_cards_for_hand must be between 1 and 5, got %d", ErrInvalidConfig, c.NumCardsForHand)
	}
	if c.MandatoryNumHoleCards < 0 || c.MandatoryNumHoleCards > c.NumHoleCards {
		return fmt.Errorf("%w: mandatory_num_hole_cards must be between 0 and num_hole_cards (%d), got %d", ErrInvalidConfig, c.NumHoleCards, c.MandatoryNumHoleCards)
	}
	if c.StartStack <= 0 {
		return fmt.Errorf("%w: start_stack must be positive, got %d", ErrInvalidConfig, c.StartStack)
	}
	if c.NumSuits < 1 || c.NumSuits > 4 {
		return fmt.Errorf("%w: num_suits must be between 1 and 4, got %d", ErrInvalidConfig, c.NumSuits)
	}
	if c.NumRanks < 1 || c.NumRanks > 13 {
		return fmt.Errorf("%w: num_ranks must be between 1 and 13, got %d", ErrInvalidConfig, c.NumRanks)
	}
	for _, n := range c.NumCommunityCards {
		if n < 0 {
			return fmt.Errorf("%w: num_community_cards entries must be non-negative, got %d", ErrInvalidConfig, n)
		}
	}
	return nil
}

func checkLen(field string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s must have length %d, got %d", ErrInvalidConfig, field, want, got)
	}
	return nil
}

// FromMap builds a Config from a loosely typed map, the way ad hoc test
// scenarios construct one. Any of
// blinds, antes, raise_sizes, num_raises, and num_community_cards may be
// given as a bare scalar instead of a list; FromMap broadcasts the
// scalar across num_players (or num_streets) entries.
func FromMap(m map[string]any) (*Config, error) {
	numPlayers := intField(m, "num_players", 0)
	numStreets := intField(m, "num_streets", 0)

	blinds, err := broadcastInts(m, "blinds", numPlayers)
	if err != nil {
		return nil, err
	}
	antes, err := broadcastInts(m, "antes", numPlayers)
	if err != nil {
		return nil, err
	}
	numCommunityCards, err := broadcastInts(m, "num_community_cards", numStreets)
	if err != nil {
		return nil, err
	}

	rawRaiseSizes, err := broadcastStrings(m, "raise_sizes", numStreets)
	if err != nil {
		return nil, err
	}
	raiseSizes := make([]RaiseSize, len(rawRaiseSizes))
	for i, s := range rawRaiseSizes {
		rs, err := ParseRaiseSize(s)
		if err != nil {
			return nil, err
		}
		raiseSizes[i] = rs
	}

	rawNumRaises, err := broadcastStrings(m, "num_raises", numStreets)
	if err != nil {
		return nil, err
	}
	numRaises := make([]RaiseCount, len(rawNumRaises))
	for i, s := range rawNumRaises {
		rc, err := ParseRaiseCount(s)
		if err != nil {
			return nil, err
		}
		numRaises[i] = rc
	}

	order, _ := m["order"].([]string)

	c := &Config{
		NumPlayers:            numPlayers,
		NumStreets:            numStreets,
		Blinds:                blinds,
		Antes:                 antes,
		RaiseSizes:            raiseSizes,
		NumRaises:             numRaises,
		NumSuits:              intField(m, "num_suits", 4),
		NumRanks:              intField(m, "num_ranks", 13),
		NumHoleCards:          intField(m, "num_hole_cards", 2),
		NumCommunityCards:     numCommunityCards,
		NumCardsForHand:       intField(m, "num_cards_for_hand", 5),
		MandatoryNumHoleCards: intField(m, "mandatory_num_hole_cards", 0),
		StartStack:            intField(m, "start_stack", 0),
		LowEndStraight:        boolField(m, "low_end_straight", true),
		Order:                 order,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func intField(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return def
	}
}

func boolField(m map[string]any, key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

// broadcastInts reads key from m, accepting either a single int/float64
// (broadcast to n copies) or a []int/[]any of length n.
func broadcastInts(m map[string]any, key string, n int) ([]int, error) {
	v, ok := m[key]
	if !ok {
		return make([]int, n), nil
	}
	switch val := v.(type) {
	case int:
		return repeatInt(val, n), nil
	case float64:
		return repeatInt(int(val), n), nil
	case []int:
		return val, nil
	case []any:
		out := make([]int, len(val))
		for i, e := range val {
			switch x := e.(type) {
			case int:
				out[i] = x
			case float64:
				out[i] = int(x)
			default:
				return nil, fmt.Errorf("%w: %s entries must be numbers, got %T", ErrInvalidConfig, key, e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a number or list of numbers, got %T", ErrInvalidConfig, key, v)
	}
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// broadcastStrings mirrors broadcastInts for string-or-number-valued
// fields like raise_sizes ("pot"/"inf" or a fixed amount) and num_raises
// ("inf" or a fixed count); bare numbers are stringified.
func broadcastStrings(m map[string]any, key string, n int) ([]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s is required", ErrInvalidConfig, key)
	}
	toString := func(e any) (string, error) {
		switch x := e.(type) {
		case string:
			return x, nil
		case int:
			return strconv.Itoa(x), nil
		case float64:
			return strconv.Itoa(int(x)), nil
		default:
			return "", fmt.Errorf("%w: %s entries must be strings or numbers, got %T", ErrInvalidConfig, key, e)
		}
	}

	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, len(val))
		for i, e := range val {
			s, err := toString(e)
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	default:
		s, err := toString(val)
		if err != nil {
			return nil, err
		}
		out := make([]string, n)
		for i := range out {
			out[i] = s
		}
		return out, nil
	}
}
