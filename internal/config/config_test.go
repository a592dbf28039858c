package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leducMap() map[string]any {
	return map[string]any{
		"num_players":              2,
		"num_streets":              2,
		"blinds":                   0,
		"antes":                    1,
		"raise_sizes":              2,
		"num_raises":               2,
		"num_suits":                2,
		"num_ranks":                3,
		"num_hole_cards":           1,
		"num_community_cards":      []any{0, 1},
		"num_cards_for_hand":       2,
		"mandatory_num_hole_cards": 0,
		"start_stack":              10,
		"low_end_straight":         true,
	}
}

func TestFromMapLeducBroadcastsScalars(t *testing.T) {
	c, err := FromMap(leducMap())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, c.Blinds)
	assert.Equal(t, []int{1, 1}, c.Antes)
	require.Len(t, c.RaiseSizes, 2)
	assert.Equal(t, RaiseSize{Kind: RaiseSizeFixed, Fixed: 2}, c.RaiseSizes[0])
	assert.Equal(t, []int{0, 1}, c.NumCommunityCards)
}

func TestFromMapBlindsLengthMismatch(t *testing.T) {
	m := leducMap()
	m["blinds"] = []any{0, 0, 0}
	_, err := FromMap(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFromMapInvalidRaiseSize(t *testing.T) {
	m := leducMap()
	m["raise_sizes"] = "lala"
	_, err := FromMap(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRaiseSize)
}

func TestFromMapNoLimitAndPotRaiseSizes(t *testing.T) {
	m := leducMap()
	m["num_players"] = 2
	m["raise_sizes"] = []any{"pot", "inf"}
	c, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, RaiseSizePot, c.RaiseSizes[0].Kind)
	assert.Equal(t, RaiseSizeNoLimit, c.RaiseSizes[1].Kind)
}

func TestLoadBytesParsesGameBlock(t *testing.T) {
	src := []byte(`
game {
  num_players = 2
  num_streets = 2
  blinds = [1, 2]
  antes = [0, 0]
  raise_sizes = ["inf", "inf"]
  num_raises = ["inf", "inf"]
  num_suits = 4
  num_ranks = 13
  num_hole_cards = 2
  num_community_cards = [0, 5]
  num_cards_for_hand = 5
  start_stack = 200
  low_end_straight = true
}
`)
	c, err := LoadBytes(src, "test.hcl")
	require.NoError(t, err)
	assert.Equal(t, 2, c.NumPlayers)
	assert.Equal(t, []int{1, 2}, c.Blinds)
	assert.True(t, c.NumRaises[0].Unlimited)
}
