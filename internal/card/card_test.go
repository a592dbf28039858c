package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesRankAndSuit(t *testing.T) {
	c, err := New("Ah")
	require.NoError(t, err)
	assert.EqualValues(t, 12, c.Rank())
	assert.EqualValues(t, Hearts, c.Suit())
	assert.EqualValues(t, 41, c.Prime())
}

func TestNewCaseInsensitive(t *testing.T) {
	lower, err := New("tc")
	require.NoError(t, err)
	upper, err := New("TC")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestNewInvalidRank(t *testing.T) {
	_, err := New("1S")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestNewInvalidSuit(t *testing.T) {
	_, err := New("AX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

func TestEquality(t *testing.T) {
	a, _ := New("Ks")
	b, _ := New("Ks")
	c, _ := New("Kh")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBitrankUniquePerRank(t *testing.T) {
	seen := make(map[int32]bool)
	for _, r := range StrRanks {
		c, err := New(string(r) + "S")
		require.NoError(t, err)
		assert.False(t, seen[c.Bitrank()], "bitrank collision for rank %c", r)
		seen[c.Bitrank()] = true
	}
}
