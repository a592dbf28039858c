package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderNil(t *testing.T) {
	cats, err := parseOrder(nil)
	require.NoError(t, err)
	assert.Nil(t, cats)
}

func TestParseOrderValidPermutation(t *testing.T) {
	order := []string{"sf", "fk", "fl", "fh", "st", "tk", "tp", "pa", "hc"}
	cats, err := parseOrder(order)
	require.NoError(t, err)
	require.Len(t, cats, 9)
	assert.Equal(t, StraightFlush, cats[0])
	assert.Equal(t, Flush, cats[2])
	assert.Equal(t, FullHouse, cats[3])
}

func TestParseOrderWrongLength(t *testing.T) {
	_, err := parseOrder([]string{"sf", "fk"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestParseOrderDuplicateTag(t *testing.T) {
	order := []string{"sf", "sf", "fl", "fh", "st", "tk", "tp", "pa", "hc"}
	_, err := parseOrder(order)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestParseOrderUnknownTag(t *testing.T) {
	order := []string{"zz", "fk", "fh", "fl", "st", "tk", "tp", "pa", "hc"}
	_, err := parseOrder(order)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}
