// Package card implements the 32-bit card encoding and configurable
// deck shared by the evaluator and dealer packages.
package card

import (
	"fmt"
	"strings"
)

// Card is an immutable 32-bit integer encoding a playing card:
//
//	bits 0-5:   prime number of the rank (2,3,5,7,...,41)
//	bits 8-11:  rank index 0..12 (deuce=0 ... ace=12)
//	bits 12-15: suit bitmask (1=S, 2=H, 4=D, 8=C)
//	bits 16-28: one-hot bit at position = rank index ("bitrank")
//
// Two cards are equal iff their integer values are equal.
type Card int32

// StrRanks lists the thirteen rank characters from lowest to highest.
const StrRanks = "23456789TJQKA"

// Primes holds the prime assigned to each rank index, deuce through ace.
var Primes = [13]int32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Suit bitmasks, in deck-construction order.
const (
	Spades   int32 = 1
	Hearts   int32 = 2
	Diamonds int32 = 4
	Clubs    int32 = 8
)

var suitChars = "SHDC"

var prettySuits = map[int32]string{
	Spades:   "♠",
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
}

var charRankToIndex = func() map[byte]int32 {
	m := make(map[byte]int32, len(StrRanks))
	for i := 0; i < len(StrRanks); i++ {
		m[StrRanks[i]] = int32(i)
	}
	return m
}()

var charSuitToInt = map[byte]int32{
	'S': Spades,
	'H': Hearts,
	'D': Diamonds,
	'C': Clubs,
}

// New parses a card string of the form "{rank}{suit}", e.g. "Ah", "tc",
// "2S". Ranks are case-insensitive from "23456789TJQKA"; suits are
// case-insensitive from "SHDC".
func New(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("card: invalid card string %q", s)
	}
	rankChar := byte(strings.ToUpper(s[0:1])[0])
	suitChar := byte(strings.ToUpper(s[1:2])[0])

	rankIdx, ok := charRankToIndex[rankChar]
	if !ok {
		return 0, fmt.Errorf("%w: invalid rank %q, choose one of %s", ErrInvalidRank, string(rankChar), StrRanks)
	}
	suitInt, ok := charSuitToInt[suitChar]
	if !ok {
		return 0, fmt.Errorf("%w: invalid suit %q, choose one of %s", ErrInvalidSuit, string(suitChar), suitChars)
	}
	return newFromParts(rankIdx, suitInt), nil
}

func newFromParts(rankIdx, suitInt int32) Card {
	prime := Primes[rankIdx]
	bitrank := int32(1) << uint(rankIdx) << 16
	suit := suitInt << 12
	rank := rankIdx << 8
	return Card(bitrank | suit | rank | prime)
}

// Rank returns the 0..12 rank index of the card.
func (c Card) Rank() int32 { return (int32(c) >> 8) & 0xF }

// Suit returns the suit bitmask of the card.
func (c Card) Suit() int32 { return (int32(c) >> 12) & 0xF }

// Prime returns the prime number associated with the card's rank.
func (c Card) Prime() int32 { return int32(c) & 0x3F }

// Bitrank returns the one-hot rank bit of the card, shifted down to bit 0.
func (c Card) Bitrank() int32 { return (int32(c) >> 16) & 0x1FFF }

// Int returns the raw encoded integer, useful for bitwise hand aggregation.
func (c Card) Int() int32 { return int32(c) }

// String renders the card as "{rank}{suit}" using suit glyphs.
func (c Card) String() string {
	return fmt.Sprintf("%c%s", StrRanks[c.Rank()], prettySuits[c.Suit()])
}

// Sentinel errors for malformed card/deck parameters (spec §7).
var (
	ErrInvalidRank = fmt.Errorf("card: invalid rank")
	ErrInvalidSuit = fmt.Errorf("card: invalid suit")
)
