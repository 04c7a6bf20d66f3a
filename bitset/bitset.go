// Package bitset implements the 125-bit membership set a constraint is
// represented as: two uint64 words plus the magic-number bit-scan trick
// the teacher used for bitboards, repurposed here to scan code indices
// instead of chess squares.
package bitset

// bitscanMagic is the teacher's de Bruijn-style constant for turning an
// isolated low bit into a dense index via a lookup table.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// lsbLookup maps the top 6 bits of (lsb*bitscanMagic) to the index of
// that lsb within a 64-bit word.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf §3.2.
var lsbLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// lowestSetBit returns the index of the least significant set bit of
// word, or -1 if word is zero.
func lowestSetBit(word uint64) int {
	if word == 0 {
		return -1
	}
	return lsbLookup[word&-word*bitscanMagic>>58]
}

// countSetBits returns the number of set bits in word via Kernighan's
// trick: each iteration clears the lowest set bit.
func countSetBits(word uint64) int {
	n := 0
	for ; word != 0; n++ {
		word &= word - 1
	}
	return n
}

// Set is a membership bitset over [0,125), split across two 64-bit words:
// lo covers indices [0,64), hi covers indices [64,125).
type Set struct {
	Lo, Hi uint64
}

// Insert marks idx as a member of the set.
func (s *Set) Insert(idx int) {
	if idx < 64 {
		s.Lo |= 1 << uint(idx)
	} else {
		s.Hi |= 1 << uint(idx-64)
	}
}

// Contains reports whether idx is a member of the set.
func (s Set) Contains(idx int) bool {
	if idx < 64 {
		return s.Lo&(1<<uint(idx)) != 0
	}
	return s.Hi&(1<<uint(idx-64)) != 0
}

// And returns the intersection of s and other.
func (s Set) And(other Set) Set {
	return Set{Lo: s.Lo & other.Lo, Hi: s.Hi & other.Hi}
}

// IsSupersetOf reports whether every member of other is also a member
// of s.
func (s Set) IsSupersetOf(other Set) bool {
	return s.Lo&other.Lo == other.Lo && s.Hi&other.Hi == other.Hi
}

// Len returns the number of members in the set.
func (s Set) Len() int {
	return countSetBits(s.Lo) + countSetBits(s.Hi)
}

// Lowest returns the smallest member index in the set, or -1 if empty.
func (s Set) Lowest() int {
	if lo := lowestSetBit(s.Lo); lo != -1 {
		return lo
	}
	if hi := lowestSetBit(s.Hi); hi != -1 {
		return 64 + hi
	}
	return -1
}
