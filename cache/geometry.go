// Package cache simulates a set-associative cache with LRU replacement.
// The simulator is a pure accounting model: it tracks which lines are
// resident and in what recency order, not the data they hold.
package cache

import "fmt"

// AddressWidth is the number of bits in a simulated memory address.
const AddressWidth = 64

// maxSetIndexBits bounds the number of sets a cache can allocate.
// 1 << SetIndexBits must fit in an int on 32-bit platforms.
const maxSetIndexBits = 30

// Geometry describes the shape of a simulated cache. A cache has
// 2^SetIndexBits sets, each holding LinesPerSet lines of 2^BlockOffsetBits
// bytes.
type Geometry struct {
	SetIndexBits    int
	BlockOffsetBits int
	LinesPerSet     int
}

// NumSets returns the number of sets in the cache.
func (g Geometry) NumSets() int {
	return 1 << g.SetIndexBits
}

// Validate checks that the geometry describes a buildable cache.
func (g Geometry) Validate() error {
	if g.LinesPerSet < 1 {
		return fmt.Errorf(
			"cache: lines per set must be at least 1, got %d",
			g.LinesPerSet)
	}

	if g.SetIndexBits < 0 {
		return fmt.Errorf(
			"cache: set index bits must not be negative, got %d",
			g.SetIndexBits)
	}

	if g.SetIndexBits > maxSetIndexBits {
		return fmt.Errorf(
			"cache: set index bits must be at most %d, got %d",
			maxSetIndexBits, g.SetIndexBits)
	}

	if g.BlockOffsetBits < 0 {
		return fmt.Errorf(
			"cache: block offset bits must not be negative, got %d",
			g.BlockOffsetBits)
	}

	if g.SetIndexBits+g.BlockOffsetBits > AddressWidth {
		return fmt.Errorf(
			"cache: set index bits and block offset bits use %d bits, "+
				"addresses only have %d",
			g.SetIndexBits+g.BlockOffsetBits, AddressWidth)
	}

	return nil
}

// Decode splits an address into the tag and the set index. The block
// offset is dropped as it never participates in tag comparison.
func (g Geometry) Decode(addr uint64) (tag uint64, setID int) {
	setMask := uint64(1)<<g.SetIndexBits - 1
	setID = int(addr >> g.BlockOffsetBits & setMask)
	tag = addr >> (g.SetIndexBits + g.BlockOffsetBits)

	return tag, setID
}
