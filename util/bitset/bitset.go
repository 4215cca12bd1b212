package bitset

import (
	"math/bits"
	"strconv"
	"strings"
)

const words = 4

// BitSet is a fixed 256-bit set of 8-bit identifiers. It is a value:
// assignment copies it and == compares membership.
type BitSet struct {
	set [words]uint64
}

func New(ids ...uint8) BitSet {
	var b BitSet
	for _, id := range ids {
		b.Set(id)
	}
	return b
}

func (b *BitSet) Set(id uint8) {
	b.set[id/64] |= uint64(1) << (id % 64)
}

func (b *BitSet) Clear(id uint8) {
	b.set[id/64] &^= uint64(1) << (id % 64)
}

func (b BitSet) Test(id uint8) bool {
	return (b.set[id/64] & (uint64(1) << (id % 64))) != 0
}

func (b BitSet) Union(o BitSet) BitSet {
	for i := range b.set {
		b.set[i] |= o.set[i]
	}
	return b
}

func (b BitSet) Intersect(o BitSet) BitSet {
	for i := range b.set {
		b.set[i] &= o.set[i]
	}
	return b
}

// First returns the lowest member.
func (b BitSet) First() (uint8, bool) {
	for i, w := range b.set {
		if w != 0 {
			return uint8(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return 0, false
}

func (b BitSet) IsEmpty() bool {
	return b == BitSet{}
}

func (b BitSet) Len() int {
	n := 0
	for _, w := range b.set {
		n += bits.OnesCount64(w)
	}
	return n
}

// Members lists the identifiers in ascending order.
func (b BitSet) Members() []uint8 {
	ret := make([]uint8, 0, b.Len())
	for i, w := range b.set {
		for w != 0 {
			t := bits.TrailingZeros64(w)
			ret = append(ret, uint8(i*64+t))
			w &= w - 1
		}
	}
	return ret
}

func (b BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range b.Members() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}
	sb.WriteByte('}')
	return sb.String()
}
