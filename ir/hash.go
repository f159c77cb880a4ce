package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the subtree rooted at n. Structurally
// equal trees hash equally within one process.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(n.name)
	h.WriteByte(0)
	h.WriteString(n.Text)
	h.WriteByte(0)
	var b [8]byte
	for _, c := range n.children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
