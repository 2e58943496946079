package geodat

import "fmt"

// findRecord walks the binary tree using the bits of ip, most significant
// first, and returns the record offset of the leaf that covers the address.
// ip must already match the tree's family (4 or 16 bytes).
//
// Each node is a pair of big-endian pointers of the edition's node width. A
// pointer below the segment count is the next node index; the segment count
// itself means the branch is empty; anything above it ends the walk at
// pointer minus segment count.
func (db *Database) findRecord(ip []byte) (uint32, error) {
	width := db.st.nodeWidth
	node := make([]byte, 2*width)

	var idx uint32
	bits := len(ip) * 8
	for i := 0; i < bits; i++ {
		off := int64(idx) * int64(2*width)
		if err := readFull(db.src, node, off); err != nil {
			return 0, fmt.Errorf("geodat: %w: node %d: %v", ErrCorruptDatabase, idx, err)
		}

		half := node[:width]
		if ip[i/8]>>(7-uint(i)%8)&1 == 1 {
			half = node[width:]
		}
		ptr := beUint(half)

		switch {
		case ptr == db.st.segments:
			return 0, ErrNotFound
		case ptr > db.st.segments:
			return ptr - db.st.segments, nil
		default:
			idx = ptr
		}
	}
	return 0, fmt.Errorf("geodat: %w: traversal exceeded %d bits", ErrCorruptDatabase, bits)
}

// beUint decodes a big-endian pointer of 1 to 4 bytes.
func beUint(b []byte) uint32 {
	var v uint32
	for _, x := range b {
		v = v<<8 | uint32(x)
	}
	return v
}
