package mnemonic

// readBits returns n (<= 32) bits of buf starting at bit offset off,
// most significant bit first.
func readBits(buf []byte, off, n int) uint32 {
	var v uint32
	for i := off; i < off+n; i++ {
		bit := (buf[i/8] >> (7 - uint(i%8))) & 1
		v = v<<1 | uint32(bit)
	}
	return v
}

// writeBits ORs the low n (<= 32) bits of v into buf at bit offset off,
// most significant bit first. The target bits must be zero.
func writeBits(buf []byte, off, n int, v uint32) {
	for i := 0; i < n; i++ {
		if (v>>uint(n-1-i))&1 == 1 {
			pos := off + i
			buf[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}

// bitBufferLen returns the bytes needed to hold totalBits.
func bitBufferLen(totalBits int) int {
	return (totalBits + 7) / 8
}
