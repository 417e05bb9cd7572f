package entropy

// Reader is an MSB-first bit reader over a single tile's bytes.
type Reader struct {
	data     []byte
	bitIndex int
}

func NewReader(data []byte) Reader {
	return Reader{
		data:     data,
		bitIndex: 0,
	}
}

func (r *Reader) position() int {
	return r.bitIndex
}

func (r *Reader) hasRemainingData() bool {
	return r.bitIndex < len(r.data)*8
}

// readBit returns 0 once the data is exhausted.
func (r *Reader) readBit() int {
	if !r.hasRemainingData() {
		r.bitIndex++
		return 0
	}
	bit := int((r.data[r.bitIndex>>3] >> (7 - r.bitIndex&7)) & 1)
	r.bitIndex++
	return bit
}

func (r *Reader) bitAt(pos int) int {
	return int((r.data[pos>>3] >> (7 - pos&7)) & 1)
}

// f reads n bits, most significant first.
func (r *Reader) f(n int) int {
	x := 0
	for i := 0; i < n; i++ {
		x = 2*x + r.readBit()
	}

	return x
}
