package entropy

import "math/bits"

// Encoder is the arithmetic encoder mirroring Decoder. It produces tile
// payloads that end in the trailing bit pattern Exit expects.
type Encoder struct {
	low           uint64
	rng           uint32
	cnt           int
	precarry      []uint16
	disableUpdate bool
}

func NewEncoder(disableCdfUpdate bool) *Encoder {
	return &Encoder{
		rng:           0x8000,
		cnt:           -9,
		disableUpdate: disableCdfUpdate,
	}
}

// EncodeSymbol codes symbol against cdf and adapts cdf the way ReadSymbol does.
func (e *Encoder) EncodeSymbol(cdf []uint16, symbol int) {
	e.encode(cdf, symbol)
	if !e.disableUpdate {
		Adapt(cdf, symbol)
	}
}

func (e *Encoder) encode(cdf []uint16, s int) {
	n := len(cdf)
	l := e.low
	r := e.rng
	fh := uint32(0)
	if s < n-1 {
		fh = uint32(ProbTop - int(cdf[s]))
	}
	v := ((r>>8)*(fh>>probShift))>>(7-probShift) + uint32(minProb*(n-1-s))
	if s > 0 {
		fl := uint32(ProbTop - int(cdf[s-1]))
		u := ((r>>8)*(fl>>probShift))>>(7-probShift) + uint32(minProb*(n-s))
		l += uint64(r - u)
		r = u - v
	} else {
		r -= v
	}
	e.normalize(l, r)
}

func (e *Encoder) normalize(low uint64, rng uint32) {
	c := e.cnt
	d := 16 - bits.Len32(rng)
	s := c + d
	if s >= 0 {
		c += 16
		m := uint64(1)<<c - 1
		if s >= 8 {
			e.precarry = append(e.precarry, uint16(low>>c))
			low &= m
			c -= 8
			m >>= 8
		}
		e.precarry = append(e.precarry, uint16(low>>c))
		s = c + d - 24
		low &= m
	}
	e.low = low << d
	e.rng = rng << d
	e.cnt = s
}

// EncodeBool codes an equiprobable bit.
func (e *Encoder) EncodeBool(bit int) {
	cdf := boolCdf
	e.encode(cdf[:], bit)
}

func (e *Encoder) EncodeLiteral(x, n int) {
	for i := n - 1; i >= 0; i-- {
		e.EncodeBool((x >> i) & 1)
	}
}

// EncodeNS writes x in [0, n) with the non-symmetric literal code.
func (e *Encoder) EncodeNS(x, n int) {
	w := bits.Len(uint(n))
	m := (1 << w) - n
	if x < m {
		e.EncodeLiteral(x, w-1)
		return
	}
	e.EncodeLiteral((x+m)>>1, w-1)
	e.EncodeBool((x + m) & 1)
}

// EncodeGolomb codes x as the Exp-Golomb value ReadGolomb returns.
func (e *Encoder) EncodeGolomb(x int) {
	x++
	length := bits.Len(uint(x))
	for i := 1; i < length; i++ {
		e.EncodeBool(0)
	}
	e.EncodeBool(1)
	for i := length - 2; i >= 0; i-- {
		e.EncodeBool((x >> i) & 1)
	}
}

// Finish flushes the minimum number of bits and returns the payload.
func (e *Encoder) Finish() []byte {
	l := e.low
	c := e.cnt
	s := 10
	m := uint64(0x3FFF)
	v := ((l + m) &^ m) | (m + 1)
	s += c
	buf := append([]uint16(nil), e.precarry...)
	if s > 0 {
		n := uint64(1)<<(c+16) - 1
		for s > 0 {
			buf = append(buf, uint16(v>>(c+16)))
			v &= n
			s -= 8
			c -= 8
			n >>= 8
		}
	}
	out := make([]byte, len(buf))
	carry := 0
	for i := len(buf) - 1; i >= 0; i-- {
		carry += int(buf[i])
		out[i] = byte(carry)
		carry >>= 8
	}
	return out
}
