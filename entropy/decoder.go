package entropy

import (
	"errors"
	"math/bits"
)

const (
	// ProbTop is the total every cumulative table is expressed against.
	ProbTop = 1 << 15

	probShift = 6
	minProb   = 4

	// MaxCount caps the adaptation counter stored after the thresholds.
	MaxCount = 32

	maxGolombLength = 20
)

var (
	// ErrOverread indicates the decoder consumed more than the slack allowed past the tile end.
	ErrOverread = errors.New("entropy: read past end of tile data")

	// ErrTrailingBits indicates the padding after the last symbol is not a single 1 followed by zeros.
	ErrTrailingBits = errors.New("entropy: invalid trailing bits")

	// ErrGolombLength indicates a Golomb prefix longer than 20 bits.
	ErrGolombLength = errors.New("entropy: golomb length exceeds 20")
)

// Decoder is the adaptive multi-symbol arithmetic decoder of one tile.
//
// A cumulative table for an N-symbol alphabet is a []uint16 of length N:
// N-1 strictly increasing thresholds followed by the adaptation counter.
type Decoder struct {
	r             Reader
	size          int
	symbolValue   int
	symbolRange   int
	symbolMaxBits int
	disableUpdate bool
	err           error
}

// Init resets the decoder to the start of data. It must be paired with one Exit.
func (d *Decoder) Init(data []byte, disableCdfUpdate bool) {
	d.r = NewReader(data)
	d.size = len(data)
	d.disableUpdate = disableCdfUpdate
	d.err = nil

	numBits := min(d.size*8, 15)
	buf := d.r.f(numBits)
	paddedBuf := buf << (15 - numBits)
	d.symbolValue = ((1 << 15) - 1) ^ paddedBuf
	d.symbolRange = 1 << 15
	d.symbolMaxBits = 8*d.size - 15
}

// Err returns the first error recorded since Init.
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// ReadSymbol decodes one symbol against cdf and adapts cdf in place.
func (d *Decoder) ReadSymbol(cdf []uint16) int {
	symbol := d.decode(cdf)
	if !d.disableUpdate {
		Adapt(cdf, symbol)
	}
	return symbol
}

func (d *Decoder) decode(cdf []uint16) int {
	n := len(cdf)
	cur := d.symbolRange
	var prev int
	symbol := -1
	for {
		symbol++
		prev = cur
		if symbol == n-1 {
			cur = 0
			break
		}
		f := ProbTop - int(cdf[symbol])
		cur = ((d.symbolRange >> 8) * (f >> probShift) >> (7 - probShift)) + minProb*(n-symbol-1)
		if d.symbolValue >= cur {
			break
		}
	}
	d.symbolRange = prev - cur
	d.symbolValue -= cur
	d.renormalize()
	return symbol
}

func (d *Decoder) renormalize() {
	shift := 15 - (bits.Len(uint(d.symbolRange)) - 1)
	d.symbolRange <<= shift
	numBits := min(shift, max(0, d.symbolMaxBits))
	newData := d.r.f(numBits)
	paddedData := newData << (shift - numBits)
	d.symbolValue = paddedData ^ (((d.symbolValue + 1) << shift) - 1)
	d.symbolMaxBits -= shift
	if d.symbolMaxBits < -14 {
		d.fail(ErrOverread)
	}
}

// Adapt moves cdf towards symbol. The step shrinks as the counter grows.
func Adapt(cdf []uint16, symbol int) {
	n := len(cdf)
	count := int(cdf[n-1])
	rate := 3 + min(bits.Len(uint(n))-1, 2)
	if count > 15 {
		rate++
	}
	if count > 31 {
		rate++
	}
	tmp := 0
	for i := 0; i < n-1; i++ {
		if i == symbol {
			tmp = ProbTop
		}
		c := int(cdf[i])
		if tmp < c {
			cdf[i] = uint16(c - ((c - tmp) >> rate))
		} else {
			cdf[i] = uint16(c + ((tmp - c) >> rate))
		}
	}
	if count < MaxCount {
		cdf[n-1]++
	}
}

var boolCdf = [2]uint16{1 << 14, 0}

// ReadBool decodes an equiprobable bit without touching any shared table.
func (d *Decoder) ReadBool() int {
	cdf := boolCdf
	return d.decode(cdf[:])
}

// ReadLiteral reads an n-bit unsigned value, most significant bit first.
func (d *Decoder) ReadLiteral(n int) int {
	x := 0
	for i := 0; i < n; i++ {
		x = 2*x + d.ReadBool()
	}
	return x
}

// ReadNS reads a value in [0, n) coded with the non-symmetric literal code.
func (d *Decoder) ReadNS(n int) int {
	w := bits.Len(uint(n))
	m := (1 << w) - n
	v := d.ReadLiteral(w - 1)
	if v < m {
		return v
	}
	return (v << 1) - m + d.ReadBool()
}

// ReadGolomb reads an Exp-Golomb coded value with bypass bits.
func (d *Decoder) ReadGolomb() int {
	length := 0
	for {
		length++
		if d.ReadBool() == 1 {
			break
		}
		if length == maxGolombLength {
			d.fail(ErrGolombLength)
			return 0
		}
	}
	x := 1
	for i := length - 2; i >= 0; i-- {
		x = x<<1 | d.ReadBool()
	}
	return x - 1
}

// Exit finishes the tile and verifies the trailing bit pattern.
func (d *Decoder) Exit() error {
	if d.err != nil {
		return d.err
	}
	if d.symbolMaxBits < -14 {
		return ErrOverread
	}
	trailing := 8*d.size - 15 - d.symbolMaxBits
	if d.size == 0 || trailing < 0 || trailing >= 8*d.size {
		return ErrTrailingBits
	}
	if d.r.bitAt(trailing) != 1 {
		return ErrTrailingBits
	}
	for pos := trailing + 1; pos < 8*d.size; pos++ {
		if d.r.bitAt(pos) != 0 {
			return ErrTrailingBits
		}
	}
	return nil
}
