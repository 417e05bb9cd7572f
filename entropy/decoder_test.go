package entropy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformCdf(n int) []uint16 {
	cdf := make([]uint16, n)
	for i := 0; i < n-1; i++ {
		cdf[i] = uint16(ProbTop * (i + 1) / n)
	}
	return cdf
}

func TestAdaptKeepsOrderAndCountsUp(t *testing.T) {
	for _, n := range []int{2, 3, 4, 8, 13, 16} {
		cdf := uniformCdf(n)
		rng := rand.New(rand.NewSource(int64(n)))
		for step := 0; step < 40; step++ {
			before := cdf[n-1]
			Adapt(cdf, rng.Intn(n))
			for i := 0; i < n-2; i++ {
				assert.Less(t, cdf[i], cdf[i+1], "n=%d step=%d i=%d", n, step, i)
			}
			assert.Greater(t, cdf[0], uint16(0))
			assert.Less(t, int(cdf[n-2]), ProbTop)
			if before < MaxCount {
				assert.Equal(t, before+1, cdf[n-1])
			} else {
				assert.Equal(t, uint16(MaxCount), cdf[n-1])
			}
		}
	}
}

func TestReadSymbolAdaptsInPlace(t *testing.T) {
	cdf := uniformCdf(4)
	var d Decoder
	d.Init([]byte{0x5a, 0x13, 0xc4, 0x00}, false)
	d.ReadSymbol(cdf)
	assert.Equal(t, uint16(1), cdf[3])

	frozen := uniformCdf(4)
	d.Init([]byte{0x5a, 0x13, 0xc4, 0x00}, true)
	d.ReadSymbol(frozen)
	assert.Equal(t, uniformCdf(4), frozen)
}

type codedSymbol struct {
	table int
	value int
}

func TestSymbolRoundTrip(t *testing.T) {
	sizes := []int{2, 3, 4, 5, 7, 8, 11, 13, 16}
	rng := rand.New(rand.NewSource(1))
	var seq []codedSymbol
	for i := 0; i < 2000; i++ {
		tbl := rng.Intn(len(sizes))
		// skew towards low symbols so the tables actually move
		v := rng.Intn(sizes[tbl])
		if rng.Intn(3) != 0 {
			v = 0
		}
		seq = append(seq, codedSymbol{table: tbl, value: v})
	}

	encTables := make([][]uint16, len(sizes))
	decTables := make([][]uint16, len(sizes))
	for i, n := range sizes {
		encTables[i] = uniformCdf(n)
		decTables[i] = uniformCdf(n)
	}

	enc := NewEncoder(false)
	for _, s := range seq {
		enc.EncodeSymbol(encTables[s.table], s.value)
		enc.EncodeLiteral(s.value, 4)
	}
	data := enc.Finish()

	var d Decoder
	d.Init(data, false)
	for i, s := range seq {
		require.Equal(t, s.value, d.ReadSymbol(decTables[s.table]), "symbol %d", i)
		require.Equal(t, s.value, d.ReadLiteral(4), "literal %d", i)
	}
	require.NoError(t, d.Exit())
	assert.Equal(t, encTables, decTables)
}

func TestDecodeIsDeterministic(t *testing.T) {
	data := []byte{0x91, 0x22, 0x7f, 0x03, 0xee, 0x10, 0x80, 0x00}
	run := func() ([]int, []uint16) {
		cdf := uniformCdf(8)
		var d Decoder
		d.Init(data, false)
		var out []int
		for i := 0; i < 24; i++ {
			out = append(out, d.ReadSymbol(cdf))
		}
		return out, cdf
	}
	s1, c1 := run()
	s2, c2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
}

func TestGolombRoundTrip(t *testing.T) {
	for length := 1; length <= 20; length++ {
		values := []int{1<<(length-1) - 1, 1<<length - 2}
		for _, x := range values {
			enc := NewEncoder(false)
			enc.EncodeGolomb(x)
			var d Decoder
			d.Init(enc.Finish(), false)
			assert.Equal(t, x, d.ReadGolomb(), "length=%d", length)
			assert.NoError(t, d.Err())
			assert.NoError(t, d.Exit())
		}
	}
}

func TestNSRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 13, 255} {
		enc := NewEncoder(false)
		for x := 0; x < n; x++ {
			enc.EncodeNS(x, n)
		}
		var d Decoder
		d.Init(enc.Finish(), false)
		for x := 0; x < n; x++ {
			require.Equal(t, x, d.ReadNS(n), "n=%d", n)
		}
		assert.NoError(t, d.Exit())
	}
}

func TestGolombRejectsMissingTerminator(t *testing.T) {
	enc := NewEncoder(false)
	for i := 0; i < 20; i++ {
		enc.EncodeBool(0)
	}
	enc.EncodeLiteral(0x3ff, 10)
	var d Decoder
	d.Init(enc.Finish(), false)
	assert.Equal(t, 0, d.ReadGolomb())
	assert.ErrorIs(t, d.Err(), ErrGolombLength)
	assert.ErrorIs(t, d.Exit(), ErrGolombLength)
}

func TestExitChecksPadding(t *testing.T) {
	enc := NewEncoder(false)
	cdf := uniformCdf(5)
	for _, s := range []int{0, 4, 2, 2, 1, 3} {
		enc.EncodeSymbol(cdf, s)
	}
	data := enc.Finish()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "exact", data: data},
		{name: "zero padded", data: append(append([]byte(nil), data...), 0, 0)},
		{name: "garbage after trailing bit", data: append(append([]byte(nil), data...), 0x01), wantErr: ErrTrailingBits},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dec := uniformCdf(5)
			var d Decoder
			d.Init(tc.data, false)
			for _, want := range []int{0, 4, 2, 2, 1, 3} {
				assert.Equal(t, want, d.ReadSymbol(dec))
			}
			if tc.wantErr == nil {
				assert.NoError(t, d.Exit())
			} else {
				assert.ErrorIs(t, d.Exit(), tc.wantErr)
			}
		})
	}
}

func TestOverreadIsReported(t *testing.T) {
	var d Decoder
	d.Init([]byte{0x80}, false)
	cdf := uniformCdf(16)
	for i := 0; i < 64; i++ {
		d.ReadSymbol(cdf)
	}
	assert.ErrorIs(t, d.Err(), ErrOverread)
	assert.ErrorIs(t, d.Exit(), ErrOverread)
}
