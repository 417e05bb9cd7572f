package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteColorContext(t *testing.T) {
	tests := []struct {
		name                  string
		left, above, aboveLft uint8
		wantCtx               int
		wantOrder             []int
	}{
		{name: "uniform", wantCtx: 4, wantOrder: []int{0, 1}},
		{name: "left differs", left: 1, wantCtx: 2, wantOrder: []int{0, 1}},
		{name: "left and above agree", left: 1, above: 1, wantCtx: 3, wantOrder: []int{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m [64][64]uint8
			m[1][0] = tt.left
			m[0][1] = tt.above
			m[0][0] = tt.aboveLft
			ctx, order := paletteColorContextOf(&m, 1, 1, 2)
			assert.Equal(t, tt.wantCtx, ctx)
			assert.Equal(t, tt.wantOrder, order[:2])
		})
	}
}

func stampPalette(g *BlockGrid, row, col int, order int32, colors ...uint16) {
	stamp(g, row, col, BLOCK_4X4, order, func(i int) {
		g.PaletteSizes[0][i] = uint8(len(colors))
		copy(g.PaletteColors[0][i][:], colors)
	})
}

func TestPaletteCacheMergesNeighbours(t *testing.T) {
	seq, fh := testHeaders(32, 8, 1)
	tile := newTestTile(seq, fh, nil, nil)
	g := tile.grid
	stampPalette(g, 1, 2, 1, 10, 20, 30)
	stampPalette(g, 2, 1, 2, 5, 20, 40)

	placeBlock(tile, 2, 2, BLOCK_4X4)
	var cache [2 * PALETTE_COLORS]uint16
	n := tile.paletteCache(0, &cache)
	assert.Equal(t, []uint16{5, 10, 20, 30, 40}, cache[:n])
}

func TestPaletteCacheSkipsAboveAcrossSuperblockRow(t *testing.T) {
	seq, fh := testHeaders(32, 8, 1)
	tile := newTestTile(seq, fh, nil, nil)
	g := tile.grid
	stampPalette(g, 15, 2, 1, 10, 20, 30)
	stampPalette(g, 16, 1, 2, 5, 20, 40)

	placeBlock(tile, 16, 2, BLOCK_4X4)
	var cache [2 * PALETTE_COLORS]uint16
	n := tile.paletteCache(0, &cache)
	assert.Equal(t, []uint16{5, 20, 40}, cache[:n])
}

func TestReadColorMapReplicatesOffscreenArea(t *testing.T) {
	w := newStreamWriter()
	w.enc.EncodeNS(1, 2)
	// Wavefront order over the 4x4 onscreen area. Cells on the first row or
	// column see one neighbour, the rest see three of the same colour.
	for i := 1; i < 7; i++ {
		for r := max(0, i-3); r <= min(i, 3); r++ {
			ctx := 0
			if r > 0 && i-r > 0 {
				ctx = 4
			}
			w.symbol(ElemPaletteColorIdx, 0, 0, 2, ctx)
		}
	}
	seq, fh := testHeaders(8, 8, 1)
	tile := newTestTile(seq, fh, nil, nil)
	tile.sd.Init(w.bytes(), true)

	var m [64][64]uint8
	tile.readColorMap(&m, 0, 2, 8, 8, 4, 4)
	require.NoError(t, tile.sd.Err())
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			assert.Equal(t, uint8(1), m[r][c], "(%d, %d)", r, c)
		}
	}
	assert.Equal(t, uint8(0), m[0][8])
}
