package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseRecenter(t *testing.T) {
	assert.Equal(t, 12, inverseRecenter(5, 12))
	assert.Equal(t, 3, inverseRecenter(5, 3))
	assert.Equal(t, 7, inverseRecenter(5, 4))
	assert.Equal(t, 5, inverseRecenter(5, 0))
}

func TestCountUnitsInFrame(t *testing.T) {
	assert.Equal(t, 2, countUnitsInFrame(64, 100))
	assert.Equal(t, 1, countUnitsInFrame(64, 20))
	assert.Equal(t, 4, countUnitsInFrame(64, 256))
}

func TestAllocRestoration(t *testing.T) {
	seq, fh := testHeaders(32, 64, 1)
	fh.LoopRestoration.FrameType[0] = RESTORE_WIENER
	fh.LoopRestoration.UnitSize[0] = 64

	g := NewBlockGrid(fh.MiRows, fh.MiCols)
	g.AllocRestoration(seq, fh)

	u := g.Restoration[0]
	assert.Equal(t, 2, u.Rows)
	assert.Equal(t, 4, u.Cols)
	assert.Len(t, u.Type, 8)
	assert.Equal(t, 5, u.Unit(1, 1))
	assert.Nil(t, g.Restoration[1].Type)
}

func TestReadSubexp(t *testing.T) {
	w := newStreamWriter()
	// 9 in the first bucket.
	w.literal(0, 1).literal(9, 4)
	// 37 in the third bucket, which spans the rest of the range.
	w.literal(1, 1).literal(1, 1)
	w.enc.EncodeNS(5, 96)

	seq, fh := testHeaders(8, 8, 1)
	tile := newTestTile(seq, fh, nil, nil)
	tile.sd.Init(w.bytes(), true)

	assert.Equal(t, 9, tile.readSubexp(128, 4))
	assert.Equal(t, 37, tile.readSubexp(128, 4))
	require.NoError(t, tile.sd.Err())
}

func TestReadLrSgrproj(t *testing.T) {
	w := newStreamWriter()
	// use_sgrproj, set 10 which has no first radius, then the second
	// coefficient recentred on its reference.
	w.symbol(ElemUseSgrproj, 1).literal(10, 4).literal(0, 1).literal(0, 4)

	seq, fh := testHeaders(16, 16, 1)
	fh.LoopRestoration.FrameType[0] = RESTORE_SGRPROJ
	fh.LoopRestoration.UnitSize[0] = 64
	tile := newTestTile(seq, fh, nil, nil)
	tile.sd.Init(w.bytes(), true)
	tile.refSgrXqd[0] = sgrprojXqdMid

	tile.readLr(0, 0, BLOCK_64X64)
	require.NoError(t, tile.sd.Err())

	u := &tile.grid.Restoration[0]
	assert.Equal(t, uint8(RESTORE_SGRPROJ), u.Type[0])
	assert.Equal(t, uint8(10), u.SgrSet[0])
	assert.Equal(t, [2]int8{0, 31}, u.SgrXqd[0])
	assert.Equal(t, [2]int{0, 31}, tile.refSgrXqd[0])
}

func TestReadLrScalesColumnsForSuperres(t *testing.T) {
	w := newStreamWriter()
	w.symbol(ElemUseSgrproj, 0)
	w.symbol(ElemUseSgrproj, 1).literal(10, 4).literal(0, 1).literal(0, 4)

	seq, fh := testHeaders(16, 16, 1)
	fh.UseSuperres = true
	fh.SuperresDenom = 16
	fh.UpscaledWidth = 128
	fh.LoopRestoration.FrameType[0] = RESTORE_SGRPROJ
	fh.LoopRestoration.UnitSize[0] = 64
	tile := newTestTile(seq, fh, nil, nil)
	tile.sd.Init(w.bytes(), true)
	tile.refSgrXqd[0] = sgrprojXqdMid

	u := &tile.grid.Restoration[0]
	require.Equal(t, 1, u.Rows)
	require.Equal(t, 2, u.Cols)

	// The 64-wide coded superblock covers both units of the 128-wide
	// upscaled frame.
	tile.readLr(0, 0, BLOCK_64X64)
	require.NoError(t, tile.sd.Err())
	assert.Equal(t, []uint8{RESTORE_NONE, RESTORE_SGRPROJ}, u.Type)
	assert.Equal(t, uint8(10), u.SgrSet[1])
}

func TestReadLrRequiresAllocatedUnits(t *testing.T) {
	seq, fh := testHeaders(16, 16, 1)
	fh.LoopRestoration.FrameType[0] = RESTORE_WIENER
	fh.LoopRestoration.UnitSize[0] = 64
	grid := NewBlockGrid(fh.MiRows, fh.MiCols)
	tile := NewTile(seq, fh, grid, DefaultCdfContext(fh.BaseQIdx), fh.Tile(0, nil), nil)

	err := tile.Decode()
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, InternalInvariant, de.Kind)
}
