package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// placeBlock sets the tile's current block as decodeBlock does.
func placeBlock(t *Tile, row, col, size int) {
	t.b = BlockInfo{MiRow: row, MiCol: col, MiSize: size}
	t.b.bw4 = num4x4BlocksWide[size]
	t.b.bh4 = num4x4BlocksHigh[size]
	t.b.availU = t.isInside(row-1, col)
	t.b.availL = t.isInside(row, col-1)
	t.loadNeighbourRefs()
}

func TestContextsWithoutNeighbours(t *testing.T) {
	seq, fh := testHeaders(8, 8, 1)
	tile := newTestTile(seq, fh, nil, nil)
	placeBlock(tile, 0, 0, BLOCK_8X8)

	pred, ctx := tile.segmentIdPrediction()
	assert.Equal(t, 0, pred)
	assert.Equal(t, 0, ctx)
	assert.Equal(t, 0, tile.skipCtx())
	assert.Equal(t, 0, tile.skipModeCtx())
	assert.Equal(t, 0, tile.isInterCtx())
	assert.Equal(t, 1, tile.compModeCtx())
	assert.Equal(t, 2, tile.compRefTypeCtx())
	assert.Equal(t, 1, tile.fwdBwdCtx())
	assert.Equal(t, 0, tile.partitionCtx(0, 0, BLOCK_64X64, false, false))
	above, left := tile.intraFrameYModeCtx()
	assert.Equal(t, 0, above)
	assert.Equal(t, 0, left)
	assert.Equal(t, 0, tile.txDepthCtx(TX_8X8))
}

func TestContextsCountNeighbours(t *testing.T) {
	seq, fh := testHeaders(8, 8, 1)
	tile := newTestTile(seq, fh, nil, nil)
	g := tile.grid
	// above: inter LAST block, skipped; left: intra 4x4 with segment 3
	stamp(g, 0, 2, BLOCK_8X8, 1, func(i int) {
		g.Skips[i] = true
		g.IsInters[i] = true
		g.RefFrames[0][i] = LAST_FRAME
		g.RefFrames[1][i] = NONE
		g.SegmentIds[i] = 3
	})
	stamp(g, 2, 1, BLOCK_4X4, 2, func(i int) {
		g.RefFrames[0][i] = INTRA_FRAME
		g.RefFrames[1][i] = NONE
		g.YModes[i] = D45_PRED
		g.SegmentIds[i] = 3
	})
	stamp(g, 1, 1, BLOCK_4X4, 3, func(i int) {
		g.SegmentIds[i] = 1
	})
	placeBlock(tile, 2, 2, BLOCK_8X8)

	assert.Equal(t, 1, tile.skipCtx())
	assert.Equal(t, 1, tile.isInterCtx())
	pred, ctx := tile.segmentIdPrediction()
	assert.Equal(t, 3, pred, "above and left agree")
	assert.Equal(t, 1, ctx)
	// 64x64 partition, above 8 wide and left 4 high are both narrower
	assert.Equal(t, 3, tile.partitionCtx(2, 2, BLOCK_64X64, true, true))
	// an 8x8 partition sees only the narrower left neighbour
	assert.Equal(t, 2, tile.partitionCtx(2, 2, BLOCK_8X8, true, true))
	_, left := tile.intraFrameYModeCtx()
	assert.Equal(t, intraModeContext[D45_PRED], left)
	// one LAST reference against no backward one
	assert.Equal(t, 2, tile.fwdBwdCtx())
}

func TestNegDeinterleave(t *testing.T) {
	tests := []struct {
		diff, ref, max, want int
	}{
		{diff: 4, ref: 0, max: 8, want: 4},
		{diff: 0, ref: 2, max: 8, want: 2},
		{diff: 1, ref: 2, max: 8, want: 3},
		{diff: 2, ref: 2, max: 8, want: 1},
		{diff: 3, ref: 2, max: 8, want: 4},
		{diff: 4, ref: 2, max: 8, want: 0},
		{diff: 5, ref: 2, max: 8, want: 5},
		{diff: 0, ref: 7, max: 8, want: 7},
		{diff: 1, ref: 7, max: 8, want: 6},
		{diff: 0, ref: 5, max: 8, want: 5},
		{diff: 4, ref: 5, max: 8, want: 3},
		{diff: 5, ref: 5, max: 8, want: 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, negDeinterleave(tc.diff, tc.ref, tc.max), "%+v", tc)
	}
}

func TestSubsampledSize(t *testing.T) {
	assert.Equal(t, BLOCK_4X4, subsampledSize(BLOCK_4X4, 1, 1))
	assert.Equal(t, BLOCK_4X8, subsampledSize(BLOCK_4X16, 1, 1))
	assert.Equal(t, BLOCK_INVALID, subsampledSize(BLOCK_4X16, 1, 0))
	assert.Equal(t, BLOCK_8X16, subsampledSize(BLOCK_16X16, 1, 0))
	assert.Equal(t, BLOCK_64X64, subsampledSize(BLOCK_128X128, 1, 1))
	assert.Equal(t, BLOCK_16X64, subsampledSize(BLOCK_16X64, 0, 0))
}

func TestGetMode(t *testing.T) {
	assert.Equal(t, NEARMV, getMode(NEARMV, 0))
	assert.Equal(t, NEWMV, getMode(NEW_NEARESTMV, 0))
	assert.Equal(t, NEARESTMV, getMode(NEW_NEARESTMV, 1))
	assert.Equal(t, NEARMV, getMode(NEAR_NEWMV, 0))
	assert.Equal(t, NEWMV, getMode(NEAR_NEWMV, 1))
	assert.Equal(t, GLOBALMV, getMode(GLOBAL_GLOBALMV, 0))
	assert.Equal(t, GLOBALMV, getMode(GLOBAL_GLOBALMV, 1))
}
