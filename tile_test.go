package boulder

import (
	"testing"

	"github.com/m4tthewde/boulder/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSingleIntraBlock(t *testing.T) {
	seq, fh := testHeaders(2, 2, 1)
	data := newStreamWriter().intraBlock(true, SMOOTH_PRED).bytes()
	sink := &recordingSink{}
	tile := newTestTile(seq, fh, data, sink)

	require.NoError(t, tile.Decode())
	require.Len(t, sink.blocks, 1)
	b := sink.blocks[0]
	assert.Equal(t, BLOCK_8X8, b.MiSize)
	assert.Equal(t, SMOOTH_PRED, b.YMode)
	assert.True(t, b.Skip)
	assert.False(t, b.IsInter)
	assert.Equal(t, TX_8X8, b.TxSize)
	assert.Equal(t, fh.BaseQIdx, b.QIndex)
	assert.Empty(t, sink.coeffs)

	g := tile.grid
	for _, cell := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		assert.Equal(t, 1, g.Owner(cell[0], cell[1]))
		assert.Equal(t, uint8(SMOOTH_PRED), g.YModes[g.index(cell[0], cell[1])])
	}
	assert.Equal(t, 1, tile.Blocks())
}

func TestPartitionHorzAVisitsEachBlockOnce(t *testing.T) {
	seq, fh := testHeaders(4, 4, 1)
	w := newStreamWriter().symbol(ElemPartition, PARTITION_HORZ_A, 2, 0)
	// The first block has no neighbours. The other two each see a skipped
	// block to the left or above.
	for _, skipCtx := range []int{0, 1, 1} {
		w.symbol(ElemSkip, 1, skipCtx).symbol(ElemIntraFrameYMode, DC_PRED, 0, 0)
	}
	sink := &recordingSink{}
	tile := newTestTile(seq, fh, w.bytes(), sink)

	require.NoError(t, tile.Decode())
	require.Len(t, sink.blocks, 3)
	want := []struct{ row, col, size int }{
		{0, 0, BLOCK_8X8},
		{0, 2, BLOCK_8X8},
		{2, 0, BLOCK_16X8},
	}
	for i, w := range want {
		assert.Equal(t, w.row, sink.blocks[i].MiRow, "block %d", i)
		assert.Equal(t, w.col, sink.blocks[i].MiCol, "block %d", i)
		assert.Equal(t, w.size, sink.blocks[i].MiSize, "block %d", i)
	}
	assert.Equal(t, TX_16X8, sink.blocks[2].TxSize)

	owners := [4][4]int{
		{1, 1, 2, 2},
		{1, 1, 2, 2},
		{3, 3, 3, 3},
		{3, 3, 3, 3},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, owners[r][c], tile.grid.Owner(r, c), "cell (%d, %d)", r, c)
		}
	}
}

func TestCoefficientsAreDecoded(t *testing.T) {
	seq, fh := testHeaders(2, 2, 1)
	w := newStreamWriter().intraBlock(false, DC_PRED)
	// all_zero, then DCT_DCT from the intra set
	w.symbol(ElemAllZero, 0, 1, 0).symbol(ElemIntraTxTypeSet1, 1, 1, DC_PRED)
	// eob_pt selects 3..4, eob_extra picks 4
	w.symbol(ElemEobPt, 2, 2, 0, 0).symbol(ElemEobExtra, 1, 1, 0, 0)
	// levels in reverse scan order (positions 16, 8, 1, 0): 1, 3+3+1, 0, 3+12
	w.symbol(ElemCoeffBaseEob, 0, 1, 0, 1)
	w.symbol(ElemCoeffBase, 3, 1, 0, 2).symbol(ElemCoeffBr, 3, 1, 0, 8).symbol(ElemCoeffBr, 1, 1, 0, 8)
	w.symbol(ElemCoeffBase, 0, 1, 0, 1)
	w.symbol(ElemCoeffBase, 3, 1, 0, 0)
	for i := 0; i < 4; i++ {
		w.symbol(ElemCoeffBr, 3, 1, 0, 4)
	}
	// signs: negative dc with a golomb escape to 20, then +7 and -1
	w.symbol(ElemDcSign, 1, 0, 0).golomb(5)
	w.literal(0, 1).literal(1, 1)
	sink := &recordingSink{}
	tile := newTestTile(seq, fh, w.bytes(), sink)

	require.NoError(t, tile.Decode())
	require.Len(t, sink.coeffs, 1)
	tb := sink.coeffs[0]
	assert.Equal(t, 0, tb.Plane)
	assert.Equal(t, TX_8X8, tb.TxSize)
	assert.Equal(t, DCT_DCT, tb.TxType)
	assert.Equal(t, 4, tb.Eob)
	require.Len(t, tb.Quant, 64)
	want := make([]int, 64)
	want[0] = -20
	want[8] = 7
	want[16] = -1
	assert.Equal(t, want, tb.Quant)

	assert.Equal(t, []uint8{28, 28}, tile.aboveLevelContext[0][:2])
	assert.Equal(t, []uint8{1, 1}, tile.leftDcContext[0][:2])
	assert.Equal(t, uint8(DCT_DCT), tile.grid.TxTypes[0])
}

func TestSegmentIdOutsideActiveRangeFails(t *testing.T) {
	seq, fh := testHeaders(2, 2, 1)
	fh.Segmentation.Enabled = true
	fh.Segmentation.LastActiveSegId = 1
	data := newStreamWriter().symbol(ElemPartition, PARTITION_NONE, 1, 0).
		symbol(ElemSkip, 0, 0).
		symbol(ElemSegmentId, 5, 0).
		bytes()
	tile := newTestTile(seq, fh, data, nil)

	err := tile.Decode()
	de, ok := AsDecodeError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, BitstreamConformance, de.Kind)
	assert.Equal(t, "segment_id", de.Field)
	assert.Equal(t, 1, tile.Blocks())
	assert.Equal(t, 0, tile.grid.Owner(0, 0))
}

func TestTrailingGarbageFailsTile(t *testing.T) {
	seq, fh := testHeaders(2, 2, 1)
	data := newStreamWriter().intraBlock(true, DC_PRED).bytes()
	data = append(data, 0x01)
	tile := newTestTile(seq, fh, data, nil)

	err := tile.Decode()
	require.Error(t, err)
	assert.ErrorIs(t, err, entropy.ErrTrailingBits)
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "trailing_bits", de.Field)
	// The block before the failure stays in the grid.
	assert.Equal(t, 1, tile.grid.Owner(1, 1))
}

func TestCausalityCheck(t *testing.T) {
	seq, fh := testHeaders(4, 4, 1)
	tile := newTestTile(seq, fh, nil, nil)
	stamp(tile.grid, 0, 0, BLOCK_8X8, 1, nil)
	tile.b = BlockInfo{MiRow: 2, MiCol: 0, MiSize: BLOCK_8X8, bw4: 2, bh4: 2}

	read := func(row, col int) (err error) {
		defer recoverDecodeError(&err)
		tile.at(row, col)
		return nil
	}
	assert.NoError(t, read(1, 0), "written by an earlier block")
	assert.NoError(t, read(3, 1), "inside the current block")

	err := read(1, 2)
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, InternalInvariant, de.Kind)
}

func TestRuntimeErrorBecomesInternalInvariant(t *testing.T) {
	err := func() (err error) {
		defer recoverDecodeError(&err)
		var s []int
		_ = s[3]
		return nil
	}()
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, InternalInvariant, de.Kind)

	assert.Panics(t, func() {
		var err error
		defer recoverDecodeError(&err)
		panic("unrelated")
	})
}
