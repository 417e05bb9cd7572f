package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMvStackSortIsStable(t *testing.T) {
	a, b, c := Mv{1, 1}, Mv{2, 2}, Mv{3, 3}
	s := mvStack{numMvFound: 3}
	s.weightStack = [MAX_REF_MV_STACK_SIZE]int{4, 6, 6}
	s.refStackMv[0][0] = a
	s.refStackMv[1][0] = b
	s.refStackMv[2][0] = c

	s.sort(0, 3)

	assert.Equal(t, []int{6, 6, 4}, s.weightStack[:3])
	assert.Equal(t, b, s.refStackMv[0][0])
	assert.Equal(t, c, s.refStackMv[1][0])
	assert.Equal(t, a, s.refStackMv[2][0])
}

// The context of entry i looks at weights i and i+1 against REF_CAT_LEVEL
// (640): both at or above gives 0, only the first above gives 1, and both
// below gives 2. The last entry has no successor and keeps 0.
func TestDrlContexts(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		want    []int
	}{
		{name: "both below", weights: []int{6, 4, 2}, want: []int{2, 2, 0}},
		{name: "crossing", weights: []int{700, 600}, want: []int{1, 0}},
		{name: "both above", weights: []int{700, 650, 300}, want: []int{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mvStack{numMvFound: len(tt.weights)}
			copy(s.weightStack[:], tt.weights)
			s.setDrlContexts()
			assert.Equal(t, tt.want, s.drlCtxStack[:len(tt.want)])
		})
	}
}

func TestLowerMvPrecision(t *testing.T) {
	seq, fh := interHeaders(8, 8)
	tile := newTestTile(seq, fh, nil, nil)

	assert.Equal(t, Mv{4, -4}, tile.lowerMvPrecision(Mv{5, -5}))

	fh.ForceIntegerMv = true
	assert.Equal(t, Mv{8, -8}, tile.lowerMvPrecision(Mv{5, -5}))
	assert.Equal(t, Mv{0, 0}, tile.lowerMvPrecision(Mv{3, -3}))

	fh.AllowHighPrecisionMv = true
	assert.Equal(t, Mv{5, -5}, tile.lowerMvPrecision(Mv{5, -5}))
}

// interHeaders describes a single-tile inter frame with quarter-pel motion.
func interHeaders(miRows, miCols int) (*SequenceHeader, *FrameHeader) {
	seq, fh := testHeaders(miRows, miCols, 1)
	fh.FrameIsIntra = false
	return seq, fh
}

func stampInter(g *BlockGrid, row, col, size int, order int32, mv Mv) {
	stamp(g, row, col, size, order, func(i int) {
		g.IsInters[i] = true
		g.YModes[i] = NEARESTMV
		g.RefFrames[0][i] = LAST_FRAME
		g.RefFrames[1][i] = NONE
		g.Mvs[0][i] = mv
	})
}

func stampIntra(g *BlockGrid, row, col, size int, order int32) {
	stamp(g, row, col, size, order, func(i int) {
		g.RefFrames[0][i] = INTRA_FRAME
		g.RefFrames[1][i] = NONE
	})
}

func TestFindMvStackNearestNeighbours(t *testing.T) {
	seq, fh := interHeaders(16, 16)
	tile := newTestTile(seq, fh, nil, nil)
	g := tile.grid
	stampIntra(g, 0, 0, BLOCK_8X8, 1)
	stampInter(g, 0, 2, BLOCK_8X8, 2, Mv{8, 16})
	stampInter(g, 2, 0, BLOCK_8X8, 3, Mv{-8, 0})

	placeBlock(tile, 2, 2, BLOCK_8X8)
	tile.b.RefFrame = [2]int{LAST_FRAME, NONE}
	tile.findMvStack(false)

	s := &tile.mv
	require.Equal(t, 2, s.numMvFound)
	assert.Equal(t, []int{644, 644}, s.weightStack[:2])
	assert.Equal(t, Mv{8, 16}, s.refStackMv[0][0])
	assert.Equal(t, Mv{-8, 0}, s.refStackMv[1][0])
	assert.Equal(t, []int{0, 0}, s.drlCtxStack[:2])
	assert.Equal(t, 5, s.newMvContext)
	assert.Equal(t, 5, s.refMvContext)
	assert.Equal(t, 0, s.zeroMvContext)
}

func TestFindMvStackClampsCandidates(t *testing.T) {
	seq, fh := interHeaders(16, 16)
	tile := newTestTile(seq, fh, nil, nil)
	g := tile.grid
	stampIntra(g, 0, 0, BLOCK_8X8, 1)
	stampInter(g, 0, 2, BLOCK_8X8, 2, Mv{-2000, 0})
	stampIntra(g, 2, 0, BLOCK_8X8, 3)

	placeBlock(tile, 2, 2, BLOCK_8X8)
	tile.b.RefFrame = [2]int{LAST_FRAME, NONE}
	tile.findMvStack(false)

	s := &tile.mv
	require.Equal(t, 1, s.numMvFound)
	assert.Equal(t, Mv{-256, 0}, s.refStackMv[0][0])
	assert.Equal(t, Mv{}, s.refStackMv[1][0])
	assert.Equal(t, 3, s.newMvContext)
	assert.Equal(t, 3, s.refMvContext)
}

func TestFindMvStackWithoutNeighbours(t *testing.T) {
	seq, fh := interHeaders(8, 8)
	tile := newTestTile(seq, fh, nil, nil)

	placeBlock(tile, 0, 0, BLOCK_8X8)
	tile.b.RefFrame = [2]int{LAST_FRAME, NONE}
	tile.findMvStack(false)

	s := &tile.mv
	assert.Equal(t, 0, s.numMvFound)
	assert.Equal(t, Mv{}, s.refStackMv[0][0])
	assert.Equal(t, Mv{}, s.refStackMv[1][0])
	assert.Equal(t, 0, s.newMvContext)
	assert.Equal(t, 0, s.refMvContext)
}

func TestTemporalCandidatesCheckRowComponent(t *testing.T) {
	seq, fh := interHeaders(8, 8)
	field := make([]Mv, 16)
	field[0] = Mv{InvalidMv[0], 4}
	field[1] = Mv{4, 8}
	field[2] = Mv{8, InvalidMv[1]}
	fh.MotionFieldMvs[LAST_FRAME] = field
	tile := newTestTile(seq, fh, nil, nil)
	placeBlock(tile, 0, 0, BLOCK_8X8)
	tile.b.RefFrame = [2]int{LAST_FRAME, NONE}

	tile.addTplRefMv(0, 0, false)
	tile.addTplRefMv(0, 2, false)
	tile.addTplRefMv(0, 4, false)

	s := &tile.mv
	require.Equal(t, 2, s.numMvFound)
	assert.Equal(t, Mv{4, 8}, s.refStackMv[0][0])
	assert.Equal(t, Mv{8, InvalidMv[1]}, s.refStackMv[1][0])
	assert.Equal(t, []int{2, 2}, s.weightStack[:2])
	assert.Equal(t, 1, s.zeroMvContext)
}
