package boulder

// Mv is a motion vector in 1/8 pel units, [0] row and [1] column.
type Mv [2]int

// InvalidMv marks motion field entries without a usable projection.
var InvalidMv = Mv{-1 << 15, -1 << 15}

// BlockGrid stores the finalized attributes of every 4x4 mode info unit of a
// frame in flat row-major buffers. The traversal writes each block's cells once
// it is decoded; context derivation reads them for later blocks.
type BlockGrid struct {
	MiRows int
	MiCols int

	MiSizes       []uint8
	Skips         []bool
	SkipModes     []bool
	IsInters      []bool
	RefFrames     [2][]int8
	YModes        []uint8
	UVModes       []uint8
	CompGroupIdxs []uint8
	CompoundIdxs  []uint8
	InterpFilters [2][]uint8
	MotionModes   []uint8
	Mvs           [2][]Mv
	TxSizes       []uint8
	InterTxSizes  []uint8
	TxTypes       []uint8
	SegmentIds    []uint8
	PaletteSizes  [2][]uint8
	PaletteColors [2][][PALETTE_COLORS]uint16
	DeltaLFs      [][FRAME_LF_COUNT]int8

	// CdefIdx holds cdef_idx per 64x64 area; -1 means not coded.
	CdefIdx  []int8
	cdefCols int

	// Restoration holds the loop restoration unit parameters per plane.
	Restoration [3]RestorationUnits

	// order records which block wrote each cell, starting at 1. Zero means unwritten.
	order []int32
}

// NewBlockGrid allocates a grid for a frame of miRows x miCols units.
func NewBlockGrid(miRows, miCols int) *BlockGrid {
	n := miRows * miCols
	g := &BlockGrid{
		MiRows:        miRows,
		MiCols:        miCols,
		MiSizes:       make([]uint8, n),
		Skips:         make([]bool, n),
		SkipModes:     make([]bool, n),
		IsInters:      make([]bool, n),
		YModes:        make([]uint8, n),
		UVModes:       make([]uint8, n),
		CompGroupIdxs: make([]uint8, n),
		CompoundIdxs:  make([]uint8, n),
		MotionModes:   make([]uint8, n),
		TxSizes:       make([]uint8, n),
		InterTxSizes:  make([]uint8, n),
		TxTypes:       make([]uint8, n),
		SegmentIds:    make([]uint8, n),
		DeltaLFs:      make([][FRAME_LF_COUNT]int8, n),
		order:         make([]int32, n),
	}
	g.cdefCols = (miCols + 15) >> 4
	g.CdefIdx = make([]int8, g.cdefCols*((miRows+15)>>4))
	for i := range g.CdefIdx {
		g.CdefIdx[i] = -1
	}
	for i := 0; i < 2; i++ {
		g.RefFrames[i] = make([]int8, n)
		g.InterpFilters[i] = make([]uint8, n)
		g.Mvs[i] = make([]Mv, n)
		g.PaletteSizes[i] = make([]uint8, n)
		g.PaletteColors[i] = make([][PALETTE_COLORS]uint16, n)
	}
	return g
}

func (g *BlockGrid) index(row, col int) int {
	return row*g.MiCols + col
}

// Owner returns the traversal index of the block that wrote (row, col), or 0.
func (g *BlockGrid) Owner(row, col int) int {
	return int(g.order[g.index(row, col)])
}

func (g *BlockGrid) cdefIndex(row, col int) int {
	return (row>>4)*g.cdefCols + (col >> 4)
}

// Cdef returns the cdef_idx covering (row, col).
func (g *BlockGrid) Cdef(row, col int) int {
	return int(g.CdefIdx[g.cdefIndex(row, col)])
}
