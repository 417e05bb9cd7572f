package boulder

import (
	"github.com/m4tthewde/boulder/entropy"
	"github.com/pkg/errors"
)

// Blocks may extend past the frame edge by up to a superblock minus one unit.
const ctxAboveSlack = 32

// Tile is the decoding session of one tile. It owns its entropy decoder and
// its copy of the probability tables. The block grid is shared with the other
// tiles of the frame; a tile only writes and reads cells inside its own bounds.
type Tile struct {
	Info TileInfo

	seq  *SequenceHeader
	fh   *FrameHeader
	grid *BlockGrid
	cdf  *CdfContext
	sink BlockSink
	sd   entropy.Decoder

	// CheckCausality makes every neighbour read verify that the cell was
	// written by an earlier block.
	CheckCausality bool

	aboveLevelContext   [3][]uint8
	aboveDcContext      [3][]uint8
	leftLevelContext    [3][]uint8
	leftDcContext       [3][]uint8
	aboveSegPredContext []uint8
	leftSegPredContext  []uint8

	currentQIndex int
	deltaLF       [FRAME_LF_COUNT]int
	readDeltas    bool
	refSgrXqd     [3][2]int
	refLrWiener   [3][2][3]int

	blockCount int32
	b          BlockInfo
	mv         mvStack
	tb         TransformBlock
	quant      [1024]int
	colorMaps  [2][64][64]uint8
	nb         neighbourRefs
}

// NewTile prepares a session for info. cdf must be the tile's own copy of the
// frame's tables; it is adapted in place while decoding.
func NewTile(seq *SequenceHeader, fh *FrameHeader, grid *BlockGrid, cdf *CdfContext, info TileInfo, sink BlockSink) *Tile {
	if sink == nil {
		sink = NoopSink{}
	}
	t := &Tile{
		Info: info,
		seq:  seq,
		fh:   fh,
		grid: grid,
		cdf:  cdf,
		sink: sink,
	}
	w := fh.MiCols + ctxAboveSlack
	h := fh.MiRows + ctxAboveSlack
	for plane := 0; plane < 3; plane++ {
		t.aboveLevelContext[plane] = make([]uint8, w)
		t.aboveDcContext[plane] = make([]uint8, w)
		t.leftLevelContext[plane] = make([]uint8, h)
		t.leftDcContext[plane] = make([]uint8, h)
	}
	t.aboveSegPredContext = make([]uint8, w)
	t.leftSegPredContext = make([]uint8, h)
	return t
}

// Cdf returns the tile's tables as adapted so far.
func (t *Tile) Cdf() *CdfContext {
	return t.cdf
}

// Blocks returns the number of blocks decoded so far.
func (t *Tile) Blocks() int {
	return int(t.blockCount)
}

// Decode runs the superblock traversal over the tile payload. A conformance
// failure stops the tile and is returned as a *DecodeError; blocks decoded
// before the failure stay in the grid.
func (t *Tile) Decode() (err error) {
	defer recoverDecodeError(&err)

	t.sd.Init(t.Info.Data, t.fh.DisableCdfUpdate)
	t.clearAboveContext()
	t.deltaLF = [FRAME_LF_COUNT]int{}
	t.currentQIndex = t.fh.BaseQIdx
	for plane := 0; plane < 3; plane++ {
		for pass := 0; pass < 2; pass++ {
			t.refSgrXqd[plane][pass] = sgrprojXqdMid[pass]
			t.refLrWiener[plane][pass] = wienerTapsMid
		}
	}

	sbSize := t.sbSize()
	sbSize4 := num4x4BlocksWide[sbSize]
	for r := t.Info.MiRowStart; r < t.Info.MiRowEnd; r += sbSize4 {
		t.clearLeftContext()
		for c := t.Info.MiColStart; c < t.Info.MiColEnd; c += sbSize4 {
			t.readDeltas = t.fh.DeltaQPresent
			t.clearCdef(r, c)
			t.readLr(r, c, sbSize)
			t.decodePartition(r, c, sbSize)
			if err := t.sd.Err(); err != nil {
				panic(&DecodeError{Kind: BitstreamConformance, Field: "symbol", MiRow: r, MiCol: c, Msg: "entropy decoder failed", Err: err})
			}
		}
	}
	if err := t.sd.Exit(); err != nil {
		panic(&DecodeError{Kind: BitstreamConformance, Field: "trailing_bits", MiRow: t.Info.MiRowEnd, MiCol: t.Info.MiColEnd, Msg: "bad tile padding", Err: err})
	}
	return nil
}

func (t *Tile) sbSize() int {
	if t.seq.Use128x128Superblock {
		return BLOCK_128X128
	}
	return BLOCK_64X64
}

func (t *Tile) numPlanes() int {
	if t.seq.MonoChrome {
		return 1
	}
	return 3
}

func (t *Tile) clearAboveContext() {
	for plane := 0; plane < 3; plane++ {
		clear(t.aboveLevelContext[plane])
		clear(t.aboveDcContext[plane])
	}
	clear(t.aboveSegPredContext)
}

func (t *Tile) clearLeftContext() {
	for plane := 0; plane < 3; plane++ {
		clear(t.leftLevelContext[plane])
		clear(t.leftDcContext[plane])
	}
	clear(t.leftSegPredContext)
}

// isInside reports whether (row, col) lies in the current tile.
func (t *Tile) isInside(row, col int) bool {
	return col >= t.Info.MiColStart && col < t.Info.MiColEnd && row >= t.Info.MiRowStart && row < t.Info.MiRowEnd
}

// written reports whether a block of this frame has already stored (row, col).
func (t *Tile) written(row, col int) bool {
	return t.grid.order[t.grid.index(row, col)] != 0
}

// at returns the grid index of a neighbouring cell.
func (t *Tile) at(row, col int) int {
	i := t.grid.index(row, col)
	if t.CheckCausality && !t.b.contains(row, col) && t.grid.order[i] == 0 {
		abort(InternalInvariant, "grid", row, col, "read of a cell no earlier block wrote")
	}
	return i
}

func (t *Tile) symbol(el Element, a, b, c int) int {
	return t.sd.ReadSymbol(t.cdf.cdfFor(el, a, b, c))
}

func (t *Tile) flag(el Element, a, b, c int) bool {
	return t.symbol(el, a, b, c) == 1
}

func (t *Tile) literal(n int) int {
	return t.sd.ReadLiteral(n)
}

// fail aborts the tile with a conformance error at the current block.
func (t *Tile) fail(field, format string, args ...any) {
	abort(BitstreamConformance, field, t.b.MiRow, t.b.MiCol, format, args...)
}

// wrapTileError attaches the tile number to a tile failure.
func wrapTileError(err error, tileNum int) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "tile %d", tileNum)
}
