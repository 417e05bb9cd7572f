package boulder

import "github.com/m4tthewde/boulder/entropy"

// streamWriter authors tile payloads for frames with disable_cdf_update set.
// Every table then stays at its default, so the writer codes each symbol
// against the same row the tile reads it with.
type streamWriter struct {
	enc *entropy.Encoder
	cdf *CdfContext
}

func newStreamWriter() *streamWriter {
	return &streamWriter{enc: entropy.NewEncoder(true), cdf: DefaultCdfContext(100)}
}

// symbol codes v with the row of el selected by up to three context values,
// in the order the tile passes them.
func (w *streamWriter) symbol(el Element, v int, ctx ...int) *streamWriter {
	var a [3]int
	copy(a[:], ctx)
	w.enc.EncodeSymbol(w.cdf.cdfFor(el, a[0], a[1], a[2]), v)
	return w
}

func (w *streamWriter) literal(v, n int) *streamWriter {
	w.enc.EncodeLiteral(v, n)
	return w
}

func (w *streamWriter) golomb(v int) *streamWriter {
	w.enc.EncodeGolomb(v)
	return w
}

func (w *streamWriter) bytes() []byte {
	return w.enc.Finish()
}

// intraBlock codes an 8x8 partition leaf at the top-left of a monochrome
// intra frame: partition NONE, skip and a luma mode, all with no neighbours.
func (w *streamWriter) intraBlock(skip bool, yMode int) *streamWriter {
	return w.symbol(ElemPartition, PARTITION_NONE, 1, 0).
		symbol(ElemSkip, boolInt(skip), 0).
		symbol(ElemIntraFrameYMode, yMode, 0, 0)
}

type recordingSink struct {
	blocks []BlockInfo
	coeffs []TransformBlock
}

func (s *recordingSink) Block(b *BlockInfo) {
	s.blocks = append(s.blocks, *b)
}

func (s *recordingSink) Coefficients(_ *BlockInfo, tb *TransformBlock) {
	cp := *tb
	cp.Quant = append([]int(nil), tb.Quant...)
	s.coeffs = append(s.coeffs, cp)
}

// testHeaders describes a monochrome 8-bit intra frame of miRows x miCols
// units split into tileCols equal tile columns, with every optional tool off.
func testHeaders(miRows, miCols, tileCols int) (*SequenceHeader, *FrameHeader) {
	seq := &SequenceHeader{
		MonoChrome:   true,
		SubsamplingX: 1,
		SubsamplingY: 1,
		BitDepth:     8,
	}
	fh := &FrameHeader{
		FrameWidth:       miCols * 4,
		FrameHeight:      miRows * 4,
		MiRows:           miRows,
		MiCols:           miCols,
		FrameIsIntra:     true,
		TxMode:           TX_MODE_LARGEST,
		DisableCdfUpdate: true,
		BaseQIdx:         100,
		TileCols:         tileCols,
		TileRows:         1,
		MiRowStarts:      []int{0, miRows},
	}
	for i := 0; i <= tileCols; i++ {
		fh.MiColStarts = append(fh.MiColStarts, i*miCols/tileCols)
	}
	return seq, fh
}

func newTestTile(seq *SequenceHeader, fh *FrameHeader, data []byte, sink BlockSink) *Tile {
	grid := NewBlockGrid(fh.MiRows, fh.MiCols)
	grid.AllocRestoration(seq, fh)
	t := NewTile(seq, fh, grid, DefaultCdfContext(fh.BaseQIdx), fh.Tile(0, data), sink)
	t.CheckCausality = true
	return t
}

// stamp marks a size block at (row, col) as written by block number order,
// letting fill set its attributes per cell.
func stamp(g *BlockGrid, row, col, size int, order int32, fill func(i int)) {
	for y := row; y < row+num4x4BlocksHigh[size] && y < g.MiRows; y++ {
		for x := col; x < col+num4x4BlocksWide[size] && x < g.MiCols; x++ {
			i := g.index(y, x)
			g.MiSizes[i] = uint8(size)
			g.order[i] = order
			if fill != nil {
				fill(i)
			}
		}
	}
}
