package boulder

// BlockInfo is the decoded mode info of one block.
type BlockInfo struct {
	MiRow  int
	MiCol  int
	MiSize int

	HasChroma  bool
	SegmentId  int
	Skip       bool
	SkipMode   bool
	IsInter    bool
	UseIntrabc bool
	Lossless   bool
	// QIndex is CurrentQIndex after this block's delta_qindex.
	QIndex  int
	DeltaLF [FRAME_LF_COUNT]int
	CdefIdx int

	YMode           int
	UVMode          int
	AngleDeltaY     int
	AngleDeltaUV    int
	UseFilterIntra  bool
	FilterIntraMode int
	CflAlphaU       int
	CflAlphaV       int

	PaletteSizeY  int
	PaletteSizeUV int
	// PaletteColors holds the Y, U and V palettes.
	PaletteColors [3][PALETTE_COLORS]uint16
	// ColorMapY and ColorMapUV are the color index maps, nil without a palette.
	ColorMapY  *[64][64]uint8
	ColorMapUV *[64][64]uint8

	RefFrame        [2]int
	Mv              [2]Mv
	RefMvIdx        int
	Interintra      bool
	InterintraMode  int
	WedgeInterintra bool
	WedgeIndex      int
	WedgeSign       int
	MaskType        int
	MotionMode      int
	CompoundType    int
	CompGroupIdx    int
	CompoundIdx     int
	InterpFilter    [2]int
	// NumSamples and CandList are the local warp samples.
	NumSamples int
	CandList   [LEAST_SQUARES_SAMPLES_MAX][4]int

	TxSize int

	bw4          int
	bh4          int
	availU       bool
	availL       bool
	availUChroma bool
	availLChroma bool
}

func (b *BlockInfo) contains(row, col int) bool {
	return row >= b.MiRow && row < b.MiRow+b.bh4 && col >= b.MiCol && col < b.MiCol+b.bw4
}

// TransformBlock describes one coded transform block.
type TransformBlock struct {
	Plane  int
	X      int
	Y      int
	TxSize int
	TxType int
	Eob    int
	// Quant holds the signed levels by position within the coded area. It is
	// only valid during the Coefficients call.
	Quant []int
}

// BlockSink receives decoded syntax. Implementations must not retain the
// pointers they are handed.
type BlockSink interface {
	Block(b *BlockInfo)
	Coefficients(b *BlockInfo, tb *TransformBlock)
}

// NoopSink discards everything.
type NoopSink struct{}

func (NoopSink) Block(*BlockInfo)                         {}
func (NoopSink) Coefficients(*BlockInfo, *TransformBlock) {}

func (t *Tile) decodeBlock(r, c, subSize int) {
	t.blockCount++
	t.b = BlockInfo{MiRow: r, MiCol: c, MiSize: subSize}
	b := &t.b
	b.bw4 = num4x4BlocksWide[subSize]
	b.bh4 = num4x4BlocksHigh[subSize]
	ssx, ssy := t.seq.SubsamplingX, t.seq.SubsamplingY
	switch {
	case b.bh4 == 1 && ssy == 1 && r&1 == 0:
		b.HasChroma = false
	case b.bw4 == 1 && ssx == 1 && c&1 == 0:
		b.HasChroma = false
	default:
		b.HasChroma = t.numPlanes() > 1
	}
	b.availU = t.isInside(r-1, c)
	b.availL = t.isInside(r, c-1)
	b.availUChroma = b.availU
	b.availLChroma = b.availL
	if b.HasChroma {
		if ssy == 1 && b.bh4 == 1 {
			b.availUChroma = t.isInside(r-2, c)
		}
		if ssx == 1 && b.bw4 == 1 {
			b.availLChroma = t.isInside(r, c-2)
		}
	} else {
		b.availUChroma = false
		b.availLChroma = false
	}

	t.modeInfo()
	t.paletteTokens()
	t.readBlockTxSize()
	if b.Skip {
		t.resetBlockContext()
	}
	t.storeBlock()
	t.sink.Block(b)
	t.residual()
}

// resetBlockContext clears the coefficient contexts a skipped block covers.
func (t *Tile) resetBlockContext() {
	b := &t.b
	planes := 1
	if b.HasChroma {
		planes = 3
	}
	for plane := 0; plane < planes; plane++ {
		subX, subY := t.planeSubsampling(plane)
		for i := b.MiCol >> subX; i < (b.MiCol+b.bw4)>>subX; i++ {
			t.aboveLevelContext[plane][i] = 0
			t.aboveDcContext[plane][i] = 0
		}
		for i := b.MiRow >> subY; i < (b.MiRow+b.bh4)>>subY; i++ {
			t.leftLevelContext[plane][i] = 0
			t.leftDcContext[plane][i] = 0
		}
	}
}

// storeBlock writes the block's attributes into every grid cell it covers
// inside the frame.
func (t *Tile) storeBlock() {
	b := &t.b
	g := t.grid
	rows := min(b.bh4, g.MiRows-b.MiRow)
	cols := min(b.bw4, g.MiCols-b.MiCol)
	for y := 0; y < rows; y++ {
		i := g.index(b.MiRow+y, b.MiCol)
		for x := 0; x < cols; x, i = x+1, i+1 {
			g.YModes[i] = uint8(b.YMode)
			if b.RefFrame[0] == INTRA_FRAME && b.HasChroma {
				g.UVModes[i] = uint8(b.UVMode)
			}
			for refList := 0; refList < 2; refList++ {
				g.RefFrames[refList][i] = int8(b.RefFrame[refList])
				g.Mvs[refList][i] = b.Mv[refList]
				g.InterpFilters[refList][i] = uint8(b.InterpFilter[refList])
			}
			g.CompGroupIdxs[i] = uint8(b.CompGroupIdx)
			g.CompoundIdxs[i] = uint8(b.CompoundIdx)
			g.MotionModes[i] = uint8(b.MotionMode)
			g.IsInters[i] = b.IsInter
			g.SkipModes[i] = b.SkipMode
			g.Skips[i] = b.Skip
			g.TxSizes[i] = uint8(b.TxSize)
			g.MiSizes[i] = uint8(b.MiSize)
			g.SegmentIds[i] = uint8(b.SegmentId)
			g.PaletteSizes[0][i] = uint8(b.PaletteSizeY)
			g.PaletteSizes[1][i] = uint8(b.PaletteSizeUV)
			g.PaletteColors[0][i] = b.PaletteColors[0]
			g.PaletteColors[1][i] = b.PaletteColors[1]
			for k := range b.DeltaLF {
				g.DeltaLFs[i][k] = int8(b.DeltaLF[k])
			}
			g.order[i] = t.blockCount
		}
	}
}

func (t *Tile) planeSubsampling(plane int) (int, int) {
	if plane == 0 {
		return 0, 0
	}
	return t.seq.SubsamplingX, t.seq.SubsamplingY
}

// planeResidualSize returns the block size of plane's residual for a block of
// size bsize, or BLOCK_INVALID when the subsampled size does not exist.
func (t *Tile) planeResidualSize(bsize, plane int) int {
	subX, subY := t.planeSubsampling(plane)
	return subsampledSize(bsize, subX, subY)
}

func subsampledSize(bsize, subX, subY int) int {
	w := miWidthLog2[bsize] - subX
	h := miHeightLog2[bsize] - subY
	if subX == 1 && subY == 1 {
		w = max(w, 0)
		h = max(h, 0)
	}
	if w < 0 || h < 0 || w > 5 || h > 5 {
		return BLOCK_INVALID
	}
	return blockSizeFromLog2[w][h]
}
