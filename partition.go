package boulder

// decodePartition reads the partition tree rooted at (r, c) and decodes its
// blocks in bitstream order.
func (t *Tile) decodePartition(r, c, bSize int) {
	if r >= t.fh.MiRows || c >= t.fh.MiCols {
		return
	}
	availU := t.isInside(r-1, c)
	availL := t.isInside(r, c-1)
	num4x4 := num4x4BlocksWide[bSize]
	halfBlock4x4 := num4x4 >> 1
	quarterBlock4x4 := halfBlock4x4 >> 1
	hasRows := r+halfBlock4x4 < t.fh.MiRows
	hasCols := c+halfBlock4x4 < t.fh.MiCols

	var partition int
	switch {
	case bSize < BLOCK_8X8:
		partition = PARTITION_NONE
	case hasRows && hasCols:
		partition = t.symbol(ElemPartition, miWidthLog2[bSize], t.partitionCtx(r, c, bSize, availU, availL), 0)
	case hasCols:
		partition = PARTITION_HORZ
		if t.readSplitOr(r, c, bSize, availU, availL, splitOrHorzSymbols) {
			partition = PARTITION_SPLIT
		}
	case hasRows:
		partition = PARTITION_VERT
		if t.readSplitOr(r, c, bSize, availU, availL, splitOrVertSymbols) {
			partition = PARTITION_SPLIT
		}
	default:
		partition = PARTITION_SPLIT
	}

	subSize := partitionSubsize(partition, bSize)
	splitSize := partitionSubsize(PARTITION_SPLIT, bSize)
	if subSize == BLOCK_INVALID || t.planeResidualSize(subSize, 1) == BLOCK_INVALID {
		abort(BitstreamConformance, "partition", r, c, "partition %d of block size %d gives no valid chroma size", partition, bSize)
	}

	switch partition {
	case PARTITION_NONE:
		t.decodeBlock(r, c, subSize)
	case PARTITION_HORZ:
		t.decodeBlock(r, c, subSize)
		if hasRows {
			t.decodeBlock(r+halfBlock4x4, c, subSize)
		}
	case PARTITION_VERT:
		t.decodeBlock(r, c, subSize)
		if hasCols {
			t.decodeBlock(r, c+halfBlock4x4, subSize)
		}
	case PARTITION_SPLIT:
		t.decodePartition(r, c, subSize)
		t.decodePartition(r, c+halfBlock4x4, subSize)
		t.decodePartition(r+halfBlock4x4, c, subSize)
		t.decodePartition(r+halfBlock4x4, c+halfBlock4x4, subSize)
	case PARTITION_HORZ_A:
		t.decodeBlock(r, c, splitSize)
		t.decodeBlock(r, c+halfBlock4x4, splitSize)
		t.decodeBlock(r+halfBlock4x4, c, subSize)
	case PARTITION_HORZ_B:
		t.decodeBlock(r, c, subSize)
		t.decodeBlock(r+halfBlock4x4, c, splitSize)
		t.decodeBlock(r+halfBlock4x4, c+halfBlock4x4, splitSize)
	case PARTITION_VERT_A:
		t.decodeBlock(r, c, splitSize)
		t.decodeBlock(r+halfBlock4x4, c, splitSize)
		t.decodeBlock(r, c+halfBlock4x4, subSize)
	case PARTITION_VERT_B:
		t.decodeBlock(r, c, subSize)
		t.decodeBlock(r, c+halfBlock4x4, splitSize)
		t.decodeBlock(r+halfBlock4x4, c+halfBlock4x4, splitSize)
	case PARTITION_HORZ_4:
		for i := 0; i < 4; i++ {
			row := r + i*quarterBlock4x4
			if i > 0 && row >= t.fh.MiRows {
				break
			}
			t.decodeBlock(row, c, subSize)
		}
	case PARTITION_VERT_4:
		for i := 0; i < 4; i++ {
			col := c + i*quarterBlock4x4
			if i > 0 && col >= t.fh.MiCols {
				break
			}
			t.decodeBlock(r, col, subSize)
		}
	}
}

// partitionCtx compares the neighbours' sizes with bSize.
func (t *Tile) partitionCtx(r, c, bSize int, availU, availL bool) int {
	bsl := miWidthLog2[bSize]
	above, left := 0, 0
	if availU && miWidthLog2[t.grid.MiSizes[t.at(r-1, c)]] < bsl {
		above = 1
	}
	if availL && miHeightLog2[t.grid.MiSizes[t.at(r, c-1)]] < bsl {
		left = 1
	}
	return left*2 + above
}

var (
	splitOrHorzSymbols = []int{PARTITION_VERT, PARTITION_SPLIT, PARTITION_HORZ_A, PARTITION_VERT_A, PARTITION_VERT_B, PARTITION_VERT_4}
	splitOrVertSymbols = []int{PARTITION_HORZ, PARTITION_SPLIT, PARTITION_HORZ_A, PARTITION_HORZ_B, PARTITION_VERT_A, PARTITION_HORZ_4}
)

// readSplitOr decodes split_or_horz or split_or_vert. Their probability is the
// mass the partition table gives to the listed partitions; the derived table is
// not adapted.
func (t *Tile) readSplitOr(r, c, bSize int, availU, availL bool, symbols []int) bool {
	cdf := t.cdf.cdfFor(ElemPartition, miWidthLog2[bSize], t.partitionCtx(r, c, bSize, availU, availL), 0)
	psum := 0
	for _, s := range symbols {
		if s == PARTITION_VERT_4 || s == PARTITION_HORZ_4 {
			if bSize == BLOCK_128X128 {
				continue
			}
		}
		psum += symbolProb(cdf, s)
	}
	derived := []uint16{uint16((1 << 15) - psum), 0}
	return t.sd.ReadSymbol(derived) == 1
}

// symbolProb returns the probability of s in 1/32768 units.
func symbolProb(cdf []uint16, s int) int {
	n := len(cdf)
	hi := 1 << 15
	if s < n-1 {
		hi = int(cdf[s])
	}
	lo := 0
	if s > 0 {
		lo = int(cdf[s-1])
	}
	return hi - lo
}
