package boulder

// Context derivation for the mode info syntax elements. Every function reads
// only cells of blocks decoded earlier in the tile, through Tile.at.

// neighbourRefs holds the reference frames of the above and left blocks.
type neighbourRefs struct {
	aboveRefFrame [2]int
	leftRefFrame  [2]int
	aboveIntra    bool
	leftIntra     bool
	aboveSingle   bool
	leftSingle    bool
}

func (t *Tile) loadNeighbourRefs() {
	b := &t.b
	g := t.grid
	n := &t.nb
	n.aboveRefFrame = [2]int{INTRA_FRAME, NONE}
	n.leftRefFrame = [2]int{INTRA_FRAME, NONE}
	if b.availU {
		i := t.at(b.MiRow-1, b.MiCol)
		n.aboveRefFrame = [2]int{int(g.RefFrames[0][i]), int(g.RefFrames[1][i])}
	}
	if b.availL {
		i := t.at(b.MiRow, b.MiCol-1)
		n.leftRefFrame = [2]int{int(g.RefFrames[0][i]), int(g.RefFrames[1][i])}
	}
	n.aboveIntra = n.aboveRefFrame[0] <= INTRA_FRAME
	n.leftIntra = n.leftRefFrame[0] <= INTRA_FRAME
	n.aboveSingle = n.aboveRefFrame[1] <= INTRA_FRAME
	n.leftSingle = n.leftRefFrame[1] <= INTRA_FRAME
}

// segmentIdPrediction returns the spatially predicted segment id and the
// segment_id context.
func (t *Tile) segmentIdPrediction() (pred, ctx int) {
	b := &t.b
	g := t.grid
	prevUL, prevU, prevL := -1, -1, -1
	if b.availU && b.availL {
		prevUL = int(g.SegmentIds[t.at(b.MiRow-1, b.MiCol-1)])
	}
	if b.availU {
		prevU = int(g.SegmentIds[t.at(b.MiRow-1, b.MiCol)])
	}
	if b.availL {
		prevL = int(g.SegmentIds[t.at(b.MiRow, b.MiCol-1)])
	}
	switch {
	case prevU == -1:
		pred = max(prevL, 0)
	case prevL == -1:
		pred = prevU
	case prevUL == prevU:
		pred = prevU
	default:
		pred = prevL
	}
	switch {
	case prevUL < 0:
		ctx = 0
	case prevUL == prevU && prevUL == prevL:
		ctx = 2
	case prevUL == prevU || prevUL == prevL || prevU == prevL:
		ctx = 1
	}
	return pred, ctx
}

func (t *Tile) segIdPredictedCtx() int {
	b := &t.b
	return int(t.leftSegPredContext[b.MiRow]) + int(t.aboveSegPredContext[b.MiCol])
}

// countNeighbours adds the flags of the available above and left cells.
func (t *Tile) countNeighbours(flags []bool) int {
	b := &t.b
	ctx := 0
	if b.availU && flags[t.at(b.MiRow-1, b.MiCol)] {
		ctx++
	}
	if b.availL && flags[t.at(b.MiRow, b.MiCol-1)] {
		ctx++
	}
	return ctx
}

func (t *Tile) skipCtx() int {
	return t.countNeighbours(t.grid.Skips)
}

func (t *Tile) skipModeCtx() int {
	return t.countNeighbours(t.grid.SkipModes)
}

var intraModeContext = [INTRA_MODES]int{0, 1, 2, 3, 4, 4, 4, 4, 3, 0, 1, 2, 0}

// intraFrameYModeCtx returns the above and left mode contexts.
func (t *Tile) intraFrameYModeCtx() (int, int) {
	b := &t.b
	above, left := DC_PRED, DC_PRED
	if b.availU {
		above = int(t.grid.YModes[t.at(b.MiRow-1, b.MiCol)])
	}
	if b.availL {
		left = int(t.grid.YModes[t.at(b.MiRow, b.MiCol-1)])
	}
	return intraModeContext[above], intraModeContext[left]
}

func (t *Tile) isInterCtx() int {
	b := &t.b
	n := &t.nb
	switch {
	case b.availU && b.availL:
		if n.leftIntra && n.aboveIntra {
			return 3
		}
		return boolInt(n.leftIntra || n.aboveIntra)
	case b.availU:
		return 2 * boolInt(n.aboveIntra)
	case b.availL:
		return 2 * boolInt(n.leftIntra)
	}
	return 0
}

func checkBackward(refFrame int) bool {
	return refFrame >= BWDREF_FRAME && refFrame <= ALTREF_FRAME
}

func (t *Tile) compModeCtx() int {
	b := &t.b
	n := &t.nb
	switch {
	case b.availU && b.availL:
		switch {
		case n.aboveSingle && n.leftSingle:
			return boolInt(checkBackward(n.aboveRefFrame[0])) ^ boolInt(checkBackward(n.leftRefFrame[0]))
		case n.aboveSingle:
			return 2 + boolInt(checkBackward(n.aboveRefFrame[0]) || n.aboveIntra)
		case n.leftSingle:
			return 2 + boolInt(checkBackward(n.leftRefFrame[0]) || n.leftIntra)
		}
		return 4
	case b.availU:
		if n.aboveSingle {
			return boolInt(checkBackward(n.aboveRefFrame[0]))
		}
		return 3
	case b.availL:
		if n.leftSingle {
			return boolInt(checkBackward(n.leftRefFrame[0]))
		}
		return 3
	}
	return 1
}

func isSamedirRefPair(ref0, ref1 int) bool {
	return (ref0 >= BWDREF_FRAME) == (ref1 >= BWDREF_FRAME)
}

func (t *Tile) compRefTypeCtx() int {
	b := &t.b
	n := &t.nb
	above0, above1 := n.aboveRefFrame[0], n.aboveRefFrame[1]
	left0, left1 := n.leftRefFrame[0], n.leftRefFrame[1]
	aboveCompInter := b.availU && !n.aboveIntra && !n.aboveSingle
	leftCompInter := b.availL && !n.leftIntra && !n.leftSingle
	aboveUniComp := aboveCompInter && isSamedirRefPair(above0, above1)
	leftUniComp := leftCompInter && isSamedirRefPair(left0, left1)

	if b.availU && !n.aboveIntra && b.availL && !n.leftIntra {
		samedir := boolInt(isSamedirRefPair(above0, left0))
		switch {
		case !aboveCompInter && !leftCompInter:
			return 1 + 2*samedir
		case !aboveCompInter:
			if !leftUniComp {
				return 1
			}
			return 3 + samedir
		case !leftCompInter:
			if !aboveUniComp {
				return 1
			}
			return 3 + samedir
		}
		switch {
		case !aboveUniComp && !leftUniComp:
			return 0
		case !aboveUniComp || !leftUniComp:
			return 2
		}
		return 3 + boolInt((above0 == BWDREF_FRAME) == (left0 == BWDREF_FRAME))
	}
	if b.availU && b.availL {
		switch {
		case aboveCompInter:
			return 1 + 2*boolInt(aboveUniComp)
		case leftCompInter:
			return 1 + 2*boolInt(leftUniComp)
		}
		return 2
	}
	switch {
	case aboveCompInter:
		return 4 * boolInt(aboveUniComp)
	case leftCompInter:
		return 4 * boolInt(leftUniComp)
	}
	return 2
}

// countRefs counts how often the neighbours use any of frameTypes.
func (t *Tile) countRefs(frameTypes ...int) int {
	b := &t.b
	n := &t.nb
	c := 0
	for _, f := range frameTypes {
		if b.availU {
			c += boolInt(n.aboveRefFrame[0] == f) + boolInt(n.aboveRefFrame[1] == f)
		}
		if b.availL {
			c += boolInt(n.leftRefFrame[0] == f) + boolInt(n.leftRefFrame[1] == f)
		}
	}
	return c
}

func refCountCtx(counts0, counts1 int) int {
	switch {
	case counts0 < counts1:
		return 0
	case counts0 == counts1:
		return 1
	}
	return 2
}

func (t *Tile) fwdBwdCtx() int {
	return refCountCtx(
		t.countRefs(LAST_FRAME, LAST2_FRAME, LAST3_FRAME, GOLDEN_FRAME),
		t.countRefs(BWDREF_FRAME, ALTREF2_FRAME, ALTREF_FRAME))
}

func (t *Tile) last12VsLast3GoldCtx() int {
	return refCountCtx(t.countRefs(LAST_FRAME, LAST2_FRAME), t.countRefs(LAST3_FRAME, GOLDEN_FRAME))
}

func (t *Tile) lastVsLast2Ctx() int {
	return refCountCtx(t.countRefs(LAST_FRAME), t.countRefs(LAST2_FRAME))
}

func (t *Tile) last3VsGoldCtx() int {
	return refCountCtx(t.countRefs(LAST3_FRAME), t.countRefs(GOLDEN_FRAME))
}

func (t *Tile) bwdAlt2VsAltCtx() int {
	return refCountCtx(t.countRefs(BWDREF_FRAME, ALTREF2_FRAME), t.countRefs(ALTREF_FRAME))
}

func (t *Tile) bwdVsAlt2Ctx() int {
	return refCountCtx(t.countRefs(BWDREF_FRAME), t.countRefs(ALTREF2_FRAME))
}

// uniCompRefCtx returns the context of uni_comp_ref, uni_comp_ref_p1 or
// uni_comp_ref_p2 for p = 0, 1, 2.
func (t *Tile) uniCompRefCtx(p int) int {
	switch p {
	case 0:
		return t.fwdBwdCtx()
	case 1:
		return refCountCtx(t.countRefs(LAST2_FRAME), t.countRefs(LAST3_FRAME, GOLDEN_FRAME))
	}
	return t.last3VsGoldCtx()
}

// compRefCtx returns the context of comp_ref, comp_ref_p1 or comp_ref_p2.
func (t *Tile) compRefCtx(p int) int {
	switch p {
	case 0:
		return t.last12VsLast3GoldCtx()
	case 1:
		return t.lastVsLast2Ctx()
	}
	return t.last3VsGoldCtx()
}

// compBwdRefCtx returns the context of comp_bwdref or comp_bwdref_p1.
func (t *Tile) compBwdRefCtx(p int) int {
	if p == 0 {
		return t.bwdAlt2VsAltCtx()
	}
	return t.bwdVsAlt2Ctx()
}

// singleRefCtx returns the context of single_ref_p1 .. single_ref_p6.
func (t *Tile) singleRefCtx(p int) int {
	switch p {
	case 1:
		return t.fwdBwdCtx()
	case 2:
		return t.bwdAlt2VsAltCtx()
	case 3:
		return t.last12VsLast3GoldCtx()
	case 4:
		return t.lastVsLast2Ctx()
	case 5:
		return t.last3VsGoldCtx()
	}
	return t.bwdVsAlt2Ctx()
}

func (t *Tile) compGroupIdxCtx() int {
	b := &t.b
	n := &t.nb
	ctx := 0
	if b.availU {
		if !n.aboveSingle {
			ctx += int(t.grid.CompGroupIdxs[t.at(b.MiRow-1, b.MiCol)])
		} else if n.aboveRefFrame[0] == ALTREF_FRAME {
			ctx += 3
		}
	}
	if b.availL {
		if !n.leftSingle {
			ctx += int(t.grid.CompGroupIdxs[t.at(b.MiRow, b.MiCol-1)])
		} else if n.leftRefFrame[0] == ALTREF_FRAME {
			ctx += 3
		}
	}
	return min(5, ctx)
}

// relativeDist is the signed distance between two order hints.
func (t *Tile) relativeDist(a, b int) int {
	if !t.seq.EnableOrderHint {
		return 0
	}
	diff := a - b
	m := 1 << (t.seq.OrderHintBits - 1)
	return (diff & (m - 1)) - (diff & m)
}

func (t *Tile) compoundIdxCtx() int {
	b := &t.b
	n := &t.nb
	fwd := abs(t.relativeDist(t.fh.OrderHints[b.RefFrame[0]], t.fh.OrderHint))
	bck := abs(t.relativeDist(t.fh.OrderHints[b.RefFrame[1]], t.fh.OrderHint))
	ctx := 0
	if fwd == bck {
		ctx = 3
	}
	if b.availU {
		if !n.aboveSingle {
			ctx += int(t.grid.CompoundIdxs[t.at(b.MiRow-1, b.MiCol)])
		} else if n.aboveRefFrame[0] == ALTREF_FRAME {
			ctx++
		}
	}
	if b.availL {
		if !n.leftSingle {
			ctx += int(t.grid.CompoundIdxs[t.at(b.MiRow, b.MiCol-1)])
		} else if n.leftRefFrame[0] == ALTREF_FRAME {
			ctx++
		}
	}
	return ctx
}

func (t *Tile) interpFilterCtx(dir int) int {
	b := &t.b
	g := t.grid
	ctx := ((dir&1)*2 + boolInt(b.RefFrame[1] > INTRA_FRAME)) * 4
	leftType, aboveType := 3, 3
	if b.availL {
		i := t.at(b.MiRow, b.MiCol-1)
		if int(g.RefFrames[0][i]) == b.RefFrame[0] || int(g.RefFrames[1][i]) == b.RefFrame[0] {
			leftType = int(g.InterpFilters[dir][i])
		}
	}
	if b.availU {
		i := t.at(b.MiRow-1, b.MiCol)
		if int(g.RefFrames[0][i]) == b.RefFrame[0] || int(g.RefFrames[1][i]) == b.RefFrame[0] {
			aboveType = int(g.InterpFilters[dir][i])
		}
	}
	switch {
	case leftType == aboveType:
		ctx += leftType
	case leftType == 3:
		ctx += aboveType
	case aboveType == 3:
		ctx += leftType
	default:
		ctx += 3
	}
	return ctx
}

var compoundModeCtxMap = [3][5]int{{0, 1, 1, 1, 1}, {1, 2, 3, 4, 4}, {4, 4, 5, 6, 7}}

func (t *Tile) compoundModeCtx() int {
	return compoundModeCtxMap[t.mv.refMvContext>>1][min(t.mv.newMvContext, 4)]
}

func (t *Tile) paletteYModeCtx() int {
	b := &t.b
	ctx := 0
	if b.availU && t.grid.PaletteSizes[0][t.at(b.MiRow-1, b.MiCol)] > 0 {
		ctx++
	}
	if b.availL && t.grid.PaletteSizes[0][t.at(b.MiRow, b.MiCol-1)] > 0 {
		ctx++
	}
	return ctx
}

// aboveTxWidth is the transform width bordering (row, col) from above.
func (t *Tile) aboveTxWidth(row, col int) int {
	b := &t.b
	g := t.grid
	if row == b.MiRow {
		if !b.availU {
			return 64
		}
		i := t.at(row-1, col)
		if g.Skips[i] && g.IsInters[i] {
			return blockWidth(int(g.MiSizes[i]))
		}
	}
	return txWidth[g.InterTxSizes[t.at(row-1, col)]]
}

// leftTxHeight is the transform height bordering (row, col) from the left.
func (t *Tile) leftTxHeight(row, col int) int {
	b := &t.b
	g := t.grid
	if col == b.MiCol {
		if !b.availL {
			return 64
		}
		i := t.at(row, col-1)
		if g.Skips[i] && g.IsInters[i] {
			return blockHeight(int(g.MiSizes[i]))
		}
	}
	return txHeight[g.InterTxSizes[t.at(row, col-1)]]
}

func (t *Tile) txDepthCtx(maxRectTxSize int) int {
	b := &t.b
	g := t.grid
	maxTxWidth := txWidth[maxRectTxSize]
	maxTxHeight := txHeight[maxRectTxSize]
	aboveW, leftH := 0, 0
	if b.availU {
		i := t.at(b.MiRow-1, b.MiCol)
		if g.IsInters[i] {
			aboveW = blockWidth(int(g.MiSizes[i]))
		} else {
			aboveW = t.aboveTxWidth(b.MiRow, b.MiCol)
		}
	}
	if b.availL {
		i := t.at(b.MiRow, b.MiCol-1)
		if g.IsInters[i] {
			leftH = blockHeight(int(g.MiSizes[i]))
		} else {
			leftH = t.leftTxHeight(b.MiRow, b.MiCol)
		}
	}
	return boolInt(aboveW >= maxTxWidth) + boolInt(leftH >= maxTxHeight)
}

func (t *Tile) txfmSplitCtx(row, col, txSz int) int {
	b := &t.b
	above := boolInt(t.aboveTxWidth(row, col) < txWidth[txSz])
	left := boolInt(t.leftTxHeight(row, col) < txHeight[txSz])
	size := min(64, max(blockWidth(b.MiSize), blockHeight(b.MiSize)))
	maxTxSz := findTxSize(size, size)
	txSzSqrUp := txSizeSqrUp[txSz]
	return boolInt(txSzSqrUp != maxTxSz)*3 + (TX_SIZES-1-maxTxSz)*6 + above + left
}

// findTxSize returns the transform size with the given pixel dimensions.
func findTxSize(w, h int) int {
	return txSizeFromDims[floorLog2(w)-2][floorLog2(h)-2]
}
