package boulder

func (t *Tile) interFrameModeInfo() {
	b := &t.b
	b.UseIntrabc = false
	t.loadNeighbourRefs()
	b.Skip = false
	t.interSegmentId(true)
	t.readSkipMode()
	if b.SkipMode {
		b.Skip = true
	} else {
		t.readSkip()
	}
	if !t.fh.Segmentation.PreskipSegId {
		t.interSegmentId(false)
	}
	b.Lossless = t.fh.LosslessArray[b.SegmentId]
	t.readCdef()
	t.readDeltaQIndex()
	t.readDeltaLf()
	t.readDeltas = false
	t.readIsInter()
	if b.IsInter {
		t.interBlockModeInfo()
	} else {
		t.intraBlockModeInfo()
	}
}

// predictedSegmentId is the smallest id the previous segment map holds
// under the block.
func (t *Tile) predictedSegmentId() int {
	b := &t.b
	prev := t.fh.PrevSegmentIds
	if prev == nil {
		return 0
	}
	xMis := min(t.fh.MiCols-b.MiCol, b.bw4)
	yMis := min(t.fh.MiRows-b.MiRow, b.bh4)
	seg := MAX_SEGMENTS - 1
	for y := 0; y < yMis; y++ {
		for x := 0; x < xMis; x++ {
			seg = min(seg, int(prev[(b.MiRow+y)*t.fh.MiCols+b.MiCol+x]))
		}
	}
	return seg
}

func (t *Tile) setSegPredContext(v bool) {
	b := &t.b
	for i := 0; i < b.bw4; i++ {
		t.aboveSegPredContext[b.MiCol+i] = uint8(boolInt(v))
	}
	for i := 0; i < b.bh4; i++ {
		t.leftSegPredContext[b.MiRow+i] = uint8(boolInt(v))
	}
}

func (t *Tile) interSegmentId(preSkip bool) {
	b := &t.b
	seg := &t.fh.Segmentation
	if !seg.Enabled {
		b.SegmentId = 0
		return
	}
	predicted := t.predictedSegmentId()
	if !seg.UpdateMap {
		b.SegmentId = predicted
		return
	}
	if preSkip && !seg.PreskipSegId {
		b.SegmentId = 0
		return
	}
	if !preSkip && b.Skip {
		t.setSegPredContext(false)
		t.readSegmentId()
		return
	}
	if seg.TemporalUpdate {
		p := t.flag(ElemSegIdPredicted, t.segIdPredictedCtx(), 0, 0)
		if p {
			b.SegmentId = predicted
		} else {
			t.readSegmentId()
		}
		t.setSegPredContext(p)
		return
	}
	t.readSegmentId()
}

func (t *Tile) readIsInter() {
	b := &t.b
	fh := t.fh
	switch {
	case b.SkipMode:
		b.IsInter = true
	case fh.segFeatureActive(b.SegmentId, SEG_LVL_REF_FRAME):
		b.IsInter = fh.Segmentation.FeatureData[b.SegmentId][SEG_LVL_REF_FRAME] != INTRA_FRAME
	case fh.segFeatureActive(b.SegmentId, SEG_LVL_GLOBALMV):
		b.IsInter = true
	default:
		b.IsInter = t.flag(ElemIsInter, t.isInterCtx(), 0, 0)
	}
}

func (t *Tile) intraBlockModeInfo() {
	b := &t.b
	b.RefFrame = [2]int{INTRA_FRAME, NONE}
	b.YMode = t.symbol(ElemYMode, sizeGroup[b.MiSize], 0, 0)
	t.intraModeInfoTail()
}

func (t *Tile) interBlockModeInfo() {
	b := &t.b
	fh := t.fh
	b.PaletteSizeY = 0
	b.PaletteSizeUV = 0
	t.readRefFrames()
	isCompound := b.RefFrame[1] > INTRA_FRAME
	t.findMvStack(isCompound)
	switch {
	case b.SkipMode:
		b.YMode = NEAREST_NEARESTMV
	case fh.segFeatureActive(b.SegmentId, SEG_LVL_SKIP) || fh.segFeatureActive(b.SegmentId, SEG_LVL_GLOBALMV):
		b.YMode = GLOBALMV
	case isCompound:
		b.YMode = NEAREST_NEARESTMV + t.symbol(ElemCompoundMode, t.compoundModeCtx(), 0, 0)
	default:
		if t.symbol(ElemNewMv, t.mv.newMvContext, 0, 0) == 0 {
			b.YMode = NEWMV
		} else if t.symbol(ElemZeroMv, t.mv.zeroMvContext, 0, 0) == 0 {
			b.YMode = GLOBALMV
		} else if t.symbol(ElemRefMv, t.mv.refMvContext, 0, 0) == 0 {
			b.YMode = NEARESTMV
		} else {
			b.YMode = NEARMV
		}
	}

	b.RefMvIdx = 0
	if b.YMode == NEWMV || b.YMode == NEW_NEWMV {
		t.readDrlMode(0)
	} else if hasNearmv(b.YMode) {
		t.readDrlMode(1)
	}

	t.assignMv(isCompound)
	t.readInterintraMode(isCompound)
	t.readMotionMode(isCompound)
	t.readCompoundType(isCompound)

	if fh.InterpolationFilter == SWITCHABLE {
		dirs := 1
		if t.seq.EnableDualFilter {
			dirs = 2
		}
		for dir := 0; dir < dirs; dir++ {
			if t.needsInterpFilter() {
				b.InterpFilter[dir] = t.symbol(ElemInterpFilter, t.interpFilterCtx(dir), 0, 0)
			} else {
				b.InterpFilter[dir] = EIGHTTAP
			}
		}
		if !t.seq.EnableDualFilter {
			b.InterpFilter[1] = b.InterpFilter[0]
		}
	} else {
		b.InterpFilter = [2]int{fh.InterpolationFilter, fh.InterpolationFilter}
	}
}

// readDrlMode picks RefMvIdx among the stack entries after start.
func (t *Tile) readDrlMode(start int) {
	b := &t.b
	b.RefMvIdx = start
	for idx := start; idx < start+2; idx++ {
		if t.mv.numMvFound > idx+1 {
			if t.symbol(ElemDrlMode, t.mv.drlCtxStack[idx], 0, 0) == 0 {
				b.RefMvIdx = idx
				return
			}
			b.RefMvIdx = idx + 1
		}
	}
}

func hasNearmv(mode int) bool {
	return mode == NEARMV || mode == NEAR_NEARMV || mode == NEAR_NEWMV || mode == NEW_NEARMV
}

func hasNewmv(mode int) bool {
	switch mode {
	case NEWMV, NEW_NEWMV, NEAR_NEWMV, NEW_NEARMV, NEAREST_NEWMV, NEW_NEARESTMV:
		return true
	}
	return false
}

func (t *Tile) needsInterpFilter() bool {
	b := &t.b
	large := min(blockWidth(b.MiSize), blockHeight(b.MiSize)) >= 8
	switch {
	case b.SkipMode || b.MotionMode == LOCALWARP:
		return false
	case large && b.YMode == GLOBALMV:
		return t.fh.GmType[b.RefFrame[0]] == TRANSLATION
	case large && b.YMode == GLOBAL_GLOBALMV:
		return t.fh.GmType[b.RefFrame[0]] == TRANSLATION || t.fh.GmType[b.RefFrame[1]] == TRANSLATION
	}
	return true
}

func (t *Tile) readRefFrames() {
	b := &t.b
	fh := t.fh
	switch {
	case b.SkipMode:
		b.RefFrame = fh.SkipModeFrame
		return
	case fh.segFeatureActive(b.SegmentId, SEG_LVL_REF_FRAME):
		b.RefFrame = [2]int{fh.Segmentation.FeatureData[b.SegmentId][SEG_LVL_REF_FRAME], NONE}
		return
	case fh.segFeatureActive(b.SegmentId, SEG_LVL_SKIP) || fh.segFeatureActive(b.SegmentId, SEG_LVL_GLOBALMV):
		b.RefFrame = [2]int{LAST_FRAME, NONE}
		return
	}
	compound := false
	if fh.ReferenceSelect && min(b.bw4, b.bh4) >= 2 {
		compound = t.flag(ElemCompMode, t.compModeCtx(), 0, 0)
	}
	if !compound {
		b.RefFrame = [2]int{t.readSingleRef(), NONE}
		return
	}
	if t.symbol(ElemCompRefType, t.compRefTypeCtx(), 0, 0) == UNIDIR_COMP_REF {
		switch {
		case t.flag(ElemUniCompRef, t.uniCompRefCtx(0), 0, 0):
			b.RefFrame = [2]int{BWDREF_FRAME, ALTREF_FRAME}
		case !t.flag(ElemUniCompRef, t.uniCompRefCtx(1), 1, 0):
			b.RefFrame = [2]int{LAST_FRAME, LAST2_FRAME}
		case t.flag(ElemUniCompRef, t.uniCompRefCtx(2), 2, 0):
			b.RefFrame = [2]int{LAST_FRAME, GOLDEN_FRAME}
		default:
			b.RefFrame = [2]int{LAST_FRAME, LAST3_FRAME}
		}
		return
	}
	if !t.flag(ElemCompRef, t.compRefCtx(0), 0, 0) {
		b.RefFrame[0] = LAST_FRAME
		if t.flag(ElemCompRef, t.compRefCtx(1), 1, 0) {
			b.RefFrame[0] = LAST2_FRAME
		}
	} else {
		b.RefFrame[0] = LAST3_FRAME
		if t.flag(ElemCompRef, t.compRefCtx(2), 2, 0) {
			b.RefFrame[0] = GOLDEN_FRAME
		}
	}
	if !t.flag(ElemCompBwdRef, t.compBwdRefCtx(0), 0, 0) {
		b.RefFrame[1] = BWDREF_FRAME
		if t.flag(ElemCompBwdRef, t.compBwdRefCtx(1), 1, 0) {
			b.RefFrame[1] = ALTREF2_FRAME
		}
	} else {
		b.RefFrame[1] = ALTREF_FRAME
	}
}

func (t *Tile) singleRef(p int) bool {
	return t.flag(ElemSingleRef, t.singleRefCtx(p), p-1, 0)
}

func (t *Tile) readSingleRef() int {
	if t.singleRef(1) {
		if t.singleRef(2) {
			return ALTREF_FRAME
		}
		if t.singleRef(6) {
			return ALTREF2_FRAME
		}
		return BWDREF_FRAME
	}
	if t.singleRef(3) {
		if t.singleRef(5) {
			return GOLDEN_FRAME
		}
		return LAST3_FRAME
	}
	if t.singleRef(4) {
		return LAST2_FRAME
	}
	return LAST_FRAME
}

func (t *Tile) readInterintraMode(isCompound bool) {
	b := &t.b
	b.Interintra = false
	if b.SkipMode || !t.seq.EnableInterintraCompound || isCompound || b.MiSize < BLOCK_8X8 || b.MiSize > BLOCK_32X32 {
		return
	}
	ctx := sizeGroup[b.MiSize] - 1
	b.Interintra = t.flag(ElemInterIntra, ctx, 0, 0)
	if !b.Interintra {
		return
	}
	b.InterintraMode = t.symbol(ElemInterIntraMode, ctx, 0, 0)
	b.RefFrame[1] = INTRA_FRAME
	b.AngleDeltaY = 0
	b.AngleDeltaUV = 0
	b.UseFilterIntra = false
	b.WedgeInterintra = t.flag(ElemWedgeInterIntra, b.MiSize, 0, 0)
	if b.WedgeInterintra {
		b.WedgeIndex = t.symbol(ElemWedgeIndex, b.MiSize, 0, 0)
		b.WedgeSign = 0
	}
}

func (t *Tile) readMotionMode(isCompound bool) {
	b := &t.b
	fh := t.fh
	b.MotionMode = SIMPLE
	if b.SkipMode || !fh.IsMotionModeSwitchable {
		return
	}
	if min(blockWidth(b.MiSize), blockHeight(b.MiSize)) < 8 {
		return
	}
	if !fh.ForceIntegerMv && (b.YMode == GLOBALMV || b.YMode == GLOBAL_GLOBALMV) && fh.GmType[b.RefFrame[0]] > TRANSLATION {
		return
	}
	if isCompound || b.RefFrame[1] == INTRA_FRAME || !t.hasOverlappableCandidates() {
		return
	}
	t.findWarpSamples()
	if fh.ForceIntegerMv || b.NumSamples == 0 || !fh.AllowWarpedMotion || fh.RefScaled[b.RefFrame[0]] {
		if t.flag(ElemUseObmc, b.MiSize, 0, 0) {
			b.MotionMode = OBMC
		}
		return
	}
	b.MotionMode = t.symbol(ElemMotionMode, b.MiSize, 0, 0)
}

func (t *Tile) hasOverlappableCandidates() bool {
	b := &t.b
	g := t.grid
	if b.availU {
		for x4 := b.MiCol; x4 < min(t.fh.MiCols, b.MiCol+b.bw4); x4 += 2 {
			x5 := min(x4|1, t.fh.MiCols-1)
			if g.RefFrames[0][t.at(b.MiRow-1, x5)] > INTRA_FRAME {
				return true
			}
		}
	}
	if b.availL {
		for y4 := b.MiRow; y4 < min(t.fh.MiRows, b.MiRow+b.bh4); y4 += 2 {
			y5 := min(y4|1, t.fh.MiRows-1)
			if g.RefFrames[0][t.at(y5, b.MiCol-1)] > INTRA_FRAME {
				return true
			}
		}
	}
	return false
}

func (t *Tile) readCompoundType(isCompound bool) {
	b := &t.b
	b.CompGroupIdx = 0
	b.CompoundIdx = 1
	if b.SkipMode {
		b.CompoundType = COMPOUND_AVERAGE
		return
	}
	if !isCompound {
		switch {
		case b.Interintra && b.WedgeInterintra:
			b.CompoundType = COMPOUND_WEDGE
		case b.Interintra:
			b.CompoundType = COMPOUND_INTRA
		default:
			b.CompoundType = COMPOUND_AVERAGE
		}
		return
	}
	n := wedgeBits[b.MiSize]
	if t.seq.EnableMaskedCompound {
		b.CompGroupIdx = t.symbol(ElemCompGroupIdx, t.compGroupIdxCtx(), 0, 0)
	}
	if b.CompGroupIdx == 0 {
		b.CompoundType = COMPOUND_AVERAGE
		if t.seq.EnableJntComp {
			b.CompoundIdx = t.symbol(ElemCompoundIdx, t.compoundIdxCtx(), 0, 0)
			if b.CompoundIdx == 0 {
				b.CompoundType = COMPOUND_DISTANCE
			}
		}
	} else if n == 0 {
		b.CompoundType = COMPOUND_DIFFWTD
	} else {
		b.CompoundType = t.symbol(ElemCompoundType, b.MiSize, 0, 0)
	}
	switch b.CompoundType {
	case COMPOUND_WEDGE:
		b.WedgeIndex = t.symbol(ElemWedgeIndex, b.MiSize, 0, 0)
		b.WedgeSign = t.literal(1)
	case COMPOUND_DIFFWTD:
		b.MaskType = t.literal(1)
	}
}
