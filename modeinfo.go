package boulder

func (t *Tile) modeInfo() {
	if t.fh.FrameIsIntra {
		t.intraFrameModeInfo()
	} else {
		t.interFrameModeInfo()
	}
	t.b.QIndex = t.currentQIndex
	t.b.DeltaLF = t.deltaLF
}

func (t *Tile) intraFrameModeInfo() {
	b := &t.b
	seg := &t.fh.Segmentation
	if seg.PreskipSegId {
		t.intraSegmentId()
	}
	b.SkipMode = false
	t.readSkip()
	if !seg.PreskipSegId {
		t.intraSegmentId()
	}
	t.readCdef()
	t.readDeltaQIndex()
	t.readDeltaLf()
	t.readDeltas = false
	b.RefFrame = [2]int{INTRA_FRAME, NONE}
	if t.fh.AllowIntrabc {
		b.UseIntrabc = t.flag(ElemIntrabc, 0, 0, 0)
	}
	if b.UseIntrabc {
		b.IsInter = true
		b.MotionMode = SIMPLE
		b.CompoundType = COMPOUND_AVERAGE
		b.YMode = DC_PRED
		b.UVMode = DC_PRED
		b.InterpFilter = [2]int{BILINEAR, BILINEAR}
		t.findMvStack(false)
		t.assignMv(false)
		return
	}
	b.IsInter = false
	above, left := t.intraFrameYModeCtx()
	b.YMode = t.symbol(ElemIntraFrameYMode, above, left, 0)
	t.intraModeInfoTail()
}

// intraModeInfoTail reads what follows the luma mode of an intra block.
func (t *Tile) intraModeInfoTail() {
	b := &t.b
	t.intraAngleInfoY()
	if b.HasChroma {
		t.readUVMode()
		if b.UVMode == UV_CFL_PRED {
			t.readCflAlphas()
		}
		t.intraAngleInfoUV()
	}
	b.PaletteSizeY = 0
	b.PaletteSizeUV = 0
	if b.MiSize >= BLOCK_8X8 && blockWidth(b.MiSize) <= 64 && blockHeight(b.MiSize) <= 64 && t.fh.AllowScreenContentTools {
		t.paletteModeInfo()
	}
	t.filterIntraModeInfo()
}

func (t *Tile) intraSegmentId() {
	b := &t.b
	if t.fh.Segmentation.Enabled {
		t.readSegmentId()
	} else {
		b.SegmentId = 0
	}
	b.Lossless = t.fh.LosslessArray[b.SegmentId]
}

func (t *Tile) readSegmentId() {
	b := &t.b
	pred, ctx := t.segmentIdPrediction()
	if b.Skip {
		b.SegmentId = pred
		return
	}
	last := t.fh.Segmentation.LastActiveSegId
	coded := t.symbol(ElemSegmentId, ctx, 0, 0)
	id := negDeinterleave(coded, pred, last+1)
	if id < 0 || id > last {
		t.fail("segment_id", "segment id %d outside 0..%d", id, last)
	}
	b.SegmentId = id
}

// negDeinterleave undoes the folding of segment ids around the prediction.
func negDeinterleave(diff, ref, max int) int {
	if ref == 0 {
		return diff
	}
	if ref >= max-1 {
		return max - diff - 1
	}
	if 2*ref < max {
		if diff <= 2*ref {
			if diff&1 == 1 {
				return ref + ((diff + 1) >> 1)
			}
			return ref - (diff >> 1)
		}
		return diff
	}
	if diff <= 2*(max-ref-1) {
		if diff&1 == 1 {
			return ref + ((diff + 1) >> 1)
		}
		return ref - (diff >> 1)
	}
	return max - (diff + 1)
}

func (t *Tile) readSkip() {
	b := &t.b
	if t.fh.Segmentation.PreskipSegId && t.fh.segFeatureActive(b.SegmentId, SEG_LVL_SKIP) {
		b.Skip = true
		return
	}
	b.Skip = t.flag(ElemSkip, t.skipCtx(), 0, 0)
}

func (t *Tile) readSkipMode() {
	b := &t.b
	fh := t.fh
	if fh.segFeatureActive(b.SegmentId, SEG_LVL_SKIP) ||
		fh.segFeatureActive(b.SegmentId, SEG_LVL_REF_FRAME) ||
		fh.segFeatureActive(b.SegmentId, SEG_LVL_GLOBALMV) ||
		!fh.SkipModePresent ||
		blockWidth(b.MiSize) < 8 || blockHeight(b.MiSize) < 8 {
		b.SkipMode = false
		return
	}
	b.SkipMode = t.flag(ElemSkipMode, t.skipModeCtx(), 0, 0)
}

// clearCdef marks the cdef indices of the superblock at (r, c) as not coded.
func (t *Tile) clearCdef(r, c int) {
	t.setCdef(r, c, -1)
	if t.seq.Use128x128Superblock {
		t.setCdef(r, c+16, -1)
		t.setCdef(r+16, c, -1)
		t.setCdef(r+16, c+16, -1)
	}
}

func (t *Tile) setCdef(r, c, v int) {
	if r < t.fh.MiRows && c < t.fh.MiCols {
		t.grid.CdefIdx[t.grid.cdefIndex(r, c)] = int8(v)
	}
}

func (t *Tile) readCdef() {
	b := &t.b
	if b.Skip || t.fh.CodedLossless || !t.seq.EnableCdef || t.fh.AllowIntrabc {
		b.CdefIdx = -1
		return
	}
	const cdefSize4 = 16
	r := b.MiRow &^ (cdefSize4 - 1)
	c := b.MiCol &^ (cdefSize4 - 1)
	if t.grid.Cdef(r, c) == -1 {
		v := t.literal(t.fh.CdefBits)
		t.setCdef(r, c, v)
		if b.bw4 > cdefSize4 {
			t.setCdef(r, c+cdefSize4, v)
		}
		if b.bh4 > cdefSize4 {
			t.setCdef(r+cdefSize4, c, v)
		}
		if b.bw4 > cdefSize4 && b.bh4 > cdefSize4 {
			t.setCdef(r+cdefSize4, c+cdefSize4, v)
		}
	}
	b.CdefIdx = t.grid.Cdef(b.MiRow, b.MiCol)
}

// readDeltaValue reads the magnitude and sign shared by delta_q and delta_lf.
func (t *Tile) readDeltaValue(el Element, a int) int {
	v := t.symbol(el, a, 0, 0)
	if v == DELTA_Q_SMALL {
		n := t.literal(3) + 1
		v = t.literal(n) + (1 << n) + 1
	}
	if v != 0 && t.literal(1) == 1 {
		return -v
	}
	return v
}

func (t *Tile) readDeltaQIndex() {
	b := &t.b
	if b.MiSize == t.sbSize() && b.Skip {
		return
	}
	if !t.readDeltas {
		return
	}
	if d := t.readDeltaValue(ElemDeltaQAbs, 0); d != 0 {
		t.currentQIndex = clip3(1, 255, t.currentQIndex+(d<<t.fh.DeltaQRes))
	}
}

func (t *Tile) readDeltaLf() {
	b := &t.b
	if b.MiSize == t.sbSize() && b.Skip {
		return
	}
	if !t.readDeltas || !t.fh.DeltaLfPresent {
		return
	}
	frameLfCount := 1
	if t.fh.DeltaLfMulti {
		frameLfCount = FRAME_LF_COUNT
		if t.seq.MonoChrome {
			frameLfCount -= 2
		}
	}
	for i := 0; i < frameLfCount; i++ {
		var d int
		if t.fh.DeltaLfMulti {
			d = t.readDeltaValue(ElemDeltaLfMulti, i)
		} else {
			d = t.readDeltaValue(ElemDeltaLfAbs, 0)
		}
		if d != 0 {
			t.deltaLF[i] = clip3(-MAX_LOOP_FILTER, MAX_LOOP_FILTER, t.deltaLF[i]+(d<<t.fh.DeltaLfRes))
		}
	}
}

func isDirectionalMode(mode int) bool {
	return mode >= V_PRED && mode <= D67_PRED
}

const maxAngleDelta = 3

func (t *Tile) intraAngleInfoY() {
	b := &t.b
	b.AngleDeltaY = 0
	if b.MiSize >= BLOCK_8X8 && isDirectionalMode(b.YMode) {
		b.AngleDeltaY = t.symbol(ElemAngleDelta, b.YMode-V_PRED, 0, 0) - maxAngleDelta
	}
}

func (t *Tile) intraAngleInfoUV() {
	b := &t.b
	b.AngleDeltaUV = 0
	if b.MiSize >= BLOCK_8X8 && isDirectionalMode(b.UVMode) {
		b.AngleDeltaUV = t.symbol(ElemAngleDelta, b.UVMode-V_PRED, 0, 0) - maxAngleDelta
	}
}

func (t *Tile) cflAllowed() bool {
	b := &t.b
	if b.Lossless && t.planeResidualSize(b.MiSize, 1) == BLOCK_4X4 {
		return true
	}
	return !b.Lossless && max(blockWidth(b.MiSize), blockHeight(b.MiSize)) <= 32
}

func (t *Tile) readUVMode() {
	b := &t.b
	if t.cflAllowed() {
		b.UVMode = t.symbol(ElemUVModeCflAllowed, b.YMode, 0, 0)
	} else {
		b.UVMode = t.symbol(ElemUVModeCflNotAllowed, b.YMode, 0, 0)
	}
}

const (
	cflSignZero = 0
	cflSignNeg  = 1
)

func (t *Tile) readCflAlphas() {
	b := &t.b
	signs := t.symbol(ElemCflSign, 0, 0, 0)
	signU := (signs + 1) / 3
	signV := (signs + 1) % 3
	b.CflAlphaU, b.CflAlphaV = 0, 0
	if signU != cflSignZero {
		b.CflAlphaU = 1 + t.symbol(ElemCflAlpha, (signU-1)*3+signV, 0, 0)
		if signU == cflSignNeg {
			b.CflAlphaU = -b.CflAlphaU
		}
	}
	if signV != cflSignZero {
		b.CflAlphaV = 1 + t.symbol(ElemCflAlpha, (signV-1)*3+signU, 0, 0)
		if signV == cflSignNeg {
			b.CflAlphaV = -b.CflAlphaV
		}
	}
}

func (t *Tile) filterIntraModeInfo() {
	b := &t.b
	b.UseFilterIntra = false
	if t.seq.EnableFilterIntra && b.YMode == DC_PRED && b.PaletteSizeY == 0 &&
		max(blockWidth(b.MiSize), blockHeight(b.MiSize)) <= 32 {
		b.UseFilterIntra = t.flag(ElemFilterIntra, b.MiSize, 0, 0)
		if b.UseFilterIntra {
			b.FilterIntraMode = t.symbol(ElemFilterIntraMode, 0, 0, 0)
		}
	}
}
