package boulder

// mvStack is the candidate list built for one block.
type mvStack struct {
	numMvFound    int
	newMvCount    int
	refStackMv    [MAX_REF_MV_STACK_SIZE][2]Mv
	weightStack   [MAX_REF_MV_STACK_SIZE]int
	drlCtxStack   [MAX_REF_MV_STACK_SIZE]int
	globalMvs     [2]Mv
	newMvContext  int
	refMvContext  int
	zeroMvContext int

	foundMatch   bool
	closeMatches int
	totalMatches int

	refIdCount   [2]int
	refDiffCount [2]int
	refIdMvs     [2][2]Mv
	refDiffMvs   [2][2]Mv
}

// findMvStack gathers the motion vector candidates of the current block from
// its spatial and temporal neighbours, ranks them by weight and derives the
// new/zero/ref mv contexts.
func (t *Tile) findMvStack(isCompound bool) {
	b := &t.b
	s := &t.mv
	*s = mvStack{}
	s.globalMvs[0] = t.setupGlobalMv(0)
	if isCompound {
		s.globalMvs[1] = t.setupGlobalMv(1)
	}

	t.scanRow(-1, isCompound)
	foundAboveMatch := s.foundMatch
	s.foundMatch = false
	t.scanCol(-1, isCompound)
	foundLeftMatch := s.foundMatch
	s.foundMatch = false
	if max(b.bw4, b.bh4) <= 16 {
		t.scanPoint(-1, b.bw4, isCompound)
	}
	if s.foundMatch {
		foundAboveMatch = true
	}
	s.closeMatches = boolInt(foundAboveMatch) + boolInt(foundLeftMatch)
	numNearest := s.numMvFound
	numNew := s.newMvCount
	for idx := 0; idx < numNearest; idx++ {
		s.weightStack[idx] += REF_CAT_LEVEL
	}
	s.zeroMvContext = 0
	if t.fh.UseRefFrameMvs {
		t.temporalScan(isCompound)
	}

	t.scanPoint(-1, -1, isCompound)
	if s.foundMatch {
		foundAboveMatch = true
	}
	s.foundMatch = false
	t.scanRow(-3, isCompound)
	if s.foundMatch {
		foundAboveMatch = true
	}
	s.foundMatch = false
	t.scanCol(-3, isCompound)
	if s.foundMatch {
		foundLeftMatch = true
	}
	s.foundMatch = false
	if b.bh4 > 1 {
		t.scanRow(-5, isCompound)
	}
	if s.foundMatch {
		foundAboveMatch = true
	}
	s.foundMatch = false
	if b.bw4 > 1 {
		t.scanCol(-5, isCompound)
	}
	if s.foundMatch {
		foundLeftMatch = true
	}
	s.totalMatches = boolInt(foundAboveMatch) + boolInt(foundLeftMatch)

	s.sort(0, numNearest)
	s.sort(numNearest, s.numMvFound)
	if s.numMvFound < 2 {
		t.extraSearch(isCompound)
	}
	s.setDrlContexts()
	t.clampStack(isCompound)
	s.setModeContexts(numNew)
}

func (t *Tile) setupGlobalMv(refList int) Mv {
	b := &t.b
	ref := b.RefFrame[refList]
	var mv Mv
	typ := IDENTITY
	if ref != INTRA_FRAME {
		typ = t.fh.GmType[ref]
	}
	switch {
	case ref == INTRA_FRAME || typ == IDENTITY:
	case typ == TRANSLATION:
		gm := &t.fh.GmParams[ref]
		mv[0] = gm[0] >> (WARPEDMODEL_PREC_BITS - 3)
		mv[1] = gm[1] >> (WARPEDMODEL_PREC_BITS - 3)
	default:
		gm := &t.fh.GmParams[ref]
		x := b.MiCol*4 + blockWidth(b.MiSize)/2 - 1
		y := b.MiRow*4 + blockHeight(b.MiSize)/2 - 1
		xc := (gm[2]-(1<<WARPEDMODEL_PREC_BITS))*x + gm[3]*y + gm[0]
		yc := gm[4]*x + (gm[5]-(1<<WARPEDMODEL_PREC_BITS))*y + gm[1]
		if t.fh.AllowHighPrecisionMv {
			mv[0] = round2Signed(yc, WARPEDMODEL_PREC_BITS-3)
			mv[1] = round2Signed(xc, WARPEDMODEL_PREC_BITS-3)
		} else {
			mv[0] = round2Signed(yc, WARPEDMODEL_PREC_BITS-2) * 2
			mv[1] = round2Signed(xc, WARPEDMODEL_PREC_BITS-2) * 2
		}
	}
	return t.lowerMvPrecision(mv)
}

// forceIntegerMv reports whether motion vectors are whole-pel in this frame.
func (t *Tile) forceIntegerMv() bool {
	return t.fh.ForceIntegerMv || t.fh.FrameIsIntra
}

func (t *Tile) lowerMvPrecision(mv Mv) Mv {
	if t.fh.AllowHighPrecisionMv {
		return mv
	}
	for i := range mv {
		if t.forceIntegerMv() {
			a := (abs(mv[i]) + 3) >> 3
			if mv[i] > 0 {
				mv[i] = a << 3
			} else {
				mv[i] = -(a << 3)
			}
		} else if mv[i]&1 != 0 {
			if mv[i] > 0 {
				mv[i]--
			} else {
				mv[i]++
			}
		}
	}
	return mv
}

func (t *Tile) scanRow(deltaRow int, isCompound bool) {
	b := &t.b
	end4 := min(b.bw4, t.fh.MiCols-b.MiCol, 16)
	deltaCol := 0
	useStep16 := b.bw4 >= 16
	if abs(deltaRow) > 1 {
		deltaRow += b.MiRow & 1
		deltaCol = 1 - (b.MiCol & 1)
	}
	for i := 0; i < end4; {
		mvRow := b.MiRow + deltaRow
		mvCol := b.MiCol + deltaCol + i
		if !t.isInside(mvRow, mvCol) {
			break
		}
		n := min(b.bw4, num4x4BlocksWide[t.grid.MiSizes[t.at(mvRow, mvCol)]])
		if abs(deltaRow) > 1 {
			n = max(2, n)
		}
		if useStep16 {
			n = max(4, n)
		}
		t.addRefMvCandidate(mvRow, mvCol, isCompound, 2*n)
		i += n
	}
}

func (t *Tile) scanCol(deltaCol int, isCompound bool) {
	b := &t.b
	end4 := min(b.bh4, t.fh.MiRows-b.MiRow, 16)
	deltaRow := 0
	useStep16 := b.bh4 >= 16
	if abs(deltaCol) > 1 {
		deltaRow = 1 - (b.MiRow & 1)
		deltaCol += b.MiCol & 1
	}
	for i := 0; i < end4; {
		mvRow := b.MiRow + deltaRow + i
		mvCol := b.MiCol + deltaCol
		if !t.isInside(mvRow, mvCol) {
			break
		}
		n := min(b.bh4, num4x4BlocksHigh[t.grid.MiSizes[t.at(mvRow, mvCol)]])
		if abs(deltaCol) > 1 {
			n = max(2, n)
		}
		if useStep16 {
			n = max(4, n)
		}
		t.addRefMvCandidate(mvRow, mvCol, isCompound, 2*n)
		i += n
	}
}

func (t *Tile) scanPoint(deltaRow, deltaCol int, isCompound bool) {
	b := &t.b
	mvRow := b.MiRow + deltaRow
	mvCol := b.MiCol + deltaCol
	if t.isInside(mvRow, mvCol) && t.written(mvRow, mvCol) {
		t.addRefMvCandidate(mvRow, mvCol, isCompound, 4)
	}
}

func (t *Tile) temporalScan(isCompound bool) {
	b := &t.b
	stepW4 := 2
	if b.bw4 >= 16 {
		stepW4 = 4
	}
	stepH4 := 2
	if b.bh4 >= 16 {
		stepH4 = 4
	}
	for deltaRow := 0; deltaRow < min(b.bh4, 16); deltaRow += stepH4 {
		for deltaCol := 0; deltaCol < min(b.bw4, 16); deltaCol += stepW4 {
			t.addTplRefMv(deltaRow, deltaCol, isCompound)
		}
	}
	allowExtension := b.bh4 >= num4x4BlocksHigh[BLOCK_8X8] && b.bh4 < num4x4BlocksHigh[BLOCK_64X64] &&
		b.bw4 >= num4x4BlocksWide[BLOCK_8X8] && b.bw4 < num4x4BlocksWide[BLOCK_64X64]
	if !allowExtension {
		return
	}
	samples := [3][2]int{{b.bh4, -2}, {b.bh4, b.bw4}, {b.bh4 - 2, b.bw4}}
	for _, p := range samples {
		if t.checkSbBorder(p[0], p[1]) {
			t.addTplRefMv(p[0], p[1], isCompound)
		}
	}
}

// checkSbBorder keeps temporal samples inside the 64x64 area of the block.
func (t *Tile) checkSbBorder(deltaRow, deltaCol int) bool {
	row := (t.b.MiRow & 15) + deltaRow
	col := (t.b.MiCol & 15) + deltaCol
	return row >= 0 && row < 16 && col >= 0 && col < 16
}

func (t *Tile) motionFieldMv(ref, row, col int) Mv {
	field := t.fh.MotionFieldMvs[ref]
	if field == nil {
		return InvalidMv
	}
	return field[(row>>1)*(t.fh.MiCols>>1)+(col>>1)]
}

func (t *Tile) addTplRefMv(deltaRow, deltaCol int, isCompound bool) {
	b := &t.b
	s := &t.mv
	mvRow := (b.MiRow + deltaRow) | 1
	mvCol := (b.MiCol + deltaCol) | 1
	if !t.isInside(mvRow, mvCol) {
		return
	}
	atOrigin := deltaRow == 0 && deltaCol == 0
	if atOrigin {
		s.zeroMvContext = 1
	}
	var cand [2]Mv
	lists := 1
	if isCompound {
		lists = 2
	}
	for list := 0; list < lists; list++ {
		cand[list] = t.motionFieldMv(b.RefFrame[list], mvRow, mvCol)
		if cand[list][0] == InvalidMv[0] {
			return
		}
		cand[list] = t.lowerMvPrecision(cand[list])
	}
	if atOrigin {
		s.zeroMvContext = 0
		for list := 0; list < lists; list++ {
			if abs(cand[list][0]-s.globalMvs[list][0]) >= 16 || abs(cand[list][1]-s.globalMvs[list][1]) >= 16 {
				s.zeroMvContext = 1
			}
		}
	}
	idx := 0
	for ; idx < s.numMvFound; idx++ {
		if cand[0] == s.refStackMv[idx][0] && (!isCompound || cand[1] == s.refStackMv[idx][1]) {
			break
		}
	}
	if idx < s.numMvFound {
		s.weightStack[idx] += 2
	} else if s.numMvFound < MAX_REF_MV_STACK_SIZE {
		s.refStackMv[s.numMvFound] = cand
		s.weightStack[s.numMvFound] = 2
		s.numMvFound++
	}
}

func (t *Tile) addRefMvCandidate(mvRow, mvCol int, isCompound bool, weight int) {
	g := t.grid
	i := t.at(mvRow, mvCol)
	if !g.IsInters[i] {
		return
	}
	b := &t.b
	if !isCompound {
		for candList := 0; candList < 2; candList++ {
			if int(g.RefFrames[candList][i]) == b.RefFrame[0] {
				t.searchStack(i, candList, weight)
			}
		}
		return
	}
	if int(g.RefFrames[0][i]) == b.RefFrame[0] && int(g.RefFrames[1][i]) == b.RefFrame[1] {
		t.compoundSearchStack(i, weight)
	}
}

// candidateIsGlobal reports whether the candidate in cell i moved with a
// non-translational global motion for ref.
func (t *Tile) candidateIsGlobal(i, ref int) bool {
	g := t.grid
	mode := int(g.YModes[i])
	size := int(g.MiSizes[i])
	large := min(blockWidth(size), blockHeight(size)) >= 8
	return (mode == GLOBALMV || mode == GLOBAL_GLOBALMV) && t.fh.GmType[ref] > TRANSLATION && large
}

func (t *Tile) searchStack(i, candList, weight int) {
	g := t.grid
	s := &t.mv
	var cand Mv
	if t.candidateIsGlobal(i, t.b.RefFrame[0]) {
		cand = s.globalMvs[0]
	} else {
		cand = g.Mvs[candList][i]
	}
	cand = t.lowerMvPrecision(cand)
	if hasNewmv(int(g.YModes[i])) {
		s.newMvCount++
	}
	s.foundMatch = true
	idx := 0
	for ; idx < s.numMvFound; idx++ {
		if cand == s.refStackMv[idx][0] {
			break
		}
	}
	if idx < s.numMvFound {
		s.weightStack[idx] += weight
	} else if s.numMvFound < MAX_REF_MV_STACK_SIZE {
		s.refStackMv[s.numMvFound][0] = cand
		s.weightStack[s.numMvFound] = weight
		s.numMvFound++
	}
}

func (t *Tile) compoundSearchStack(i, weight int) {
	g := t.grid
	s := &t.mv
	cand := [2]Mv{g.Mvs[0][i], g.Mvs[1][i]}
	if int(g.YModes[i]) == GLOBAL_GLOBALMV {
		for refList := 0; refList < 2; refList++ {
			if t.candidateIsGlobal(i, t.b.RefFrame[refList]) {
				cand[refList] = s.globalMvs[refList]
			}
		}
	}
	cand[0] = t.lowerMvPrecision(cand[0])
	cand[1] = t.lowerMvPrecision(cand[1])
	s.foundMatch = true
	idx := 0
	for ; idx < s.numMvFound; idx++ {
		if cand == s.refStackMv[idx] {
			break
		}
	}
	if idx < s.numMvFound {
		s.weightStack[idx] += weight
	} else if s.numMvFound < MAX_REF_MV_STACK_SIZE {
		s.refStackMv[s.numMvFound] = cand
		s.weightStack[s.numMvFound] = weight
		s.numMvFound++
	}
	if hasNewmv(int(g.YModes[i])) {
		s.newMvCount++
	}
}

// sort orders entries [start, end) by descending weight. Only adjacent
// entries are swapped, so equal weights keep their insertion order.
func (s *mvStack) sort(start, end int) {
	for end > start {
		newEnd := start
		for idx := start + 1; idx < end; idx++ {
			if s.weightStack[idx-1] < s.weightStack[idx] {
				s.weightStack[idx-1], s.weightStack[idx] = s.weightStack[idx], s.weightStack[idx-1]
				s.refStackMv[idx-1], s.refStackMv[idx] = s.refStackMv[idx], s.refStackMv[idx-1]
				newEnd = idx
			}
		}
		end = newEnd
	}
}

func (t *Tile) extraSearch(isCompound bool) {
	b := &t.b
	s := &t.mv
	s.refIdCount = [2]int{}
	s.refDiffCount = [2]int{}
	w4 := min(16, b.bw4, t.fh.MiCols-b.MiCol)
	h4 := min(16, b.bh4, t.fh.MiRows-b.MiRow)
	num4x4 := min(w4, h4)
	for pass := 0; pass < 2 && s.numMvFound < 2; pass++ {
		for idx := 0; idx < num4x4 && s.numMvFound < 2; {
			mvRow, mvCol := b.MiRow-1, b.MiCol+idx
			if pass == 1 {
				mvRow, mvCol = b.MiRow+idx, b.MiCol-1
			}
			if !t.isInside(mvRow, mvCol) {
				break
			}
			i := t.at(mvRow, mvCol)
			t.addExtraMvCandidate(i, isCompound)
			if pass == 0 {
				idx += num4x4BlocksWide[t.grid.MiSizes[i]]
			} else {
				idx += num4x4BlocksHigh[t.grid.MiSizes[i]]
			}
		}
	}
	if isCompound {
		var combined [2][2]Mv
		for list := 0; list < 2; list++ {
			n := 0
			for idx := 0; idx < s.refIdCount[list]; idx++ {
				combined[n][list] = s.refIdMvs[list][idx]
				n++
			}
			for idx := 0; idx < s.refDiffCount[list] && n < 2; idx++ {
				combined[n][list] = s.refDiffMvs[list][idx]
				n++
			}
			for ; n < 2; n++ {
				combined[n][list] = s.globalMvs[list]
			}
		}
		if s.numMvFound == 1 {
			if combined[0] == s.refStackMv[0] {
				s.refStackMv[1] = combined[1]
			} else {
				s.refStackMv[1] = combined[0]
			}
			s.weightStack[1] = 2
			s.numMvFound = 2
		} else {
			for idx := 0; idx < 2; idx++ {
				s.refStackMv[s.numMvFound] = combined[idx]
				s.weightStack[s.numMvFound] = 2
				s.numMvFound++
			}
		}
		return
	}
	for idx := s.numMvFound; idx < 2; idx++ {
		s.refStackMv[idx][0] = s.globalMvs[0]
	}
}

func (t *Tile) addExtraMvCandidate(i int, isCompound bool) {
	g := t.grid
	b := &t.b
	s := &t.mv
	signBias := &t.fh.RefFrameSignBias
	for candList := 0; candList < 2; candList++ {
		candRef := int(g.RefFrames[candList][i])
		if candRef <= INTRA_FRAME {
			continue
		}
		if isCompound {
			for list := 0; list < 2; list++ {
				cand := g.Mvs[candList][i]
				if candRef == b.RefFrame[list] && s.refIdCount[list] < 2 {
					s.refIdMvs[list][s.refIdCount[list]] = cand
					s.refIdCount[list]++
				} else if s.refDiffCount[list] < 2 {
					if signBias[candRef] != signBias[b.RefFrame[list]] {
						cand = Mv{-cand[0], -cand[1]}
					}
					s.refDiffMvs[list][s.refDiffCount[list]] = cand
					s.refDiffCount[list]++
				}
			}
			continue
		}
		cand := g.Mvs[candList][i]
		if signBias[candRef] != signBias[b.RefFrame[0]] {
			cand = Mv{-cand[0], -cand[1]}
		}
		idx := 0
		for ; idx < s.numMvFound; idx++ {
			if cand == s.refStackMv[idx][0] {
				break
			}
		}
		if idx == s.numMvFound {
			s.refStackMv[idx][0] = cand
			s.weightStack[idx] = 2
			s.numMvFound++
		}
	}
}

// setDrlContexts derives the drl_mode context of each entry from its weight
// and its successor's relative to REF_CAT_LEVEL.
func (s *mvStack) setDrlContexts() {
	for idx := 0; idx < s.numMvFound; idx++ {
		z := 0
		if idx+1 < s.numMvFound {
			w0, w1 := s.weightStack[idx], s.weightStack[idx+1]
			if w0 >= REF_CAT_LEVEL {
				if w1 < REF_CAT_LEVEL {
					z = 1
				}
			} else {
				z = 2
			}
		}
		s.drlCtxStack[idx] = z
	}
}

func (t *Tile) clampStack(isCompound bool) {
	b := &t.b
	s := &t.mv
	lists := 1
	if isCompound {
		lists = 2
	}
	for list := 0; list < lists; list++ {
		for idx := 0; idx < s.numMvFound; idx++ {
			mv := &s.refStackMv[idx][list]
			mv[0] = t.clampMvRow(mv[0], MV_BORDER+b.bh4*4*8)
			mv[1] = t.clampMvCol(mv[1], MV_BORDER+b.bw4*4*8)
		}
	}
}

func (t *Tile) clampMvRow(v, border int) int {
	b := &t.b
	mbToTopEdge := -((b.MiRow * 4) * 8)
	mbToBottomEdge := ((t.fh.MiRows - b.bh4 - b.MiRow) * 4) * 8
	return clip3(mbToTopEdge-border, mbToBottomEdge+border, v)
}

func (t *Tile) clampMvCol(v, border int) int {
	b := &t.b
	mbToLeftEdge := -((b.MiCol * 4) * 8)
	mbToRightEdge := ((t.fh.MiCols - b.bw4 - b.MiCol) * 4) * 8
	return clip3(mbToLeftEdge-border, mbToRightEdge+border, v)
}

func (s *mvStack) setModeContexts(numNew int) {
	switch s.closeMatches {
	case 0:
		s.newMvContext = min(s.totalMatches, 1)
		s.refMvContext = s.totalMatches
	case 1:
		s.newMvContext = 3 - min(numNew, 1)
		s.refMvContext = 2 + s.totalMatches
	default:
		s.newMvContext = 5 - min(numNew, 1)
		s.refMvContext = 5
	}
}
