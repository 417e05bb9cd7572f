package boulder

const intrabcDelayPixels = 256

func (t *Tile) assignMv(isCompound bool) {
	b := &t.b
	s := &t.mv
	var predMv [2]Mv
	for i := 0; i < 1+boolInt(isCompound); i++ {
		compMode := NEWMV
		if !b.UseIntrabc {
			compMode = getMode(b.YMode, i)
		}
		switch {
		case b.UseIntrabc:
			predMv[0] = s.refStackMv[0][0]
			if predMv[0] == (Mv{}) {
				predMv[0] = s.refStackMv[1][0]
			}
			if predMv[0] == (Mv{}) {
				sbSize4 := num4x4BlocksHigh[t.sbSize()]
				if b.MiRow-sbSize4 < t.Info.MiRowStart {
					predMv[0] = Mv{0, -(sbSize4*4 + intrabcDelayPixels) * 8}
				} else {
					predMv[0] = Mv{-(sbSize4 * 4 * 8), 0}
				}
			}
		case compMode == GLOBALMV:
			predMv[i] = s.globalMvs[i]
		default:
			pos := b.RefMvIdx
			if compMode == NEARESTMV || (compMode == NEWMV && s.numMvFound <= 1) {
				pos = 0
			}
			predMv[i] = s.refStackMv[pos][i]
		}
		if compMode == NEWMV {
			b.Mv[i] = t.readMv(predMv[i])
		} else {
			b.Mv[i] = predMv[i]
		}
	}
	if b.UseIntrabc && (b.Mv[0][0]&7 != 0 || b.Mv[0][1]&7 != 0) {
		t.fail("mv", "intra block copy vector (%d, %d) is not whole-pel", b.Mv[0][0], b.Mv[0][1])
	}
}

// getMode returns the single-reference mode list refList uses under yMode.
func getMode(yMode, refList int) int {
	if refList == 0 {
		switch {
		case yMode < NEAREST_NEARESTMV:
			return yMode
		case yMode == NEW_NEWMV || yMode == NEW_NEARESTMV || yMode == NEW_NEARMV:
			return NEWMV
		case yMode == NEAREST_NEARESTMV || yMode == NEAREST_NEWMV:
			return NEARESTMV
		case yMode == NEAR_NEARMV || yMode == NEAR_NEWMV:
			return NEARMV
		}
		return GLOBALMV
	}
	switch yMode {
	case NEW_NEWMV, NEAREST_NEWMV, NEAR_NEWMV:
		return NEWMV
	case NEAREST_NEARESTMV, NEW_NEARESTMV:
		return NEARESTMV
	case NEAR_NEARMV, NEW_NEARMV:
		return NEARMV
	}
	return GLOBALMV
}

func (t *Tile) readMv(pred Mv) Mv {
	mvCtx := 0
	if t.b.UseIntrabc {
		mvCtx = MV_INTRABC_CONTEXT
	}
	var diff Mv
	joint := t.symbol(ElemMvJoint, mvCtx, 0, 0)
	if joint == MV_JOINT_HZVNZ || joint == MV_JOINT_HNZVNZ {
		diff[0] = t.readMvComponent(mvCtx, 0)
	}
	if joint == MV_JOINT_HNZVZ || joint == MV_JOINT_HNZVNZ {
		diff[1] = t.readMvComponent(mvCtx, 1)
	}
	return Mv{pred[0] + diff[0], pred[1] + diff[1]}
}

func (t *Tile) readMvComponent(ctx, comp int) int {
	sign := t.symbol(ElemMvSign, ctx, comp, 0)
	class := t.symbol(ElemMvClass, ctx, comp, 0)
	var mag int
	fr, hp := 3, 1
	if class == 0 {
		class0Bit := t.symbol(ElemMvClass0Bit, ctx, comp, 0)
		if !t.forceIntegerMv() {
			fr = t.symbol(ElemMvClass0Fr, ctx, comp, class0Bit)
		}
		if t.fh.AllowHighPrecisionMv {
			hp = t.symbol(ElemMvClass0Hp, ctx, comp, 0)
		}
		mag = (class0Bit<<3 | fr<<1 | hp) + 1
	} else {
		d := 0
		for i := 0; i < class; i++ {
			d |= t.symbol(ElemMvBit, ctx, comp, i) << i
		}
		mag = CLASS0_SIZE << (class + 2)
		if !t.forceIntegerMv() {
			fr = t.symbol(ElemMvFr, ctx, comp, 0)
		}
		if t.fh.AllowHighPrecisionMv {
			hp = t.symbol(ElemMvHp, ctx, comp, 0)
		}
		mag += (d<<3 | fr<<1 | hp) + 1
	}
	if sign == 1 {
		return -mag
	}
	return mag
}

// findWarpSamples collects the neighbouring motion that local warp fits.
func (t *Tile) findWarpSamples() {
	b := &t.b
	g := t.grid
	b.NumSamples = 0
	scanned := 0
	doTopLeft, doTopRight := true, true
	if b.availU {
		srcW := num4x4BlocksWide[g.MiSizes[t.at(b.MiRow-1, b.MiCol)]]
		if b.bw4 <= srcW {
			colOffset := -(b.MiCol & (srcW - 1))
			if colOffset < 0 {
				doTopLeft = false
			}
			if colOffset+srcW > b.bw4 {
				doTopRight = false
			}
			t.addSample(-1, 0, &scanned)
		} else {
			for i := 0; i < min(b.bw4, t.fh.MiCols-b.MiCol); {
				srcW = num4x4BlocksWide[g.MiSizes[t.at(b.MiRow-1, b.MiCol+i)]]
				t.addSample(-1, i, &scanned)
				i += max(srcW, 2)
			}
		}
	}
	if b.availL {
		srcH := num4x4BlocksHigh[g.MiSizes[t.at(b.MiRow, b.MiCol-1)]]
		if b.bh4 <= srcH {
			if b.MiRow&(srcH-1) != 0 {
				doTopLeft = false
			}
			t.addSample(0, -1, &scanned)
		} else {
			for i := 0; i < min(b.bh4, t.fh.MiRows-b.MiRow); {
				srcH = num4x4BlocksHigh[g.MiSizes[t.at(b.MiRow+i, b.MiCol-1)]]
				t.addSample(i, -1, &scanned)
				i += max(srcH, 2)
			}
		}
	}
	if doTopLeft {
		t.addSample(-1, -1, &scanned)
	}
	if doTopRight && max(b.bw4, b.bh4) <= 16 {
		t.addSample(-1, b.bw4, &scanned)
	}
	if b.NumSamples == 0 && scanned > 0 {
		b.NumSamples = 1
	}
}

func (t *Tile) addSample(deltaRow, deltaCol int, scanned *int) {
	b := &t.b
	g := t.grid
	if *scanned >= LEAST_SQUARES_SAMPLES_MAX {
		return
	}
	mvRow := b.MiRow + deltaRow
	mvCol := b.MiCol + deltaCol
	if !t.isInside(mvRow, mvCol) || !t.written(mvRow, mvCol) {
		return
	}
	i := t.at(mvRow, mvCol)
	if int(g.RefFrames[0][i]) != b.RefFrame[0] || int(g.RefFrames[1][i]) != NONE {
		return
	}
	candSz := int(g.MiSizes[i])
	candW4 := num4x4BlocksWide[candSz]
	candH4 := num4x4BlocksHigh[candSz]
	candRow := mvRow &^ (candH4 - 1)
	candCol := mvCol &^ (candW4 - 1)
	midY := candRow*4 + candH4*4/2 - 1
	midX := candCol*4 + candW4*4/2 - 1
	threshold := clip3(16, 112, max(blockWidth(b.MiSize), blockHeight(b.MiSize)))
	candMv := g.Mvs[0][t.at(candRow, candCol)]
	mvDiffRow := abs(candMv[0] - b.Mv[0][0])
	mvDiffCol := abs(candMv[1] - b.Mv[0][1])
	valid := mvDiffRow+mvDiffCol <= threshold
	*scanned++
	if !valid && *scanned > 1 {
		return
	}
	b.CandList[b.NumSamples] = [4]int{midY * 8, midX * 8, midY*8 + candMv[0], midX*8 + candMv[1]}
	if valid {
		b.NumSamples++
	}
}
