package boulder

func (t *Tile) residual() {
	b := &t.b
	widthChunks := max(1, b.bw4>>4)
	heightChunks := max(1, b.bh4>>4)
	planes := 1
	if b.HasChroma {
		planes = 3
	}
	for chunkY := 0; chunkY < heightChunks; chunkY++ {
		for chunkX := 0; chunkX < widthChunks; chunkX++ {
			miRowChunk := b.MiRow + chunkY<<4
			miColChunk := b.MiCol + chunkX<<4
			for plane := 0; plane < planes; plane++ {
				txSz := TX_4X4
				if !b.Lossless {
					txSz = t.planeTxSize(plane, b.TxSize)
				}
				stepX := txWidth[txSz] >> 2
				stepY := txHeight[txSz] >> 2
				planeSz := t.planeResidualSize(b.MiSize, plane)
				num4x4W := num4x4BlocksWide[planeSz]
				num4x4H := num4x4BlocksHigh[planeSz]
				subX, subY := t.planeSubsampling(plane)
				if b.IsInter && !b.Lossless && plane == 0 {
					baseX := miColChunk << 2
					baseY := miRowChunk << 2
					t.transformTree(baseX, baseY, min(num4x4W*4, 64), min(num4x4H*4, 64))
					continue
				}
				baseX := (b.MiCol >> subX) << 2
				baseY := (b.MiRow >> subY) << 2
				for y := 0; y < min(num4x4H, 16>>subY); y += stepY {
					for x := 0; x < min(num4x4W, 16>>subX); x += stepX {
						t.transformBlock(plane, baseX, baseY, txSz, x+(chunkX<<4)>>subX, y+(chunkY<<4)>>subY)
					}
				}
			}
		}
	}
}

// transformTree splits the luma area of an inter block along the variable
// transform sizes recorded by readBlockTxSize.
func (t *Tile) transformTree(startX, startY, w, h int) {
	if startX >= t.fh.MiCols<<2 || startY >= t.fh.MiRows<<2 {
		return
	}
	txSz := int(t.grid.InterTxSizes[t.at(startY>>2, startX>>2)])
	switch {
	case w <= txWidth[txSz] && h <= txHeight[txSz]:
		t.transformBlock(0, startX, startY, txSz, 0, 0)
	case w > h:
		t.transformTree(startX, startY, w/2, h)
		t.transformTree(startX+w/2, startY, w/2, h)
	case w < h:
		t.transformTree(startX, startY, w, h/2)
		t.transformTree(startX, startY+h/2, w, h/2)
	default:
		t.transformTree(startX, startY, w/2, h/2)
		t.transformTree(startX+w/2, startY, w/2, h/2)
		t.transformTree(startX, startY+h/2, w/2, h/2)
		t.transformTree(startX+w/2, startY+h/2, w/2, h/2)
	}
}

func (t *Tile) transformBlock(plane, baseX, baseY, txSz, x, y int) {
	startX := baseX + 4*x
	startY := baseY + 4*y
	subX, subY := t.planeSubsampling(plane)
	maxX := (t.fh.MiCols << 2) >> subX
	maxY := (t.fh.MiRows << 2) >> subY
	if startX >= maxX || startY >= maxY {
		return
	}
	if !t.b.Skip {
		t.coeffs(plane, startX, startY, txSz)
	}
}

// planeTxSize returns the transform size used by plane for a luma size txSz.
func (t *Tile) planeTxSize(plane, txSz int) int {
	if plane == 0 {
		return txSz
	}
	uvTx := maxTxSizeRect[t.planeResidualSize(t.b.MiSize, plane)]
	if txWidth[uvTx] == 64 || txHeight[uvTx] == 64 {
		switch {
		case txWidth[uvTx] == 16:
			return TX_16X32
		case txHeight[uvTx] == 16:
			return TX_32X16
		}
		return TX_32X32
	}
	return uvTx
}

// txSet returns the transform set available to txSz in the current block.
func (t *Tile) txSet(txSz int) int {
	sqr := txSizeSqr[txSz]
	sqrUp := txSizeSqrUp[txSz]
	if sqrUp > TX_32X32 {
		return TX_SET_DCTONLY
	}
	if t.b.IsInter {
		switch {
		case t.fh.ReducedTxSet || sqrUp == TX_32X32:
			return TX_SET_INTER_3
		case sqr == TX_16X16:
			return TX_SET_INTER_2
		}
		return TX_SET_INTER_1
	}
	switch {
	case sqrUp == TX_32X32:
		return TX_SET_DCTONLY
	case t.fh.ReducedTxSet || sqr == TX_16X16:
		return TX_SET_INTRA_2
	}
	return TX_SET_INTRA_1
}

func (t *Tile) txTypeInSet(set, txType int) bool {
	if t.b.IsInter {
		return txTypeInSetInter[set][txType]
	}
	return txTypeInSetIntra[set][txType]
}

// readTxType reads the luma transform type and records it over the
// transform's 4x4 units.
func (t *Tile) readTxType(x4, y4, txSz int) {
	b := &t.b
	txType := DCT_DCT
	set := t.txSet(txSz)
	if set > 0 && t.fh.qIndex(b.SegmentId) > 0 {
		sqr := txSizeSqr[txSz]
		if b.IsInter {
			switch set {
			case TX_SET_INTER_1:
				txType = txTypeInterInvSet1[t.symbol(ElemInterTxTypeSet1, sqr, 0, 0)]
			case TX_SET_INTER_2:
				txType = txTypeInterInvSet2[t.symbol(ElemInterTxTypeSet2, 0, 0, 0)]
			default:
				txType = txTypeInterInvSet3[t.symbol(ElemInterTxTypeSet3, sqr, 0, 0)]
			}
		} else {
			intraDir := b.YMode
			if b.UseFilterIntra {
				intraDir = filterIntraModeToIntraDir[b.FilterIntraMode]
			}
			if set == TX_SET_INTRA_1 {
				txType = txTypeIntraInvSet1[t.symbol(ElemIntraTxTypeSet1, sqr, intraDir, 0)]
			} else {
				txType = txTypeIntraInvSet2[t.symbol(ElemIntraTxTypeSet2, sqr, intraDir, 0)]
			}
		}
	}
	t.setTxTypes(x4, y4, txSz, txType)
}

func (t *Tile) setTxTypes(x4, y4, txSz, txType int) {
	g := t.grid
	rows := min(txHeight[txSz]>>2, g.MiRows-y4)
	cols := min(txWidth[txSz]>>2, g.MiCols-x4)
	for j := 0; j < rows; j++ {
		i := g.index(y4+j, x4)
		for k := 0; k < cols; k++ {
			g.TxTypes[i+k] = uint8(txType)
		}
	}
}

// planeTxType derives the transform type of a block that does not code one.
func (t *Tile) planeTxType(plane, txSz, x4, y4 int) int {
	b := &t.b
	if b.Lossless || txSizeSqrUp[txSz] > TX_32X32 {
		return DCT_DCT
	}
	set := t.txSet(txSz)
	if plane == 0 {
		return int(t.grid.TxTypes[t.at(y4, x4)])
	}
	var txType int
	if b.IsInter {
		subX, subY := t.planeSubsampling(plane)
		row := max(b.MiRow, y4<<subY)
		col := max(b.MiCol, x4<<subX)
		txType = int(t.grid.TxTypes[t.at(row, col)])
	} else {
		txType = modeToTxfm[b.UVMode]
	}
	if !t.txTypeInSet(set, txType) {
		return DCT_DCT
	}
	return txType
}

// coeffs reads the coefficients of one transform block and updates the level
// and dc contexts it borders.
func (t *Tile) coeffs(plane, startX, startY, txSz int) {
	x4 := startX >> 2
	y4 := startY >> 2
	w4 := txWidth[txSz] >> 2
	h4 := txHeight[txSz] >> 2
	txSzCtx := (txSizeSqr[txSz] + txSizeSqrUp[txSz] + 1) >> 1
	ptype := boolInt(plane > 0)
	adj := adjustedTxSize[txSz]
	bwl := txWidthLog2[adj]
	area := txWidth[adj] * txHeight[adj]
	quant := t.quant[:area]
	clear(quant)

	eob := 0
	culLevel := 0
	dcCategory := 0
	txType := DCT_DCT
	if t.flag(ElemAllZero, txSzCtx, t.allZeroCtx(plane, txSz, x4, y4, w4, h4), 0) {
		if plane == 0 {
			t.setTxTypes(x4, y4, txSz, DCT_DCT)
		}
	} else {
		if plane == 0 {
			t.readTxType(x4, y4, txSz)
		}
		txType = t.planeTxType(plane, txSz, x4, y4)
		class := txClass(txType)
		scan := scanFor(txSz, txType)

		eobMultisize := min(txWidthLog2[txSz], 5) + min(txHeightLog2[txSz], 5) - 4
		eobPt := t.symbol(ElemEobPt, eobMultisize, ptype, boolInt(class != TX_CLASS_2D)) + 1
		eob = eobPt
		if eobPt >= 2 {
			eob = 1<<(eobPt-2) + 1
		}
		if eobShift := eobPt - 3; eobShift >= 0 {
			if t.flag(ElemEobExtra, txSzCtx, ptype, eobPt-3) {
				eob += 1 << eobShift
			}
			for i := 1; i < max(0, eobPt-2); i++ {
				eobShift = max(0, eobPt-2) - 1 - i
				if t.literal(1) == 1 {
					eob += 1 << eobShift
				}
			}
		}

		for c := eob - 1; c >= 0; c-- {
			pos := int(scan[c])
			var level int
			if c == eob-1 {
				level = t.symbol(ElemCoeffBaseEob, txSzCtx, ptype, coeffBaseEobCtx(c, area)) + 1
			} else {
				level = t.symbol(ElemCoeffBase, txSzCtx, ptype, coeffBaseCtx(quant, txSz, bwl, class, pos))
			}
			if level > NUM_BASE_LEVELS {
				for idx := 0; idx < COEFF_BASE_RANGE/(BR_CDF_SIZE-1); idx++ {
					br := t.symbol(ElemCoeffBr, min(txSzCtx, TX_32X32), ptype, coeffBrCtx(quant, adj, bwl, class, pos))
					level += br
					if br < BR_CDF_SIZE-1 {
						break
					}
				}
			}
			quant[pos] = level
		}

		for c := 0; c < eob; c++ {
			pos := int(scan[c])
			sign := 0
			if quant[pos] != 0 {
				if c == 0 {
					sign = t.symbol(ElemDcSign, ptype, t.dcSignCtx(plane, x4, y4, w4, h4), 0)
				} else {
					sign = t.literal(1)
				}
			}
			if quant[pos] > NUM_BASE_LEVELS+COEFF_BASE_RANGE {
				quant[pos] = t.sd.ReadGolomb() + COEFF_BASE_RANGE + NUM_BASE_LEVELS + 1
			}
			if pos == 0 && quant[pos] > 0 {
				dcCategory = 2 - sign
			}
			quant[pos] &= 0xFFFFF
			culLevel += quant[pos]
			if sign == 1 {
				quant[pos] = -quant[pos]
			}
		}
		culLevel = min(63, culLevel)
	}

	for i := 0; i < w4; i++ {
		t.aboveLevelContext[plane][x4+i] = uint8(culLevel)
		t.aboveDcContext[plane][x4+i] = uint8(dcCategory)
	}
	for i := 0; i < h4; i++ {
		t.leftLevelContext[plane][y4+i] = uint8(culLevel)
		t.leftDcContext[plane][y4+i] = uint8(dcCategory)
	}

	t.tb = TransformBlock{
		Plane:  plane,
		X:      startX,
		Y:      startY,
		TxSize: txSz,
		TxType: txType,
		Eob:    eob,
		Quant:  quant,
	}
	t.sink.Coefficients(&t.b, &t.tb)
}

func (t *Tile) contextLimits(plane int) (int, int) {
	subX, subY := t.planeSubsampling(plane)
	return t.fh.MiCols >> subX, t.fh.MiRows >> subY
}

func (t *Tile) allZeroCtx(plane, txSz, x4, y4, w4, h4 int) int {
	maxX4, maxY4 := t.contextLimits(plane)
	w := txWidth[txSz]
	h := txHeight[txSz]
	bsize := t.planeResidualSize(t.b.MiSize, plane)
	bw := blockWidth(bsize)
	bh := blockHeight(bsize)
	if plane == 0 {
		top, left := 0, 0
		for k := 0; k < w4 && x4+k < maxX4; k++ {
			top = max(top, int(t.aboveLevelContext[plane][x4+k]))
		}
		for k := 0; k < h4 && y4+k < maxY4; k++ {
			left = max(left, int(t.leftLevelContext[plane][y4+k]))
		}
		switch {
		case bw == w && bh == h:
			return 0
		case top == 0 && left == 0:
			return 1
		case top == 0 || left == 0:
			return 2 + boolInt(max(top, left) > 3)
		case max(top, left) <= 3:
			return 4
		case min(top, left) <= 3:
			return 5
		}
		return 6
	}
	above, left := 0, 0
	for k := 0; k < w4 && x4+k < maxX4; k++ {
		above |= int(t.aboveLevelContext[plane][x4+k] | t.aboveDcContext[plane][x4+k])
	}
	for k := 0; k < h4 && y4+k < maxY4; k++ {
		left |= int(t.leftLevelContext[plane][y4+k] | t.leftDcContext[plane][y4+k])
	}
	ctx := 7 + boolInt(above != 0) + boolInt(left != 0)
	if bw*bh > w*h {
		ctx += 3
	}
	return ctx
}

func (t *Tile) dcSignCtx(plane, x4, y4, w4, h4 int) int {
	maxX4, maxY4 := t.contextLimits(plane)
	dcSign := 0
	tally := func(category uint8) {
		switch category {
		case 1:
			dcSign--
		case 2:
			dcSign++
		}
	}
	for k := 0; k < w4 && x4+k < maxX4; k++ {
		tally(t.aboveDcContext[plane][x4+k])
	}
	for k := 0; k < h4 && y4+k < maxY4; k++ {
		tally(t.leftDcContext[plane][y4+k])
	}
	switch {
	case dcSign < 0:
		return 1
	case dcSign > 0:
		return 2
	}
	return 0
}

func coeffBaseEobCtx(c, area int) int {
	switch {
	case c == 0:
		return 0
	case c <= area/8:
		return 1
	case c <= area/4:
		return 2
	}
	return 3
}

func coeffBaseCtx(quant []int, txSz, bwl, class, pos int) int {
	txh := len(quant) >> bwl
	row := pos >> bwl
	col := pos - row<<bwl
	mag := 0
	for _, off := range sigRefDiffOffset[class] {
		refRow := row + off[0]
		refCol := col + off[1]
		if refRow >= 0 && refCol >= 0 && refRow < txh && refCol < 1<<bwl {
			mag += min(abs(quant[refRow<<bwl+refCol]), 3)
		}
	}
	ctx := min((mag+1)>>1, 4)
	if class == TX_CLASS_2D {
		if row == 0 && col == 0 {
			return 0
		}
		return ctx + coeffBaseCtxOffset[txSz][min(row, 4)][min(col, 4)]
	}
	idx := col
	if class == TX_CLASS_VERT {
		idx = row
	}
	return ctx + coeffBasePosCtxOffset[min(idx, 2)]
}

func coeffBrCtx(quant []int, adj, bwl, class, pos int) int {
	txh := txHeight[adj]
	row := pos >> bwl
	col := pos - row<<bwl
	mag := 0
	for _, off := range magRefOffset[class] {
		refRow := row + off[0]
		refCol := col + off[1]
		if refRow >= 0 && refCol >= 0 && refRow < txh && refCol < 1<<bwl {
			mag += min(quant[refRow<<bwl+refCol], COEFF_BASE_RANGE+NUM_BASE_LEVELS+1)
		}
	}
	mag = min((mag+1)>>1, 6)
	switch {
	case pos == 0:
		return mag
	case class == TX_CLASS_2D && row < 2 && col < 2:
		return mag + 7
	case class == TX_CLASS_HORIZ && col == 0:
		return mag + 7
	case class == TX_CLASS_VERT && row == 0:
		return mag + 7
	}
	return mag + 14
}
