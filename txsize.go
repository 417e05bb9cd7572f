package boulder

// maxVarTxDepth bounds the recursive transform split of inter blocks.
const maxVarTxDepth = 2

func (t *Tile) readBlockTxSize() {
	b := &t.b
	if t.fh.TxMode == TX_MODE_SELECT && b.MiSize > BLOCK_4X4 && b.IsInter && !b.Skip && !b.Lossless {
		maxTxSz := maxTxSizeRect[b.MiSize]
		txW4 := txWidth[maxTxSz] >> 2
		txH4 := txHeight[maxTxSz] >> 2
		for row := b.MiRow; row < b.MiRow+b.bh4; row += txH4 {
			for col := b.MiCol; col < b.MiCol+b.bw4; col += txW4 {
				t.readVarTxSize(row, col, maxTxSz, 0)
			}
		}
		return
	}
	t.readTxSize(!b.Skip || !b.IsInter)
	t.setInterTxSize(b.MiRow, b.MiCol, b.bw4, b.bh4, b.TxSize)
}

func (t *Tile) readVarTxSize(row, col, txSz, depth int) {
	if row >= t.fh.MiRows || col >= t.fh.MiCols {
		return
	}
	split := false
	if txSz != TX_4X4 && depth != maxVarTxDepth {
		split = t.flag(ElemTxfmSplit, t.txfmSplitCtx(row, col, txSz), 0, 0)
	}
	w4 := txWidth[txSz] >> 2
	h4 := txHeight[txSz] >> 2
	if !split {
		t.setInterTxSize(row, col, w4, h4, txSz)
		t.b.TxSize = txSz
		return
	}
	subTxSz := splitTxSize[txSz]
	stepW := txWidth[subTxSz] >> 2
	stepH := txHeight[subTxSz] >> 2
	for i := 0; i < h4; i += stepH {
		for j := 0; j < w4; j += stepW {
			t.readVarTxSize(row+i, col+j, subTxSz, depth+1)
		}
	}
}

func (t *Tile) readTxSize(allowSelect bool) {
	b := &t.b
	if b.Lossless {
		b.TxSize = TX_4X4
		return
	}
	maxRectTxSize := maxTxSizeRect[b.MiSize]
	b.TxSize = maxRectTxSize
	if b.MiSize > BLOCK_4X4 && allowSelect && t.fh.TxMode == TX_MODE_SELECT {
		depth := t.symbol(ElemTxDepth, maxTxDepth[b.MiSize], t.txDepthCtx(maxRectTxSize), 0)
		for i := 0; i < depth; i++ {
			b.TxSize = splitTxSize[b.TxSize]
		}
	}
}

// setInterTxSize records txSz over a w4 x h4 area, clipped to the frame.
func (t *Tile) setInterTxSize(row, col, w4, h4, txSz int) {
	g := t.grid
	rows := min(h4, g.MiRows-row)
	cols := min(w4, g.MiCols-col)
	for y := 0; y < rows; y++ {
		i := g.index(row+y, col)
		for x := 0; x < cols; x++ {
			g.InterTxSizes[i+x] = uint8(txSz)
		}
	}
}
