package boulder

// Scan orders.
const (
	scanDefault = iota
	scanRow
	scanCol
	numScanKinds
)

// adjustedTxSize folds 64-point dimensions to 32; only the top-left 32x32
// coefficients of a 64-point transform are coded.
var adjustedTxSize = [TX_SIZES_ALL]int{
	TX_4X4, TX_8X8, TX_16X16, TX_32X32, TX_32X32, TX_4X8, TX_8X4, TX_8X16, TX_16X8, TX_16X32,
	TX_32X16, TX_32X32, TX_32X32, TX_4X16, TX_16X4, TX_8X32, TX_32X8, TX_16X32, TX_32X16,
}

// scans holds every scan order by adjusted transform size.
var scans [TX_SIZES_ALL][numScanKinds][]uint16

// coeffBaseCtxOffset is the position offset of the 2D coefficient base context.
var coeffBaseCtxOffset [TX_SIZES_ALL][5][5]int

var coeffBasePosCtxOffset = [3]int{26, 31, 36}

var sigRefDiffOffset = [3][5][2]int{
	{{0, 1}, {1, 0}, {1, 1}, {0, 2}, {2, 0}},
	{{0, 1}, {1, 0}, {0, 2}, {0, 3}, {0, 4}},
	{{0, 1}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
}

var magRefOffset = [3][3][2]int{
	{{0, 1}, {1, 0}, {1, 1}},
	{{0, 1}, {1, 0}, {0, 2}},
	{{0, 1}, {1, 0}, {2, 0}},
}

var squareBaseCtxOffset = [5][5]int{
	{0, 1, 6, 6, 21},
	{1, 6, 6, 21, 21},
	{6, 6, 21, 21, 21},
	{6, 21, 21, 21, 21},
	{21, 21, 21, 21, 21},
}

func init() {
	for txSz := 0; txSz < TX_SIZES_ALL; txSz++ {
		if adjustedTxSize[txSz] == txSz {
			w, h := txWidth[txSz], txHeight[txSz]
			scans[txSz][scanDefault] = diagonalScan(w, h)
			scans[txSz][scanRow] = rowScan(w, h)
			scans[txSz][scanCol] = colScan(w, h)
		}
		w, h := txWidth[txSz], txHeight[txSz]
		for r := 0; r < 5; r++ {
			for c := 0; c < 5; c++ {
				off := squareBaseCtxOffset[r][c]
				switch {
				case r == 0 && c == 0:
				case h > w && r < 2:
					off = 11
				case w > h && c < 2:
					off = 16
				}
				coeffBaseCtxOffset[txSz][r][c] = off
			}
		}
	}
}

// diagonalScan walks anti-diagonals. Square sizes alternate direction, going
// down the odd diagonals and up the even ones; tall sizes go down each
// diagonal and wide sizes go up.
func diagonalScan(w, h int) []uint16 {
	scan := make([]uint16, 0, w*h)
	for d := 0; d < w+h-1; d++ {
		down := h > w || (h == w && d%2 == 1)
		for i := 0; i <= d; i++ {
			r := d - i
			if down {
				r = i
			}
			c := d - r
			if r < h && c < w {
				scan = append(scan, uint16(r*w+c))
			}
		}
	}
	return scan
}

func rowScan(w, h int) []uint16 {
	scan := make([]uint16, w*h)
	for i := range scan {
		scan[i] = uint16(i)
	}
	return scan
}

func colScan(w, h int) []uint16 {
	scan := make([]uint16, 0, w*h)
	for c := 0; c < w; c++ {
		for r := 0; r < h; r++ {
			scan = append(scan, uint16(r*w+c))
		}
	}
	return scan
}

// scanFor returns the coefficient order of txSz coded with txType.
func scanFor(txSz, txType int) []uint16 {
	adj := adjustedTxSize[txSz]
	if adj != txSz || txType == IDTX {
		return scans[adj][scanDefault]
	}
	switch txClass(txType) {
	case TX_CLASS_VERT:
		return scans[adj][scanRow]
	case TX_CLASS_HORIZ:
		return scans[adj][scanCol]
	}
	return scans[adj][scanDefault]
}
