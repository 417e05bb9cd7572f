package boulder

const (
	sgrprojParamsBits = 4
	sgrprojPrjSubexpK = 4
	sgrprojPrjBits    = 7
)

var (
	wienerTapsMin = [3]int{-5, -23, -17}
	wienerTapsMax = [3]int{10, 8, 46}
	wienerTapsK   = [3]int{1, 2, 3}
	wienerTapsMid = [3]int{3, -7, 15}

	sgrprojXqdMin = [2]int{-96, -32}
	sgrprojXqdMax = [2]int{31, 95}
	sgrprojXqdMid = [2]int{-32, 31}
)

// sgrRadius lists the two filter radii of each self-guided parameter set.
var sgrRadius = [1 << sgrprojParamsBits][2]int{
	{2, 1}, {2, 1}, {2, 1}, {2, 1}, {2, 1}, {2, 1}, {2, 1}, {2, 1},
	{2, 1}, {2, 1}, {0, 1}, {0, 1}, {0, 1}, {0, 1}, {2, 0}, {2, 0},
}

// RestorationUnits holds the loop restoration parameters of one plane.
type RestorationUnits struct {
	Rows int
	Cols int

	Type   []uint8
	Wiener [][2][3]int8
	SgrSet []uint8
	SgrXqd [][2]int8
}

// Unit returns the index of the unit at (row, col).
func (u *RestorationUnits) Unit(row, col int) int {
	return row*u.Cols + col
}

func countUnitsInFrame(unitSize, frameSize int) int {
	return max((frameSize+(unitSize>>1))/unitSize, 1)
}

// AllocRestoration sizes the restoration units of every plane with a
// restoration type. It must run before any tile of the frame is decoded.
func (g *BlockGrid) AllocRestoration(seq *SequenceHeader, fh *FrameHeader) {
	planes := 3
	if seq.MonoChrome {
		planes = 1
	}
	for plane := 0; plane < planes; plane++ {
		if fh.LoopRestoration.FrameType[plane] == RESTORE_NONE {
			g.Restoration[plane] = RestorationUnits{}
			continue
		}
		subX, subY := 0, 0
		if plane > 0 {
			subX, subY = seq.SubsamplingX, seq.SubsamplingY
		}
		unitSize := fh.LoopRestoration.UnitSize[plane]
		u := RestorationUnits{
			Rows: countUnitsInFrame(unitSize, round2(fh.FrameHeight, uint(subY))),
			Cols: countUnitsInFrame(unitSize, round2(fh.restorationWidth(), uint(subX))),
		}
		n := u.Rows * u.Cols
		u.Type = make([]uint8, n)
		u.Wiener = make([][2][3]int8, n)
		u.SgrSet = make([]uint8, n)
		u.SgrXqd = make([][2]int8, n)
		g.Restoration[plane] = u
	}
}

// readLr reads the restoration units whose top-left corner falls inside the
// superblock at (r, c). Columns are measured on the upscaled frame when
// superres is on.
func (t *Tile) readLr(r, c, bSize int) {
	if t.fh.AllowIntrabc {
		return
	}
	w := num4x4BlocksWide[bSize]
	h := num4x4BlocksHigh[bSize]
	for plane := 0; plane < t.numPlanes(); plane++ {
		if t.fh.LoopRestoration.FrameType[plane] == RESTORE_NONE {
			continue
		}
		u := &t.grid.Restoration[plane]
		if u.Type == nil {
			abort(InternalInvariant, "lr_unit", r, c, "restoration units of plane %d not allocated", plane)
		}
		subX, subY := t.planeSubsampling(plane)
		unitSize := t.fh.LoopRestoration.UnitSize[plane]
		rowStart := (r*(4>>subY) + unitSize - 1) / unitSize
		rowEnd := min(u.Rows, ((r+h)*(4>>subY)+unitSize-1)/unitSize)
		num, den := 4>>subX, unitSize
		if t.fh.UseSuperres {
			num *= t.fh.SuperresDenom
			den *= SUPERRES_NUM
		}
		colStart := (c*num + den - 1) / den
		colEnd := min(u.Cols, ((c+w)*num+den-1)/den)
		for row := rowStart; row < rowEnd; row++ {
			for col := colStart; col < colEnd; col++ {
				t.readLrUnit(plane, u, u.Unit(row, col))
			}
		}
	}
}

func (t *Tile) readLrUnit(plane int, u *RestorationUnits, i int) {
	var typ int
	switch t.fh.LoopRestoration.FrameType[plane] {
	case RESTORE_WIENER:
		if t.flag(ElemUseWiener, 0, 0, 0) {
			typ = RESTORE_WIENER
		}
	case RESTORE_SGRPROJ:
		if t.flag(ElemUseSgrproj, 0, 0, 0) {
			typ = RESTORE_SGRPROJ
		}
	default:
		typ = t.symbol(ElemRestorationType, 0, 0, 0)
	}
	u.Type[i] = uint8(typ)

	switch typ {
	case RESTORE_WIENER:
		for pass := 0; pass < 2; pass++ {
			first := 0
			if plane > 0 {
				first = 1
				u.Wiener[i][pass][0] = 0
			}
			for j := first; j < 3; j++ {
				v := t.readSignedSubexp(wienerTapsMin[j], wienerTapsMax[j]+1, wienerTapsK[j], t.refLrWiener[plane][pass][j])
				u.Wiener[i][pass][j] = int8(v)
				t.refLrWiener[plane][pass][j] = v
			}
		}
	case RESTORE_SGRPROJ:
		set := t.literal(sgrprojParamsBits)
		u.SgrSet[i] = uint8(set)
		for k := 0; k < 2; k++ {
			v := 0
			switch {
			case sgrRadius[set][k] != 0:
				v = t.readSignedSubexp(sgrprojXqdMin[k], sgrprojXqdMax[k]+1, sgrprojPrjSubexpK, t.refSgrXqd[plane][k])
			case k == 1:
				v = clip3(sgrprojXqdMin[k], sgrprojXqdMax[k], (1<<sgrprojPrjBits)-t.refSgrXqd[plane][0])
			}
			u.SgrXqd[i][k] = int8(v)
			t.refSgrXqd[plane][k] = v
		}
	}
}

// readSignedSubexp reads a value in [low, high) coded relative to ref.
func (t *Tile) readSignedSubexp(low, high, k, ref int) int {
	mx := high - low
	r := ref - low
	v := t.readSubexp(mx, k)
	if r<<1 <= mx {
		return inverseRecenter(r, v) + low
	}
	return mx - 1 - inverseRecenter(mx-1-r, v) + low
}

func (t *Tile) readSubexp(numSyms, k int) int {
	i, mk := 0, 0
	for {
		b2 := k
		if i > 0 {
			b2 = k + i - 1
		}
		a := 1 << b2
		if numSyms <= mk+3*a {
			return t.sd.ReadNS(numSyms-mk) + mk
		}
		if t.literal(1) == 0 {
			return t.literal(b2) + mk
		}
		i++
		mk += a
	}
}

func inverseRecenter(r, v int) int {
	switch {
	case v > 2*r:
		return v
	case v&1 == 1:
		return r - (v+1)>>1
	}
	return r + v>>1
}
