package boulder

import "reflect"

// Every table row is N-1 thresholds followed by the adaptation counter,
// so the innermost array length equals the alphabet size.

// NonCoeffCdfs holds the tables for every syntax element except coefficients.
type NonCoeffCdfs struct {
	IntraFrameYMode     [5][5][13]uint16
	YMode               [4][13]uint16
	UVModeCflNotAllowed [INTRA_MODES][13]uint16
	UVModeCflAllowed    [INTRA_MODES][14]uint16
	AngleDelta          [8][7]uint16
	Intrabc             [2]uint16
	PartitionW8         [4][4]uint16
	PartitionW16        [4][10]uint16
	PartitionW32        [4][10]uint16
	PartitionW64        [4][10]uint16
	PartitionW128       [4][8]uint16
	SegmentId           [3][MAX_SEGMENTS]uint16
	SegmentIdPredicted  [3][2]uint16
	Tx8x8               [3][2]uint16
	Tx16x16             [3][3]uint16
	Tx32x32             [3][3]uint16
	Tx64x64             [3][3]uint16
	TxfmSplit           [21][2]uint16
	FilterIntraMode     [5]uint16
	FilterIntra         [BLOCK_SIZES][2]uint16
	InterpFilter        [16][3]uint16
	MotionMode          [BLOCK_SIZES][3]uint16
	NewMv               [6][2]uint16
	ZeroMv              [2][2]uint16
	RefMv               [6][2]uint16
	CompoundMode        [8][8]uint16
	DrlMode             [3][2]uint16
	IsInter             [4][2]uint16
	CompMode            [5][2]uint16
	SkipMode            [3][2]uint16
	Skip                [3][2]uint16
	CompRef             [3][3][2]uint16
	CompBwdRef          [3][2][2]uint16
	SingleRef           [3][6][2]uint16
	CompRefType         [5][2]uint16
	UniCompRef          [3][3][2]uint16
	Mv                  [2]MvCdfs
	PaletteYMode        [PALETTE_BLOCK_SIZE_CONTEXTS][3][2]uint16
	PaletteUVMode       [2][2]uint16
	PaletteYSize        [PALETTE_BLOCK_SIZE_CONTEXTS][7]uint16
	PaletteUVSize       [PALETTE_BLOCK_SIZE_CONTEXTS][7]uint16
	PaletteColor2       [2][PALETTE_COLOR_CONTEXTS][2]uint16
	PaletteColor3       [2][PALETTE_COLOR_CONTEXTS][3]uint16
	PaletteColor4       [2][PALETTE_COLOR_CONTEXTS][4]uint16
	PaletteColor5       [2][PALETTE_COLOR_CONTEXTS][5]uint16
	PaletteColor6       [2][PALETTE_COLOR_CONTEXTS][6]uint16
	PaletteColor7       [2][PALETTE_COLOR_CONTEXTS][7]uint16
	PaletteColor8       [2][PALETTE_COLOR_CONTEXTS][8]uint16
	DeltaQ              [DELTA_Q_SMALL + 1]uint16
	DeltaLf             [DELTA_LF_SMALL + 1]uint16
	DeltaLfMulti        [FRAME_LF_COUNT][DELTA_LF_SMALL + 1]uint16
	IntraTxTypeSet1     [2][INTRA_MODES][7]uint16
	IntraTxTypeSet2     [3][INTRA_MODES][5]uint16
	InterTxTypeSet1     [2][16]uint16
	InterTxTypeSet2     [12]uint16
	InterTxTypeSet3     [4][2]uint16
	CompGroupIdx        [6][2]uint16
	CompoundIdx         [6][2]uint16
	CompoundType        [BLOCK_SIZES][2]uint16
	InterIntra          [4][2]uint16
	InterIntraMode      [4][4]uint16
	WedgeIndex          [BLOCK_SIZES][16]uint16
	WedgeInterIntra     [BLOCK_SIZES][2]uint16
	UseObmc             [BLOCK_SIZES][2]uint16
	CflSign             [8]uint16
	CflAlpha            [6][16]uint16
	UseWiener           [2]uint16
	UseSgrproj          [2]uint16
	RestorationType     [3]uint16
}

// MvCdfs holds the motion vector tables of one context (regular or intrabc).
type MvCdfs struct {
	Joint     [4]uint16
	Class     [2][MV_CLASSES]uint16
	Class0Bit [2][2]uint16
	Class0Fr  [2][2][4]uint16
	Class0Hp  [2][2]uint16
	Sign      [2][2]uint16
	Bit       [2][10][2]uint16
	Fr        [2][4]uint16
	Hp        [2][2]uint16
}

// CoeffCdfs holds the coefficient tables.
type CoeffCdfs struct {
	TxbSkip      [TX_SIZES][13][2]uint16
	EobPt16      [2][2][5]uint16
	EobPt32      [2][2][6]uint16
	EobPt64      [2][2][7]uint16
	EobPt128     [2][2][8]uint16
	EobPt256     [2][2][9]uint16
	EobPt512     [2][10]uint16
	EobPt1024    [2][11]uint16
	EobExtra     [TX_SIZES][2][9][2]uint16
	DcSign       [2][3][2]uint16
	CoeffBaseEob [TX_SIZES][2][4][3]uint16
	CoeffBase    [TX_SIZES][2][42][4]uint16
	CoeffBr      [TX_SIZES][2][21][BR_CDF_SIZE]uint16
}

// CdfContext is one complete set of probability tables. It is a plain value:
// copying it yields an independent set.
type CdfContext struct {
	NonCoeff NonCoeffCdfs
	Coeff    CoeffCdfs
}

// Clone returns an independent copy.
func (c *CdfContext) Clone() *CdfContext {
	cp := *c
	return &cp
}

// ResetCounters zeroes the adaptation counter of every row.
func (c *CdfContext) ResetCounters() {
	walkCdfRows(reflect.ValueOf(c).Elem(), func(row []uint16) {
		row[len(row)-1] = 0
	})
}

// walkCdfRows calls fn for every innermost [N]uint16 array reachable from v.
func walkCdfRows(v reflect.Value, fn func([]uint16)) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			walkCdfRows(v.Field(i), fn)
		}
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint16 {
			fn(v.Slice(0, v.Len()).Interface().([]uint16))
			return
		}
		for i := 0; i < v.Len(); i++ {
			walkCdfRows(v.Index(i), fn)
		}
	}
}

func coeffCdfQContext(baseQIdx int) int {
	switch {
	case baseQIdx <= 20:
		return 0
	case baseQIdx <= 60:
		return 1
	case baseQIdx <= 120:
		return 2
	}
	return 3
}

// DefaultCdfContext returns the default tables for a frame with the given
// base_q_idx. The coefficient tables depend on the quantizer bucket.
func DefaultCdfContext(baseQIdx int) *CdfContext {
	c := &CdfContext{
		NonCoeff: defaultNonCoeffCdfs,
		Coeff:    defaultCoeffCdfs[coeffCdfQContext(baseQIdx)],
	}
	return c
}

// LoadCoeffCdfs replaces the coefficient tables with the defaults for baseQIdx,
// as done when a frame does not inherit its coefficient state.
func (c *CdfContext) LoadCoeffCdfs(baseQIdx int) {
	c.Coeff = defaultCoeffCdfs[coeffCdfQContext(baseQIdx)]
}

func (c *NonCoeffCdfs) paletteColor(plane, n, ctx int) []uint16 {
	switch n {
	case 2:
		return c.PaletteColor2[plane][ctx][:]
	case 3:
		return c.PaletteColor3[plane][ctx][:]
	case 4:
		return c.PaletteColor4[plane][ctx][:]
	case 5:
		return c.PaletteColor5[plane][ctx][:]
	case 6:
		return c.PaletteColor6[plane][ctx][:]
	case 7:
		return c.PaletteColor7[plane][ctx][:]
	}
	return c.PaletteColor8[plane][ctx][:]
}

func (c *CoeffCdfs) eobPt(eobMultisize, ptype, ctx int) []uint16 {
	switch eobMultisize {
	case 0:
		return c.EobPt16[ptype][ctx][:]
	case 1:
		return c.EobPt32[ptype][ctx][:]
	case 2:
		return c.EobPt64[ptype][ctx][:]
	case 3:
		return c.EobPt128[ptype][ctx][:]
	case 4:
		return c.EobPt256[ptype][ctx][:]
	case 5:
		return c.EobPt512[ptype][:]
	}
	return c.EobPt1024[ptype][:]
}
