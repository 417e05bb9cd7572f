package boulder

// Block sizes.
const (
	BLOCK_4X4 = iota
	BLOCK_4X8
	BLOCK_8X4
	BLOCK_8X8
	BLOCK_8X16
	BLOCK_16X8
	BLOCK_16X16
	BLOCK_16X32
	BLOCK_32X16
	BLOCK_32X32
	BLOCK_32X64
	BLOCK_64X32
	BLOCK_64X64
	BLOCK_64X128
	BLOCK_128X64
	BLOCK_128X128
	BLOCK_4X16
	BLOCK_16X4
	BLOCK_8X32
	BLOCK_32X8
	BLOCK_16X64
	BLOCK_64X16
	BLOCK_SIZES
	BLOCK_INVALID = BLOCK_SIZES
)

var num4x4BlocksWide = [BLOCK_SIZES]int{1, 1, 2, 2, 2, 4, 4, 4, 8, 8, 8, 16, 16, 16, 32, 32, 1, 4, 2, 8, 4, 16}
var num4x4BlocksHigh = [BLOCK_SIZES]int{1, 2, 1, 2, 4, 2, 4, 8, 4, 8, 16, 8, 16, 32, 16, 32, 4, 1, 8, 2, 16, 4}
var miWidthLog2 = [BLOCK_SIZES]int{0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 5, 5, 0, 2, 1, 3, 2, 4}
var miHeightLog2 = [BLOCK_SIZES]int{0, 1, 0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4, 5, 4, 5, 2, 0, 3, 1, 4, 2}

// sizeGroup buckets block sizes for y mode and interintra tables.
var sizeGroup = [BLOCK_SIZES]int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 0, 0, 1, 1, 2, 2}

// blockSizeFromLog2 maps (log2 width in 4x4 units, log2 height in 4x4 units) to a block size.
var blockSizeFromLog2 [6][6]int

func init() {
	for w := range blockSizeFromLog2 {
		for h := range blockSizeFromLog2[w] {
			blockSizeFromLog2[w][h] = BLOCK_INVALID
		}
	}
	for b := 0; b < BLOCK_SIZES; b++ {
		blockSizeFromLog2[miWidthLog2[b]][miHeightLog2[b]] = b
	}
}

func blockWidth(bsize int) int  { return 4 * num4x4BlocksWide[bsize] }
func blockHeight(bsize int) int { return 4 * num4x4BlocksHigh[bsize] }

// Partition types.
const (
	PARTITION_NONE = iota
	PARTITION_HORZ
	PARTITION_VERT
	PARTITION_SPLIT
	PARTITION_HORZ_A
	PARTITION_HORZ_B
	PARTITION_VERT_A
	PARTITION_VERT_B
	PARTITION_HORZ_4
	PARTITION_VERT_4
)

// partitionSubsize returns the size of the sub-blocks produced by partition.
func partitionSubsize(partition, bsize int) int {
	w, h := miWidthLog2[bsize], miHeightLog2[bsize]
	switch partition {
	case PARTITION_NONE:
	case PARTITION_HORZ, PARTITION_HORZ_A, PARTITION_HORZ_B:
		h--
	case PARTITION_VERT, PARTITION_VERT_A, PARTITION_VERT_B:
		w--
	case PARTITION_SPLIT:
		w--
		h--
	case PARTITION_HORZ_4:
		h -= 2
	case PARTITION_VERT_4:
		w -= 2
	}
	if w < 0 || h < 0 {
		return BLOCK_INVALID
	}
	return blockSizeFromLog2[w][h]
}

// Transform sizes.
const (
	TX_4X4 = iota
	TX_8X8
	TX_16X16
	TX_32X32
	TX_64X64
	TX_4X8
	TX_8X4
	TX_8X16
	TX_16X8
	TX_16X32
	TX_32X16
	TX_32X64
	TX_64X32
	TX_4X16
	TX_16X4
	TX_8X32
	TX_32X8
	TX_16X64
	TX_64X16
	TX_SIZES_ALL
)

const TX_SIZES = 5

var txWidth = [TX_SIZES_ALL]int{4, 8, 16, 32, 64, 4, 8, 8, 16, 16, 32, 32, 64, 4, 16, 8, 32, 16, 64}
var txHeight = [TX_SIZES_ALL]int{4, 8, 16, 32, 64, 8, 4, 16, 8, 32, 16, 64, 32, 16, 4, 32, 8, 64, 16}
var txWidthLog2 = [TX_SIZES_ALL]int{2, 3, 4, 5, 6, 2, 3, 3, 4, 4, 5, 5, 6, 2, 4, 3, 5, 4, 6}
var txHeightLog2 = [TX_SIZES_ALL]int{2, 3, 4, 5, 6, 3, 2, 4, 3, 5, 4, 6, 5, 4, 2, 5, 3, 6, 4}
var txSizeSqr = [TX_SIZES_ALL]int{0, 1, 2, 3, 4, 0, 0, 1, 1, 2, 2, 3, 3, 0, 0, 1, 1, 2, 2}
var txSizeSqrUp = [TX_SIZES_ALL]int{0, 1, 2, 3, 4, 1, 1, 2, 2, 3, 3, 4, 4, 2, 2, 3, 3, 4, 4}

var splitTxSize = [TX_SIZES_ALL]int{
	TX_4X4, TX_4X4, TX_8X8, TX_16X16, TX_32X32, TX_4X4, TX_4X4, TX_8X8, TX_8X8, TX_16X16,
	TX_16X16, TX_32X32, TX_32X32, TX_4X8, TX_8X4, TX_8X16, TX_16X8, TX_16X32, TX_32X16,
}

var maxTxSizeRect = [BLOCK_SIZES]int{
	TX_4X4, TX_4X8, TX_8X4, TX_8X8, TX_8X16, TX_16X8, TX_16X16, TX_16X32, TX_32X16, TX_32X32,
	TX_32X64, TX_64X32, TX_64X64, TX_64X64, TX_64X64, TX_64X64, TX_4X16, TX_16X4, TX_8X32,
	TX_32X8, TX_16X64, TX_64X16,
}

var maxTxDepth = [BLOCK_SIZES]int{0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 4, 4, 2, 2, 3, 3, 4, 4}

// txSizeFromDims maps (width log2 - 2, height log2 - 2) to a transform size.
var txSizeFromDims [5][5]int

func init() {
	for w := range txSizeFromDims {
		for h := range txSizeFromDims[w] {
			txSizeFromDims[w][h] = -1
		}
	}
	for t := 0; t < TX_SIZES_ALL; t++ {
		txSizeFromDims[txWidthLog2[t]-2][txHeightLog2[t]-2] = t
	}
}

// Transform modes.
const (
	ONLY_4X4 = iota
	TX_MODE_LARGEST
	TX_MODE_SELECT
)

// Intra and inter prediction modes.
const (
	DC_PRED = iota
	V_PRED
	H_PRED
	D45_PRED
	D135_PRED
	D113_PRED
	D157_PRED
	D203_PRED
	D67_PRED
	SMOOTH_PRED
	SMOOTH_V_PRED
	SMOOTH_H_PRED
	PAETH_PRED
	UV_CFL_PRED
	INTRA_MODES = UV_CFL_PRED
)

const (
	NEARESTMV = 13 + iota
	NEARMV
	GLOBALMV
	NEWMV
	NEAREST_NEARESTMV
	NEAR_NEARMV
	NEAREST_NEWMV
	NEW_NEARESTMV
	NEAR_NEWMV
	NEW_NEARMV
	GLOBAL_GLOBALMV
	NEW_NEWMV
)

// Reference frames.
const (
	NONE        = -1
	INTRA_FRAME = 0
)

const (
	LAST_FRAME = 1 + iota
	LAST2_FRAME
	LAST3_FRAME
	GOLDEN_FRAME
	BWDREF_FRAME
	ALTREF2_FRAME
	ALTREF_FRAME
)

const (
	REFS_PER_FRAME  = 7
	TOTAL_REFS      = 8
	NUM_REF_FRAMES  = 8
	FWD_REFS        = 4
	BWD_REFS        = 3
	SINGLE_REFS     = 7
	UNIDIR_COMP_REF = 0
	BIDIR_COMP_REF  = 1
)

// Motion modes.
const (
	SIMPLE = iota
	OBMC
	LOCALWARP
)

// Compound types.
const (
	COMPOUND_WEDGE = iota
	COMPOUND_DIFFWTD
	COMPOUND_AVERAGE
	COMPOUND_INTRA
	COMPOUND_DISTANCE
)

// Interpolation filters.
const (
	EIGHTTAP = iota
	EIGHTTAP_SMOOTH
	EIGHTTAP_SHARP
	BILINEAR
	SWITCHABLE
)

// Motion vector joints.
const (
	MV_JOINT_ZERO = iota
	MV_JOINT_HNZVZ
	MV_JOINT_HZVNZ
	MV_JOINT_HNZVNZ
)

// Global motion types.
const (
	IDENTITY = iota
	TRANSLATION
	ROTZOOM
	AFFINE
)

// Transform types.
const (
	DCT_DCT = iota
	ADST_DCT
	DCT_ADST
	ADST_ADST
	FLIPADST_DCT
	DCT_FLIPADST
	FLIPADST_FLIPADST
	ADST_FLIPADST
	FLIPADST_ADST
	IDTX
	V_DCT
	H_DCT
	V_ADST
	H_ADST
	V_FLIPADST
	H_FLIPADST
	TX_TYPES
)

// Transform classes.
const (
	TX_CLASS_2D = iota
	TX_CLASS_HORIZ
	TX_CLASS_VERT
)

// Transform sets.
const (
	TX_SET_DCTONLY = 0
	TX_SET_INTRA_1 = 1
	TX_SET_INTRA_2 = 2
	TX_SET_INTER_1 = 1
	TX_SET_INTER_2 = 2
	TX_SET_INTER_3 = 3
)

var txTypeIntraInvSet1 = []int{IDTX, DCT_DCT, V_DCT, H_DCT, ADST_ADST, ADST_DCT, DCT_ADST}
var txTypeIntraInvSet2 = []int{IDTX, DCT_DCT, ADST_ADST, ADST_DCT, DCT_ADST}
var txTypeInterInvSet1 = []int{
	IDTX, V_DCT, H_DCT, V_ADST, H_ADST, V_FLIPADST, H_FLIPADST, DCT_DCT,
	ADST_DCT, DCT_ADST, FLIPADST_DCT, DCT_FLIPADST, ADST_ADST, FLIPADST_FLIPADST, ADST_FLIPADST, FLIPADST_ADST,
}
var txTypeInterInvSet2 = []int{
	IDTX, V_DCT, H_DCT, DCT_DCT, ADST_DCT, DCT_ADST, FLIPADST_DCT, DCT_FLIPADST,
	ADST_ADST, FLIPADST_FLIPADST, ADST_FLIPADST, FLIPADST_ADST,
}
var txTypeInterInvSet3 = []int{IDTX, DCT_DCT}

var txTypeInSetIntra [3][TX_TYPES]bool
var txTypeInSetInter [4][TX_TYPES]bool

func init() {
	txTypeInSetIntra[TX_SET_DCTONLY][DCT_DCT] = true
	txTypeInSetInter[TX_SET_DCTONLY][DCT_DCT] = true
	for _, t := range txTypeIntraInvSet1 {
		txTypeInSetIntra[TX_SET_INTRA_1][t] = true
	}
	for _, t := range txTypeIntraInvSet2 {
		txTypeInSetIntra[TX_SET_INTRA_2][t] = true
	}
	for _, t := range txTypeInterInvSet1 {
		txTypeInSetInter[TX_SET_INTER_1][t] = true
	}
	for _, t := range txTypeInterInvSet2 {
		txTypeInSetInter[TX_SET_INTER_2][t] = true
	}
	for _, t := range txTypeInterInvSet3 {
		txTypeInSetInter[TX_SET_INTER_3][t] = true
	}
}

var modeToTxfm = [UV_CFL_PRED + 1]int{
	DCT_DCT, ADST_DCT, DCT_ADST, DCT_DCT, ADST_ADST, ADST_DCT, DCT_ADST,
	DCT_ADST, ADST_DCT, ADST_ADST, ADST_DCT, DCT_ADST, ADST_ADST, DCT_DCT,
}

var filterIntraModeToIntraDir = [5]int{DC_PRED, V_PRED, H_PRED, D157_PRED, DC_PRED}

func txClass(txType int) int {
	switch txType {
	case V_DCT, V_ADST, V_FLIPADST:
		return TX_CLASS_VERT
	case H_DCT, H_ADST, H_FLIPADST:
		return TX_CLASS_HORIZ
	}
	return TX_CLASS_2D
}

// Assorted syntax limits.
const (
	MAX_SEGMENTS                   = 8
	SEG_LVL_ALT_Q                  = 0
	SEG_LVL_REF_FRAME              = 5
	SEG_LVL_SKIP                   = 6
	SEG_LVL_GLOBALMV               = 7
	SEG_LVL_MAX                    = 8
	MAX_LOOP_FILTER                = 63
	FRAME_LF_COUNT                 = 4
	DELTA_Q_SMALL                  = 3
	DELTA_LF_SMALL                 = 3
	PALETTE_COLORS                 = 8
	PALETTE_NUM_NEIGHBORS          = 3
	PALETTE_COLOR_CONTEXTS         = 5
	PALETTE_MAX_COLOR_CONTEXT_HASH = 8
	SUPERRES_NUM                   = 8
	PALETTE_BLOCK_SIZE_CONTEXTS    = 7
	MAX_REF_MV_STACK_SIZE          = 8
	MFMV_STACK_SIZE                = 3
	MV_BORDER                      = 128
	REF_CAT_LEVEL                  = 640
	MAX_TX_DEPTH                   = 2
	NUM_BASE_LEVELS                = 2
	COEFF_BASE_RANGE               = 12
	BR_CDF_SIZE                    = 4
	MV_CLASSES                     = 11
	CLASS0_SIZE                    = 2
	MV_INTRABC_CONTEXT             = 1
	COMPANDED_MVREF_THRESH         = 8
	MAX_SB_SIZE_LOG2               = 7
	MI_SIZE_LOG2                   = 2
	INTRABC_DELAY_SB64             = 4
	LEAST_SQUARES_SAMPLES_MAX      = 8
	WARPEDMODEL_PREC_BITS          = 16
	GM_ABS_TRANS_ONLY_BITS         = 9
	GM_ALPHA_PREC_BITS             = 15
	GM_TRANS_PREC_BITS             = 6
	GM_TRANS_ONLY_PREC_BITS        = 3
)

var paletteColorHashMultipliers = [PALETTE_NUM_NEIGHBORS]int{1, 2, 2}
var paletteColorContext = [PALETTE_MAX_COLOR_CONTEXT_HASH + 1]int{-1, -1, 0, -1, -1, 4, 3, 2, 1}

var wedgeBits = [BLOCK_SIZES]int{0, 0, 0, 4, 4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 0, 0, 0, 4, 4, 0, 0}
