package boulder

// SequenceHeader carries the sequence-level fields the tile syntax depends on.
type SequenceHeader struct {
	Use128x128Superblock     bool
	EnableFilterIntra        bool
	EnableInterintraCompound bool
	EnableMaskedCompound     bool
	EnableDualFilter         bool
	EnableJntComp            bool
	EnableOrderHint          bool
	EnableCdef               bool
	EnableRestoration        bool
	OrderHintBits            int
	MonoChrome               bool
	SubsamplingX             int
	SubsamplingY             int
	BitDepth                 int
}

// Segmentation holds segmentation_params.
type Segmentation struct {
	Enabled         bool
	UpdateMap       bool
	TemporalUpdate  bool
	FeatureEnabled  [MAX_SEGMENTS][SEG_LVL_MAX]bool
	FeatureData     [MAX_SEGMENTS][SEG_LVL_MAX]int
	LastActiveSegId int
	PreskipSegId    bool
}

// LoopRestoration holds the per-plane restoration types and unit sizes.
type LoopRestoration struct {
	FrameType [3]int
	UnitSize  [3]int
}

// Restoration types.
const (
	RESTORE_NONE = iota
	RESTORE_WIENER
	RESTORE_SGRPROJ
	RESTORE_SWITCHABLE
)

// FrameHeader carries the uncompressed header fields consumed by tile decoding.
// It is produced by the header parser and is read-only during tile decode.
type FrameHeader struct {
	FrameWidth  int
	FrameHeight int
	// With UseSuperres set, FrameWidth is the coded width and UpscaledWidth the
	// width restoration units are laid out on. SuperresDenom is out of
	// SUPERRES_NUM.
	UseSuperres   bool
	SuperresDenom int
	UpscaledWidth int
	MiRows      int
	MiCols      int

	FrameIsIntra            bool
	AllowScreenContentTools bool
	AllowIntrabc            bool
	ForceIntegerMv          bool
	AllowHighPrecisionMv    bool
	IsMotionModeSwitchable  bool
	AllowWarpedMotion       bool
	UseRefFrameMvs          bool
	InterpolationFilter     int
	TxMode                  int
	ReducedTxSet            bool
	ReferenceSelect         bool
	SkipModePresent         bool
	SkipModeFrame           [2]int

	DisableCdfUpdate         bool
	DisableFrameEndUpdateCdf bool
	ContextUpdateTileId      int

	BaseQIdx       int
	DeltaQPresent  bool
	DeltaQRes      int
	DeltaLfPresent bool
	DeltaLfRes     int
	DeltaLfMulti   bool
	CodedLossless  bool
	AllLossless    bool
	LosslessArray  [MAX_SEGMENTS]bool
	CdefBits       int

	Segmentation Segmentation
	// PrevSegmentIds is the segment map of the primary reference frame, MiRows*MiCols, or nil.
	PrevSegmentIds []uint8

	LoopRestoration LoopRestoration

	OrderHint        int
	OrderHints       [NUM_REF_FRAMES]int
	RefFrameSignBias [NUM_REF_FRAMES]int
	GmType           [NUM_REF_FRAMES]int
	GmParams         [NUM_REF_FRAMES][6]int

	// RefScaled reports whether a reference differs in size from the current frame.
	RefScaled [NUM_REF_FRAMES]bool

	// MotionFieldMvs holds the projected motion field per reference frame,
	// indexed [ref][(row>>1)*(MiCols>>1)+(col>>1)]. Entries whose row component is
	// InvalidMv[0] are unusable.
	MotionFieldMvs [NUM_REF_FRAMES][]Mv

	TileCols    int
	TileRows    int
	MiColStarts []int
	MiRowStarts []int
}

// TileInfo locates one tile within the frame.
type TileInfo struct {
	TileNum    int
	MiRowStart int
	MiRowEnd   int
	MiColStart int
	MiColEnd   int
	Data       []byte
}

// Tile returns the geometry of tile number n with the given payload.
func (h *FrameHeader) Tile(n int, data []byte) TileInfo {
	row := n / h.TileCols
	col := n % h.TileCols
	return TileInfo{
		TileNum:    n,
		MiRowStart: h.MiRowStarts[row],
		MiRowEnd:   min(h.MiRowStarts[row+1], h.MiRows),
		MiColStart: h.MiColStarts[col],
		MiColEnd:   min(h.MiColStarts[col+1], h.MiCols),
		Data:       data,
	}
}

func (h *FrameHeader) segFeatureActive(segmentId, feature int) bool {
	return h.Segmentation.Enabled && h.Segmentation.FeatureEnabled[segmentId][feature]
}

// qIndex returns get_qidx(1, segmentId): the segment-adjusted base index.
func (h *FrameHeader) qIndex(segmentId int) int {
	if h.segFeatureActive(segmentId, SEG_LVL_ALT_Q) {
		return clip3(0, 255, h.BaseQIdx+h.Segmentation.FeatureData[segmentId][SEG_LVL_ALT_Q])
	}
	return h.BaseQIdx
}

func (h *FrameHeader) restorationWidth() int {
	if h.UseSuperres {
		return h.UpscaledWidth
	}
	return h.FrameWidth
}
