package boulder

// Element names a syntax element decoded with an adaptive table.
type Element int

const (
	ElemPartition Element = iota
	ElemSegmentId
	ElemSegIdPredicted
	ElemSkipMode
	ElemSkip
	ElemDeltaQAbs
	ElemDeltaLfAbs
	ElemDeltaLfMulti
	ElemIntrabc
	ElemIntraFrameYMode
	ElemYMode
	ElemAngleDelta
	ElemUVModeCflAllowed
	ElemUVModeCflNotAllowed
	ElemCflSign
	ElemCflAlpha
	ElemFilterIntra
	ElemFilterIntraMode
	ElemPaletteYMode
	ElemPaletteUVMode
	ElemPaletteYSize
	ElemPaletteUVSize
	ElemPaletteColorIdx
	ElemTxDepth
	ElemTxfmSplit
	ElemIsInter
	ElemCompMode
	ElemCompRefType
	ElemUniCompRef
	ElemCompRef
	ElemCompBwdRef
	ElemSingleRef
	ElemCompoundMode
	ElemNewMv
	ElemZeroMv
	ElemRefMv
	ElemDrlMode
	ElemMvJoint
	ElemMvSign
	ElemMvClass
	ElemMvClass0Bit
	ElemMvClass0Fr
	ElemMvClass0Hp
	ElemMvBit
	ElemMvFr
	ElemMvHp
	ElemInterIntra
	ElemInterIntraMode
	ElemWedgeInterIntra
	ElemWedgeIndex
	ElemUseObmc
	ElemMotionMode
	ElemCompGroupIdx
	ElemCompoundIdx
	ElemCompoundType
	ElemInterpFilter
	ElemIntraTxTypeSet1
	ElemIntraTxTypeSet2
	ElemInterTxTypeSet1
	ElemInterTxTypeSet2
	ElemInterTxTypeSet3
	ElemAllZero
	ElemEobPt
	ElemEobExtra
	ElemCoeffBaseEob
	ElemCoeffBase
	ElemCoeffBr
	ElemDcSign
	ElemUseWiener
	ElemUseSgrproj
	ElemRestorationType
	numElements
)

var elementNames = [numElements]string{
	"partition", "segment_id", "seg_id_predicted", "skip_mode", "skip", "delta_q_abs",
	"delta_lf_abs", "delta_lf_abs_multi", "use_intrabc", "intra_frame_y_mode", "y_mode",
	"angle_delta", "uv_mode_cfl_allowed", "uv_mode_cfl_not_allowed", "cfl_alpha_signs",
	"cfl_alpha", "use_filter_intra", "filter_intra_mode", "has_palette_y", "has_palette_uv",
	"palette_size_y_minus_2", "palette_size_uv_minus_2", "palette_color_idx", "tx_depth",
	"txfm_split", "is_inter", "comp_mode", "comp_ref_type", "uni_comp_ref", "comp_ref",
	"comp_bwdref", "single_ref", "compound_mode", "new_mv", "zero_mv", "ref_mv", "drl_mode",
	"mv_joint", "mv_sign", "mv_class", "mv_class0_bit", "mv_class0_fr", "mv_class0_hp",
	"mv_bit", "mv_fr", "mv_hp", "interintra", "interintra_mode", "wedge_interintra",
	"wedge_index", "use_obmc", "motion_mode", "comp_group_idx", "compound_idx",
	"compound_type", "interp_filter", "intra_tx_type_set1", "intra_tx_type_set2",
	"inter_tx_type_set1", "inter_tx_type_set2", "inter_tx_type_set3", "all_zero", "eob_pt",
	"eob_extra", "coeff_base_eob", "coeff_base", "coeff_br", "dc_sign", "use_wiener",
	"use_sgrproj", "restoration_type",
}

func (e Element) String() string {
	if e >= 0 && e < numElements {
		return elementNames[e]
	}
	return "unknown"
}

// cdfFor selects the table row for el. The meaning of a, b and c depends on
// the element; unused arguments are zero.
func (c *CdfContext) cdfFor(el Element, a, b, d int) []uint16 {
	n := &c.NonCoeff
	k := &c.Coeff
	switch el {
	case ElemPartition:
		switch a {
		case 1:
			return n.PartitionW8[b][:]
		case 2:
			return n.PartitionW16[b][:]
		case 3:
			return n.PartitionW32[b][:]
		case 4:
			return n.PartitionW64[b][:]
		}
		return n.PartitionW128[b][:]
	case ElemSegmentId:
		return n.SegmentId[a][:]
	case ElemSegIdPredicted:
		return n.SegmentIdPredicted[a][:]
	case ElemSkipMode:
		return n.SkipMode[a][:]
	case ElemSkip:
		return n.Skip[a][:]
	case ElemDeltaQAbs:
		return n.DeltaQ[:]
	case ElemDeltaLfAbs:
		return n.DeltaLf[:]
	case ElemDeltaLfMulti:
		return n.DeltaLfMulti[a][:]
	case ElemIntrabc:
		return n.Intrabc[:]
	case ElemIntraFrameYMode:
		return n.IntraFrameYMode[a][b][:]
	case ElemYMode:
		return n.YMode[a][:]
	case ElemAngleDelta:
		return n.AngleDelta[a][:]
	case ElemUVModeCflAllowed:
		return n.UVModeCflAllowed[a][:]
	case ElemUVModeCflNotAllowed:
		return n.UVModeCflNotAllowed[a][:]
	case ElemCflSign:
		return n.CflSign[:]
	case ElemCflAlpha:
		return n.CflAlpha[a][:]
	case ElemFilterIntra:
		return n.FilterIntra[a][:]
	case ElemFilterIntraMode:
		return n.FilterIntraMode[:]
	case ElemPaletteYMode:
		return n.PaletteYMode[a][b][:]
	case ElemPaletteUVMode:
		return n.PaletteUVMode[a][:]
	case ElemPaletteYSize:
		return n.PaletteYSize[a][:]
	case ElemPaletteUVSize:
		return n.PaletteUVSize[a][:]
	case ElemPaletteColorIdx:
		return n.paletteColor(a, b, d)
	case ElemTxDepth:
		switch a {
		case 4:
			return n.Tx64x64[b][:]
		case 3:
			return n.Tx32x32[b][:]
		case 2:
			return n.Tx16x16[b][:]
		}
		return n.Tx8x8[b][:]
	case ElemTxfmSplit:
		return n.TxfmSplit[a][:]
	case ElemIsInter:
		return n.IsInter[a][:]
	case ElemCompMode:
		return n.CompMode[a][:]
	case ElemCompRefType:
		return n.CompRefType[a][:]
	case ElemUniCompRef:
		return n.UniCompRef[a][b][:]
	case ElemCompRef:
		return n.CompRef[a][b][:]
	case ElemCompBwdRef:
		return n.CompBwdRef[a][b][:]
	case ElemSingleRef:
		return n.SingleRef[a][b][:]
	case ElemCompoundMode:
		return n.CompoundMode[a][:]
	case ElemNewMv:
		return n.NewMv[a][:]
	case ElemZeroMv:
		return n.ZeroMv[a][:]
	case ElemRefMv:
		return n.RefMv[a][:]
	case ElemDrlMode:
		return n.DrlMode[a][:]
	case ElemMvJoint:
		return n.Mv[a].Joint[:]
	case ElemMvSign:
		return n.Mv[a].Sign[b][:]
	case ElemMvClass:
		return n.Mv[a].Class[b][:]
	case ElemMvClass0Bit:
		return n.Mv[a].Class0Bit[b][:]
	case ElemMvClass0Fr:
		return n.Mv[a].Class0Fr[b][d][:]
	case ElemMvClass0Hp:
		return n.Mv[a].Class0Hp[b][:]
	case ElemMvBit:
		return n.Mv[a].Bit[b][d][:]
	case ElemMvFr:
		return n.Mv[a].Fr[b][:]
	case ElemMvHp:
		return n.Mv[a].Hp[b][:]
	case ElemInterIntra:
		return n.InterIntra[a][:]
	case ElemInterIntraMode:
		return n.InterIntraMode[a][:]
	case ElemWedgeInterIntra:
		return n.WedgeInterIntra[a][:]
	case ElemWedgeIndex:
		return n.WedgeIndex[a][:]
	case ElemUseObmc:
		return n.UseObmc[a][:]
	case ElemMotionMode:
		return n.MotionMode[a][:]
	case ElemCompGroupIdx:
		return n.CompGroupIdx[a][:]
	case ElemCompoundIdx:
		return n.CompoundIdx[a][:]
	case ElemCompoundType:
		return n.CompoundType[a][:]
	case ElemInterpFilter:
		return n.InterpFilter[a][:]
	case ElemIntraTxTypeSet1:
		return n.IntraTxTypeSet1[a][b][:]
	case ElemIntraTxTypeSet2:
		return n.IntraTxTypeSet2[a][b][:]
	case ElemInterTxTypeSet1:
		return n.InterTxTypeSet1[a][:]
	case ElemInterTxTypeSet2:
		return n.InterTxTypeSet2[:]
	case ElemInterTxTypeSet3:
		return n.InterTxTypeSet3[a][:]
	case ElemAllZero:
		return k.TxbSkip[a][b][:]
	case ElemEobPt:
		return k.eobPt(a, b, d)
	case ElemEobExtra:
		return k.EobExtra[a][b][d][:]
	case ElemCoeffBaseEob:
		return k.CoeffBaseEob[a][b][d][:]
	case ElemCoeffBase:
		return k.CoeffBase[a][b][d][:]
	case ElemCoeffBr:
		return k.CoeffBr[a][b][d][:]
	case ElemDcSign:
		return k.DcSign[a][b][:]
	case ElemUseWiener:
		return n.UseWiener[:]
	case ElemUseSgrproj:
		return n.UseSgrproj[:]
	case ElemRestorationType:
		return n.RestorationType[:]
	}
	panic(&DecodeError{Kind: InternalInvariant, Field: el.String(), Msg: "no table for element"})
}
