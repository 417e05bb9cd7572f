package boulder

import "slices"

func (t *Tile) paletteModeInfo() {
	b := &t.b
	bsizeCtx := miWidthLog2[b.MiSize] + miHeightLog2[b.MiSize] - 2
	bitDepth := t.seq.BitDepth
	if b.YMode == DC_PRED && t.flag(ElemPaletteYMode, bsizeCtx, t.paletteYModeCtx(), 0) {
		b.PaletteSizeY = t.symbol(ElemPaletteYSize, bsizeCtx, 0, 0) + 2
		t.readPaletteColors(0, b.PaletteSizeY, 1)
	}
	if !b.HasChroma || b.UVMode != DC_PRED {
		return
	}
	if !t.flag(ElemPaletteUVMode, boolInt(b.PaletteSizeY > 0), 0, 0) {
		return
	}
	b.PaletteSizeUV = t.symbol(ElemPaletteUVSize, bsizeCtx, 0, 0) + 2
	t.readPaletteColors(1, b.PaletteSizeUV, 0)

	v := &b.PaletteColors[2]
	if t.literal(1) == 0 {
		for idx := 0; idx < b.PaletteSizeUV; idx++ {
			v[idx] = uint16(t.literal(bitDepth))
		}
		return
	}
	maxVal := 1 << bitDepth
	paletteBits := bitDepth - 4 + t.literal(2)
	v[0] = uint16(t.literal(bitDepth))
	for idx := 1; idx < b.PaletteSizeUV; idx++ {
		delta := t.literal(paletteBits)
		if delta != 0 && t.literal(1) == 1 {
			delta = -delta
		}
		val := int(v[idx-1]) + delta
		if val < 0 {
			val += maxVal
		}
		if val >= maxVal {
			val -= maxVal
		}
		v[idx] = uint16(clip3(0, maxVal-1, val))
	}
}

// readPaletteColors reads the ascending Y or U palette: cache hits first,
// then a literal and deltas of at least minDelta.
func (t *Tile) readPaletteColors(plane, n, minDelta int) {
	b := &t.b
	bitDepth := t.seq.BitDepth
	colors := &b.PaletteColors[plane]
	var cache [2 * PALETTE_COLORS]uint16
	cacheN := t.paletteCache(plane, &cache)
	idx := 0
	for i := 0; i < cacheN && idx < n; i++ {
		if t.literal(1) == 1 {
			colors[idx] = cache[i]
			idx++
		}
	}
	if idx < n {
		colors[idx] = uint16(t.literal(bitDepth))
		idx++
	}
	paletteBits := 0
	if idx < n {
		paletteBits = bitDepth - 3 + t.literal(2)
	}
	for ; idx < n; idx++ {
		delta := t.literal(paletteBits) + minDelta
		c := clip3(0, (1<<bitDepth)-1, int(colors[idx-1])+delta)
		colors[idx] = uint16(c)
		rng := (1 << bitDepth) - c - minDelta
		paletteBits = min(paletteBits, ceilLog2(rng))
	}
	slices.Sort(colors[:n])
}

// paletteCache merges the above and left palettes into an ascending list
// without duplicates. The above palette is not used across a 64 pixel row.
func (t *Tile) paletteCache(plane int, cache *[2 * PALETTE_COLORS]uint16) int {
	b := &t.b
	g := t.grid
	var above, left []uint16
	if (b.MiRow*4)%64 != 0 && b.availU {
		i := t.at(b.MiRow-1, b.MiCol)
		above = g.PaletteColors[plane][i][:g.PaletteSizes[plane][i]]
	}
	if b.availL {
		i := t.at(b.MiRow, b.MiCol-1)
		left = g.PaletteColors[plane][i][:g.PaletteSizes[plane][i]]
	}
	n := 0
	add := func(v uint16) {
		if n == 0 || v != cache[n-1] {
			cache[n] = v
			n++
		}
	}
	ai, li := 0, 0
	for ai < len(above) && li < len(left) {
		if left[li] < above[ai] {
			add(left[li])
			li++
		} else {
			add(above[ai])
			if left[li] == above[ai] {
				li++
			}
			ai++
		}
	}
	for ; ai < len(above); ai++ {
		add(above[ai])
	}
	for ; li < len(left); li++ {
		add(left[li])
	}
	return n
}

// paletteTokens reads the color index maps in anti-diagonal wavefront order
// and replicates the last on-screen row and column into the off-screen part.
func (t *Tile) paletteTokens() {
	b := &t.b
	bw := blockWidth(b.MiSize)
	bh := blockHeight(b.MiSize)
	onscreenW := min(bw, (t.fh.MiCols-b.MiCol)*4)
	onscreenH := min(bh, (t.fh.MiRows-b.MiRow)*4)
	if b.PaletteSizeY > 0 {
		b.ColorMapY = &t.colorMaps[0]
		t.readColorMap(b.ColorMapY, 0, b.PaletteSizeY, bw, bh, onscreenW, onscreenH)
	}
	if b.PaletteSizeUV > 0 {
		ssx, ssy := t.seq.SubsamplingX, t.seq.SubsamplingY
		bw >>= ssx
		bh >>= ssy
		onscreenW >>= ssx
		onscreenH >>= ssy
		if bw < 4 {
			bw += 2
			onscreenW += 2
		}
		if bh < 4 {
			bh += 2
			onscreenH += 2
		}
		b.ColorMapUV = &t.colorMaps[1]
		t.readColorMap(b.ColorMapUV, 1, b.PaletteSizeUV, bw, bh, onscreenW, onscreenH)
	}
}

func (t *Tile) readColorMap(m *[64][64]uint8, plane, n, bw, bh, onscreenW, onscreenH int) {
	m[0][0] = uint8(t.sd.ReadNS(n))
	for i := 1; i < onscreenH+onscreenW-1; i++ {
		for j := min(i, onscreenW-1); j >= max(0, i-onscreenH+1); j-- {
			ctx, order := paletteColorContextOf(m, i-j, j, n)
			idx := t.symbol(ElemPaletteColorIdx, plane, n, ctx)
			m[i-j][j] = uint8(order[idx])
		}
	}
	for i := 0; i < onscreenH; i++ {
		for j := onscreenW; j < bw; j++ {
			m[i][j] = m[i][onscreenW-1]
		}
	}
	for i := onscreenH; i < bh; i++ {
		m[i] = m[onscreenH-1]
	}
}

// paletteColorContextOf ranks the colors of the left, above-left and above
// neighbours of (r, c) and hashes the top scores into a context.
func paletteColorContextOf(m *[64][64]uint8, r, c, n int) (int, [PALETTE_COLORS]int) {
	var scores [PALETTE_COLORS]int
	var order [PALETTE_COLORS]int
	for i := range order {
		order[i] = i
	}
	if c > 0 {
		scores[m[r][c-1]] += 2
	}
	if r > 0 && c > 0 {
		scores[m[r-1][c-1]]++
	}
	if r > 0 {
		scores[m[r-1][c]] += 2
	}
	for i := 0; i < PALETTE_NUM_NEIGHBORS; i++ {
		maxScore := scores[i]
		maxIdx := i
		for j := i + 1; j < n; j++ {
			if scores[j] > maxScore {
				maxScore = scores[j]
				maxIdx = j
			}
		}
		if maxIdx != i {
			maxOrder := order[maxIdx]
			for k := maxIdx; k > i; k-- {
				scores[k] = scores[k-1]
				order[k] = order[k-1]
			}
			scores[i] = maxScore
			order[i] = maxOrder
		}
	}
	hash := 0
	for i := 0; i < PALETTE_NUM_NEIGHBORS; i++ {
		hash += scores[i] * paletteColorHashMultipliers[i]
	}
	return paletteColorContext[hash], order
}
