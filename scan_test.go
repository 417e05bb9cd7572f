package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prefixes of the Default_Scan_* tables in the AV1 bitstream specification.
func TestDefaultScans(t *testing.T) {
	assert.Equal(t, []uint16{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}, scans[TX_4X4][scanDefault])
	assert.Equal(t, []uint16{0, 1, 8, 16, 9, 2, 3, 10, 17, 24}, scans[TX_8X8][scanDefault][:10])
	assert.Equal(t, []uint16{0, 1, 16, 32, 17, 2, 3, 18, 33, 48, 64, 49}, scans[TX_16X16][scanDefault][:12])
	assert.Equal(t, []uint16{0, 1, 32, 64, 33, 2, 3, 34, 65, 96, 128, 97}, scans[TX_32X32][scanDefault][:12])
	assert.Equal(t, []uint16{0, 1, 8, 2, 9, 16, 3, 10, 17, 24, 4, 11, 18, 25, 32}, scans[TX_8X16][scanDefault][:15])
	assert.Equal(t, []uint16{0, 16, 1, 32, 17, 2, 48, 33, 18, 3}, scans[TX_16X8][scanDefault][:10])
	assert.Equal(t, []uint16{0, 1, 4, 2, 5, 8}, scans[TX_4X8][scanDefault][:6])
	assert.Equal(t, []uint16{0, 8, 1, 16, 9, 2}, scans[TX_8X4][scanDefault][:6])
	assert.Equal(t, []uint16{0, 4, 8, 12, 1}, scans[TX_4X4][scanCol][:5])
	assert.Equal(t, []uint16{0, 1, 2, 3, 4}, scans[TX_4X4][scanRow][:5])
}

func TestScansArePermutations(t *testing.T) {
	for txSz := 0; txSz < TX_SIZES_ALL; txSz++ {
		if adjustedTxSize[txSz] != txSz {
			assert.Nil(t, scans[txSz][scanDefault])
			continue
		}
		area := txWidth[txSz] * txHeight[txSz]
		for kind := 0; kind < numScanKinds; kind++ {
			scan := scans[txSz][kind]
			require.Len(t, scan, area, "tx size %d scan %d", txSz, kind)
			seen := make([]bool, area)
			for _, pos := range scan {
				require.False(t, seen[pos], "tx size %d scan %d repeats %d", txSz, kind, pos)
				seen[pos] = true
			}
		}
	}
}

func TestScanFor(t *testing.T) {
	assert.Len(t, scanFor(TX_64X64, DCT_DCT), 1024)
	assert.Equal(t, scans[TX_32X32][scanDefault], scanFor(TX_64X64, DCT_DCT))
	assert.Equal(t, scans[TX_4X4][scanRow], scanFor(TX_4X4, V_DCT))
	assert.Equal(t, scans[TX_4X4][scanCol], scanFor(TX_4X4, H_DCT))
	assert.Equal(t, scans[TX_4X4][scanDefault], scanFor(TX_4X4, IDTX))
	assert.Equal(t, scans[TX_8X8][scanDefault], scanFor(TX_8X8, ADST_ADST))
}

func TestCoeffBaseCtxOffset(t *testing.T) {
	assert.Equal(t, 11, coeffBaseCtxOffset[TX_4X8][0][1])
	assert.Equal(t, 6, coeffBaseCtxOffset[TX_4X8][2][0])
	assert.Equal(t, 16, coeffBaseCtxOffset[TX_8X4][1][0])
	assert.Equal(t, 6, coeffBaseCtxOffset[TX_4X4][1][1])
	assert.Equal(t, 0, coeffBaseCtxOffset[TX_16X8][0][0])
}
