package boulder

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRowsAreValid(t *testing.T) {
	for _, q := range []int{0, 40, 100, 200} {
		c := DefaultCdfContext(q)
		rows := 0
		walkCdfRows(reflect.ValueOf(c).Elem(), func(row []uint16) {
			rows++
			require.GreaterOrEqual(t, len(row), 2)
			prev := uint16(0)
			for i, v := range row[:len(row)-1] {
				require.Greater(t, v, prev, "base_q_idx %d threshold %d", q, i)
				require.Less(t, v, uint16(1<<15), "base_q_idx %d threshold %d", q, i)
				prev = v
			}
			require.Zero(t, row[len(row)-1])
		})
		assert.Greater(t, rows, 1000)
	}
}

// Rows published as Default_*_Cdf in the AV1 bitstream specification, without
// the trailing 32768.
func TestDefaultTablesMatchAV1(t *testing.T) {
	n := DefaultCdfContext(0).NonCoeff

	assert.Equal(t, [13]uint16{15588, 17027, 19338, 20218, 20682, 21110, 21825, 23244, 24189, 28165, 29093, 30466, 0},
		n.IntraFrameYMode[0][0])
	assert.Equal(t, [13]uint16{22801, 23489, 24293, 24756, 25601, 26123, 26606, 27418, 27945, 29228, 29685, 30349, 0},
		n.YMode[0])
	assert.Equal(t, [14]uint16{10407, 11208, 12900, 13181, 13823, 14175, 14899, 15656, 15986, 20086, 20995, 22455, 24212, 0},
		n.UVModeCflAllowed[0])
	assert.Equal(t, [4]uint16{19132, 25510, 30392, 0}, n.PartitionW8[0])
	assert.Equal(t, [8]uint16{27899, 28219, 28529, 32484, 32539, 32619, 32639, 0}, n.PartitionW128[0])
	assert.Equal(t, [2]uint16{30531, 0}, n.Intrabc)
	assert.Equal(t, [2]uint16{31671, 0}, n.Skip[0])
	assert.Equal(t, [2]uint16{4897, 0}, n.SingleRef[0][0])
	assert.Equal(t, [7]uint16{1535, 8035, 9461, 12751, 23467, 27825, 0}, n.IntraTxTypeSet1[0][0])
	assert.Equal(t, [12]uint16{770, 2421, 5225, 12907, 15819, 18927, 21561, 24089, 26595, 28526, 30529, 0},
		n.InterTxTypeSet2)
	assert.Equal(t, [5]uint16{8949, 12776, 17211, 29558, 0}, n.FilterIntraMode)
	assert.Equal(t, [4]uint16{28160, 32120, 32677, 0}, n.DeltaQ)

	for ctx := range n.Mv {
		mv := n.Mv[ctx]
		assert.Equal(t, [4]uint16{4096, 11264, 19328, 0}, mv.Joint)
		assert.Equal(t, [11]uint16{28672, 30976, 31858, 32320, 32551, 32656, 32740, 32757, 32762, 32767, 0}, mv.Class[1])
		assert.Equal(t, [4]uint16{12288, 21248, 24128, 0}, mv.Class0Fr[0][1])
		assert.Equal(t, [2]uint16{30720, 0}, mv.Bit[1][9])
	}
}

func TestDefaultCoeffTablesFollowQuantizer(t *testing.T) {
	tests := []struct {
		q       int
		txbSkip uint16
		base    [4]uint16
		eobPt16 [5]uint16
	}{
		{0, 31849, [4]uint16{4034, 8930, 12727, 0}, [5]uint16{840, 1039, 1980, 4895, 0}},
		{60, 30371, [4]uint16{6041, 11854, 15927, 0}, [5]uint16{2125, 2551, 5165, 8946, 0}},
		{61, 29614, [4]uint16{8896, 16227, 20630, 0}, [5]uint16{4016, 4897, 8881, 14968, 0}},
		{255, 26887, [4]uint16{7062, 16472, 22319, 0}, [5]uint16{6708, 8958, 14746, 22133, 0}},
	}
	for _, tt := range tests {
		c := DefaultCdfContext(tt.q).Coeff
		assert.Equal(t, tt.txbSkip, c.TxbSkip[TX_4X4][0][0], "base_q_idx %d", tt.q)
		assert.Equal(t, tt.base, c.CoeffBase[TX_4X4][0][0], "base_q_idx %d", tt.q)
		assert.Equal(t, tt.eobPt16, c.EobPt16[0][0], "base_q_idx %d", tt.q)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := DefaultCdfContext(100)
	b := a.Clone()
	b.NonCoeff.Skip[0][0] = 1
	b.Coeff.DcSign[1][2][1] = 7

	assert.NotEqual(t, a.NonCoeff.Skip[0][0], b.NonCoeff.Skip[0][0])
	assert.Equal(t, uint16(0), a.Coeff.DcSign[1][2][1])
}

func TestResetCounters(t *testing.T) {
	c := DefaultCdfContext(100)
	c.NonCoeff.YMode[2][12] = 31
	c.NonCoeff.Mv[1].Bit[0][9][1] = 5
	c.Coeff.CoeffBr[TX_32X32][1][20][BR_CDF_SIZE-1] = 12
	threshold := c.NonCoeff.YMode[2][0]

	c.ResetCounters()

	assert.Zero(t, c.NonCoeff.YMode[2][12])
	assert.Zero(t, c.NonCoeff.Mv[1].Bit[0][9][1])
	assert.Zero(t, c.Coeff.CoeffBr[TX_32X32][1][20][BR_CDF_SIZE-1])
	assert.Equal(t, threshold, c.NonCoeff.YMode[2][0])
}

func TestCoeffCdfQContext(t *testing.T) {
	tests := []struct {
		q    int
		want int
	}{
		{0, 0}, {20, 0}, {21, 1}, {60, 1}, {61, 2}, {120, 2}, {121, 3}, {255, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coeffCdfQContext(tt.q), "base_q_idx %d", tt.q)
	}
}

func TestLoadCoeffCdfs(t *testing.T) {
	c := DefaultCdfContext(0)
	c.Coeff.TxbSkip[0][0][1] = 3
	c.NonCoeff.Skip[0][1] = 3

	c.LoadCoeffCdfs(200)

	assert.Zero(t, c.Coeff.TxbSkip[0][0][1])
	assert.Equal(t, uint16(26887), c.Coeff.TxbSkip[0][0][0])
	assert.Equal(t, uint16(3), c.NonCoeff.Skip[0][1])
}
