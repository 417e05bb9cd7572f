package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClip3(t *testing.T) {
	assert.Equal(t, 0, clip3(0, 10, -4))
	assert.Equal(t, 10, clip3(0, 10, 11))
	assert.Equal(t, 7, clip3(0, 10, 7))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 5, round2(5, 0))
	assert.Equal(t, 3, round2(5, 1))
	assert.Equal(t, 3, round2(6, 1))
	assert.Equal(t, 1, round2(4, 2))
	assert.Equal(t, -2, round2Signed(-6, 2))
	assert.Equal(t, 2, round2Signed(6, 2))
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, floorLog2(1))
	assert.Equal(t, 3, floorLog2(15))
	assert.Equal(t, 4, floorLog2(16))
	assert.Equal(t, 0, ceilLog2(1))
	assert.Equal(t, 4, ceilLog2(15))
	assert.Equal(t, 4, ceilLog2(16))
	assert.Equal(t, 5, ceilLog2(17))
}

func TestPartitionSubsize(t *testing.T) {
	assert.Equal(t, BLOCK_64X32, partitionSubsize(PARTITION_HORZ, BLOCK_64X64))
	assert.Equal(t, BLOCK_32X64, partitionSubsize(PARTITION_VERT_B, BLOCK_64X64))
	assert.Equal(t, BLOCK_32X32, partitionSubsize(PARTITION_SPLIT, BLOCK_64X64))
	assert.Equal(t, BLOCK_64X16, partitionSubsize(PARTITION_HORZ_4, BLOCK_64X64))
	assert.Equal(t, BLOCK_4X16, partitionSubsize(PARTITION_VERT_4, BLOCK_16X16))
	assert.Equal(t, BLOCK_INVALID, partitionSubsize(PARTITION_HORZ_4, BLOCK_128X128))
	assert.Equal(t, BLOCK_4X4, partitionSubsize(PARTITION_SPLIT, BLOCK_8X8))
}
