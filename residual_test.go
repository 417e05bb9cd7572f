package boulder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoeffBaseEobCtx(t *testing.T) {
	for c, want := range []int{0, 1, 1, 2, 2, 3, 3} {
		assert.Equal(t, want, coeffBaseEobCtx(c, 16), "c=%d", c)
	}
}

func TestCoeffBaseCtx(t *testing.T) {
	quant := make([]int, 16)
	quant[2] = -3
	quant[5] = 1

	assert.Equal(t, 0, coeffBaseCtx(quant, TX_4X4, 2, TX_CLASS_2D, 0))
	assert.Equal(t, 3, coeffBaseCtx(quant, TX_4X4, 2, TX_CLASS_2D, 1))
	assert.Equal(t, 6, coeffBaseCtx(quant, TX_4X4, 2, TX_CLASS_2D, 5))
	assert.Equal(t, 27, coeffBaseCtx(quant, TX_4X4, 2, TX_CLASS_HORIZ, 4))
}

func TestCoeffBrCtx(t *testing.T) {
	quant := make([]int, 16)
	quant[1] = 20
	assert.Equal(t, 6, coeffBrCtx(quant, TX_4X4, 2, TX_CLASS_2D, 0))

	quant[1] = 1
	assert.Equal(t, 1, coeffBrCtx(quant, TX_4X4, 2, TX_CLASS_2D, 0))
	assert.Equal(t, 14, coeffBrCtx(quant, TX_4X4, 2, TX_CLASS_2D, 15))
	assert.Equal(t, 7, coeffBrCtx(quant, TX_4X4, 2, TX_CLASS_HORIZ, 8))
}
