package boulder

import "math/bits"

func clip3(lo, hi, x int) int {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}

func round2(x int, n uint) int {
	if n == 0 {
		return x
	}
	return (x + (1 << (n - 1))) >> n
}

// round2Signed rounds the magnitude, keeping the sign.
func round2Signed(x int, n uint) int {
	if x >= 0 {
		return round2(x, n)
	}
	return -round2(-x, n)
}

func floorLog2(x int) int {
	return bits.Len(uint(x)) - 1
}

func ceilLog2(x int) int {
	if x < 2 {
		return 0
	}
	return bits.Len(uint(x - 1))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
