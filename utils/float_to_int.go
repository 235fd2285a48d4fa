// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Float32sToInt16s converts a whole buffer with Float32ToInt16.
func Float32sToInt16s(src []float32) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = Float32ToInt16(x)
	}
	return out
}
