// SPDX-License-Identifier: EPL-2.0

package utils

// PCMToFloat32 scales a signed integer PCM sample of the given bit depth to [-1, 1).
// Unknown bit depths are treated as 16-bit.
func PCMToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v) / 128.0
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(float64(v) / 2147483648.0)
	default:
		return float32(v) / 32768.0
	}
}
