// SPDX-License-Identifier: EPL-2.0

package mp3

// headerWindow bounds how far into the stream the first frame header is
// looked for. Tags larger than this leave the stream reported as stereo.
const headerWindow = 64 << 10

const modeSingleChannel = 3

// frameChannels reports the channel count of the first Layer III frame
// header in head, skipping a leading ID3v2 tag. It falls back to 2 when no
// header is found.
func frameChannels(head []byte) int {
	if len(head) >= 10 && string(head[:3]) == "ID3" {
		size := int(head[6]&0x7F)<<21 | int(head[7]&0x7F)<<14 | int(head[8]&0x7F)<<7 | int(head[9]&0x7F)
		size += 10
		if head[5]&0x10 != 0 {
			size += 10 // footer
		}
		if size >= len(head) {
			return 2
		}
		head = head[size:]
	}

	for i := 0; i+4 <= len(head); i++ {
		if !isFrameHeader(head[i:]) {
			continue
		}
		if head[i+3]>>6 == modeSingleChannel {
			return 1
		}
		return 2
	}

	return 2
}

// isFrameHeader checks the sync word and rejects reserved field values.
func isFrameHeader(h []byte) bool {
	if h[0] != 0xFF || h[1]&0xE0 != 0xE0 {
		return false
	}

	version := (h[1] >> 3) & 0x03
	layer := (h[1] >> 1) & 0x03
	bitrate := h[2] >> 4
	rate := (h[2] >> 2) & 0x03

	return version != 1 && layer == 1 && bitrate != 0 && bitrate != 0x0F && rate != 3
}
