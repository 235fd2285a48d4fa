// SPDX-License-Identifier: EPL-2.0

package audcraft

import (
	"github.com/ik5/audcraft/audio"
	"github.com/ik5/audcraft/utils"
)

// ResampleToMono16 resamples src to targetRate with the cubic resampler,
// downmixes it to mono and returns the result as 16-bit PCM.
//
// The returned rate always equals targetRate. The source is drained but not
// closed; io.EOF is not reported as an error.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := audcraft.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	samples, err := audio.ReadAll(mono, bufferSize)
	if err != nil {
		return utils.Float32sToInt16s(samples), targetRate, err
	}

	return utils.Float32sToInt16s(samples), targetRate, nil
}
