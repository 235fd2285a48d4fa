// SPDX-License-Identifier: EPL-2.0

package audcraft_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audcraft"
	"github.com/ik5/audcraft/formats/wav"
)

func ExampleLoad() {
	dir, _ := os.MkdirTemp("", "audcraft")
	defer os.RemoveAll(dir)

	// One second of stereo silence at 44.1kHz
	path := filepath.Join(dir, "silence.wav")
	f, _ := os.Create(path)
	_ = wav.WriteWAV16(f, 44100, 2, make([]int16, 2*44100))
	f.Close()

	sig, origRate, err := audcraft.Load(path, audcraft.LoadOptions{TargetRate: 22050})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(origRate, sig.Channels(), sig.Frames())
	// Output: 44100 2 22050
}

func ExampleLoad_missingFile() {
	_, _, err := audcraft.Load("/no/such/file.wav", audcraft.LoadOptions{TargetRate: 22050})

	fmt.Println(errors.Is(err, audcraft.ErrReadFile))
	fmt.Println(errors.Is(err, audcraft.ErrDecode))
	// Output:
	// true
	// false
}

func ExampleDetect() {
	format, _ := audcraft.Detect([]byte("fLaC\x00\x00\x00\x22"), "track.bin")
	fmt.Println(format)
	// Output: flac
}
