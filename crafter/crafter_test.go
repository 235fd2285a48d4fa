// SPDX-License-Identifier: EPL-2.0

package crafter

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audcraft"
	"github.com/ik5/audcraft/audio"
	"github.com/ik5/audcraft/internal/fixtures"
)

func TestAudioReader_Craft(t *testing.T) {
	t.Parallel()

	path := fixtures.WriteToneWAV(t, t.TempDir(), "tone.wav", 44100, 2, 44100)
	r := NewAudioReader(DefaultConfig())

	rec, err := r.Craft([]byte(path), 42)
	require.NoError(t, err)

	assert.Equal(t, 42, rec.ID)
	assert.Equal(t, 0, rec.Offset)
	assert.InDelta(t, 1.0, rec.Weight, 0)
	require.Equal(t, 2, rec.Signal.Channels())

	want := 44100 * DefaultTargetSampleRate / 44100
	assert.InDelta(t, want, rec.Signal.Frames(), 1)
	assert.Len(t, rec.Signal[1], rec.Signal.Frames())
}

func TestAudioReader_CraftLengthFollowsTargetRate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := fixtures.WriteToneWAV(t, dir, "tone.wav", 16000, 1, 8000)

	for _, target := range []int{8000, 11025, 22050, 44100} {
		cfg := DefaultConfig()
		cfg.TargetSampleRate = target

		rec, err := NewAudioReader(cfg).Craft([]byte(path), 1)
		require.NoError(t, err)

		want := math.Round(8000 * float64(target) / 16000)
		assert.InDelta(t, want, rec.Signal.Frames(), 1, "target %d", target)
	}
}

func TestAudioReader_CraftDeterministic(t *testing.T) {
	t.Parallel()

	path := fixtures.WriteToneWAV(t, t.TempDir(), "tone.wav", 48000, 2, 9600)
	r := NewAudioReader(DefaultConfig())

	first, err := r.Craft([]byte(path), 7)
	require.NoError(t, err)

	second, err := r.Craft([]byte(path), 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAudioReader_CraftMono(t *testing.T) {
	t.Parallel()

	path := fixtures.WriteToneWAV(t, t.TempDir(), "tone.wav", 22050, 2, 2205)

	cfg := DefaultConfig()
	cfg.Mono = true

	rec, err := NewAudioReader(cfg).Craft([]byte(path), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Signal.Channels())
	assert.Equal(t, 2205, rec.Signal.Frames())
}

func TestAudioReader_CraftErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	textAsWav := fixtures.WriteFile(t, dir, "readme.wav", []byte("not audio at all, just words\n"))

	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{name: "missing file", payload: []byte("/no/such/file.wav"), wantErr: ErrUnreadable},
		{name: "text named wav", payload: []byte(textAsWav), wantErr: ErrFormat},
		{name: "empty payload", payload: nil, wantErr: ErrInvalidReference},
		{name: "invalid utf-8", payload: []byte{0xff, 0xfe, 'a'}, wantErr: ErrInvalidReference},
		{name: "embedded NUL", payload: []byte("a\x00b.wav"), wantErr: ErrInvalidReference},
	}

	r := NewAudioReader(DefaultConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, err := r.Craft(tt.payload, 1)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Record{}, rec)
		})
	}
}

func TestAudioReader_ErrorClassesAreDistinct(t *testing.T) {
	t.Parallel()

	_, err := NewAudioReader(DefaultConfig()).Craft([]byte("/no/such/file.wav"), 1)
	require.Error(t, err)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.NotErrorIs(t, err, ErrInvalidReference)
}

func TestAudioReader_EngineReceivesConfig(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotOpts audcraft.LoadOptions
	)
	engine := EngineFunc(func(path string, opts audcraft.LoadOptions) (audio.Signal, int, error) {
		gotPath, gotOpts = path, opts
		return audio.Signal{{0.1, 0.2}, {0.3, 0.4}}, 8000, nil
	})

	cfg := Config{
		TargetSampleRate: 16000,
		Mono:             true,
		Resampler:        audio.EngineHQ,
		BufferSize:       512,
	}

	rec, err := NewAudioReader(cfg, WithEngine(engine)).Craft([]byte("clips/ä.wav"), 9)
	require.NoError(t, err)

	assert.Equal(t, "clips/ä.wav", gotPath)
	assert.Equal(t, audcraft.LoadOptions{
		TargetRate: 16000,
		Mono:       true,
		Resampler:  audio.EngineHQ,
		BufferSize: 512,
	}, gotOpts)
	assert.Equal(t, audio.Signal{{0.1, 0.2}, {0.3, 0.4}}, rec.Signal)
}

func TestAudioReader_EngineErrorPassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewAudioReader(DefaultConfig(), WithEngine(EngineFunc(
		func(string, audcraft.LoadOptions) (audio.Signal, int, error) {
			return nil, 0, boom
		})))

	_, err := r.Craft([]byte("x.wav"), 1)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "x.wav")
}

func TestAudioReader_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	path := fixtures.WriteToneWAV(t, t.TempDir(), "tone.wav", 8000, 1, 800)
	_, err := NewAudioReader(DefaultConfig(), WithLogger(logger)).Craft([]byte(path), 5)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "crafted")
	assert.Contains(t, out, "id=5")
	assert.Contains(t, out, "crafter=audio_decode_resample")
}

func TestAudioReader_Concurrent(t *testing.T) {
	t.Parallel()

	path := fixtures.WriteToneWAV(t, t.TempDir(), "tone.wav", 44100, 2, 4410)
	r := NewAudioReader(DefaultConfig())

	want, err := r.Craft([]byte(path), 0)
	require.NoError(t, err)

	const workers = 8
	results := make([]Record, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			results[i], errs[i] = r.Craft([]byte(path), i)
		})
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, i, results[i].ID)
		assert.Equal(t, want.Signal, results[i].Signal)
	}
}

func TestAudioReader_Config(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	r := NewAudioReader(cfg)
	cfg.TargetSampleRate = 8000

	assert.Equal(t, DefaultTargetSampleRate, r.Config().TargetSampleRate)
}
