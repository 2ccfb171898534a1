package playback

import (
	"context"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// TestLoopReader_StopsAtEndWithoutLoop reads a clip once and expects io.EOF afterwards.
func TestLoopReader_StopsAtEndWithoutLoop(t *testing.T) {
	t.Parallel()

	r := newLoopReader([]byte{1, 2, 3, 4})

	buf := make([]byte, 6)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = r.Read(buf)
	require.ErrorIs(t, err, io.EOF)
}

// TestLoopReader_WrapsWhenLooping fills a buffer larger than the clip by wrapping around.
func TestLoopReader_WrapsWhenLooping(t *testing.T) {
	t.Parallel()

	r := newLoopReader([]byte{1, 2, 3})
	r.setLoop(true)
	require.True(t, r.looping())

	buf := make([]byte, 7)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, []byte{1, 2, 3, 1, 2, 3, 1}, buf)

	pos, err := r.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(0), pos)

	r.setLoop(false)

	n, err = r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = r.Seek(-10, io.SeekCurrent)
	require.Error(t, err)
}

// TestDecodeWAV_Stereo decodes a generated stereo file back to its PCM payload.
func TestDecodeWAV_Stereo(t *testing.T) {
	t.Parallel()

	pcm := []byte{1, 0, 2, 0, 3, 0, 4, 0}

	got, err := decodeWAV(encodeWAV(pcm))
	require.NoError(t, err)
	require.Equal(t, pcm, got)
}

// TestDecodeWAV_MonoUpmix duplicates mono samples into both channels.
func TestDecodeWAV_MonoUpmix(t *testing.T) {
	t.Parallel()

	data := encodeWAV([]byte{0x10, 0x00, 0x20, 0x00})
	// Patch the header to mono: channels, byte rate and block align.
	binary.LittleEndian.PutUint16(data[22:24], 1)
	binary.LittleEndian.PutUint32(data[28:32], SampleRate*bytesPerSample)
	binary.LittleEndian.PutUint16(data[32:34], bytesPerSample)

	got, err := decodeWAV(data)
	require.NoError(t, err)
	require.Equal(t, []byte{0x10, 0x00, 0x10, 0x00, 0x20, 0x00, 0x20, 0x00}, got)
}

// TestDecodeWAV_OddFmtChunk skips the pad byte after an odd-sized fmt chunk.
func TestDecodeWAV_OddFmtChunk(t *testing.T) {
	t.Parallel()

	pcm := []byte{1, 0, 2, 0, 3, 0, 4, 0}
	plain := encodeWAV(pcm)

	const fmtEnd = 12 + 8 + wavFmtChunkMinLen

	// One extra fmt byte plus the RIFF pad byte.
	data := make([]byte, 0, len(plain)+2)
	data = append(data, plain[:fmtEnd]...)
	data = append(data, 0xAB, 0x00)
	data = append(data, plain[fmtEnd:]...)
	binary.LittleEndian.PutUint32(data[16:20], wavFmtChunkMinLen+1)
	binary.LittleEndian.PutUint32(data[4:8], uint32(len(data)-8)) //nolint:gosec // Tiny test buffer.

	got, err := decodeWAV(data)
	require.NoError(t, err)
	require.Equal(t, pcm, got)
}

// TestDecodeWAV_Rejects covers garbage input and unsupported sample rates.
func TestDecodeWAV_Rejects(t *testing.T) {
	t.Parallel()

	_, err := decodeWAV([]byte("definitely not audio"))
	require.ErrorIs(t, err, ErrInvalidWAV)

	data := encodeWAV([]byte{0, 0, 0, 0})
	binary.LittleEndian.PutUint32(data[24:28], 8000)

	_, err = decodeWAV(data)
	require.ErrorIs(t, err, ErrUnsupportedWAV)
}

// TestCatalog_BuiltinAndOverride checks builtin clips exist and WAV overrides replace them.
func TestCatalog_BuiltinAndOverride(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(nil)
	require.NoError(t, err)

	for _, sound := range alarm.Sounds() {
		clip, clipErr := catalog.Clip(sound)
		require.NoError(t, clipErr)
		require.NotEmpty(t, clip)
		require.Zero(t, len(clip)%bytesPerFrame)
		require.Equal(t, "builtin", catalog.Source(sound))
	}

	_, err = catalog.Clip("kazoo")
	require.ErrorIs(t, err, ErrUnknownSound)

	path := filepath.Join(t.TempDir(), "chime.wav")
	pcm := []byte{9, 0, 9, 0}
	require.NoError(t, os.WriteFile(path, encodeWAV(pcm), 0o600))

	catalog, err = NewCatalog(map[alarm.Sound]string{alarm.SoundChime: path})
	require.NoError(t, err)

	clip, err := catalog.Clip(alarm.SoundChime)
	require.NoError(t, err)
	require.Equal(t, pcm, clip)
	require.Equal(t, path, catalog.Source(alarm.SoundChime))

	_, err = NewCatalog(map[alarm.Sound]string{"kazoo": path})
	require.ErrorIs(t, err, ErrUnknownSound)

	_, err = NewCatalog(map[alarm.Sound]string{alarm.SoundSiren: filepath.Join(t.TempDir(), "missing.wav")})
	require.Error(t, err)
}

// TestLogPlayer_Handle exercises the silent handle lifecycle.
func TestLogPlayer_Handle(t *testing.T) {
	t.Parallel()

	p := NewLogPlayer(nil)

	_, err := p.Create(context.Background(), "kazoo")
	require.ErrorIs(t, err, ErrUnknownSound)

	h, err := p.Create(context.Background(), alarm.SoundSiren)
	require.NoError(t, err)

	h.SetLoop(true)
	h.Play()
	h.Pause()
	require.NoError(t, h.ResetPosition())
	require.NoError(t, h.Close())
	require.ErrorIs(t, h.ResetPosition(), ErrHandleClosed)

	lh, ok := h.(*logHandle)
	require.True(t, ok)
	require.False(t, lh.playing)
	require.True(t, lh.loop)
}
