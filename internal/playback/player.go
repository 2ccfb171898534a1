package playback

import (
	"context"
	"errors"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// Player creates playback handles for catalog sounds.
type Player interface {
	Create(ctx context.Context, sound alarm.Sound) (Handle, error)
}

// Handle is one sound output instance. A new handle is paused at position zero.
type Handle interface {
	// Play starts or resumes output.
	Play()
	// Pause halts output and keeps the cursor.
	Pause()
	// SetLoop controls whether output restarts at the end of the clip.
	SetLoop(loop bool)
	// ResetPosition moves the cursor back to the start of the clip.
	ResetPosition() error
	// Close releases the handle; it cannot be used afterwards.
	Close() error
}

const (
	// SampleRate is the output sample rate in Hz shared by every clip.
	SampleRate = 44100
	// ChannelCount is the number of interleaved output channels.
	ChannelCount = 2
	// bytesPerSample is the size of one signed 16-bit little-endian sample.
	bytesPerSample = 2
	// bytesPerFrame covers one sample for every channel.
	bytesPerFrame = bytesPerSample * ChannelCount
)

var (
	// ErrUnknownSound is returned when a sound has no clip in the catalog.
	ErrUnknownSound = errors.New("unknown sound")
	// ErrHandleClosed is returned by operations on a closed handle.
	ErrHandleClosed = errors.New("playback handle closed")
)
