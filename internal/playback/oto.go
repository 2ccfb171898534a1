package playback

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
	"github.com/oshokin/alarm-countdown/internal/logger"
)

// oto allows a single context per process.
var (
	//nolint:gochecknoglobals // The audio device context is process-wide by nature.
	otoContext *oto.Context
	//nolint:gochecknoglobals // Guards the one-time creation of otoContext.
	otoContextOnce sync.Once
	//nolint:gochecknoglobals // Creation error is remembered for later callers.
	otoContextErr error
)

// OtoPlayer plays catalog clips on the system audio device.
type OtoPlayer struct {
	// ctx is the shared audio device context.
	ctx *oto.Context
	// catalog provides PCM clips.
	catalog *Catalog
}

// NewOtoPlayer opens the audio device and waits until it is ready.
func NewOtoPlayer(ctx context.Context, catalog *Catalog) (*OtoPlayer, error) {
	otoContextOnce.Do(func() {
		options := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		c, ready, err := oto.NewContext(options)
		if err != nil {
			otoContextErr = fmt.Errorf("open audio device: %w", err)
			return
		}

		<-ready

		otoContext = c
	})

	if otoContextErr != nil {
		return nil, otoContextErr
	}

	logger.InfoKV(ctx, "Audio device ready", "sample_rate", SampleRate, "channels", ChannelCount)

	return &OtoPlayer{
		ctx:     otoContext,
		catalog: catalog,
	}, nil
}

// Create prepares a paused handle for sound.
//
//nolint:ireturn // Handle is the collaborator contract.
func (p *OtoPlayer) Create(_ context.Context, sound alarm.Sound) (Handle, error) {
	clip, err := p.catalog.Clip(sound)
	if err != nil {
		return nil, err
	}

	source := newLoopReader(clip)

	return &otoHandle{
		player: p.ctx.NewPlayer(source),
		source: source,
	}, nil
}

// otoHandle drives one oto.Player.
type otoHandle struct {
	// player outputs the source to the device.
	player *oto.Player
	// source is the clip reader with the loop switch.
	source *loopReader
	// closed marks a released handle.
	closed bool
	// mu protects closed.
	mu sync.Mutex
}

func (h *otoHandle) Play() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.closed {
		h.player.Play()
	}
}

func (h *otoHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.closed {
		h.player.Pause()
	}
}

func (h *otoHandle) SetLoop(loop bool) {
	h.source.setLoop(loop)
}

func (h *otoHandle) ResetPosition() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}

	// Seeking the player also drops samples it has already buffered.
	if _, err := h.player.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("reset position: %w", err)
	}

	return nil
}

func (h *otoHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	h.closed = true
	h.player.Pause()
	h.source.setLoop(false)

	return nil
}
