package playback

import (
	"context"
	"sync"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
	"github.com/oshokin/alarm-countdown/internal/logger"
)

// LogPlayer is a silent Player that only logs what it would do.
// The daemon uses it when muted or when no audio device is available.
type LogPlayer struct {
	// catalog validates sounds; nil accepts any catalog sound.
	catalog *Catalog
}

// NewLogPlayer creates a silent player.
func NewLogPlayer(catalog *Catalog) *LogPlayer {
	return &LogPlayer{catalog: catalog}
}

// Create returns a handle that logs transitions with the caller's logger.
//
//nolint:ireturn // Handle is the collaborator contract.
func (p *LogPlayer) Create(ctx context.Context, sound alarm.Sound) (Handle, error) {
	if p.catalog != nil {
		if _, err := p.catalog.Clip(sound); err != nil {
			return nil, err
		}
	} else if !sound.IsKnown() {
		return nil, ErrUnknownSound
	}

	return &logHandle{
		ctx: logger.WithKV(ctx, "sound", sound.String()),
	}, nil
}

// logHandle tracks the state a real handle would have.
type logHandle struct {
	//nolint:containedctx // Only carries the scoped logger.
	ctx     context.Context
	playing bool
	loop    bool
	closed  bool
	mu      sync.Mutex
}

func (h *logHandle) Play() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || h.playing {
		return
	}

	h.playing = true
	logger.InfoKV(h.ctx, "Sound playing (muted)", "loop", h.loop)
}

func (h *logHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || !h.playing {
		return
	}

	h.playing = false
	logger.Info(h.ctx, "Sound paused (muted)")
}

func (h *logHandle) SetLoop(loop bool) {
	h.mu.Lock()
	h.loop = loop
	h.mu.Unlock()
}

func (h *logHandle) ResetPosition() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}

	return nil
}

func (h *logHandle) Close() error {
	h.mu.Lock()
	h.closed = true
	h.playing = false
	h.mu.Unlock()

	return nil
}
