package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/oshokin/alarm-countdown/internal/logger"
)

// Token identifies a scheduled callback.
type Token uint64

// Callback is invoked on every interval with the scheduling context.
type Callback func(ctx context.Context)

// Scheduler runs callbacks periodically until cancelled.
type Scheduler interface {
	Schedule(ctx context.Context, callback Callback, interval time.Duration) Token
	Cancel(token Token)
}

// job is one running periodic callback.
type job struct {
	// cancel stops the job loop.
	cancel context.CancelFunc
	// done is closed when the loop goroutine has returned.
	done chan struct{}
}

// Periodic is a Scheduler backed by one time.Ticker goroutine per callback.
// Invocations of the same callback never overlap.
type Periodic struct {
	// jobs holds running loops by token.
	jobs map[Token]*job
	// next is the last issued token.
	next Token
	// mu protects jobs and next.
	mu sync.Mutex
}

// NewPeriodic creates an empty scheduler.
func NewPeriodic() *Periodic {
	return &Periodic{
		jobs: make(map[Token]*job),
	}
}

// Schedule starts calling callback every interval until Cancel or ctx ends.
// A non-positive interval falls back to one second.
func (p *Periodic) Schedule(ctx context.Context, callback Callback, interval time.Duration) Token {
	if interval <= 0 {
		interval = time.Second
	}

	jobCtx, cancel := context.WithCancel(ctx)
	j := &job{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	p.mu.Lock()
	p.next++
	token := p.next
	p.jobs[token] = j
	p.mu.Unlock()

	logger.DebugKV(ctx, "Periodic job scheduled", "token", token, "interval", interval)

	go run(jobCtx, j, callback, interval)

	return token
}

// Cancel stops the job and waits until its last invocation has returned.
// It must not be called from inside the job's own callback.
func (p *Periodic) Cancel(token Token) {
	p.mu.Lock()
	j, ok := p.jobs[token]
	delete(p.jobs, token)
	p.mu.Unlock()

	if !ok {
		return
	}

	j.cancel()
	<-j.done
}

// Close cancels every scheduled job.
func (p *Periodic) Close() {
	p.mu.Lock()
	tokens := make([]Token, 0, len(p.jobs))

	for token := range p.jobs {
		tokens = append(tokens, token)
	}
	p.mu.Unlock()

	for _, token := range tokens {
		p.Cancel(token)
	}
}

// Len returns the number of active jobs.
func (p *Periodic) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.jobs)
}

func run(ctx context.Context, j *job, callback Callback, interval time.Duration) {
	defer close(j.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A cancel that raced with the tick wins.
			if ctx.Err() != nil {
				return
			}

			callback(ctx)
		}
	}
}
