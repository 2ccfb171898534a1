package playback

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// errNegativePosition is returned by Seek for positions before the start.
var errNegativePosition = errors.New("negative position")

// loopReader serves a PCM clip and optionally wraps around at the end.
// The audio backend reads from its own goroutine, hence the mutex.
type loopReader struct {
	// data is the PCM clip.
	data []byte
	// pos is the read cursor in bytes.
	pos int64
	// loop makes Read wrap to the start instead of returning io.EOF.
	loop bool
	// mu protects pos and loop.
	mu sync.Mutex
}

func newLoopReader(data []byte) *loopReader {
	return &loopReader{data: data}
}

// Read implements io.Reader.
func (r *loopReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := int64(len(r.data))
	if size == 0 {
		return 0, io.EOF
	}

	n := 0

	for n < len(p) {
		if r.pos >= size {
			if !r.loop {
				break
			}

			r.pos = 0
		}

		copied := copy(p[n:], r.data[r.pos:])
		n += copied
		r.pos += int64(copied)
	}

	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Seek implements io.Seeker.
func (r *loopReader) Seek(offset int64, whence int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next int64

	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = r.pos + offset
	case io.SeekEnd:
		next = int64(len(r.data)) + offset
	default:
		return r.pos, fmt.Errorf("seek: invalid whence %d", whence)
	}

	if next < 0 {
		return r.pos, errNegativePosition
	}

	r.pos = next

	return next, nil
}

func (r *loopReader) setLoop(loop bool) {
	r.mu.Lock()
	r.loop = loop
	r.mu.Unlock()
}

func (r *loopReader) looping() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loop
}
