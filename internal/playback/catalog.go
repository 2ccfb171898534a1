package playback

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/alarm-countdown/internal/domain/alarm"
)

// Catalog resolves sounds to PCM clips in the output layout.
type Catalog struct {
	// clips maps every catalog sound to its PCM data.
	clips map[alarm.Sound][]byte
	// sources records where each clip came from, for logging.
	sources map[alarm.Sound]string
}

// NewCatalog builds the built-in clips and replaces the ones listed in
// overrides with the WAV files they point to.
func NewCatalog(overrides map[alarm.Sound]string) (*Catalog, error) {
	patterns := builtinPatterns()
	catalog := &Catalog{
		clips:   make(map[alarm.Sound][]byte, len(patterns)),
		sources: make(map[alarm.Sound]string, len(patterns)),
	}

	for _, sound := range alarm.Sounds() {
		catalog.clips[sound] = synthesize(patterns[sound])
		catalog.sources[sound] = "builtin"
	}

	for sound, path := range overrides {
		if !sound.IsKnown() {
			return nil, fmt.Errorf("override for %q: %w", sound, ErrUnknownSound)
		}

		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read sound %q: %w", sound, err)
		}

		pcm, err := decodeWAV(contents)
		if err != nil {
			return nil, fmt.Errorf("decode sound %q from %s: %w", sound, path, err)
		}

		catalog.clips[sound] = pcm
		catalog.sources[sound] = path
	}

	return catalog, nil
}

// Clip returns the PCM data for sound.
func (c *Catalog) Clip(sound alarm.Sound) ([]byte, error) {
	clip, ok := c.clips[sound]
	if !ok {
		return nil, fmt.Errorf("%q: %w", sound, ErrUnknownSound)
	}

	return clip, nil
}

// Source returns "builtin" or the WAV path the clip was loaded from.
func (c *Catalog) Source(sound alarm.Sound) string {
	return c.sources[sound]
}
