package alarm

import (
	"fmt"
	"slices"
	"strings"
)

// Sound selects one of the predefined alarm sounds.
type Sound string

const (
	// SoundClassic is a two-tone alarm clock beep.
	SoundClassic Sound = "classic"
	// SoundChime is a descending three-note chime.
	SoundChime Sound = "chime"
	// SoundSiren is a rising and falling sweep.
	SoundSiren Sound = "siren"

	// DefaultSound is preselected for new drafts.
	DefaultSound = SoundClassic
)

// Sounds returns the catalog in display order.
func Sounds() []Sound {
	return []Sound{SoundClassic, SoundChime, SoundSiren}
}

// IsKnown reports whether s belongs to the catalog.
func (s Sound) IsKnown() bool {
	return slices.Contains(Sounds(), s)
}

// String implements fmt.Stringer.
func (s Sound) String() string {
	return string(s)
}

// ParseSound resolves a user-supplied name. An empty name yields DefaultSound.
func ParseSound(name string) (Sound, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultSound, nil
	}

	sound := Sound(name)
	if !sound.IsKnown() {
		return "", &ValidationError{
			Field:  "sound",
			Reason: fmt.Sprintf("%q is not one of %v", name, Sounds()),
		}
	}

	return sound, nil
}
