// Package playback is the audio collaborator of the alarm engine.
//
// A Catalog turns every alarm.Sound into a PCM clip (synthesized by default,
// or loaded from a WAV file). OtoPlayer outputs clips through
// github.com/ebitengine/oto/v3 with a loop switch; LogPlayer is the silent
// stand-in for muted or headless runs.
package playback
