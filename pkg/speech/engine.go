package speech

import (
	"errors"

	"golang.org/x/text/language"
)

// ErrUnavailable is returned when no synthesis engine is present on the host.
var ErrUnavailable = errors.New("speech: no synthesis engine available")

// Speaking parameters. Rate is kept slightly below normal for clarity.
const (
	DefaultRate   = 0.9
	DefaultPitch  = 1.0
	DefaultVolume = 1.0
)

// Utterance is a single piece of text to be spoken.
type Utterance struct {
	ID     string
	Text   string
	Locale language.Tag
	Rate   float64
	Pitch  float64
	Volume float64
}

// Events delivers utterance lifecycle callbacks from the engine.
// Callbacks may be invoked from the engine's own goroutine.
type Events struct {
	OnStart func(u Utterance)
	OnEnd   func(u Utterance)
	OnError func(u Utterance, err error)
}

// Engine is the platform text-to-speech capability.
// Speak returns once playback has been started; completion and failure
// are reported through Events. Cancel stops the current utterance.
type Engine interface {
	Speak(u Utterance, ev Events) error
	Cancel()
}
