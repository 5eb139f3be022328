package speech

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Playback is the two-state (idle/speaking) controller over an Engine.
// Engine lifecycle events are marshalled back through the dispatch
// function, so all state transitions happen on the caller's event loop.
type Playback struct {
	engine   Engine
	language func() string
	dispatch func(func())
	onChange func(speaking bool)
	notify   func(err error)
	log      zerolog.Logger

	speaking bool
	current  string
}

type PlaybackOption func(*Playback)

// WithLanguage supplies the user's language code for locale resolution.
func WithLanguage(f func() string) PlaybackOption {
	return func(p *Playback) {
		p.language = f
	}
}

// WithDispatch marshals engine callbacks onto the UI event loop,
// e.g. via tview's Application.QueueUpdateDraw.
func WithDispatch(f func(func())) PlaybackOption {
	return func(p *Playback) {
		p.dispatch = f
	}
}

// WithOnChange is called after every idle/speaking transition.
func WithOnChange(f func(speaking bool)) PlaybackOption {
	return func(p *Playback) {
		p.onChange = f
	}
}

// WithNotify surfaces playback errors as a transient user notification.
func WithNotify(f func(err error)) PlaybackOption {
	return func(p *Playback) {
		p.notify = f
	}
}

func WithLogger(log zerolog.Logger) PlaybackOption {
	return func(p *Playback) {
		p.log = log
	}
}

var newUtteranceID = uuid.NewString

func NewPlayback(engine Engine, o ...PlaybackOption) *Playback {
	p := &Playback{
		engine:   engine,
		dispatch: func(f func()) { f() },
		log:      zerolog.Nop(),
	}
	for _, option := range o {
		option(p)
	}
	return p
}

// Available reports whether the platform capability is present.
func (p *Playback) Available() bool {
	return p.engine != nil
}

func (p *Playback) Speaking() bool {
	return p.speaking
}

// Play starts speaking text. Invoking Play while already speaking
// cancels the current utterance instead of starting a new one.
func (p *Playback) Play(text string) {
	if p.engine == nil {
		return
	}
	if p.speaking {
		p.Stop()
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}

	var code string
	if p.language != nil {
		code = p.language()
	}
	u := Utterance{
		ID:     newUtteranceID(),
		Text:   text,
		Locale: LocaleFor(code),
		Rate:   DefaultRate,
		Pitch:  DefaultPitch,
		Volume: DefaultVolume,
	}

	p.setSpeaking(true, u.ID)
	err := p.engine.Speak(u, Events{
		OnEnd: func(u Utterance) {
			p.dispatch(func() { p.finish(u.ID, nil) })
		},
		OnError: func(u Utterance, err error) {
			p.dispatch(func() { p.finish(u.ID, err) })
		},
	})
	if err != nil {
		p.finish(u.ID, err)
	}
}

// Stop cancels the current utterance and returns to idle.
func (p *Playback) Stop() {
	if !p.speaking {
		return
	}
	p.engine.Cancel()
	p.setSpeaking(false, "")
}

func (p *Playback) finish(id string, err error) {
	if id != p.current {
		// Stale event from a cancelled utterance.
		return
	}
	if err != nil {
		p.log.Warn().Err(err).Str("utterance", id).Msg("speech playback failed")
		if p.notify != nil {
			p.notify(err)
		}
	}
	p.setSpeaking(false, "")
}

func (p *Playback) setSpeaking(speaking bool, utteranceID string) {
	p.speaking = speaking
	p.current = utteranceID
	if p.onChange != nil {
		p.onChange(speaking)
	}
}
