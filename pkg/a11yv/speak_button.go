package a11yv

import (
	"github.com/rivo/tview"

	"github.com/scamshield/accesskit/pkg/prefs"
	"github.com/scamshield/accesskit/pkg/speech"
)

const (
	listenLabel = "🔊 Listen"
	stopLabel   = "■ Stop"
)

// SpeakButton wraps the platform speech capability behind a toggle
// button. While idle it starts playback of the current text; while
// speaking it cancels.
type SpeakButton struct {
	*tview.Button
	playback *speech.Playback
	store    *prefs.Store
	notice   func(text string)
	text     string
}

type SpeakButtonOption func(*speakButtonOptions)

type speakButtonOptions struct {
	store    *prefs.Store
	notice   func(text string)
	dispatch func(func())
}

// WithPrefs binds the button to the shared preference store for
// language selection and auto-play.
func WithPrefs(store *prefs.Store) SpeakButtonOption {
	return func(o *speakButtonOptions) {
		o.store = store
	}
}

// WithNotice surfaces playback errors as a transient notification.
func WithNotice(notice func(text string)) SpeakButtonOption {
	return func(o *speakButtonOptions) {
		o.notice = notice
	}
}

// WithDispatch marshals engine events onto the UI event loop.
func WithDispatch(dispatch func(func())) SpeakButtonOption {
	return func(o *speakButtonOptions) {
		o.dispatch = dispatch
	}
}

// NewSpeakButton creates the speech playback control.
// Returns nil when engine is nil: without the platform capability the
// control renders nothing.
func NewSpeakButton(engine speech.Engine, o ...SpeakButtonOption) *SpeakButton {
	if engine == nil {
		return nil
	}
	var options speakButtonOptions
	for _, option := range o {
		option(&options)
	}

	b := &SpeakButton{
		Button: tview.NewButton(listenLabel),
		store:  options.store,
		notice: options.notice,
	}

	playbackOptions := []speech.PlaybackOption{
		speech.WithOnChange(b.refresh),
	}
	if options.store != nil {
		playbackOptions = append(playbackOptions, speech.WithLanguage(options.store.Language))
	}
	if options.dispatch != nil {
		playbackOptions = append(playbackOptions, speech.WithDispatch(options.dispatch))
	}
	if options.notice != nil {
		notice := options.notice
		playbackOptions = append(playbackOptions, speech.WithNotify(func(err error) {
			notice("Speech playback failed: " + err.Error())
		}))
	}
	b.playback = speech.NewPlayback(engine, playbackOptions...)

	b.SetSelectedFunc(b.toggle)
	return b
}

// SetText replaces the text to be spoken. With auto-play enabled the
// new text starts playing immediately.
func (b *SpeakButton) SetText(text string) {
	b.text = text
	if b.store != nil && b.store.AutoPlay() && !b.playback.Speaking() {
		b.playback.Play(text)
	}
}

func (b *SpeakButton) Speaking() bool {
	return b.playback.Speaking()
}

func (b *SpeakButton) toggle() {
	b.playback.Play(b.text)
}

func (b *SpeakButton) refresh(speaking bool) {
	if speaking {
		b.SetLabel(stopLabel)
	} else {
		b.SetLabel(listenLabel)
	}
}
