package speech

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Words per minute at rate 1.0. Matches the typical default of the
// native synthesizers we shell out to.
const baseWordsPerMinute = 175

var lookPath = exec.LookPath
var execCommand = exec.Command

func candidateBinaries() []string {
	if runtime.GOOS == "darwin" {
		return []string{"say"}
	}
	return []string{"espeak-ng", "espeak"}
}

// Discover probes the host for a native speech synthesizer.
// Returns nil when none is installed: callers treat a nil engine as
// "capability absent" and render no speech controls.
func Discover(log zerolog.Logger) Engine {
	for _, name := range candidateBinaries() {
		binary, err := lookPath(name)
		if err != nil {
			continue
		}
		log.Debug().Str("binary", binary).Msg("speech synthesizer found")
		return &ExecEngine{binary: binary, log: log}
	}
	log.Debug().Msg("no speech synthesizer on PATH")
	return nil
}

// ExecEngine speaks by shelling out to a native synthesizer binary.
// A single utterance plays at a time; Speak cancels any current one.
type ExecEngine struct {
	binary string
	log    zerolog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

func (e *ExecEngine) args(u Utterance) []string {
	wpm := strconv.Itoa(int(u.Rate*baseWordsPerMinute + 0.5))
	if strings.HasSuffix(e.binary, "say") {
		return []string{"-r", wpm, u.Text}
	}
	voice := strings.ToLower(u.Locale.String())
	return []string{"-s", wpm, "-v", voice, u.Text}
}

func (e *ExecEngine) Speak(u Utterance, ev Events) error {
	e.Cancel()

	cmd := execCommand(e.binary, e.args(u)...)
	e.mu.Lock()
	e.cmd = cmd
	e.mu.Unlock()

	if err := cmd.Start(); err != nil {
		e.mu.Lock()
		e.cmd = nil
		e.mu.Unlock()
		return fmt.Errorf("speech: failed to start %s: %w", e.binary, err)
	}

	e.log.Debug().Str("utterance", u.ID).Str("locale", u.Locale.String()).Msg("speaking")
	if ev.OnStart != nil {
		ev.OnStart(u)
	}

	go func() {
		err := cmd.Wait()

		e.mu.Lock()
		cancelled := e.cmd != cmd
		if e.cmd == cmd {
			e.cmd = nil
		}
		e.mu.Unlock()

		if err != nil && !cancelled {
			e.log.Warn().Err(err).Str("utterance", u.ID).Msg("synthesizer failed")
			if ev.OnError != nil {
				ev.OnError(u, err)
			}
			return
		}
		if ev.OnEnd != nil {
			ev.OnEnd(u)
		}
	}()
	return nil
}

// Cancel kills the currently playing utterance, if any.
func (e *ExecEngine) Cancel() {
	e.mu.Lock()
	cmd := e.cmd
	e.cmd = nil
	e.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}
