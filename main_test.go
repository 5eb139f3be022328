package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/scamshield/accesskit/pkg/accesskit"
	"github.com/scamshield/accesskit/pkg/prefs"
	"github.com/scamshield/accesskit/pkg/speech"
)

type fakeEngine struct {
	spoken []speech.Utterance
	err    error
}

func (f *fakeEngine) Speak(u speech.Utterance, ev speech.Events) error {
	f.spoken = append(f.spoken, u)
	if f.err != nil {
		ev.OnError(u, f.err)
		return nil
	}
	ev.OnEnd(u)
	return nil
}

func (f *fakeEngine) Cancel() {}

func swapMainSeams(t *testing.T) {
	t.Helper()
	oldRun := run
	oldNewApp := newApp
	oldSetupApp := setupApp
	oldDiscoverEngine := discoverEngine
	restorePrefs := prefs.SetSettingsDir(t.TempDir())
	t.Cleanup(func() {
		run = oldRun
		newApp = oldNewApp
		setupApp = oldSetupApp
		discoverEngine = oldDiscoverEngine
		restorePrefs()
	})
}

func TestRootCommand_runsApp(t *testing.T) {
	swapMainSeams(t)

	runCalled := false
	run = func(app application) error {
		runCalled = true
		return nil
	}
	discoverEngine = func(log zerolog.Logger) speech.Engine {
		return nil
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !runCalled {
		t.Fatal("expected root command to call run")
	}
}

func Test_newApp(t *testing.T) {
	swapMainSeams(t)

	setupAppCalled := false
	setupApp = func(app *tview.Application, o accesskit.Options) {
		setupAppCalled = true
	}

	app := newApp(accesskit.Options{})
	if app == nil {
		t.Errorf("newApp returned nil")
	}
	if !setupAppCalled {
		t.Errorf("expected newApp to call setupApp")
	}
}

func TestClassifyCommand(t *testing.T) {
	swapMainSeams(t)

	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(`{"verdict": "scam"}`), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"classify", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{`"report.json"`, `"category": "file"`, `"size_valid": true`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestClassifyCommand_missingFile(t *testing.T) {
	swapMainSeams(t)

	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"classify", filepath.Join(t.TempDir(), "none.bin")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSpeakCommand(t *testing.T) {
	swapMainSeams(t)

	engine := &fakeEngine{}
	discoverEngine = func(log zerolog.Logger) speech.Engine {
		return engine
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"speak", "--lang", "de", "hello", "world"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(engine.spoken) != 1 {
		t.Fatalf("expected one utterance, got %d", len(engine.spoken))
	}
	if engine.spoken[0].Text != "hello world" {
		t.Errorf("unexpected text: %q", engine.spoken[0].Text)
	}
	if engine.spoken[0].Locale.String() != "de-DE" {
		t.Errorf("unexpected locale: %q", engine.spoken[0].Locale)
	}
}

func TestSpeakCommand_noEngine(t *testing.T) {
	swapMainSeams(t)

	discoverEngine = func(log zerolog.Logger) speech.Engine {
		return nil
	}

	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"speak", "hello"})
	err := cmd.Execute()
	if !errors.Is(err, speech.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestSpeakCommand_engineError(t *testing.T) {
	swapMainSeams(t)

	wantErr := errors.New("synthesizer crashed")
	discoverEngine = func(log zerolog.Logger) speech.Engine {
		return &fakeEngine{err: wantErr}
	}

	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"speak", "hello"})
	err := cmd.Execute()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
