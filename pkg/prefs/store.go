package prefs

import (
	"os"
	"path/filepath"

	"github.com/scamshield/accesskit/pkg/fsutils"
)

const defaultSettingsDir = "~/.accesskit"
const stateFileName = "accesskit-prefs.json"

var settingsDir = defaultSettingsDir
var settingsDirPath = fsutils.ExpandHome(settingsDir)

// State is the persisted shape of user preferences.
type State struct {
	FontSize FontSize `json:"font_size,omitempty"`
	Language string   `json:"language,omitempty"`
	AutoPlay bool     `json:"auto_play,omitempty"`
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

var logErr = func(v ...any) {

}

func getStateFilePath() string {
	return filepath.Join(settingsDirPath, stateFileName)
}

// Store owns the shared accessibility preferences for the session.
// It is created at application root and passed to views by reference.
type Store struct {
	state       State
	subscribers []func(State)
}

// NewStore loads persisted preferences. Load errors are non-fatal and
// leave the defaults in place.
func NewStore() *Store {
	s := &Store{}
	if err := readJSON(getStateFilePath(), false, &s.state); err != nil {
		logErr("prefs: error reading state file:", err)
	}
	s.state.FontSize = s.state.FontSize.normalize()
	return s
}

// Subscribe registers f to be called after every preference change.
func (s *Store) Subscribe(f func(State)) {
	s.subscribers = append(s.subscribers, f)
}

func (s *Store) FontSize() FontSize {
	return s.state.FontSize.normalize()
}

func (s *Store) SetFontSize(fs FontSize) {
	s.state.FontSize = fs.normalize()
	s.persist()
	s.notify()
}

func (s *Store) Language() string {
	return s.state.Language
}

func (s *Store) SetLanguage(code string) {
	s.state.Language = code
	s.persist()
	s.notify()
}

func (s *Store) AutoPlay() bool {
	return s.state.AutoPlay
}

func (s *Store) SetAutoPlay(autoPlay bool) {
	s.state.AutoPlay = autoPlay
	s.persist()
	s.notify()
}

func (s *Store) notify() {
	for _, f := range s.subscribers {
		f(s.state)
	}
}

func (s *Store) persist() {
	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if os.IsNotExist(err) {
			if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
				logErr("prefs: error creating settings directory:", err)
				return
			}
		}
	} else if !dirInfo.IsDir() {
		logErr("prefs: settings path is not a directory")
		return
	}

	if err := writeJSON(getStateFilePath(), s.state); err != nil {
		logErr("prefs: error writing state file:", err)
	}
}
