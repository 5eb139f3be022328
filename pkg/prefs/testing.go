package prefs

// SetSettingsDir overrides where preferences are persisted and returns
// a restore function. Intended for tests and tools that relocate state.
func SetSettingsDir(dir string) (restore func()) {
	old := settingsDirPath
	settingsDirPath = dir
	return func() {
		settingsDirPath = old
	}
}
