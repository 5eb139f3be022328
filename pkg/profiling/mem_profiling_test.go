package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestDoMemProfiling(t *testing.T) {
	// Note: Cannot run with t.Parallel() due to global variable modifications
	origOsCreate := osCreate
	defer func() {
		osCreate = origOsCreate
	}()
	osCreate = os.Create

	tempFile := filepath.Join(t.TempDir(), "mem.prof")
	stop := DoMemProfiling(tempFile)
	if stop == nil {
		t.Fatal("expected stop to be not nil")
	}
	stop()

	if _, err := os.Stat(tempFile); os.IsNotExist(err) {
		t.Errorf("expected profile file to be created")
	}
}

func TestDoMemProfiling_ErrorOsCreate(t *testing.T) {
	origOsCreate := osCreate
	defer func() {
		osCreate = origOsCreate
	}()
	osCreate = func(name string) (*os.File, error) {
		return nil, errors.New("mock error")
	}

	stop := DoMemProfiling("invalid")
	stop()
}

func TestDoMemProfiling_ErrorWrite(t *testing.T) {
	origOsCreate := osCreate
	origWrite := pprofWriteHeapProfile
	defer func() {
		osCreate = origOsCreate
		pprofWriteHeapProfile = origWrite
	}()
	osCreate = os.Create
	pprofWriteHeapProfile = func(w io.Writer) error {
		return errors.New("mock write error")
	}

	stop := DoMemProfiling(filepath.Join(t.TempDir(), "mem_err.prof"))
	stop()
}
