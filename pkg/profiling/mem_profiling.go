package profiling

import (
	"log"
	"runtime"
	"runtime/pprof"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoMemProfiling returns a stop function that writes a heap profile
// to filePath when the application shuts down.
func DoMemProfiling(filePath string) (stop func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			log.Printf("could not create memory profile %s: %v", filePath, err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
}
