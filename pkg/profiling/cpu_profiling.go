package profiling

import (
	"log"
	"os"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts writing a CPU profile to filePath and returns
// a stop function. Failures are logged and produce a no-op stop.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		log.Printf("could not create CPU profile %s: %v", filePath, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Printf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
