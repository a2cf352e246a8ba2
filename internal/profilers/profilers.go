// Package profilers sets up CPU and heap profiling for the batch programs.
//
// If linked, it installs the profiler flags.
package profilers

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagHTTPPort   = flag.Int("prof", -1, "If set, serves the pprof handlers at localhost on the given port while running.")
	flagCPUProfile = flag.String("cpu_profile", "", "Write a CPU profile of the whole run to `file`.")
	flagMemProfile = flag.String("mem_profile", "", "Write a heap profile at the end of the run to `file`.")
)

// Setup starts the profilers configured by the flags. The returned stop function writes
// the pending profiles, and should be deferred just after Setup.
func Setup() (stop func() error, err error) {
	if *flagHTTPPort >= 0 {
		addr := fmt.Sprintf("localhost:%d", *flagHTTPPort)
		klog.Infof("Serving profiler on http://%s/debug/pprof", addr)
		go func() {
			klog.Errorf("Profiler server stopped: %v", http.ListenAndServe(addr, nil))
		}()
	}
	var cpuFile *os.File
	if *flagCPUProfile != "" {
		if cpuFile, err = os.Create(*flagCPUProfile); err != nil {
			return nil, errors.Wrapf(err, "creating CPU profile")
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			_ = cpuFile.Close()
			return nil, errors.Wrapf(err, "starting CPU profile")
		}
	}
	stop = func() error {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			if err := cpuFile.Close(); err != nil {
				return errors.Wrapf(err, "closing CPU profile %q", *flagCPUProfile)
			}
		}
		if *flagMemProfile != "" {
			return writeHeapProfile(*flagMemProfile)
		}
		return nil
	}
	return stop, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating heap profile")
	}
	runtime.GC()
	if err = pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing heap profile %q", path)
	}
	return errors.Wrapf(f.Close(), "closing heap profile %q", path)
}
