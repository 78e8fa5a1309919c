package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiler captures a CPU profile and an execution trace around a run
type Profiler struct {
	cpuFile   *os.File
	traceFile *os.File
}

// StartProfiler starts whichever captures have a non-empty path
func StartProfiler(cpuPath, tracePath string) (*Profiler, error) {
	p := &Profiler{}

	if cpuPath != "" {
		f, err := os.Create(cpuPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile file: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to start CPU profile: %w", err)
		}
		p.cpuFile = f
	}

	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			p.Stop()
			return nil, fmt.Errorf("failed to create trace file: %w", err)
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			p.Stop()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
		p.traceFile = f
	}

	return p, nil
}

// Stop ends the captures and logs where they were written along with memory stats
func (p *Profiler) Stop() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		log.Printf("CPU profile saved to: %s (go tool pprof -http=:8080 %s)", p.cpuFile.Name(), p.cpuFile.Name())
		p.cpuFile = nil
	}
	if p.traceFile != nil {
		trace.Stop()
		p.traceFile.Close()
		log.Printf("Trace saved to: %s", p.traceFile.Name())
		p.traceFile = nil
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory: Alloc=%d KB TotalAlloc=%d KB NumGC=%d HeapObjects=%d",
		m.Alloc/1024, m.TotalAlloc/1024, m.NumGC, m.HeapObjects)
}
