package common

import (
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// RuntimeProfile holds the runtime knobs applied at startup.
type RuntimeProfile struct {
	Name     string
	GOGC     int
	MemLimit int64
	MaxProcs int
}

// Splitting is CPU-bound and allocates only small fixed-size values, so the
// profiles trade a little memory for fewer GC cycles.
var (
	SmallServerProfile  = RuntimeProfile{Name: "small", GOGC: 200, MemLimit: 512 << 20, MaxProcs: 1}
	MediumServerProfile = RuntimeProfile{Name: "medium", GOGC: 300, MemLimit: 2 << 30}
	LargeServerProfile  = RuntimeProfile{Name: "large", GOGC: 400, MemLimit: 4 << 30}
)

// DetectServerProfile picks a profile from the CPU count.
func DetectServerProfile(numCPU int) RuntimeProfile {
	switch {
	case numCPU <= 2:
		return SmallServerProfile
	case numCPU <= 8:
		p := MediumServerProfile
		p.MaxProcs = numCPU
		return p
	default:
		p := LargeServerProfile
		p.MaxProcs = numCPU
		return p
	}
}

// InitRuntime applies the detected profile. GOGC, GOMAXPROCS and GOMEMLIMIT
// from the environment take precedence.
func InitRuntime() RuntimeProfile {
	p := DetectServerProfile(runtime.NumCPU())

	if os.Getenv("GOGC") == "" {
		debug.SetGCPercent(p.GOGC)
	}
	if os.Getenv("GOMAXPROCS") == "" && p.MaxProcs > 0 {
		runtime.GOMAXPROCS(p.MaxProcs)
	}
	if os.Getenv("GOMEMLIMIT") == "" {
		debug.SetMemoryLimit(p.MemLimit)
	}

	log.Info().
		Str("profile", p.Name).
		Int("num_cpu", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Str("go_version", runtime.Version()).
		Msg("[runtime] settings applied")

	return p
}
