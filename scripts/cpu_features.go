//go:build amd64 && goexperiment.simd

// Command cpu_features prints the host CPU features as seen by both
// archsimd and x/sys/cpu, together with the dispatch table this build
// resolves to. Run with GOEXPERIMENT=simd go run ./scripts.
package main

import (
	"fmt"
	"os"
	"runtime"
	"simd/archsimd"

	json "github.com/goccy/go-json"

	"github.com/samcharles93/vecop/internal/hwcaps"
	"github.com/samcharles93/vecop/internal/vecop"
)

type output struct {
	GoVersion string               `json:"go_version"`
	GoOS      string               `json:"go_os"`
	GoArch    string               `json:"go_arch"`
	CPUs      int                  `json:"cpus"`
	Archsimd  map[string]bool      `json:"archsimd"`
	Detected  hwcaps.Features      `json:"detected"`
	NoSIMD    bool                 `json:"no_simd"`
	Compiled  []string             `json:"compiled"`
	Routes    []vecop.RouteSummary `json:"routes"`
}

func main() {
	out := output{
		GoVersion: runtime.Version(),
		GoOS:      runtime.GOOS,
		GoArch:    runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		Archsimd: map[string]bool{
			"AVX":    archsimd.X86.AVX(),
			"AVX2":   archsimd.X86.AVX2(),
			"FMA":    archsimd.X86.FMA(),
			"AVX512": archsimd.X86.AVX512(),
		},
		Detected: hwcaps.Detect(),
		NoSIMD:   hwcaps.NoSIMDEnv(),
		Compiled: []string{},
	}
	for _, t := range vecop.CompiledTiers() {
		out.Compiled = append(out.Compiled, t.String())
	}
	for _, r := range vecop.Default().Routes() {
		out.Routes = append(out.Routes, r.Summary())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	// Tiers the hardware has but x/sys/cpu missed would be silently unused.
	if out.Archsimd["AVX512"] && !out.Detected.HasAVX512F {
		_, _ = fmt.Fprintln(os.Stderr, "warning: archsimd reports AVX512 but hwcaps does not")
	}
}
