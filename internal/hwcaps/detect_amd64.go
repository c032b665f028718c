//go:build amd64

package hwcaps

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func detectFeatures() Features {
	return Features{
		Arch:       runtime.GOARCH,
		HasSSE2:    cpu.X86.HasSSE2,
		HasAVX:     cpu.X86.HasAVX,
		HasAVX2:    cpu.X86.HasAVX2,
		HasAVX512F: cpu.X86.HasAVX512F,
	}
}
