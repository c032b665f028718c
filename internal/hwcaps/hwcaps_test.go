package hwcaps

import (
	"runtime"
	"testing"
)

func TestDetectIsCached(t *testing.T) {
	a := Detect()
	b := Detect()
	if a != b {
		t.Fatalf("Detect changed between calls: %+v vs %+v", a, b)
	}
	if a.Arch != runtime.GOARCH {
		t.Fatalf("arch=%q want %q", a.Arch, runtime.GOARCH)
	}
}

func TestDetectHierarchy(t *testing.T) {
	f := Detect()
	if f.HasAVX512F && !f.HasAVX {
		t.Fatalf("avx512f without avx: %+v", f)
	}
	if runtime.GOARCH == "amd64" && !f.HasSSE2 {
		t.Fatalf("sse2 is baseline on amd64: %+v", f)
	}
}

func TestNoSIMDEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{val: "", want: false},
		{val: "0", want: false},
		{val: "false", want: false},
		{val: "1", want: true},
		{val: "true", want: true},
		{val: "yes", want: true},
	}
	for _, tt := range tests {
		t.Run("value="+tt.val, func(t *testing.T) {
			t.Setenv(EnvNoSIMD, tt.val)
			if got := NoSIMDEnv(); got != tt.want {
				t.Fatalf("NoSIMDEnv()=%v want %v", got, tt.want)
			}
		})
	}
}
