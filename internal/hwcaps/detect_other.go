//go:build !amd64

package hwcaps

import "runtime"

// No x86 vector tiers exist off amd64.
func detectFeatures() Features {
	return Features{Arch: runtime.GOARCH}
}
