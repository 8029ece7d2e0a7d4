//go:build !amd64 && !arm64

package psimd

func init() {
	// Other architectures have no detection and report the 16-byte baseline.
	hostWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	hostName = "scalar"
}
