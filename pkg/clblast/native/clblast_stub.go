//go:build !opencl
// +build !opencl

package native

// Open returns ErrNotBuilt when the native library is not compiled in.
func Open() (API, error) {
	return nil, ErrNotBuilt
}
