package opencl

import (
	"errors"
	"fmt"
)

// DeviceType describes the class of an OpenCL device.
type DeviceType string

const (
	DeviceTypeGPU         DeviceType = "GPU"
	DeviceTypeCPU         DeviceType = "CPU"
	DeviceTypeAccelerator DeviceType = "Accelerator"
	DeviceTypeDefault     DeviceType = "Default"
	DeviceTypeUnknown     DeviceType = "Unknown"
)

// DeviceInfo captures metadata about an OpenCL device.
type DeviceInfo struct {
	Name            string
	Vendor          string
	Version         string
	Type            DeviceType
	MaxComputeUnits uint32
	GlobalMemBytes  uint64
	DoublePrecision bool
}

// PlatformInfo captures metadata about an OpenCL platform and its devices.
type PlatformInfo struct {
	Name    string
	Vendor  string
	Version string
	Devices []DeviceInfo
}

// AutoDevice asks Select to pick a device: GPU first, then CPU, then the first
// device of any kind.
const AutoDevice = -1

var (
	// ErrNoDevices indicates that no usable OpenCL devices were found.
	ErrNoDevices = errors.New("no OpenCL devices found")
	// ErrNotBuilt indicates the binary was built without OpenCL support.
	ErrNotBuilt = errors.New("opencl support requires building with '-tags opencl'")
)

// Select resolves a platform and device index. With device set to AutoDevice
// the platform index is ignored unless it is non-negative, in which case the
// automatic choice is limited to that platform.
func Select(platforms []PlatformInfo, platform, device int) (int, int, error) {
	if device != AutoDevice {
		if platform < 0 || platform >= len(platforms) {
			return 0, 0, fmt.Errorf("platform %d out of range (%d platforms)", platform, len(platforms))
		}
		if device < 0 || device >= len(platforms[platform].Devices) {
			return 0, 0, fmt.Errorf("device %d out of range on platform %q (%d devices)",
				device, platforms[platform].Name, len(platforms[platform].Devices))
		}
		return platform, device, nil
	}

	candidates := func(pi int) bool { return platform < 0 || pi == platform }
	for _, want := range []DeviceType{DeviceTypeGPU, DeviceTypeCPU, ""} {
		for pi, p := range platforms {
			if !candidates(pi) {
				continue
			}
			for di, d := range p.Devices {
				if want == "" || d.Type == want {
					return pi, di, nil
				}
			}
		}
	}
	return 0, 0, ErrNoDevices
}
