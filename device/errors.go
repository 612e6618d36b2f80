package device

import "fmt"

// UnknownDeviceError indicates a catalog lookup by IDCODE or name found no
// registered device.
type UnknownDeviceError struct {
	IDCode uint32
	Name   string
}

func (e *UnknownDeviceError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("device: unknown device %q", e.Name)
	}
	return fmt.Sprintf("device: unknown device IDCODE 0x%08X", e.IDCode)
}

// IsUnknownDevice reports whether err is a *UnknownDeviceError.
func IsUnknownDevice(err error) bool {
	_, ok := err.(*UnknownDeviceError)
	return ok
}
