package office

import (
	"errors"
	"fmt"
)

// Domain errors for the office package.
//
// ErrNilDocument and ErrUnsupportedFormat both wrap ErrInvalidArgument:
//
//	if errors.Is(err, office.ErrInvalidArgument) {
//	    // caller passed something the device cannot work with
//	}
var (
	// ErrInvalidArgument is the root of all argument errors.
	ErrInvalidArgument = errors.New("office: invalid argument")

	// ErrNilDocument is returned when Print is given no document while the device is on.
	ErrNilDocument = fmt.Errorf("%w: document is nil", ErrInvalidArgument)

	// ErrUnsupportedFormat is returned when Scan is asked for an unknown format.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format", ErrInvalidArgument)

	// ErrDeviceNotFound is returned when a device ID is not in the registry.
	ErrDeviceNotFound = errors.New("office: device not found")

	// ErrDeviceExists is returned when adding a device whose ID is already registered.
	ErrDeviceExists = errors.New("office: device already exists")

	// ErrInvalidDevice is returned when a device cannot be registered (nil or empty ID).
	ErrInvalidDevice = errors.New("office: invalid device")

	// ErrWrongKind is returned when a registered device is not of the requested kind.
	ErrWrongKind = errors.New("office: wrong device kind")
)
