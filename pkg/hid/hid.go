// Package hid abstracts enumeration and report I/O for USB HID devices.
//
// The default backend is the hidapi binding (sstallion/go-hid). A pure-Go
// backend built on rafaelmartins.com/p/usbhid is available behind the
// "usbhid" build tag.
package hid

import "time"

// Device represents an opened HID device capable of report I/O.
type Device interface {
	// Write sends one output report. Byte 0 is the report ID.
	Write([]byte) (int, error)

	// Read fills p with the next input report, waiting up to timeout.
	// It returns 0 with a nil error when no report arrived in time;
	// drivers that answer "no data" instead of blocking look the same.
	Read(p []byte, timeout time.Duration) (int, error)

	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
	Interface    int
}

// Manager enumerates and opens HID devices.
type Manager interface {
	// List returns every device enumerating under the given identity,
	// in enumeration order. A single physical device may expose several
	// interfaces and so appear more than once.
	List(vendorID, productID uint16) ([]Info, error)

	Open(info Info) (Device, error)
}

// NewManager returns the HID manager for the compiled-in backend.
func NewManager() (Manager, error) {
	return newManager()
}
