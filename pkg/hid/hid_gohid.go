//go:build !usbhid

package hid

import (
	"time"

	gohid "github.com/sstallion/go-hid"
)

type gohidManager struct{}

func newManager() (Manager, error) {
	if err := gohid.Init(); err != nil {
		return nil, err
	}
	return &gohidManager{}, nil
}

func (m *gohidManager) List(vendorID, productID uint16) ([]Info, error) {
	var out []Info
	err := gohid.Enumerate(vendorID, productID, func(d *gohid.DeviceInfo) error {
		out = append(out, Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Product:      d.ProductStr,
			Manufacturer: d.MfrStr,
			Interface:    d.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		// hidapi reports an empty match set as an error; callers expect
		// an empty list so they can report "not found" themselves.
		if len(out) == 0 {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

func (m *gohidManager) Open(info Info) (Device, error) {
	d, err := gohid.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &gohidDevice{d}, nil
}

type gohidDevice struct{ d *gohid.Device }

func (d *gohidDevice) Write(p []byte) (int, error) {
	return d.d.Write(p)
}

func (d *gohidDevice) Read(p []byte, timeout time.Duration) (int, error) {
	// hid_read_timeout returns 0 both on timeout and on an empty read.
	return d.d.ReadWithTimeout(p, timeout)
}

func (d *gohidDevice) Close() error { return d.d.Close() }
