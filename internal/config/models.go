package config

import "fmt"

// Catalog is the device catalog: the keyboards oledcfg knows how to talk to
// and how their panels are laid out. The USB identity and panel geometry are
// catalog data, not protocol constants; the firmware only ever sees packed
// bytes.
type Catalog struct {
	Version   int                  `yaml:"version"`
	Keyboards map[string]*Keyboard `yaml:"keyboards"` // keyed by short name
}

// Keyboard describes one keyboard model.
type Keyboard struct {
	VendorID  uint16           `yaml:"vendor_id"`
	ProductID uint16           `yaml:"product_id"`
	Panels    map[string]Panel `yaml:"panels"` // keyed by panel name ("left", "right")
}

// Panel is a panel's pixel geometry.
type Panel struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultCatalog returns the built-in catalog. It ships with the Lily58's
// stock VIA firmware identity and its two 128x32 panels.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Version: 1,
		Keyboards: map[string]*Keyboard{
			"lily58": {
				VendorID:  0x04D8,
				ProductID: 0xEB2D,
				Panels: map[string]Panel{
					"left":  {Width: 128, Height: 32},
					"right": {Width: 128, Height: 32},
				},
			},
		},
	}
}

// Keyboard looks up a catalog entry by name.
func (c *Catalog) Keyboard(name string) (*Keyboard, error) {
	kb, ok := c.Keyboards[name]
	if !ok {
		return nil, fmt.Errorf("keyboard %q is not in the catalog", name)
	}
	return kb, nil
}

// Panel looks up a panel's geometry by name.
func (k *Keyboard) Panel(name string) (Panel, error) {
	p, ok := k.Panels[name]
	if !ok {
		return Panel{}, fmt.Errorf("keyboard has no %q panel", name)
	}
	return p, nil
}
