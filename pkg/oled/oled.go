// Package oled transfers packed monochrome bitmaps to the auxiliary OLED
// panels of a split keyboard, carried over the VIA raw HID channel.
//
// A transfer report extends the VIA layout:
//
//	offset 0      report ID (0x00)
//	offset 1      command (0x40)
//	offset 2      panel selector: 0x01 left, 0x02 right
//	offset 3      chunk index 0..254, or 0xFF for the completion report
//	offset 4..31  up to 28 bytes of packed bitmap data, zero-padded
package oled

import (
	"fmt"
	"strings"
)

// Panel selects one of the two displays, encoded on the wire as its value.
type Panel byte

const (
	PanelLeft  Panel = 0x01
	PanelRight Panel = 0x02
)

func (p Panel) String() string {
	switch p {
	case PanelLeft:
		return "left"
	case PanelRight:
		return "right"
	}
	return fmt.Sprintf("panel(0x%02X)", byte(p))
}

// ParsePanel maps a user-facing panel name to its wire code.
func ParsePanel(s string) (Panel, error) {
	switch strings.ToLower(s) {
	case "left":
		return PanelLeft, nil
	case "right":
		return PanelRight, nil
	}
	return 0, fmt.Errorf("oled: unknown panel %q (want left or right)", s)
}

// Geometry is the pixel size of a panel. It is catalog data, not a protocol
// constant: the firmware only sees packed bytes.
type Geometry struct {
	Width  int
	Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// PackedLen returns the packed byte length of a full-panel bitmap.
func (g Geometry) PackedLen() int {
	return (g.Width*g.Height + 7) / 8
}
