package oled

import "fmt"

// PanelState holds one panel's geometry and the packed form of whatever was
// last sent to it. Each panel gets its own instance, addressed by Panel.
type PanelState struct {
	Panel    Panel
	Geometry Geometry

	lastPacked []byte
}

// NewPanelState returns the state for one panel.
func NewPanelState(p Panel, g Geometry) *PanelState {
	return &PanelState{Panel: p, Geometry: g}
}

// Apply packs the bitmap and sends it through the session, recording the
// packed form on success. The bitmap must match the panel's geometry; any
// rotation or resampling happens before this point.
func (ps *PanelState) Apply(s *Session, b *Bitmap) error {
	if b.Width != ps.Geometry.Width || b.Height != ps.Geometry.Height {
		return fmt.Errorf("oled: bitmap is %dx%d, %s panel is %s", b.Width, b.Height, ps.Panel, ps.Geometry)
	}
	packed := b.Pack()
	if err := s.Send(ps.Panel, packed); err != nil {
		return err
	}
	ps.lastPacked = packed
	return nil
}

// LastPacked returns the packed bitmap from the most recent successful
// Apply, or nil if nothing was sent yet.
func (ps *PanelState) LastPacked() []byte {
	return ps.lastPacked
}
