package via

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/seagrayinc/oledcfg/internal/logging"
	"github.com/seagrayinc/oledcfg/pkg/hid"
)

// Identity is the USB identity a keyboard enumerates under. It comes from
// the device catalog, not from the protocol.
type Identity struct {
	VendorID  uint16
	ProductID uint16
}

func (id Identity) String() string {
	return fmt.Sprintf("%04x:%04x", id.VendorID, id.ProductID)
}

// Keyboard is a discovered keyboard holding an open transport that answered
// the protocol handshake. The caller owns the transport and closes it once.
type Keyboard struct {
	*Transport
	Info            hid.Info
	ProtocolVersion uint8
}

// ErrNotFound means no enumerated device answered the protocol handshake.
var ErrNotFound = errors.New("via: no device answered the protocol handshake")

// Discover enumerates devices matching id and returns the first one that
// answers the version handshake. A split keyboard exposes several HID
// interfaces under the same identity and only the raw configuration
// interface speaks VIA, so every candidate is probed in enumeration order
// rather than trusting the first path. Candidates that fail to open or to
// handshake are skipped; their handles are closed.
func Discover(mgr hid.Manager, id Identity) (*Keyboard, error) {
	infos, err := mgr.List(id.VendorID, id.ProductID)
	if err != nil {
		return nil, fmt.Errorf("via: enumeration failed: %w", err)
	}
	logging.Debug("enumerated candidates",
		zap.Stringer("identity", id),
		zap.Int("count", len(infos)),
	)

	for _, info := range infos {
		dev, err := mgr.Open(info)
		if err != nil {
			logging.Debug("candidate open failed",
				zap.String("path", info.Path),
				zap.Error(err),
			)
			continue
		}

		t := NewTransport(dev)
		ver, ok := t.ProtocolVersion()
		if !ok {
			logging.Debug("candidate handshake failed", zap.String("path", info.Path))
			_ = t.Close()
			continue
		}

		logging.Info("keyboard found",
			zap.String("path", info.Path),
			zap.String("product", info.Product),
			zap.Uint8("protocol_version", ver),
		)
		return &Keyboard{Transport: t, Info: info, ProtocolVersion: ver}, nil
	}

	return nil, ErrNotFound
}
