package via

import (
	"time"

	"go.uber.org/zap"

	"github.com/seagrayinc/oledcfg/internal/logging"
)

// versionTimeout bounds the wait for a version-query response.
const versionTimeout = time.Second

// ProtocolVersion asks the firmware for its VIA protocol version, found at
// byte 2 of the response. The call doubles as a capability probe during
// discovery, so every failure mode -- write error, timeout, short
// response -- reports plain absence rather than an error.
func (t *Transport) ProtocolVersion() (uint8, bool) {
	if err := t.WriteReport(NewReport(CmdGetProtocolVersion)); err != nil {
		logging.Debug("version request failed", zap.Error(err))
		return 0, false
	}

	resp := t.ReadReport(versionTimeout)
	if len(resp) < 3 {
		logging.Debug("no protocol version in response", zap.Int("len", len(resp)))
		return 0, false
	}
	return resp[2], true
}
