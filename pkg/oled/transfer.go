package oled

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seagrayinc/oledcfg/internal/logging"
	"github.com/seagrayinc/oledcfg/pkg/via"
)

const (
	// ChunkSize is the bitmap payload per report: 32 bytes minus the
	// report ID, command, panel selector and chunk index.
	ChunkSize = 28

	// completionIndex marks the end-of-transfer report. Data chunks are
	// indexed 0..254, so the sentinel can never collide with one.
	completionIndex = 0xFF

	// maxChunks is the largest chunk count addressable by the one-byte
	// chunk index.
	maxChunks = 255

	defaultAckTimeout = 500 * time.Millisecond
	defaultChunkDelay = 10 * time.Millisecond
)

// BitmapTooLargeError reports a bitmap needing more chunks than the
// one-byte chunk index can address. Nothing was written to the device.
type BitmapTooLargeError struct {
	PackedLen int
	Chunks    int
}

func (e *BitmapTooLargeError) Error() string {
	return fmt.Sprintf("oled: packed bitmap of %d bytes needs %d chunks, limit is %d", e.PackedLen, e.Chunks, maxChunks)
}

// ChunkError reports a chunk the firmware never acknowledged. The transfer
// is aborted; there is no chunk-level retry, the caller resends the whole
// bitmap if it wants another attempt.
type ChunkError struct {
	Index int
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("oled: chunk %d was not acknowledged", e.Index)
}

// ErrCompletionNotAcked means every chunk was acknowledged but the final
// completion report was not.
var ErrCompletionNotAcked = errors.New("oled: completion report was not acknowledged")

// Session drives chunked bitmap transfers over one VIA transport. It owns
// the transport exclusively for the duration of a Send; concurrent sends to
// the same device, even to different panels, must be serialized by the
// caller.
type Session struct {
	Transport *via.Transport

	// AckTimeout bounds the wait for each acknowledgment; ChunkDelay is
	// the pacing gap between consecutive reports. Zero values take the
	// firmware's expected 500ms and 10ms.
	AckTimeout time.Duration
	ChunkDelay time.Duration
}

// NewSession returns a Session with default timing.
func NewSession(t *via.Transport) *Session {
	return &Session{Transport: t}
}

// Send transmits a packed bitmap to one panel. Each chunk is written and
// acknowledged in strict sequence, then a completion report carrying the
// 0xFF sentinel index closes the transfer. One missed acknowledgment aborts
// the whole transfer. A killed or failed transfer may leave partial state
// in the firmware's receive buffer; there is no rollback, resending the
// bitmap overwrites it.
func (s *Session) Send(panel Panel, packed []byte) error {
	chunks := (len(packed) + ChunkSize - 1) / ChunkSize
	if chunks > maxChunks {
		return &BitmapTooLargeError{PackedLen: len(packed), Chunks: chunks}
	}

	ackTimeout := s.AckTimeout
	if ackTimeout == 0 {
		ackTimeout = defaultAckTimeout
	}
	delay := s.ChunkDelay
	if delay == 0 {
		delay = defaultChunkDelay
	}

	for i := 0; i < chunks; i++ {
		end := (i + 1) * ChunkSize
		if end > len(packed) {
			end = len(packed)
		}

		report := make([]byte, via.ReportLen)
		report[0] = via.ReportID
		report[1] = via.CmdOLED
		report[2] = byte(panel)
		report[3] = byte(i)
		copy(report[4:], packed[i*ChunkSize:end])

		if err := s.Transport.WriteReport(report); err != nil {
			return err
		}
		// Any non-empty report counts as the acknowledgment; the
		// firmware does not echo meaningful status bytes.
		if resp := s.Transport.ReadReport(ackTimeout); resp == nil {
			return &ChunkError{Index: i}
		}
		logging.Debug("chunk acknowledged",
			zap.Stringer("panel", panel),
			zap.Int("chunk", i),
		)

		// Pacing gap so the firmware's receive buffer is not overrun.
		time.Sleep(delay)
	}

	completion := make([]byte, via.ReportLen)
	completion[0] = via.ReportID
	completion[1] = via.CmdOLED
	completion[2] = byte(panel)
	completion[3] = completionIndex

	if err := s.Transport.WriteReport(completion); err != nil {
		return err
	}
	if resp := s.Transport.ReadReport(ackTimeout); resp == nil {
		return ErrCompletionNotAcked
	}

	logging.Info("bitmap transferred",
		zap.Stringer("panel", panel),
		zap.Int("bytes", len(packed)),
		zap.Int("chunks", chunks),
	)
	return nil
}
