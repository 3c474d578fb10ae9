package via

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seagrayinc/oledcfg/internal/logging"
	"github.com/seagrayinc/oledcfg/pkg/hid"
)

// pollInterval is how often ReadReport retries a read that returned no
// data. Some HID drivers answer "no data" instead of blocking, so the
// transport polls rather than trusting a single long read.
const pollInterval = 10 * time.Millisecond

// ErrClosed is returned by writes on a closed transport.
var ErrClosed = errors.New("via: transport is closed")

// Transport owns an open HID device and exchanges fixed-size VIA reports
// with it. The protocol is strictly lock-step, so a Transport must not be
// shared between concurrent transfers; callers serialize access themselves.
type Transport struct {
	mu     sync.Mutex
	dev    hid.Device
	closed bool
}

// NewTransport wraps an open HID device. The transport takes ownership of
// the device; Close releases it.
func NewTransport(dev hid.Device) *Transport {
	return &Transport{dev: dev}
}

// WriteReport sends a single report. Short reports are zero-padded to
// ReportLen before transmission; anything longer is rejected.
func (t *Transport) WriteReport(report []byte) error {
	if len(report) > ReportLen {
		return fmt.Errorf("via: report is %d bytes, limit is %d", len(report), ReportLen)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}

	buf := make([]byte, ReportLen)
	copy(buf, report)
	logging.Debug("writing report", zap.String("report", FormatReport(buf)))
	if _, err := t.dev.Write(buf); err != nil {
		return fmt.Errorf("via: report write failed: %w", err)
	}
	return nil
}

// ReadReport polls for an incoming report until one arrives or timeout
// elapses. It returns nil on timeout; read errors and empty reads are
// treated the same as silence and retried until the deadline.
func (t *Transport) ReadReport(timeout time.Duration) []byte {
	t.mu.Lock()
	dev, closed := t.dev, t.closed
	t.mu.Unlock()
	if closed {
		return nil
	}

	buf := make([]byte, ReportLen)
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			logging.Debug("read timed out", zap.Duration("timeout", timeout))
			return nil
		}
		step := pollInterval
		if remaining < step {
			step = remaining
		}

		start := time.Now()
		n, err := dev.Read(buf, step)
		if err != nil {
			logging.Debug("read failed", zap.Error(err))
		} else if n > 0 {
			report := make([]byte, n)
			copy(report, buf[:n])
			logging.Debug("read report", zap.String("report", FormatReport(report)))
			return report
		}

		// Backends without a native read timeout may return immediately;
		// keep each attempt at pollInterval so the loop never spins.
		if wait := step - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
	}
}

// Close releases the underlying device. It is idempotent; closing an
// already-closed transport is a no-op.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	return t.dev.Close()
}
