package oled

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seagrayinc/oledcfg/pkg/hid"
	"github.com/seagrayinc/oledcfg/pkg/via"
)

// fastSession keeps the lock-step timing short enough for tests.
func fastSession(dev hid.Device) *Session {
	return &Session{
		Transport:  via.NewTransport(dev),
		AckTimeout: 25 * time.Millisecond,
		ChunkDelay: time.Millisecond,
	}
}

// ack is an arbitrary non-empty report; its content is never examined.
var ack = []byte{0x00, 0x40, 0x01}

func queueAcks(dev *hid.MockDevice, n int) {
	for i := 0; i < n; i++ {
		dev.Respond(ack)
	}
}

func TestSendFullPanelBitmap(t *testing.T) {
	dev := hid.NewMockDevice()
	queueAcks(dev, 20) // 19 data chunks + completion

	packed := make([]byte, 512) // 128x32 panel
	for i := range packed {
		packed[i] = byte(i)
	}

	require.NoError(t, fastSession(dev).Send(PanelLeft, packed))

	writes := dev.Writes()
	require.Len(t, writes, 20)

	for i, report := range writes[:19] {
		require.Len(t, report, via.ReportLen)
		assert.EqualValues(t, via.ReportID, report[0])
		assert.EqualValues(t, via.CmdOLED, report[1])
		assert.EqualValues(t, PanelLeft, report[2])
		assert.EqualValues(t, i, report[3], "chunk index")
		assert.NotEqualValues(t, 0xFF, report[3], "data chunk must not carry the sentinel")
	}

	// First chunk carries bytes 0..27.
	assert.Equal(t, packed[:28], writes[0][4:32])

	// Final data chunk carries the 8 leftover bytes, zero-padded.
	last := writes[18]
	assert.Equal(t, packed[504:], last[4:12])
	assert.Equal(t, make([]byte, 20), last[12:32])

	// Completion report: sentinel index, empty payload.
	completion := writes[19]
	assert.EqualValues(t, via.CmdOLED, completion[1])
	assert.EqualValues(t, PanelLeft, completion[2])
	assert.EqualValues(t, 0xFF, completion[3])
	assert.Equal(t, make([]byte, 28), completion[4:32])
}

func TestSendEmptyBitmap(t *testing.T) {
	dev := hid.NewMockDevice()
	queueAcks(dev, 1)

	require.NoError(t, fastSession(dev).Send(PanelRight, nil))

	writes := dev.Writes()
	require.Len(t, writes, 1, "empty bitmap sends only the completion report")
	assert.EqualValues(t, PanelRight, writes[0][2])
	assert.EqualValues(t, 0xFF, writes[0][3])
}

func TestSendEmptyBitmapCompletionNotAcked(t *testing.T) {
	dev := hid.NewMockDevice()

	err := fastSession(dev).Send(PanelLeft, nil)
	assert.ErrorIs(t, err, ErrCompletionNotAcked)
}

func TestSendFirstChunkNotAcked(t *testing.T) {
	dev := hid.NewMockDevice()

	err := fastSession(dev).Send(PanelLeft, make([]byte, 100))

	var chunkErr *ChunkError
	require.ErrorAs(t, err, &chunkErr)
	assert.Equal(t, 0, chunkErr.Index)
	assert.Len(t, dev.Writes(), 1, "transfer must stop after the first missed ack")
}

func TestSendCompletionNotAcked(t *testing.T) {
	dev := hid.NewMockDevice()
	queueAcks(dev, 1) // ack the single data chunk, stay silent afterwards

	err := fastSession(dev).Send(PanelLeft, make([]byte, 5))
	assert.ErrorIs(t, err, ErrCompletionNotAcked)
	assert.Len(t, dev.Writes(), 2)
}

func TestSendBitmapTooLarge(t *testing.T) {
	dev := hid.NewMockDevice()

	packed := make([]byte, 255*ChunkSize+1) // 256 chunks
	err := fastSession(dev).Send(PanelLeft, packed)

	var tooLarge *BitmapTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 256, tooLarge.Chunks)
	assert.Empty(t, dev.Writes(), "size guard must reject before any I/O")
}

func TestSendLargestAddressableBitmap(t *testing.T) {
	dev := hid.NewMockDevice()
	queueAcks(dev, 256) // 255 data chunks + completion

	packed := make([]byte, 255*ChunkSize)
	require.NoError(t, fastSession(dev).Send(PanelLeft, packed))

	writes := dev.Writes()
	require.Len(t, writes, 256)
	assert.EqualValues(t, 254, writes[254][3], "last data chunk index")
	assert.EqualValues(t, 0xFF, writes[255][3])
}

func TestSendWriteFailure(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.FailWrites(errors.New("unplugged"))

	err := fastSession(dev).Send(PanelLeft, make([]byte, 5))
	assert.ErrorContains(t, err, "unplugged")
}

func TestPanelStateApply(t *testing.T) {
	dev := hid.NewMockDevice()
	queueAcks(dev, 2) // one data chunk + completion

	geom := Geometry{Width: 8, Height: 2}
	state := NewPanelState(PanelRight, geom)
	assert.Nil(t, state.LastPacked())

	b := NewBitmap(8, 2)
	b.Set(0, 0, true)

	require.NoError(t, state.Apply(fastSession(dev), b))
	assert.Equal(t, b.Pack(), state.LastPacked())
}

func TestPanelStateApplyGeometryMismatch(t *testing.T) {
	dev := hid.NewMockDevice()
	state := NewPanelState(PanelLeft, Geometry{Width: 128, Height: 32})

	err := state.Apply(fastSession(dev), NewBitmap(64, 32))
	assert.Error(t, err)
	assert.Empty(t, dev.Writes())
	assert.Nil(t, state.LastPacked())
}
