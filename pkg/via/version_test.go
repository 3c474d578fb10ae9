package via

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seagrayinc/oledcfg/pkg/hid"
)

func TestProtocolVersion(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.Respond([]byte{0x00, CmdGetProtocolVersion, 0x0C})

	ver, ok := NewTransport(dev).ProtocolVersion()
	require.True(t, ok)
	assert.EqualValues(t, 0x0C, ver)

	writes := dev.Writes()
	require.Len(t, writes, 1)
	assert.EqualValues(t, CmdGetProtocolVersion, writes[0][1])
}

func TestProtocolVersionShortResponse(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.Respond([]byte{0x00, CmdGetProtocolVersion})

	_, ok := NewTransport(dev).ProtocolVersion()
	assert.False(t, ok)
}

func TestProtocolVersionNoResponse(t *testing.T) {
	dev := hid.NewMockDevice()

	_, ok := NewTransport(dev).ProtocolVersion()
	assert.False(t, ok)
}

func TestProtocolVersionWriteFailure(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.FailWrites(errors.New("permission denied"))

	_, ok := NewTransport(dev).ProtocolVersion()
	assert.False(t, ok)
}
