package ccsds_test

import (
	"testing"

	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
	assert "github.com/stretchr/testify/assert"
)

func TestWriteWithinCapacity(t *testing.T) {
	p := ccsds.NewPacket(3)
	p.WriteByte(0x10)
	p.WriteByte(0x11)
	assert.Equal(t, []byte{0x10, 0x11}, p.UserData())
	assert.False(t, p.TriedToWriteBeyondCapacity())
}

func TestWriteBeyondCapacity(t *testing.T) {
	p := ccsds.NewPacket(1)
	p.WriteByte(0x10)
	p.WriteByte(0x11)
	assert.Equal(t, []byte{0x10}, p.UserData())
	assert.True(t, p.TriedToWriteBeyondCapacity())
	p.Clear()
	assert.False(t, p.TriedToWriteBeyondCapacity())
	assert.Equal(t, 0, p.Length())
	assert.Equal(t, 1, p.Capacity())
}

func TestReadCursor(t *testing.T) {
	p := ccsds.NewTelecommandPacket(ccsds.SecondaryHeader{PacketIdentifier: 0x20}, 7)
	assert.Equal(t, ccsds.Telecommand, p.PacketType())
	assert.Equal(t, uint8(0x20), p.SecondaryHeader().PacketIdentifier)
	b, _ := p.ReadByte()
	assert.Equal(t, byte(7), b)
	assert.False(t, p.TriedToReadBeyondLength())
	b, _ = p.ReadByte()
	assert.Equal(t, byte(0), b)
	assert.True(t, p.TriedToReadBeyondLength())
	p.Rewind()
	assert.False(t, p.TriedToReadBeyondLength())
	b, _ = p.ReadByte()
	assert.Equal(t, byte(7), b)
}

func TestBytes(t *testing.T) {
	p := ccsds.NewPacket(4)
	p.SetSecondaryHeader(ccsds.SecondaryHeader{PacketIdentifier: 0x05})
	p.WriteByte(0x11)
	assert.Equal(t, []byte{0, 0x05, 0x11}, p.Bytes())
	assert.Equal(t, "telemetry", p.PacketType().String())
}
