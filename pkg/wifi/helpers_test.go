package wifi_test

import (
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

type fakeContents struct {
	id        uint8
	available bool
	body      []byte
	err       error
	builds    int
}

func (f *fakeContents) PacketIdentifier() uint8 { return f.id }
func (f *fakeContents) Available() bool         { return f.available }

func (f *fakeContents) FillUserData(packet *ccsds.Packet) error {
	f.builds++
	for _, b := range f.body {
		packet.WriteByte(b)
	}
	return f.err
}

type fakeHandler struct {
	id      uint8
	accept  bool
	handled int
}

func (f *fakeHandler) PacketIdentifier() uint8 { return f.id }

func (f *fakeHandler) HandleUserData(packet *ccsds.Packet) bool {
	f.handled++
	return f.accept
}

type staticIdentifiers []uint8

func (s staticIdentifiers) Identifiers() []uint8 { return s }

func telecommand(id uint8, args ...byte) *ccsds.Packet {
	return ccsds.NewTelecommandPacket(ccsds.SecondaryHeader{PacketIdentifier: id}, args...)
}
