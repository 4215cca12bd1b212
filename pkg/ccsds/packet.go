package ccsds

import "time"

type PacketType int

const (
	Telemetry   PacketType = 0
	Telecommand PacketType = 1
)

func (t PacketType) String() string {
	if t == Telecommand {
		return "telecommand"
	}
	return "telemetry"
}

// SecondaryHeader is the per-packet metadata that follows the primary
// header. Only PacketIdentifier is used for routing.
type SecondaryHeader struct {
	MajorVersionNumber uint8
	MinorVersionNumber uint8
	PatchVersionNumber uint8
	Timestamp          time.Time
	PacketIdentifier   uint8
}

// Packet is a fixed-capacity user data field with independent write and
// read cursors. Writes past the capacity are dropped and remembered;
// reads past the written length return zero and are remembered.
type Packet struct {
	typ       PacketType
	header    SecondaryHeader
	data      []byte
	length    int
	readPos   int
	overflow  bool
	underflow bool
}

func NewPacket(capacity int) *Packet {
	return &Packet{data: make([]byte, capacity)}
}

// NewTelecommandPacket is a convenience for building incoming commands.
func NewTelecommandPacket(header SecondaryHeader, userData ...byte) *Packet {
	p := NewPacket(len(userData))
	p.typ = Telecommand
	p.header = header
	for _, b := range userData {
		p.WriteByte(b)
	}
	return p
}

func (p *Packet) PacketType() PacketType               { return p.typ }
func (p *Packet) SetPacketType(t PacketType)           { p.typ = t }
func (p *Packet) SecondaryHeader() SecondaryHeader     { return p.header }
func (p *Packet) SetSecondaryHeader(h SecondaryHeader) { p.header = h }

func (p *Packet) Capacity() int { return len(p.data) }
func (p *Packet) Length() int   { return p.length }

// WriteByte appends b to the user data field. It never returns an error;
// check TriedToWriteBeyondCapacity after a batch of writes.
func (p *Packet) WriteByte(b byte) error {
	if p.length >= len(p.data) {
		p.overflow = true
		return nil
	}
	p.data[p.length] = b
	p.length++
	return nil
}

func (p *Packet) ReadByte() (byte, error) {
	if p.readPos >= p.length {
		p.underflow = true
		return 0, nil
	}
	b := p.data[p.readPos]
	p.readPos++
	return b, nil
}

func (p *Packet) TriedToWriteBeyondCapacity() bool { return p.overflow }
func (p *Packet) TriedToReadBeyondLength() bool    { return p.underflow }

// Rewind moves the read cursor back to the start of the user data.
func (p *Packet) Rewind() {
	p.readPos = 0
	p.underflow = false
}

// Clear empties the user data field and forgets both error flags.
func (p *Packet) Clear() {
	p.length = 0
	p.readPos = 0
	p.overflow = false
	p.underflow = false
}

// UserData returns the written bytes. The slice aliases the packet.
func (p *Packet) UserData() []byte {
	return p.data[:p.length]
}

// Bytes returns a flat copy of the packet for local archival: packet type,
// identifier, then user data. It is not a CCSDS wire encoding.
func (p *Packet) Bytes() []byte {
	ret := make([]byte, 0, 2+p.length)
	ret = append(ret, byte(p.typ), p.header.PacketIdentifier)
	return append(ret, p.UserData()...)
}
