package wifi

import (
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

type ConnectionState uint8

const (
	Disconnected ConnectionState = iota
	ConnectingToNetwork
	ConnectingToServer
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case ConnectingToNetwork:
		return "CONNECTING_TO_NETWORK"
	case ConnectingToServer:
		return "CONNECTING_TO_SERVER"
	case Connected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// ConnectionStateReader is implemented by the radio driver.
type ConnectionStateReader interface {
	ReadConnectionState() ConnectionState
}

type ConnectionStateFunc func() ConnectionState

func (f ConnectionStateFunc) ReadConnectionState() ConnectionState { return f() }

// ConnectionStateTelemetry reports the radio connection state. It always
// has something to send.
type ConnectionStateTelemetry struct {
	identifier uint8
	radio      ConnectionStateReader
}

func NewConnectionStateTelemetry(identifier uint8, radio ConnectionStateReader) *ConnectionStateTelemetry {
	return &ConnectionStateTelemetry{identifier: identifier, radio: radio}
}

func (c *ConnectionStateTelemetry) PacketIdentifier() uint8 { return c.identifier }
func (c *ConnectionStateTelemetry) Available() bool         { return true }

func (c *ConnectionStateTelemetry) FillUserData(packet *ccsds.Packet) error {
	packet.WriteByte(byte(c.radio.ReadConnectionState()))
	if packet.TriedToWriteBeyondCapacity() {
		return ErrPacketOverflow
	}
	return nil
}
