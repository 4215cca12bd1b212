package wifi

import (
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

// TelemetryPacketContents produces the user data of one telemetry packet
// type.
type TelemetryPacketContents interface {
	PacketIdentifier() uint8
	// Available reports whether new contents are ready to be sent.
	Available() bool
	// FillUserData writes the user data field. The write cursor is
	// already at the start of the user data field.
	FillUserData(*ccsds.Packet) error
}

// TelecommandPacketHandler executes one telecommand packet type.
type TelecommandPacketHandler interface {
	PacketIdentifier() uint8
	// HandleUserData reads the arguments from the user data field and
	// reports whether the command was accepted.
	HandleUserData(*ccsds.Packet) bool
}
