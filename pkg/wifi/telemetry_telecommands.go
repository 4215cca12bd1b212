package wifi

import (
	"encoding/binary"
	"time"

	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

// TelemetrySwitch is what the enable and disable telemetry telecommands
// act on.
type TelemetrySwitch interface {
	EnableTelemetry(id uint8) error
	DisableTelemetry(id uint8) error
}

// EnableTelemetryTelecommand takes one argument byte: the telemetry
// identifier to enable.
type EnableTelemetryTelecommand struct {
	identifier uint8
	target     TelemetrySwitch
}

func NewEnableTelemetryTelecommand(identifier uint8, target TelemetrySwitch) *EnableTelemetryTelecommand {
	return &EnableTelemetryTelecommand{identifier: identifier, target: target}
}

func (t *EnableTelemetryTelecommand) PacketIdentifier() uint8 { return t.identifier }

func (t *EnableTelemetryTelecommand) HandleUserData(packet *ccsds.Packet) bool {
	id, _ := packet.ReadByte()
	if packet.TriedToReadBeyondLength() {
		return false
	}
	return t.target.EnableTelemetry(id) == nil
}

// DisableTelemetryTelecommand takes one argument byte: the telemetry
// identifier to disable.
type DisableTelemetryTelecommand struct {
	identifier uint8
	target     TelemetrySwitch
}

func NewDisableTelemetryTelecommand(identifier uint8, target TelemetrySwitch) *DisableTelemetryTelecommand {
	return &DisableTelemetryTelecommand{identifier: identifier, target: target}
}

func (t *DisableTelemetryTelecommand) PacketIdentifier() uint8 { return t.identifier }

func (t *DisableTelemetryTelecommand) HandleUserData(packet *ccsds.Packet) bool {
	id, _ := packet.ReadByte()
	if packet.TriedToReadBeyondLength() {
		return false
	}
	return t.target.DisableTelemetry(id) == nil
}

// Clock is what the set time telecommand acts on.
type Clock interface {
	SetTime(t time.Time)
}

// SetTimeTelecommand takes a seven byte timestamp: the year as a big
// endian 16-bit word, then month, day, hours, minutes and seconds. The
// time is taken as UTC.
type SetTimeTelecommand struct {
	identifier uint8
	target     Clock
}

func NewSetTimeTelecommand(identifier uint8, target Clock) *SetTimeTelecommand {
	return &SetTimeTelecommand{identifier: identifier, target: target}
}

func (t *SetTimeTelecommand) PacketIdentifier() uint8 { return t.identifier }

func (t *SetTimeTelecommand) HandleUserData(packet *ccsds.Packet) bool {
	timestamp, ok := readTimestamp(packet)
	if !ok {
		return false
	}
	t.target.SetTime(timestamp)
	return true
}

func readTimestamp(packet *ccsds.Packet) (time.Time, bool) {
	var fields [7]byte
	for i := range fields {
		fields[i], _ = packet.ReadByte()
	}
	if packet.TriedToReadBeyondLength() {
		return time.Time{}, false
	}
	year := int(binary.BigEndian.Uint16(fields[0:2]))
	month, day := int(fields[2]), int(fields[3])
	hours, minutes, seconds := int(fields[4]), int(fields[5]), int(fields[6])
	if month < 1 || month > 12 || day < 1 || hours > 23 || minutes > 59 || seconds > 59 {
		return time.Time{}, false
	}
	ret := time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.UTC)
	// time.Date normalizes days past the end of the month
	if ret.Day() != day {
		return time.Time{}, false
	}
	return ret, true
}
