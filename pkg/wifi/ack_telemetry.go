package wifi

import (
	log "github.com/apex/log"
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

// HandlerIdentifiers lists telecommand handler identifiers in registration
// order.
type HandlerIdentifiers interface {
	Identifiers() []uint8
}

// AckTelemetry acknowledges the last accepted telecommand. It is armed by
// a successful dispatch and disarmed by the next packet it fills, so each
// acknowledgement goes out at most once. Arming it again before that
// packet is built replaces the stored header.
type AckTelemetry struct {
	identifier uint8
	handlers   HandlerIdentifiers
	armed      bool
	header     ccsds.SecondaryHeader
	logger     *log.Entry
}

func NewAckTelemetry(identifier uint8, handlers HandlerIdentifiers) *AckTelemetry {
	return &AckTelemetry{
		identifier: identifier,
		handlers:   handlers,
		logger:     log.WithField("module", "wifi"),
	}
}

func (a *AckTelemetry) PacketIdentifier() uint8 { return a.identifier }

func (a *AckTelemetry) Available() bool { return a.armed }

func (a *AckTelemetry) Arm(header ccsds.SecondaryHeader) {
	if a.armed {
		a.logger.Debugf("Acknowledgement of 0x%02X replaced by 0x%02X.", a.header.PacketIdentifier, header.PacketIdentifier)
	}
	a.header = header
	a.armed = true
}

// FillUserData writes every handler identifier compatible with the stored
// header. An unarmed acknowledgement has an empty body.
func (a *AckTelemetry) FillUserData(packet *ccsds.Packet) error {
	if a.armed {
		for _, id := range a.handlers.Identifiers() {
			if compatible(id, a.header) {
				packet.WriteByte(id)
			}
		}
	}
	a.armed = false
	a.header = ccsds.SecondaryHeader{}
	if packet.TriedToWriteBeyondCapacity() {
		return ErrPacketOverflow
	}
	return nil
}

func compatible(handler uint8, header ccsds.SecondaryHeader) bool {
	return handler == header.PacketIdentifier
}
