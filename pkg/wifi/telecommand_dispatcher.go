package wifi

import (
	"fmt"

	log "github.com/apex/log"
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
	om "github.com/justincpresley/esat-wifi/util/orderedmap"
)

// TelecommandPacketDispatcher routes telecommand packets to the handler
// registered for their secondary header packet identifier.
type TelecommandPacketDispatcher struct {
	handlers *om.OrderedMap[uint8, TelecommandPacketHandler]
	logger   *log.Entry
}

func NewTelecommandPacketDispatcher() *TelecommandPacketDispatcher {
	return &TelecommandPacketDispatcher{
		handlers: om.New[uint8, TelecommandPacketHandler](),
		logger:   log.WithField("module", "wifi"),
	}
}

func (d *TelecommandPacketDispatcher) Add(h TelecommandPacketHandler) error {
	id := h.PacketIdentifier()
	if d.handlers.Has(id) {
		return fmt.Errorf("telecommand 0x%02X: %w", id, ErrDuplicateIdentifier)
	}
	d.handlers.Set(id, h)
	return nil
}

// Identifiers lists the handler identifiers in registration order.
func (d *TelecommandPacketDispatcher) Identifiers() []uint8 {
	return d.handlers.Keys()
}

// Dispatch hands packet to the matching handler and reports whether it
// was accepted. Packets that are not telecommands are never accepted.
func (d *TelecommandPacketDispatcher) Dispatch(packet *ccsds.Packet) bool {
	if packet.PacketType() != ccsds.Telecommand {
		d.logger.Warnf("Refused to dispatch a %s packet.", packet.PacketType())
		return false
	}
	id := packet.SecondaryHeader().PacketIdentifier
	h, ok := d.handlers.Get(id)
	if !ok {
		d.logger.Warnf("No telecommand handler for 0x%02X.", id)
		return false
	}
	packet.Rewind()
	return h.HandleUserData(packet)
}
