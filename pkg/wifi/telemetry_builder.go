package wifi

import (
	"fmt"
	"time"

	log "github.com/apex/log"
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
	bitset "github.com/justincpresley/esat-wifi/util/bitset"
	om "github.com/justincpresley/esat-wifi/util/orderedmap"
)

// TelemetryPacketBuilder keeps the registered telemetry contents and fills
// packets on their behalf.
type TelemetryPacketBuilder struct {
	contents *om.OrderedMap[uint8, TelemetryPacketContents]
	version  ccsds.SecondaryHeader
	clock    func() time.Time
	logger   *log.Entry
}

func NewTelemetryPacketBuilder(version ccsds.SecondaryHeader, clock func() time.Time) *TelemetryPacketBuilder {
	if clock == nil {
		clock = time.Now
	}
	return &TelemetryPacketBuilder{
		contents: om.New[uint8, TelemetryPacketContents](),
		version:  version,
		clock:    clock,
		logger:   log.WithField("module", "wifi"),
	}
}

func (b *TelemetryPacketBuilder) Add(c TelemetryPacketContents) error {
	id := c.PacketIdentifier()
	if b.contents.Has(id) {
		return fmt.Errorf("telemetry 0x%02X: %w", id, ErrDuplicateIdentifier)
	}
	b.contents.Set(id, c)
	return nil
}

func (b *TelemetryPacketBuilder) Has(id uint8) bool {
	return b.contents.Has(id)
}

// Available is the set of identifiers whose contents currently report
// something to send.
func (b *TelemetryPacketBuilder) Available() bitset.BitSet {
	var ret bitset.BitSet
	for e := b.contents.Front(); e != nil; e = e.Next() {
		if e.Value.Value.Available() {
			ret.Set(e.Value.Key)
		}
	}
	return ret
}

// Build fills packet with the telemetry identified by id. The packet is
// cleared and its header rewritten first.
func (b *TelemetryPacketBuilder) Build(packet *ccsds.Packet, id uint8) error {
	c, ok := b.contents.Get(id)
	if !ok {
		return fmt.Errorf("telemetry 0x%02X: %w", id, ErrNoTelemetryContents)
	}
	packet.Clear()
	packet.SetPacketType(ccsds.Telemetry)
	header := b.version
	header.Timestamp = b.clock()
	header.PacketIdentifier = id
	packet.SetSecondaryHeader(header)
	if err := c.FillUserData(packet); err != nil {
		return fmt.Errorf("telemetry 0x%02X: %w", id, err)
	}
	if packet.TriedToWriteBeyondCapacity() {
		return fmt.Errorf("telemetry 0x%02X: %w", id, ErrPacketOverflow)
	}
	b.logger.Debugf("Built telemetry 0x%02X with %d bytes.", id, packet.Length())
	return nil
}
