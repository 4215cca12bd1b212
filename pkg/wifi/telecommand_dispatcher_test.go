package wifi_test

import (
	"errors"
	"testing"

	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
	wifi "github.com/justincpresley/esat-wifi/pkg/wifi"
	assert "github.com/stretchr/testify/assert"
)

func TestDispatcherRegistrationOrder(t *testing.T) {
	d := wifi.NewTelecommandPacketDispatcher()
	assert.NoError(t, d.Add(&fakeHandler{id: 0x12}))
	assert.NoError(t, d.Add(&fakeHandler{id: 0x10}))
	assert.NoError(t, d.Add(&fakeHandler{id: 0x11}))
	assert.Equal(t, []uint8{0x12, 0x10, 0x11}, d.Identifiers())

	err := d.Add(&fakeHandler{id: 0x10})
	assert.True(t, errors.Is(err, wifi.ErrDuplicateIdentifier))
}

func TestDispatcherRoutesByIdentifier(t *testing.T) {
	d := wifi.NewTelecommandPacketDispatcher()
	yes := &fakeHandler{id: 0x10, accept: true}
	no := &fakeHandler{id: 0x11}
	d.Add(yes)
	d.Add(no)

	assert.True(t, d.Dispatch(telecommand(0x10)))
	assert.False(t, d.Dispatch(telecommand(0x11)))
	assert.False(t, d.Dispatch(telecommand(0x99)))
	assert.Equal(t, 1, yes.handled)
	assert.Equal(t, 1, no.handled)
}

func TestDispatcherRefusesTelemetry(t *testing.T) {
	d := wifi.NewTelecommandPacketDispatcher()
	h := &fakeHandler{id: 0x10, accept: true}
	d.Add(h)
	p := ccsds.NewPacket(4)
	p.SetSecondaryHeader(ccsds.SecondaryHeader{PacketIdentifier: 0x10})
	assert.False(t, d.Dispatch(p))
	assert.Equal(t, 0, h.handled)
}
