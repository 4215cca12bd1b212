/*
 Copyright (C) 2022-2025, The esat-wifi Go Library Authors

 This file is part of esat-wifi: A Go Library for the ESAT Wifi Board.

 This library is free software; you can redistribute it and/or
 modify it under the terms of the GNU Lesser General Public
 License as published by the Free Software Foundation; either
 version 2.1 of the License, or any later version.

 This library is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
 See the GNU Lesser General Public License for more details.

 A copy of the GNU Lesser General Public License is provided by this
 library under LICENSE.md. To see more details about the authors and
 contributors, please see AUTHORS.md. If absent, Both of which can be
 found within the GitHub repository:
          https://github.com/justincpresley/esat-wifi
*/

package wifi

import (
	"fmt"
	"time"

	log "github.com/apex/log"
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

type Config struct {
	Radio       ConnectionStateReader // nil reports Disconnected
	StoragePath string                // "" disables the telemetry archive
	Version     ccsds.SecondaryHeader // version numbers stamped on telemetry
}

// Downlink receives each telemetry packet built during an iteration. The
// packet is reused afterwards; copy what must be kept.
type Downlink func(*ccsds.Packet)

// Wifi is the telemetry and telecommand core of the Wifi board. Apart from
// SignalTelemetryQueueReset, its methods must be called from the main loop
// goroutine only.
type Wifi struct {
	constants  *Constants
	queue      *TelemetryQueue
	reset      ResetSignal
	builder    *TelemetryPacketBuilder
	dispatcher *TelecommandPacketDispatcher
	ack        *AckTelemetry
	archive    *TelemetryArchive
	packet     *ccsds.Packet
	offset     time.Duration
	logger     *log.Entry
}

func NewWifi(config *Config, constants *Constants) (*Wifi, error) {
	w := &Wifi{
		constants:  constants,
		queue:      NewTelemetryQueue(),
		dispatcher: NewTelecommandPacketDispatcher(),
		packet:     ccsds.NewPacket(int(constants.PacketDataCapacity)),
		logger:     log.WithField("module", "wifi"),
	}
	w.builder = NewTelemetryPacketBuilder(config.Version, w.now)
	w.ack = NewAckTelemetry(constants.AckTelemetryIdentifier, w.dispatcher)
	if err := w.beginTelemetry(config); err != nil {
		return nil, err
	}
	if err := w.beginTelecommands(); err != nil {
		return nil, err
	}
	if config.StoragePath != "" {
		db, err := NewBoltDB(config.StoragePath, []byte("telemetry"))
		if err != nil {
			return nil, fmt.Errorf("open telemetry archive: %w", err)
		}
		w.archive = NewTelemetryArchive(db)
	}
	w.logger.Info("Wifi Started.")
	return w, nil
}

func (w *Wifi) beginTelemetry(config *Config) error {
	radio := config.Radio
	if radio == nil {
		radio = ConnectionStateFunc(func() ConnectionState { return Disconnected })
	}
	err := w.AddTelemetry(NewConnectionStateTelemetry(w.constants.ConnectionStateTelemetryIdentifier, radio))
	if err != nil {
		return err
	}
	return w.AddTelemetry(w.ack)
}

func (w *Wifi) beginTelecommands() error {
	err := w.AddTelecommand(NewEnableTelemetryTelecommand(w.constants.EnableTelemetryIdentifier, w))
	if err != nil {
		return err
	}
	err = w.AddTelecommand(NewDisableTelemetryTelecommand(w.constants.DisableTelemetryIdentifier, w))
	if err != nil {
		return err
	}
	return w.AddTelecommand(NewSetTimeTelecommand(w.constants.SetTimeIdentifier, w))
}

// AddTelemetry registers c and enables it.
func (w *Wifi) AddTelemetry(c TelemetryPacketContents) error {
	if err := w.builder.Add(c); err != nil {
		w.logger.Errorf("Unable to add telemetry: %+v", err)
		return err
	}
	w.queue.Enable(c.PacketIdentifier())
	return nil
}

func (w *Wifi) AddTelecommand(h TelecommandPacketHandler) error {
	if h.PacketIdentifier() == w.ack.PacketIdentifier() {
		err := fmt.Errorf("telecommand 0x%02X: %w", h.PacketIdentifier(), ErrReservedIdentifier)
		w.logger.Errorf("Unable to add telecommand: %+v", err)
		return err
	}
	if err := w.dispatcher.Add(h); err != nil {
		w.logger.Errorf("Unable to add telecommand: %+v", err)
		return err
	}
	return nil
}

func (w *Wifi) EnableTelemetry(id uint8) error {
	if !w.builder.Has(id) {
		w.logger.Warnf("Refused to enable unregistered telemetry 0x%02X.", id)
		return fmt.Errorf("telemetry 0x%02X: %w", id, ErrUnknownTelemetry)
	}
	w.queue.Enable(id)
	return nil
}

func (w *Wifi) DisableTelemetry(id uint8) error {
	w.queue.Disable(id)
	return nil
}

// HandleTelecommand dispatches packet once and, when a handler accepts it,
// arms the acknowledgement telemetry with its secondary header.
func (w *Wifi) HandleTelecommand(packet *ccsds.Packet) bool {
	if !w.dispatcher.Dispatch(packet) {
		return false
	}
	w.ack.Arm(packet.SecondaryHeader())
	w.logger.Debugf("Accepted telecommand 0x%02X.", packet.SecondaryHeader().PacketIdentifier)
	return true
}

// ReadTelemetry builds the lowest pending telemetry into packet. It
// returns false with a nil error when nothing is pending. On error the
// identifier stays pending and is retried on a later call.
func (w *Wifi) ReadTelemetry(packet *ccsds.Packet) (bool, error) {
	id, ok := w.queue.Next()
	if !ok {
		return false, nil
	}
	if err := w.builder.Build(packet, id); err != nil {
		w.logger.Warnf("Unable to build telemetry: %+v", err)
		return false, err
	}
	w.queue.Consume(id)
	if w.archive != nil {
		if _, err := w.archive.Record(packet); err != nil {
			w.logger.Errorf("Unable to archive telemetry 0x%02X: %+v", id, err)
		}
	}
	return true, nil
}

// SignalTelemetryQueueReset requests a queue reset on the next Update. It
// is safe to call from any goroutine.
func (w *Wifi) SignalTelemetryQueueReset() {
	w.reset.Signal()
}

// Update acts on a pending reset request.
func (w *Wifi) Update() {
	if w.reset.Drain() {
		w.queue.Reset(w.builder.Available())
		w.logger.Debugf("Telemetry queue reset, pending %s.", w.queue.Pending())
	}
}

// Iterate runs one main loop iteration: the deferred reset, the
// telecommands waiting in inbox, then every pending telemetry packet.
func (w *Wifi) Iterate(inbox <-chan *ccsds.Packet, downlink Downlink) {
	w.Update()
	for more := true; more; {
		select {
		case p := <-inbox:
			w.HandleTelecommand(p)
		default:
			more = false
		}
	}
	for {
		ok, err := w.ReadTelemetry(w.packet)
		if !ok || err != nil {
			return
		}
		downlink(w.packet)
	}
}

// SetTime sets the clock used to timestamp telemetry.
func (w *Wifi) SetTime(t time.Time) {
	w.offset = time.Until(t)
}

func (w *Wifi) now() time.Time {
	return time.Now().Add(w.offset)
}

func (w *Wifi) Queue() *TelemetryQueue                   { return w.queue }
func (w *Wifi) Ack() *AckTelemetry                       { return w.ack }
func (w *Wifi) Archive() *TelemetryArchive               { return w.archive }
func (w *Wifi) Dispatcher() *TelecommandPacketDispatcher { return w.dispatcher }

func (w *Wifi) Shutdown() {
	if w.archive != nil {
		if err := w.archive.Close(); err != nil {
			w.logger.Errorf("Unable to close telemetry archive: %+v", err)
		}
	}
	w.logger.Info("Wifi Shutdown.")
}
