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
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

type Constants struct {
	ConnectionStateTelemetryIdentifier uint8         `yaml:"connection_state_telemetry_identifier"`
	AckTelemetryIdentifier             uint8         `yaml:"ack_telemetry_identifier"`
	EnableTelemetryIdentifier          uint8         `yaml:"enable_telemetry_identifier"`
	DisableTelemetryIdentifier         uint8         `yaml:"disable_telemetry_identifier"`
	SetTimeIdentifier                  uint8         `yaml:"set_time_identifier"`
	PacketDataCapacity                 uint          `yaml:"packet_data_capacity"`     // bytes of user data
	LoopInterval                       time.Duration `yaml:"loop_interval"`            // main loop period
	LoopIntervalRandomness             float32       `yaml:"loop_interval_randomness"` // percentage variance 0.00<=x<=1.00
	InboxSize                          uint          `yaml:"inbox_size"`               // telecommands buffered for the main loop
}

func GetDefaultConstants() *Constants {
	return &Constants{
		ConnectionStateTelemetryIdentifier: 0x00,
		AckTelemetryIdentifier:             0x05,
		EnableTelemetryIdentifier:          0x20,
		DisableTelemetryIdentifier:         0x21,
		SetTimeIdentifier:                  0x22,
		PacketDataCapacity:                 256,
		LoopInterval:                       100 * time.Millisecond,
		LoopIntervalRandomness:             0.10,
		InboxSize:                          16,
	}
}

// LoadConstants overlays the YAML file at path on the defaults. A missing
// file yields the defaults.
func LoadConstants(path string) (*Constants, error) {
	cs := GetDefaultConstants()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cs, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cs); err != nil {
		return nil, err
	}
	return cs, nil
}
