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

import "errors"

var (
	ErrPacketOverflow      = errors.New("wifi: packet write beyond capacity")
	ErrNoTelemetryContents = errors.New("wifi: no telemetry contents for identifier")
	ErrDuplicateIdentifier = errors.New("wifi: identifier already registered")
	ErrUnknownTelemetry    = errors.New("wifi: telemetry identifier not registered")
	ErrReservedIdentifier  = errors.New("wifi: identifier reserved for acknowledgement telemetry")
)

var (
	ErrArchiveMissing = errors.New("wifi: archive record not found")
	ErrArchiveCorrupt = errors.New("wifi: archive record digest mismatch")
)
