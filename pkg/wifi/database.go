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
	"encoding/binary"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
	xxhash3 "github.com/zeebo/xxh3"
	bolt "go.etcd.io/bbolt"
)

type Database interface {
	Get(key []byte) (val []byte)
	Set(key []byte, value []byte) error
	Append(value []byte) (uint64, error)
	Len() int
	Close() error
}

type BoltDB struct {
	handle *bolt.DB
	bucket []byte
}

func NewBoltDB(path string, bucket []byte) (*BoltDB, error) {
	var (
		err error
		db  *bolt.DB
	)
	path = resolvePath(path)
	err = ensureDirectory(path)
	if err != nil {
		return nil, err
	}
	db, err = bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltDB{handle: db, bucket: bucket}, nil
}

func (fs *BoltDB) Get(key []byte) (val []byte) {
	fs.handle.View(func(tx *bolt.Tx) error {
		// bolt values are only valid inside the transaction
		if v := tx.Bucket(fs.bucket).Get(key); v != nil {
			val = append([]byte(nil), v...)
		}
		return nil
	})
	return val
}

func (fs *BoltDB) Set(key []byte, value []byte) error {
	return fs.handle.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(fs.bucket).Put(key, value)
	})
}

// Append stores value under the bucket's next sequence number, encoded as
// a big-endian key so that iteration follows insertion.
func (fs *BoltDB) Append(value []byte) (seq uint64, err error) {
	err = fs.handle.Update(func(tx *bolt.Tx) error {
		buc := tx.Bucket(fs.bucket)
		seq, err = buc.NextSequence()
		if err != nil {
			return err
		}
		return buc.Put(sequenceKey(seq), value)
	})
	return seq, err
}

func (fs *BoltDB) Len() (n int) {
	fs.handle.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(fs.bucket).Stats().KeyN
		return nil
	})
	return n
}

func (fs *BoltDB) Close() error {
	return fs.handle.Close()
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// TelemetryArchive keeps a copy of every telemetry packet handed to the
// downlink. Each record is prefixed with an xxh3 digest of its body.
type TelemetryArchive struct {
	db Database
}

func NewTelemetryArchive(db Database) *TelemetryArchive {
	return &TelemetryArchive{db: db}
}

func (a *TelemetryArchive) Record(packet *ccsds.Packet) (uint64, error) {
	body := packet.Bytes()
	rec := make([]byte, 8, 8+len(body))
	binary.BigEndian.PutUint64(rec, xxhash3.Hash(body))
	return a.db.Append(append(rec, body...))
}

// Read returns the archived packet bytes stored under seq.
func (a *TelemetryArchive) Read(seq uint64) ([]byte, error) {
	rec := a.db.Get(sequenceKey(seq))
	if rec == nil {
		return nil, fmt.Errorf("record %d: %w", seq, ErrArchiveMissing)
	}
	if len(rec) < 8 || binary.BigEndian.Uint64(rec[:8]) != xxhash3.Hash(rec[8:]) {
		return nil, fmt.Errorf("record %d: %w", seq, ErrArchiveCorrupt)
	}
	return rec[8:], nil
}

func (a *TelemetryArchive) Len() int { return a.db.Len() }

func (a *TelemetryArchive) Close() error { return a.db.Close() }

func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}
	return nil
}

func resolvePath(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path
	}
	if path == "~" {
		path = usr.HomeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(usr.HomeDir, path[2:])
	} else if strings.HasPrefix(path, "./") {
		path, _ = filepath.Abs(path)
	}
	return path
}
