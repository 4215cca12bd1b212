package wifi_test

import (
	"errors"
	"path/filepath"
	"testing"

	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
	wifi "github.com/justincpresley/esat-wifi/pkg/wifi"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func openArchive(t *testing.T) (*wifi.BoltDB, *wifi.TelemetryArchive) {
	t.Helper()
	db, err := wifi.NewBoltDB(filepath.Join(t.TempDir(), "telemetry.db"), []byte("telemetry"))
	require.NoError(t, err)
	a := wifi.NewTelemetryArchive(db)
	t.Cleanup(func() { a.Close() })
	return db, a
}

func TestArchiveRecordAndRead(t *testing.T) {
	_, a := openArchive(t)
	p := ccsds.NewPacket(4)
	p.SetSecondaryHeader(ccsds.SecondaryHeader{PacketIdentifier: 0x05})
	p.WriteByte(0x11)

	seq, err := a.Record(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	seq, err = a.Record(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)
	assert.Equal(t, 2, a.Len())

	rec, err := a.Read(1)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 0x05, 0x11}, rec)
}

func TestArchiveMissing(t *testing.T) {
	_, a := openArchive(t)
	_, err := a.Read(42)
	assert.True(t, errors.Is(err, wifi.ErrArchiveMissing))
}

func TestArchiveDetectsCorruption(t *testing.T) {
	db, a := openArchive(t)
	p := ccsds.NewPacket(4)
	p.WriteByte(0x01)
	seq, err := a.Record(p)
	require.NoError(t, err)

	key := []byte{0, 0, 0, 0, 0, 0, 0, byte(seq)}
	rec := db.Get(key)
	rec[len(rec)-1] ^= 0xFF
	require.NoError(t, db.Set(key, rec))

	_, err = a.Read(seq)
	assert.True(t, errors.Is(err, wifi.ErrArchiveCorrupt))
}
