//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func event(tvSize int, typ, code uint16, value int32) []byte {
	rec := make([]byte, tvSize+8)
	binary.LittleEndian.PutUint16(rec[tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[tvSize+4:], uint32(value))
	return rec
}

func TestParseKeyPresses(t *testing.T) {
	tvSize, eventSize := inputEventSize()
	var buf []byte
	buf = append(buf, event(tvSize, evKey, uint16(KeyF4), 1)...)
	buf = append(buf, event(tvSize, evKey, uint16(KeyF4), 0)...) // release
	buf = append(buf, event(tvSize, 0x00, 0, 0)...)              // sync
	buf = append(buf, event(tvSize, evKey, uint16(KeyF5), 1)...)
	buf = append(buf, 0x01, 0x02) // partial trailing record

	assert.Equal(t, []Key{KeyF4, KeyF5}, parseKeyPresses(buf, tvSize, eventSize))
}

func TestWatchKeys_NoHandlers(t *testing.T) {
	WatchKeys(context.Background(), nil, nil)
}
