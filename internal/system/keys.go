package system

import "encoding/binary"

const (
	evKey = 0x01

	// input-event-codes.h
	KeyEsc = 1
	KeyQ   = 16
	KeyF4  = 62

	keyPressed = 1
)

// scanKeyPress reports whether buf holds a key-down record for code. Records
// are laid out as timeval, u16 type, u16 code, s32 value.
func scanKeyPress(buf []byte, tvSize int, code uint16) bool {
	eventSize := tvSize + 8
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		c := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && c == code && value == keyPressed {
			return true
		}
	}
	return false
}
