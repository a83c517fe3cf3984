package i2cbus

import (
	"encoding/binary"
	"encoding/hex"
)

// hexID formats a USB vendor or product ID as four lowercase hex digits.
func hexID(id uint16) string {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], id)
	return hex.EncodeToString(b[:])
}
