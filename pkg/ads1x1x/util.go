package ads1x1x

import (
	"encoding/binary"

	"periph.io/x/conn/v3/physic"
)

// SignExtend interprets the low [bits] of raw as a two's complement value.
// A width of zero or less yields 0.
func SignExtend(raw uint16, bits int) int {
	if bits <= 0 {
		return 0
	}
	v := int(raw) & (1<<bits - 1)
	if v&(1<<(bits-1)) != 0 {
		v -= 1 << bits
	}
	return v
}

// Decode converts the left-justified value register into a signed code
// of [resolution] bits. data[0] is MSB.
//
// data must hold at least [RegisterSize] bytes and resolution must be in 1..16,
// Decode panics otherwise.
func Decode(data []byte, resolution int) int {
	raw := binary.BigEndian.Uint16(data) >> (16 - resolution)
	return SignExtend(raw, resolution)
}

// EncodeSelector returns the 3-bit mux code for a channel.
// Differential pairs use the index directly, single-ended inputs are offset by 4.
func EncodeSelector(channel int, differential bool) byte {
	if differential {
		return byte(channel) & 0x07
	}
	return byte(channel+selectorSingleEnded) & 0x07
}

// ConvertToVolts scales a signed code against the +/-4.096V full-scale range.
// A code of analogMax would be exactly +FS; the largest real code is one LSB below.
func ConvertToVolts(code int, analogMax int) physic.ElectricPotential {
	return physic.ElectricPotential(int64(code) * int64(Reference) / int64(analogMax))
}
