package ads1x1x

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// Constants from the datasheet

// Register Addresses
const (
	// RegValue is the conversion result register
	RegValue = 0x00
	// RegConfig is the configuration register
	RegConfig = 0x01
	// RegLoThresh is the comparator low threshold register
	RegLoThresh = 0x02
	// RegHiThresh is the comparator high threshold register
	RegHiThresh = 0x03

	// NumRegisters is the total number of registers.
	NumRegisters = 0x04

	// RegisterSize is the width in bytes of every register.
	RegisterSize = 2
)

// Masks for byte 0 of the config register
const (
	ConfigStatusMask  = 0x80 // (bit7)
	ConfigChannelMask = 0x70 // (bits6-4)
	ConfigGainMask    = 0x0E // (bits3-1)
	ConfigModeMask    = 0x01 // (bit0)

	configChannelShift = 4
	configGainShift    = 1
)

// Mode bit values
const (
	ModeContinuous = 0x00
	ModeSingleShot = 0x01
)

// PGA codes (full-scale range)
const (
	GainFS6144 = 0x00 // +/- 6.144V
	GainFS4096 = 0x01 // +/- 4.096V
	GainFS2048 = 0x02 // +/- 2.048V
	GainFS1024 = 0x03 // +/- 1.024V
	GainFS0512 = 0x04 // +/- 0.512V
	GainFS0256 = 0x05 // +/- 0.256V
)

const (
	// DefaultAddress is the slave address with ADDR tied to GND.
	DefaultAddress uint8 = 0x48

	// Reference is the full-scale voltage of the gain code set at construction.
	Reference = 4096 * physic.MilliVolt

	// SettleDelay covers one conversion after the mux changes.
	SettleDelay = time.Millisecond

	// selectorSingleEnded is added to the channel index for AINx vs GND.
	selectorSingleEnded = 4
)
