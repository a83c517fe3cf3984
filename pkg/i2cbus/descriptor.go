package i2cbus

import (
	"fmt"
)

// Descriptor identifies one FT232H for connection.
type Descriptor struct {
	Index  int
	Serial string
}

var ErrBadDescriptor = fmt.Errorf("invalid FT232H descriptor provided")

// Validate checks if [Descriptor] is valid.
func (ftd Descriptor) Validate() error {
	if ftd.Index < 0 && ftd.Serial == "" {
		return ErrBadDescriptor
	}
	return nil
}

// Match reports whether the device at index with the given serial is the one described.
// Serial takes precedence when both are set.
func (ftd Descriptor) Match(index int, serial string) bool {
	if ftd.Serial != "" {
		return ftd.Serial == serial
	}
	return ftd.Index == index
}

// String returns a string representation of the [Descriptor].
func (ftd Descriptor) String() string {
	return fmt.Sprintf("Descriptor{Index:%d, Serial:%s}", ftd.Index, ftd.Serial)
}

// ByIndex returns a [Descriptor] with the specified index.
func ByIndex(index int) Descriptor {
	return Descriptor{Index: index}
}

// BySerial returns a [Descriptor] with the specified serial number.
func BySerial(serial string) Descriptor {
	return Descriptor{Serial: serial, Index: -1}
}
