// Package i2cbus adapts periph.io I²C buses, including FT232H USB bridges, to register transports.
package i2cbus

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Bus performs register reads and writes over a periph [i2c.Bus].
type Bus struct {
	bus i2c.Bus
}

// NewBus wraps an already opened bus.
func NewBus(bus i2c.Bus) *Bus {
	return &Bus{bus: bus}
}

// Open initializes the host drivers and opens the named bus, e.g. "1" or "/dev/i2c-1".
// An empty name opens the first bus found.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}
	bc, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %q: %w", name, err)
	}
	return NewBus(bc), nil
}

// ReadFromReg writes the register pointer then reads len(value) bytes in one transaction.
func (b *Bus) ReadFromReg(addr, reg byte, value []byte) error {
	return b.bus.Tx(uint16(addr), []byte{reg}, value)
}

// WriteToReg writes the register pointer followed by value.
func (b *Bus) WriteToReg(addr, reg byte, value []byte) error {
	w := make([]byte, 0, len(value)+1)
	w = append(w, reg)
	w = append(w, value...)
	return b.bus.Tx(uint16(addr), w, nil)
}

// SetSpeed changes the bus clock.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return b.bus.SetSpeed(f)
}

// Close closes the underlying bus if it can be closed.
func (b *Bus) Close() error {
	if c, ok := b.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (b *Bus) String() string {
	return fmt.Sprintf("i2cbus{%s}", b.bus)
}
