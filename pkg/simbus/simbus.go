// Package simbus is an in-memory register bus for exercising I2C register drivers without hardware.
package simbus

import (
	"fmt"
	"sync"
)

type regKey struct {
	slave byte
	reg   byte
}

// Bus stores one byte buffer per (slave, register).
//
// Reading a register that was never written stores and returns zeroes of the requested size.
// Writes replace the stored buffer unconditionally.
type Bus struct {
	mu    sync.Mutex
	regs  map[regKey][]byte
	fault error

	reads  int
	writes int
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{regs: make(map[regKey][]byte)}
}

// ReadFromReg copies the stored buffer for reg into value.
// A stored buffer shorter than value is zero padded.
func (b *Bus) ReadFromReg(addr, reg byte, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fault != nil {
		return b.fault
	}
	b.reads++

	k := regKey{slave: addr, reg: reg}
	stored, ok := b.regs[k]
	if !ok {
		stored = make([]byte, len(value))
		b.regs[k] = stored
	}

	n := copy(value, stored)
	clear(value[n:])
	return nil
}

// WriteToReg stores a copy of value for reg.
func (b *Bus) WriteToReg(addr, reg byte, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fault != nil {
		return b.fault
	}
	b.writes++

	b.regs[regKey{slave: addr, reg: reg}] = append([]byte(nil), value...)
	return nil
}

// Set seeds a register, as if the device had updated it.
func (b *Bus) Set(addr, reg byte, data ...byte) {
	b.mu.Lock()
	b.regs[regKey{slave: addr, reg: reg}] = append([]byte(nil), data...)
	b.mu.Unlock()
}

// Get returns a copy of a register and whether it exists.
func (b *Bus) Get(addr, reg byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.regs[regKey{slave: addr, reg: reg}]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

// Fail makes every following operation return err. Fail(nil) clears it.
func (b *Bus) Fail(err error) {
	b.mu.Lock()
	b.fault = err
	b.mu.Unlock()
}

// Counts returns the number of successful reads and writes.
func (b *Bus) Counts() (reads, writes int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reads, b.writes
}

// Close is a no-op.
func (b *Bus) Close() error {
	return nil
}

func (b *Bus) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fmt.Sprintf("simbus{registers:%d, reads:%d, writes:%d}", len(b.regs), b.reads, b.writes)
}
