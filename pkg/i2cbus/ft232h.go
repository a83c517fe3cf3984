package i2cbus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

// DeviceInfo represents a snapshot of the device information for the [FT232H] device.
type DeviceInfo struct {
	Index       int
	Type        string
	Serial      string
	Description string
	ProductID   string
	VendorID    string
	IsOpen      bool
}

// String returns a string representation of the device information.
func (ft DeviceInfo) String() string {
	return fmt.Sprintf(
		"DeviceInfo{Index:%d, Type:%s, Serial:%s, Description:%s, ProductID:%s, VendorID:%s, IsOpen:%t}",
		ft.Index, ft.Type, ft.Serial, ft.Description, ft.ProductID, ft.VendorID, ft.IsOpen,
	)
}

// FT232H is an FTDI FT232H USB bridge whose MPSSE engine drives the I²C bus on D0-D2.
type FT232H struct {
	*ftdi.FT232H
	info DeviceInfo
}

var ErrNoFT232H = errors.New("no matching FT232H found")

// Info returns a snapshot of the device information for the FT232H device. Read-only.
func (ft *FT232H) Info() DeviceInfo {
	return ft.info
}

// String returns a string representation of the FT232H device. It includes the vendor ID, product ID, and description.
func (ft *FT232H) String() string {
	return fmt.Sprintf("FT232H[%s:%s]: %s", ft.info.VendorID, ft.info.ProductID, ft.info.Description)
}

// OpenI2C switches the MPSSE engine to I²C with the internal pull-ups enabled.
func (ft *FT232H) OpenI2C() (*Bus, error) {
	bc, err := ft.FT232H.I2C(gpio.PullUp)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C on %s: %w", ft, err)
	}
	return NewBus(bc), nil
}

// Close halts all operations on the bridge.
func (ft *FT232H) Close() error {
	return ft.Halt()
}

func describe(index int, d ftdi.Dev) DeviceInfo {
	var i ftdi.Info
	d.Info(&i)

	info := DeviceInfo{
		Index:     index,
		Type:      i.Type,
		ProductID: hexID(i.DevID),
		VendorID:  hexID(i.VenID),
		IsOpen:    i.Opened,
	}

	var ee ftdi.EEPROM
	if err := d.EEPROM(&ee); err == nil {
		info.Serial = ee.Serial
		info.Description = ee.Desc
	}

	return info
}

// ListFT232H returns information about every FT232H attached to the host.
func ListFT232H() ([]DeviceInfo, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}
	var infos []DeviceInfo
	for i, d := range ftdi.All() {
		if _, ok := d.(*ftdi.FT232H); !ok {
			continue
		}
		infos = append(infos, describe(i, d))
	}
	return infos, nil
}

// ConnectFT232H opens the first FT232H, or the one matching the given [Descriptor].
func ConnectFT232H(choice ...Descriptor) (*FT232H, error) {
	var desc *Descriptor

	switch len(choice) {
	case 0:
	case 1:
		if err := choice[0].Validate(); err != nil {
			return nil, ErrBadDescriptor
		}
		desc = &choice[0]
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	for i, d := range ftdi.All() {
		dev, ok := d.(*ftdi.FT232H)
		if !ok {
			continue
		}
		info := describe(i, d)
		if desc != nil && !desc.Match(info.Index, info.Serial) {
			continue
		}
		return &FT232H{FT232H: dev, info: info}, nil
	}

	if desc != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoFT232H, desc)
	}
	return nil, ErrNoFT232H
}
