package ads1x1x

import (
	"fmt"
	"sort"
	"strings"
)

// Variant is a chip preset. Variants differ only in geometry.
type Variant struct {
	Name       string
	Channels   int
	Resolution int
}

var (
	ADS1014 = Variant{Name: "ADS1014", Channels: 1, Resolution: 12}
	ADS1015 = Variant{Name: "ADS1015", Channels: 4, Resolution: 12}
	ADS1114 = Variant{Name: "ADS1114", Channels: 1, Resolution: 16}
	ADS1115 = Variant{Name: "ADS1115", Channels: 4, Resolution: 16}

	// ADSTest has ADS1115 geometry and is meant to run on a simulated bus.
	ADSTest = Variant{Name: "ADSTest", Channels: 4, Resolution: 16}
)

// Variants indexes every known preset by name.
var Variants = map[string]Variant{
	ADS1014.Name: ADS1014,
	ADS1015.Name: ADS1015,
	ADS1114.Name: ADS1114,
	ADS1115.Name: ADS1115,
	ADSTest.Name: ADSTest,
}

func (v Variant) String() string {
	return fmt.Sprintf("%s{Channels:%d, Resolution:%d}", v.Name, v.Channels, v.Resolution)
}

// LookupVariant finds a preset by name, ignoring case.
func LookupVariant(name string) (Variant, error) {
	for n, v := range Variants {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(VariantNames(), ", "))
}

// VariantNames returns the preset names, sorted.
func VariantNames() []string {
	names := make([]string, 0, len(Variants))
	for n := range Variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewVariant builds a device from a preset. The address defaults to [DefaultAddress].
func NewVariant(bus Transport, v Variant, addr ...uint8) (*ADS1x1x, error) {
	return NewVariantWith(bus, v, pickAddress(addr))
}

// NewVariantWith is NewVariant with options.
func NewVariantWith(bus Transport, v Variant, addr uint8, opts ...Option) (*ADS1x1x, error) {
	opts = append([]Option{WithName(v.Name)}, opts...)
	return New(bus, addr, v.Channels, v.Resolution, opts...)
}

// NewADS1014 builds a 1 channel, 12 bit device.
func NewADS1014(bus Transport, addr ...uint8) (*ADS1x1x, error) {
	return NewVariant(bus, ADS1014, addr...)
}

// NewADS1015 builds a 4 channel, 12 bit device.
func NewADS1015(bus Transport, addr ...uint8) (*ADS1x1x, error) {
	return NewVariant(bus, ADS1015, addr...)
}

// NewADS1114 builds a 1 channel, 16 bit device.
func NewADS1114(bus Transport, addr ...uint8) (*ADS1x1x, error) {
	return NewVariant(bus, ADS1114, addr...)
}

// NewADS1115 builds a 4 channel, 16 bit device.
func NewADS1115(bus Transport, addr ...uint8) (*ADS1x1x, error) {
	return NewVariant(bus, ADS1115, addr...)
}

func pickAddress(addr []uint8) uint8 {
	if len(addr) == 0 {
		return DefaultAddress
	}
	return addr[0]
}
