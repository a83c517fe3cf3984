package ads1x1x

import "github.com/yunginnanet/ads1x1x/pkg/simbus"

// NewADSTest builds an [ADSTest] device at [DefaultAddress] on a fresh simulated bus.
// Seed the value register through the returned bus.
func NewADSTest(opts ...Option) (*ADS1x1x, *simbus.Bus, error) {
	bus := simbus.New()
	adc, err := NewVariantWith(bus, ADSTest, DefaultAddress, opts...)
	if err != nil {
		return nil, nil, err
	}
	return adc, bus, nil
}
