package ads1x1x

import (
	"fmt"

	"periph.io/x/conn/v3/analog"
)

// Pin is one input of an [ADS1x1x] exposed as a periph analog input.
type Pin struct {
	adc          *ADS1x1x
	channel      int
	differential bool
}

// Pin returns an [analog.PinADC] for channel.
func (adc *ADS1x1x) Pin(channel int, differential bool) (*Pin, error) {
	if err := adc.checkChannel(channel); err != nil {
		return nil, err
	}
	return &Pin{adc: adc, channel: channel, differential: differential}, nil
}

// Pins returns one pin per channel.
func (adc *ADS1x1x) Pins(differential bool) []*Pin {
	pins := make([]*Pin, adc.channels)
	for ch := range pins {
		pins[ch] = &Pin{adc: adc, channel: ch, differential: differential}
	}
	return pins
}

func (p *Pin) String() string {
	return fmt.Sprintf("%s.%s", p.adc, p.Name())
}

// Name returns "AINn" for single-ended inputs and "DIFFn" for differential ones.
func (p *Pin) Name() string {
	if p.differential {
		return fmt.Sprintf("DIFF%d", p.channel)
	}
	return fmt.Sprintf("AIN%d", p.channel)
}

func (p *Pin) Number() int      { return p.channel }
func (p *Pin) Function() string { return "ADC" }
func (p *Pin) Halt() error      { return nil }

// Range returns the most negative and most positive codes.
func (p *Pin) Range() (analog.Sample, analog.Sample) {
	lo := -p.adc.analogMax
	hi := p.adc.analogMax - 1
	return analog.Sample{V: ConvertToVolts(lo, p.adc.analogMax), Raw: int32(lo)},
		analog.Sample{V: ConvertToVolts(hi, p.adc.analogMax), Raw: int32(hi)}
}

// Read performs one ReadChannel.
func (p *Pin) Read() (analog.Sample, error) {
	code, err := p.adc.ReadChannel(p.channel, p.differential)
	if err != nil {
		return analog.Sample{}, err
	}
	return analog.Sample{V: ConvertToVolts(code, p.adc.analogMax), Raw: int32(code)}, nil
}

var _ analog.PinADC = &Pin{}
