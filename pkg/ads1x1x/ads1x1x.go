package ads1x1x

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/physic"
)

// Transport performs raw register reads and writes on a two-wire bus.
// The method set matches the register helpers of the reef-pi and embd I2C buses.
//
// value is a pooled buffer that is reused once the call returns, so implementations
// must not retain it.
type Transport interface {
	// ReadFromReg reads len(value) bytes from register reg of slave addr.
	ReadFromReg(addr, reg byte, value []byte) error
	// WriteToReg writes value to register reg of slave addr.
	WriteToReg(addr, reg byte, value []byte) error
}

// ADS1x1x provides control over one TI ADS101x/ADS111x converter.
type ADS1x1x struct {
	mu  sync.RWMutex // Synchronize register sequences
	bus Transport

	name       string
	addr       uint8
	channels   int
	resolution int
	analogMax  int

	// Last read or written register states (for reference or debugging)
	regLR [NumRegisters][RegisterSize]byte // "Last Read"  register data
	regLW [NumRegisters][RegisterSize]byte // "Last Write" register data

	log zerolog.Logger
}

// Option adjusts an [ADS1x1x] before it talks to the bus.
type Option func(adc *ADS1x1x)

// WithLogger sets the logger used for register traffic.
func WithLogger(l zerolog.Logger) Option {
	return func(adc *ADS1x1x) {
		adc.log = l
	}
}

// WithName sets the name shown by String.
func WithName(name string) Option {
	return func(adc *ADS1x1x) {
		adc.name = name
	}
}

// New configures the converter at [addr] for continuous conversion at +/-4.096V full scale.
//
// The config register is read, patched and written back, so any other bits the device
// reports are kept. Transport failures are returned as [*TransportError].
func New(bus Transport, addr uint8, channels, resolution int, opts ...Option) (*ADS1x1x, error) {
	if channels != 1 && channels != 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidGeometry, channels)
	}
	if resolution != 12 && resolution != 16 {
		return nil, fmt.Errorf("%w: %d bit resolution", ErrInvalidGeometry, resolution)
	}

	adc := &ADS1x1x{
		bus:        bus,
		name:       "ADS1x1x",
		addr:       addr,
		channels:   channels,
		resolution: resolution,
		analogMax:  1 << (resolution - 1),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(adc)
	}

	adc.mu.Lock()
	err := adc.updateConfig(func(cfg byte) byte {
		cfg &^= ConfigModeMask
		cfg |= ModeContinuous
		cfg &^= ConfigGainMask
		cfg |= GainFS4096 << configGainShift
		return cfg
	})
	adc.mu.Unlock()

	if err != nil {
		return nil, err
	}

	adc.log.Debug().Str("device", adc.String()).
		Int("channels", channels).Int("resolution", resolution).
		Msg("configured continuous mode, FS=4.096V")

	return adc, nil
}

// String returns the variant name and slave address, e.g. "ADS1115(slave=0x48)".
func (adc *ADS1x1x) String() string {
	return fmt.Sprintf("%s(slave=0x%02X)", adc.name, adc.addr)
}

// Address returns the slave address.
func (adc *ADS1x1x) Address() uint8 { return adc.addr }

// Channels returns the number of input channels.
func (adc *ADS1x1x) Channels() int { return adc.channels }

// Resolution returns the number of bits per conversion.
func (adc *ADS1x1x) Resolution() int { return adc.resolution }

// AnalogMax returns 2^(resolution-1), the magnitude of the most negative code.
func (adc *ADS1x1x) AnalogMax() int { return adc.analogMax }

// Reference returns the full-scale voltage.
func (adc *ADS1x1x) Reference() physic.ElectricPotential { return Reference }

// ReadChannel selects [channel] on the input mux, waits [SettleDelay] and returns the
// signed conversion result in [-AnalogMax(), AnalogMax()-1].
//
// Only the channel selector is changed, status, gain and mode bits are written back as read.
func (adc *ADS1x1x) ReadChannel(channel int, differential bool) (int, error) {
	if err := adc.checkChannel(channel); err != nil {
		return 0, err
	}

	adc.mu.Lock()
	defer adc.mu.Unlock()

	err := adc.updateConfig(func(cfg byte) byte {
		cfg &^= ConfigChannelMask
		cfg |= EncodeSelector(channel, differential) << configChannelShift
		return cfg
	})
	if err != nil {
		return 0, err
	}

	time.Sleep(SettleDelay)

	buf := get2Bytes()
	defer put2Bytes(buf)

	if err = adc.readRegister(RegValue, buf); err != nil {
		return 0, err
	}

	code := Decode(buf, adc.resolution)

	adc.log.Trace().Str("device", adc.String()).
		Int("channel", channel).Bool("differential", differential).
		Hex("raw", buf).Int("code", code).Msg("read channel")

	return code, nil
}

// ReadFloat returns the channel reading normalized to [-1, 1).
func (adc *ADS1x1x) ReadFloat(channel int, differential bool) (float64, error) {
	code, err := adc.ReadChannel(channel, differential)
	if err != nil {
		return 0, err
	}
	return float64(code) / float64(adc.analogMax), nil
}

// ReadVoltage returns the channel reading scaled to the +/-4.096V range.
func (adc *ADS1x1x) ReadVoltage(channel int, differential bool) (physic.ElectricPotential, error) {
	code, err := adc.ReadChannel(channel, differential)
	if err != nil {
		return 0, err
	}
	return ConvertToVolts(code, adc.analogMax), nil
}

// ReadAll reads every channel in order. It stops at the first error.
func (adc *ADS1x1x) ReadAll(differential bool) ([]int, error) {
	codes := make([]int, 0, adc.channels)
	for ch := 0; ch < adc.channels; ch++ {
		code, err := adc.ReadChannel(ch, differential)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func (adc *ADS1x1x) checkChannel(channel int) error {
	if channel < 0 || channel >= adc.channels {
		return fmt.Errorf("%w: %d (device has %d)", ErrInvalidChannel, channel, adc.channels)
	}
	return nil
}
