package ads1x1x

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunginnanet/ads1x1x/pkg/simbus"
)

func TestVariants(t *testing.T) {
	cases := []struct {
		v          Variant
		ctor       func(Transport, ...uint8) (*ADS1x1x, error)
		channels   int
		resolution int
	}{
		{ADS1014, NewADS1014, 1, 12},
		{ADS1015, NewADS1015, 4, 12},
		{ADS1114, NewADS1114, 1, 16},
		{ADS1115, NewADS1115, 4, 16},
	}

	for _, c := range cases {
		t.Run(c.v.Name, func(t *testing.T) {
			bus := simbus.New()
			adc, err := c.ctor(bus)
			require.NoError(t, err)

			assert.Equal(t, DefaultAddress, adc.Address())
			assert.Equal(t, c.channels, adc.Channels())
			assert.Equal(t, c.resolution, adc.Resolution())
			assert.Equal(t, 1<<(c.resolution-1), adc.AnalogMax())
			assert.Equal(t, c.v.Name+"(slave=0x48)", adc.String())

			adc, err = c.ctor(bus, 0x49)
			require.NoError(t, err)
			assert.Equal(t, uint8(0x49), adc.Address())
			_, ok := bus.Get(0x49, RegConfig)
			assert.True(t, ok)
		})
	}
}

func TestNewVariantWith(t *testing.T) {
	bus := simbus.New()
	adc, err := NewVariantWith(bus, ADS1015, 0x4A, WithName("thermo"), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Equal(t, "thermo(slave=0x4A)", adc.String())
	assert.Equal(t, 12, adc.Resolution())

	adc, err = NewVariantWith(bus, ADS1114, 0x4B)
	require.NoError(t, err)
	assert.Equal(t, "ADS1114(slave=0x4B)", adc.String())
}

func TestLookupVariant(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		for _, name := range []string{"ADS1115", "ads1115", " Ads1015 ", "adstest"} {
			v, err := LookupVariant(name)
			require.NoError(t, err, name)
			assert.Equal(t, Variants[v.Name], v)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := LookupVariant("ADS1256")
		assert.ErrorIs(t, err, ErrUnknownVariant)
		assert.Contains(t, err.Error(), "ADS1014, ADS1015, ADS1114, ADS1115, ADSTest")
	})

	t.Run("Names", func(t *testing.T) {
		assert.Equal(t, []string{"ADS1014", "ADS1015", "ADS1114", "ADS1115", "ADSTest"}, VariantNames())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "ADS1015{Channels:4, Resolution:12}", ADS1015.String())
	})
}
