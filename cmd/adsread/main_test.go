package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunginnanet/ads1x1x/pkg/ads1x1x"
)

func TestOpenTransport(t *testing.T) {
	t.Run("Sim", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Bus = "SIM"
		bus, err := openTransport(cfg, 0x49)
		require.NoError(t, err)

		adc, err := ads1x1x.NewADS1115(bus, 0x49)
		require.NoError(t, err)
		code, err := adc.ReadChannel(0, false)
		require.NoError(t, err)
		assert.Equal(t, 0x4000, code)
		assert.NoError(t, bus.Close())
	})

	t.Run("ReefPi", func(t *testing.T) {
		if _, err := os.Stat("/dev/i2c-1"); err == nil {
			t.Skip("/dev/i2c-1 present, not opening real hardware")
		}
		cfg := defaultConfig()
		cfg.Bus = "reefpi"
		_, err := openTransport(cfg, ads1x1x.DefaultAddress)
		assert.Error(t, err)
	})
}
