package i2cbus

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/yunginnanet/ads1x1x/pkg/ads1x1x"
)

func TestDescriptor(t *testing.T) {
	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByIndex(-1)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("BySerial", func(t *testing.T) {
		desc := BySerial("123456")
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = BySerial("")
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("Match", func(t *testing.T) {
		if !ByIndex(2).Match(2, "FT0001") {
			t.Error("expected index match")
		}
		if ByIndex(2).Match(1, "FT0001") {
			t.Error("unexpected index match")
		}
		if !BySerial("FT0001").Match(7, "FT0001") {
			t.Error("expected serial match")
		}
		if BySerial("FT0001").Match(-1, "FT0002") {
			t.Error("unexpected serial match")
		}
	})
	t.Run("String", func(t *testing.T) {
		if s := BySerial("5").String(); s != "Descriptor{Index:-1, Serial:5}" {
			t.Errorf("unexpected string: %s", s)
		}
	})
	t.Run("TooManyArguments", func(t *testing.T) {
		if _, err := ConnectFT232H(ByIndex(0), ByIndex(1)); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("BadDescriptor", func(t *testing.T) {
		if _, err := ConnectFT232H(ByIndex(-1)); err != ErrBadDescriptor {
			t.Errorf("expected ErrBadDescriptor, got %v", err)
		}
	})
}

func TestHexID(t *testing.T) {
	if s := hexID(0x0403); s != "0403" {
		t.Errorf("expected 0403, got %s", s)
	}
	if s := hexID(0x6014); s != "6014" {
		t.Errorf("expected 6014, got %s", s)
	}
}

func testConnect(t *testing.T, desc *Descriptor) DeviceInfo {
	t.Helper()

	var (
		ftdi *FT232H
		err  error
	)

	if desc == nil {
		ftdi, err = ConnectFT232H()
	} else {
		ftdi, err = ConnectFT232H(*desc)
	}

	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}

	t.Logf("Connected to FT232H: %s", ftdi.Info().String())

	if err = ftdi.Close(); err != nil {
		t.Errorf("failed to close FT232H: %v", err)
	}

	return ftdi.Info()
}

func TestConnectFT232H(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" {
		t.Skip("set 'TEST_FT232H' in environment to run this test")
	}

	testInfo := testConnect(t, nil)

	t.Run("List", func(t *testing.T) {
		infos, err := ListFT232H()
		if err != nil {
			t.Fatalf("failed to list FT232H: %v", err)
		}
		if len(infos) == 0 {
			t.Fatal("expected at least one FT232H")
		}
		if infos[0].Index != testInfo.Index {
			t.Errorf("expected index %d, got %d", testInfo.Index, infos[0].Index)
		}
	})

	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(testInfo.Index)
		if os.Getenv("TEST_FT232H_INDEX") != "" {
			idx, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TEST_FT232H_INDEX")))
			if err != nil {
				t.Fatalf(
					"bad 'TEST_FT232H_INDEX' environment variable: %v\nvalue: %s",
					err, os.Getenv("TEST_FT232H_INDEX"),
				)
			}
			desc = ByIndex(idx)
		}

		_ = testConnect(t, &desc)
	})

	t.Run("BySerial", func(t *testing.T) {
		serial := strings.TrimSpace(os.Getenv("TEST_FT232H_SERIAL"))
		if serial == "" {
			serial = testInfo.Serial
		}
		if serial == "" {
			t.Skip("no serial number provided, try setting 'TEST_FT232H_SERIAL' in environment")
		}

		desc := BySerial(serial)

		_ = testConnect(t, &desc)
	})

	t.Run("ADS1115", func(t *testing.T) {
		if os.Getenv("TEST_ADS1115") == "" {
			t.Skip("set 'TEST_ADS1115' in environment with an ADS1115 at 0x48 on the FT232H")
		}

		ft, err := ConnectFT232H()
		if err != nil {
			t.Fatalf("failed to connect to FT232H: %v", err)
		}
		defer func() { _ = ft.Close() }()

		bus, err := ft.OpenI2C()
		if err != nil {
			t.Fatalf("failed to open I2C: %v", err)
		}

		adc, err := ads1x1x.NewADS1115(bus)
		if err != nil {
			t.Fatalf("failed to initialize ADS1115: %v", err)
		}

		for ch := 0; ch < adc.Channels(); ch++ {
			v, err := adc.ReadVoltage(ch, false)
			if err != nil {
				t.Errorf("channel %d: %v", ch, err)
				continue
			}
			t.Logf("AIN%d: %s", ch, v)
		}
	})
}
