package main

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	reefi2c "github.com/reef-pi/rpi/i2c"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/i2c"

	"github.com/yunginnanet/ads1x1x/pkg/ads1x1x"
	"github.com/yunginnanet/ads1x1x/pkg/i2cbus"
	"github.com/yunginnanet/ads1x1x/pkg/simbus"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

type transport interface {
	ads1x1x.Transport
	io.Closer
}

func flags() (cfg Config) {
	cfg = defaultConfig()

	path := flag.String("config", "", "YAML config file")
	list := flag.Bool("list", false, "List attached FT232H devices and exit")
	variant := flag.String("variant", cfg.Variant, "Chip ("+strings.Join(ads1x1x.VariantNames(), ", ")+")")
	addr := flag.String("addr", cfg.Address, "Slave address")
	bus := flag.String("bus", cfg.Bus, "I2C bus name, 'ft232h', 'reefpi' or 'sim'")
	fti := flag.Int("ft232h", cfg.FT232H, "FT232H Index")
	chs := flag.String("channels", "", "Comma separated channels (default all)")
	diff := flag.Bool("diff", cfg.Differential, "Differential inputs")
	n := flag.Int("n", cfg.Samples, "Samples per channel")
	interval := flag.Duration("interval", cfg.Interval, "Delay between samples")
	debug := flag.Bool("debug", cfg.Debug, "Debug logging")
	trace := flag.Bool("trace", cfg.Trace, "Log register traffic")
	flag.Parse()

	if *list {
		listFT232H()
		os.Exit(0)
	}

	if *path != "" {
		if err := loadConfig(*path, &cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "addr":
			cfg.Address = *addr
		case "bus":
			cfg.Bus = *bus
		case "ft232h":
			cfg.FT232H = *fti
		case "channels":
			cfg.Channels = parseChannels(*chs)
		case "diff":
			cfg.Differential = *diff
		case "n":
			cfg.Samples = *n
		case "interval":
			cfg.Interval = *interval
		case "debug":
			cfg.Debug = *debug
		case "trace":
			cfg.Trace = *trace
		}
	})

	return cfg
}

func listFT232H() {
	infos, err := i2cbus.ListFT232H()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list FT232H devices")
	}
	if len(infos) == 0 {
		log.Warn().Msg("no FT232H found")
		return
	}
	for _, info := range infos {
		log.Info().Msg(info.String())
	}
}

func parseChannels(s string) []int {
	var chs []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		ch, err := strconv.Atoi(f)
		if err != nil {
			log.Fatal().Err(err).Str("channels", s).Msg("bad channel list")
		}
		chs = append(chs, ch)
	}
	return chs
}

func openTransport(cfg Config, addr uint8) (transport, error) {
	switch strings.ToLower(cfg.Bus) {
	case "sim":
		sim := simbus.New()
		// mid-scale positive reading on every channel
		sim.Set(addr, ads1x1x.RegValue, 0x40, 0x00)
		return sim, nil
	case "reefpi":
		return reefi2c.New()
	case "ft232h":
		ft, err := i2cbus.ConnectFT232H(i2cbus.ByIndex(cfg.FT232H))
		if err != nil {
			return nil, err
		}
		log.Info().Any("info", ft.Info()).Msgf("connected to FT232H: %s", ft)
		return ft.OpenI2C()
	default:
		return i2cbus.Open(cfg.Bus)
	}
}

func main() {
	cfg := flags()

	switch {
	case cfg.Trace:
		log = log.Level(zerolog.TraceLevel)
	case cfg.Debug:
		log = log.Level(zerolog.DebugLevel)
	default:
		log = log.Level(zerolog.InfoLevel)
	}

	log.Debug().Any("config", cfg).Msg("starting")

	variant, err := ads1x1x.LookupVariant(cfg.Variant)
	if err != nil {
		log.Fatal().Err(err).Msg("bad variant")
	}

	var addr i2c.Addr
	if err = addr.Set(cfg.Address); err != nil || addr > 0x7F {
		log.Fatal().Err(err).Str("addr", cfg.Address).Msg("bad slave address")
	}

	bus, err := openTransport(cfg, uint8(addr))
	if err != nil {
		log.Fatal().Err(err).Str("bus", cfg.Bus).Msg("failed to open bus")
	}

	log.Info().Msgf("opened bus: %s", bus)

	adc, err := ads1x1x.NewVariantWith(bus, variant, uint8(addr), ads1x1x.WithLogger(log))
	if err != nil {
		_ = bus.Close()
		log.Fatal().Err(err).Msgf("failed to initialize %s", variant.Name)
	}

	log.Info().Msgf("initialized %s", adc)

	channels := cfg.Channels
	if len(channels) == 0 {
		for ch := 0; ch < adc.Channels(); ch++ {
			channels = append(channels, ch)
		}
	}

	pins := make([]*ads1x1x.Pin, 0, len(channels))
	for _, ch := range channels {
		p, err := adc.Pin(ch, cfg.Differential)
		if err != nil {
			_ = bus.Close()
			log.Fatal().Err(err).Msg("bad channel")
		}
		pins = append(pins, p)
	}

	for i := 0; i < cfg.Samples; i++ {
		if i > 0 {
			time.Sleep(cfg.Interval)
		}
		for _, p := range pins {
			s, err := p.Read()
			if err != nil {
				_ = bus.Close()
				log.Fatal().Err(err).Str("pin", p.Name()).Msg("read failed")
			}
			log.Info().Str("pin", p.Name()).Int32("raw", s.Raw).
				Str("volts", s.V.String()).Int("sample", i).Msg("reading")
		}
	}

	log.Debug().Any("registers", adc.Registers()).Msg("last read registers")

	if err = bus.Close(); err != nil {
		log.Fatal().Err(err).Msg("failed to close bus")
	}

	log.Info().Msgf("closed %s", adc)
}
