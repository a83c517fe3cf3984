package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file given with -config. Flags set on the command line win.
type Config struct {
	Variant      string        `yaml:"variant"`
	Address      string        `yaml:"address"`
	Bus          string        `yaml:"bus"`
	FT232H       int           `yaml:"ft232h"`
	Channels     []int         `yaml:"channels"`
	Differential bool          `yaml:"differential"`
	Samples      int           `yaml:"samples"`
	Interval     time.Duration `yaml:"interval"`
	Debug        bool          `yaml:"debug"`
	Trace        bool          `yaml:"trace"`
}

func defaultConfig() Config {
	return Config{
		Variant:  "ADS1115",
		Address:  "0x48",
		Bus:      "",
		Samples:  1,
		Interval: 100 * time.Millisecond,
	}
}

func loadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
