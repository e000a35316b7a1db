package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GemmSize is one benchmark problem: A is Streams×Streams, B and C are
// Streams×Samples.
type GemmSize struct {
	Streams int `yaml:"streams"`
	Samples int `yaml:"samples"`
}

type Config struct {
	Logger struct {
		Verbosity string `yaml:"verbosity"`
	} `yaml:"logger"`
	Device struct {
		Platform int `yaml:"platform"`
		Index    int `yaml:"index"`
	} `yaml:"device"`
	Bench struct {
		Sizes     []GemmSize `yaml:"sizes"`
		Repeat    int        `yaml:"repeat"`
		Seed      uint64     `yaml:"seed"`
		Verify    bool       `yaml:"verify"`
		Tolerance float64    `yaml:"tolerance"`
	} `yaml:"bench"`
	Metrics struct {
		ListenAddress string `yaml:"listenAddress"`
	} `yaml:"metrics"`
	Serve struct {
		Interval time.Duration `yaml:"interval"`
	} `yaml:"serve"`
}

// Default returns the configuration used when no file overrides a key.
func Default() *Config {
	var c Config
	c.Logger.Verbosity = "info"
	c.Device.Platform = -1
	c.Device.Index = -1
	c.Bench.Sizes = []GemmSize{
		{Streams: 64, Samples: 100},
		{Streams: 256, Samples: 50},
		{Streams: 1024, Samples: 10},
	}
	c.Bench.Repeat = 1
	c.Bench.Seed = 42
	c.Bench.Verify = true
	c.Bench.Tolerance = 1e-3
	c.Metrics.ListenAddress = ":9464"
	c.Serve.Interval = time.Minute
	return &c
}

// LoadConfig reads path over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	var errs []error
	if len(c.Bench.Sizes) == 0 {
		errs = append(errs, errors.New("bench.sizes must not be empty"))
	}
	for i, size := range c.Bench.Sizes {
		if size.Streams <= 0 {
			errs = append(errs, fmt.Errorf("bench.sizes[%d].streams must be positive, got %d", i, size.Streams))
		}
		if size.Samples <= 0 {
			errs = append(errs, fmt.Errorf("bench.sizes[%d].samples must be positive, got %d", i, size.Samples))
		}
	}
	if c.Bench.Repeat < 1 {
		errs = append(errs, fmt.Errorf("bench.repeat must be at least 1, got %d", c.Bench.Repeat))
	}
	if c.Bench.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("bench.tolerance must not be negative, got %g", c.Bench.Tolerance))
	}
	if c.Device.Index < -1 {
		errs = append(errs, fmt.Errorf("device.index must be -1 or a device index, got %d", c.Device.Index))
	}
	if c.Serve.Interval <= 0 {
		errs = append(errs, fmt.Errorf("serve.interval must be positive, got %s", c.Serve.Interval))
	}
	return errors.Join(errs...)
}
