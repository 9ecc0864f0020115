package config

import "time"

// Config holds runtime settings for the useraccount CLI.
//
// Fields:
//   - PasswordServiceAddr: host:port of the remote PasswordService.
//   - ValidateTimeout: deadline of a single Validate call, 0 disables it.
//   - HashTimeout: deadline of a whole Hash stream, 0 disables it.
//   - ShutdownTimeout: how long exit waits for outstanding hash submissions.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	PasswordServiceAddr string
	ValidateTimeout     time.Duration
	HashTimeout         time.Duration
	ShutdownTimeout     time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.PasswordServiceAddr = "127.0.0.1:50551"
	c.ValidateTimeout = 5 * time.Second
	c.HashTimeout = 30 * time.Second
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from args (usually os.Args[1:]): defaults
// first, then the JSON file named by -c/-config, then the flags.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
