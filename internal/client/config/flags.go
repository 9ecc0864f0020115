package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about. Other arguments
// are filtered out with flagx.FilterArgs first. Panics on a malformed value.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-v", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.PasswordServiceAddr, "a", cfg.PasswordServiceAddr, "address and port of the password service")
	validate := fs.Int("v", int(cfg.ValidateTimeout.Seconds()), "validate timeout (in seconds, 0 disables)")
	hash := fs.Int("t", int(cfg.HashTimeout.Seconds()), "hash timeout (in seconds, 0 disables)")
	shutdown := fs.Int("s", int(cfg.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// sub-second values from JSON survive unless the flag is given
	if set["v"] {
		cfg.ValidateTimeout = time.Duration(*validate) * time.Second
	}
	if set["t"] {
		cfg.HashTimeout = time.Duration(*hash) * time.Second
	}
	if set["s"] {
		cfg.ShutdownTimeout = time.Duration(*shutdown) * time.Second
	}
}
