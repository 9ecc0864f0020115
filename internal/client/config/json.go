package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/useraccount/internal/flagx"
	"github.com/dmitrijs2005/useraccount/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key from a zero value.
type JsonConfig struct {
	PasswordServiceAddr *string         `json:"password_service_addr"`
	ValidateTimeout     *timex.Duration `json:"validate_timeout"`
	HashTimeout         *timex.Duration `json:"hash_timeout"`
	ShutdownTimeout     *timex.Duration `json:"shutdown_timeout"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args. Without
// such a flag it does nothing. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.PasswordServiceAddr != nil {
		cfg.PasswordServiceAddr = *jc.PasswordServiceAddr
	}
	if jc.ValidateTimeout != nil {
		cfg.ValidateTimeout = jc.ValidateTimeout.Duration
	}
	if jc.HashTimeout != nil {
		cfg.HashTimeout = jc.HashTimeout.Duration
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
