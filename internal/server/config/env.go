package config

import (
	"github.com/caarlos0/env/v11"
)

const envPrefix = "GATEKEEPER_"

// parseEnv overlays GATEKEEPER_* environment variables onto config. Unset
// variables leave the current value untouched. Malformed values panic, the
// same way a malformed JSON file does.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
