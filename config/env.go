package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment override.
const EnvPrefix = "PENALTY_"

// LoadEnv applies PENALTY_* environment overrides on top of the defaults
// set in init, then checks the gameplay constants still make sense.
func LoadEnv() error {
	opts := env.Options{Prefix: EnvPrefix}
	for _, target := range []any{C, &Kick, &Debug, &Audio, &Input} {
		if err := env.ParseWithOptions(target, opts); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}

	Body.Gravity = Kick.Gravity
	if err := Kick.Validate(); err != nil {
		return fmt.Errorf("env overrides: %w", err)
	}
	return nil
}
