package config

import (
	"fmt"
	"strings"
	"time"
)

// validate checks the fully assembled [Config] against all field
// constraints. It runs unconditionally after assembly, whichever source the
// values came from, so a constraint violation is never masked by defaults.
func (cfg *Config) validate() error {
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	if err := validatePort(cfg.Port); err != nil {
		return err
	}

	if err := validateHeartbeatInterval(cfg.HeartbeatInterval); err != nil {
		return err
	}

	if cfg.Supervisor.Timeout <= 0 {
		return &ValidationError{
			Field:      "supervisor_timeout",
			Constraint: fmt.Sprintf("%s is not a positive duration", cfg.Supervisor.Timeout),
		}
	}

	return nil
}

func validateLogLevel(level LogLevel) error {
	if !level.IsValid() {
		return &ValidationError{
			Field:      "log_level",
			Constraint: fmt.Sprintf("%q is not one of %s", level, strings.Join(logLevelNames, ", ")),
		}
	}

	return nil
}

func validateHeartbeatInterval(interval time.Duration) error {
	if interval <= 0 {
		return &ValidationError{
			Field:      "heartbeat_interval",
			Constraint: fmt.Sprintf("%s is not a positive duration", interval),
		}
	}

	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{
			Field:      "port",
			Constraint: fmt.Sprintf("port %d outside valid range [1, 65535]", port),
		}
	}

	return nil
}
