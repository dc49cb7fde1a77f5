package config

import (
	"errors"
	"fmt"
	"phoneforward/internal/app/domain/number"
	"time"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.App.LogLevel)
	}

	validGinModes := map[string]bool{"debug": true, "release": true, "test": true}
	if cfg.App.GinMode != "" && !validGinModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	if cfg.App.Addr == "" {
		return errors.New("app.addr is required")
	}

	// engine
	if cfg.Engine.MaxNodes < 0 {
		return errors.New("engine.max_nodes must be >= 0")
	}

	// cache
	if cfg.Cache.Capacity < 0 {
		return errors.New("cache.capacity must be >= 0")
	}
	if cfg.Cache.TTLSeconds < 0 {
		return errors.New("cache.ttl_seconds must be >= 0")
	}

	// limiter
	if (cfg.Limiter.Requests != 0 && cfg.Limiter.Per == 0) || (cfg.Limiter.Requests == 0 && cfg.Limiter.Per != 0) {
		return errors.New("limiter.requests and limiter.per must both be set or both be zero")
	}
	if cfg.Limiter.Requests < 0 || cfg.Limiter.Per < 0 {
		return errors.New("limiter.requests and limiter.per must be >= 0")
	}
	if cfg.Limiter.Requests > 0 && cfg.Limiter.Per < time.Duration(cfg.Limiter.Requests) {
		// per is in nanoseconds; a smaller value would round the interval to zero
		return fmt.Errorf("limiter.per (%d ns) must be at least limiter.requests (%d)", cfg.Limiter.Per, cfg.Limiter.Requests)
	}

	// forwards
	if cfg.Forwards == nil {
		cfg.Forwards = []Forward{}
	}
	for i, fwd := range cfg.Forwards {
		if !number.Valid(fwd.From) {
			return fmt.Errorf("forwards[%d].from: %w: %q", i, number.ErrInvalidNumber, fwd.From)
		}
		if !number.Valid(fwd.To) {
			return fmt.Errorf("forwards[%d].to: %w: %q", i, number.ErrInvalidNumber, fwd.To)
		}
		if fwd.From == fwd.To {
			return fmt.Errorf("forwards[%d]: from and to must differ", i)
		}
	}

	return nil
}
