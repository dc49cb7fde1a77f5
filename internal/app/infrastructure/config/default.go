package config

import "time"

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
			LogFile:  "logs/main.log",
			GinMode:  "release",
			Addr:     ":8080",
		},
		Engine: Engine{
			MaxNodes: 1_000_000,
		},
		Cache: Cache{
			Capacity:   10_000,
			TTLSeconds: 300,
		},
		Limiter: Limiter{
			Requests: 100,
			Per:      time.Second,
		},
		Forwards: []Forward{},
	}
}
