package config

import (
	"golang.org/x/time/rate"
	"time"
)

type Config struct {
	App      App       `json:"app"`
	Engine   Engine    `json:"engine"`
	Cache    Cache     `json:"cache"`
	Limiter  Limiter   `json:"limiter"`
	Forwards []Forward `json:"forwards"`
}

type App struct {
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
	GinMode   string `json:"gin_mode"`
	Addr      string `json:"addr"`
	AuthToken string `json:"auth_token"`
}

type Engine struct {
	MaxNodes int `json:"max_nodes"` // 0 disables the limit
}

type Cache struct {
	Capacity   int `json:"capacity"`
	TTLSeconds int `json:"ttl_seconds"`
}

type Limiter struct {
	Requests int           `json:"requests"`
	Per      time.Duration `json:"per"`
}

// Forward is a rule loaded into the engine at startup.
type Forward struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Rate returns nil when limiting is disabled.
func (l Limiter) Rate() *rate.Limiter {
	if l.Requests == 0 || l.Per == 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(l.Per/time.Duration(l.Requests)), l.Requests)
}
