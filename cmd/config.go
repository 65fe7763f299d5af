package main

import (
	"strings"
	"time"
)

type Config struct {
	Host           string `env:"HOST,default=0.0.0.0"`
	Port           int    `env:"PORT,default=3000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	StaticDir      string `env:"STATIC_DIR,default=public"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`

	// Postgres is used when PGHOST is set; otherwise history lands in the
	// embedded Badger store.
	PGHost         string `env:"PGHOST"`
	PGUser         string `env:"PGUSER"`
	PGPassword     string `env:"PGPASSWORD"`
	PGDatabase     string `env:"PGDATABASE"`
	PGPort         int    `env:"PGPORT,default=5432"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/chat"`

	OpenAIKey   string `env:"OPENAI_API_KEY,required=true"`
	OpenAIModel string `env:"OPENAI_MODEL,default=gpt-3.5-turbo"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=32"`
	RetentionInterval    time.Duration `env:"RETENTION_INTERVAL,default=24h"`
	RetentionMaxAge      time.Duration `env:"RETENTION_MAX_AGE,default=24h"`
	SessionIdleTTL       time.Duration `env:"SESSION_IDLE_TTL,default=72h"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=5m"`
}

// Origins splits the comma-separated allow-list, dropping blanks.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
