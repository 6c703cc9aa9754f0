package demo

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Count         int           `envconfig:"COUNT" default:"10"`
	WriteInterval time.Duration `envconfig:"WRITE_INTERVAL" default:"1s"`
	ReadInterval  time.Duration `envconfig:"READ_INTERVAL" default:"2s"`
	PollInterval  time.Duration `envconfig:"POLL_INTERVAL" default:"1s"`
}

func GetConfig() *Config {
	cfg := new(Config)
	if err := envconfig.Process("DEMO", cfg); err != nil {
		panic(err)
	}

	return cfg
}
