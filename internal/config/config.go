package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	ClientID       string `env:"WITHINGS_CLIENT_ID,required"`
	ConsumerSecret string `env:"WITHINGS_CONSUMER_SECRET,required"`
	RedirectURL    string `env:"WITHINGS_REDIRECT_URL" envDefault:"http://127.0.0.1:8472/callback"`
	ListenAddr     string `env:"WITHINGS_LISTEN_ADDR" envDefault:"127.0.0.1:8472"`
	DemoMode       bool   `env:"WITHINGS_DEMO_MODE" envDefault:"false"`
	Debug          bool   `env:"WITHINGS_DEBUG" envDefault:"false"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
