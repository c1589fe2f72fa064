package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/echotrace/echotrace/internal/observability"
)

type Config struct {
	Primary       Primary               `koanf:"primary" validate:"required"`
	Server        ServerConfig          `koanf:"server" validate:"required"`
	Observability *observability.Config `koanf:"observability"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string   `koanf:"port" validate:"required"`
	ReadTimeout    int      `koanf:"readtimeout" validate:"required"`
	WriteTimeout   int      `koanf:"writetimeout" validate:"required"`
	IdleTimeout    int      `koanf:"idletimeout" validate:"required"`
	RecentCapacity int      `koanf:"recentcapacity"`
	CORSOrigins    []string `koanf:"corsorigins"`
}

// Default returns the zero-environment config: port 5000, sane timeouts,
// observability off.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:           "5000",
			ReadTimeout:    15,
			WriteTimeout:   15,
			IdleTimeout:    60,
			RecentCapacity: 100,
		},
	}
}

// Load builds the configuration from defaults overridden by ECHOTRACE_*
// environment variables (underscores map to nesting, e.g.
// ECHOTRACE_SERVER_PORT -> server.port). A .env file is honored if present.
func Load() (mainConfig *Config) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Missing .env is fine; env vars alone are enough.
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider("ECHOTRACE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "ECHOTRACE_")), "_", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	mainConfig = Default()
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not validate config")
	}

	// Observability is a pointer so an absent block can be detected and defaulted.
	if mainConfig.Observability == nil {
		mainConfig.Observability = observability.DefaultConfig()
	}
	mainConfig.Observability.ServiceName = "echotrace"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	err = mainConfig.Observability.Validate()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return
}
