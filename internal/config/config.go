package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "jobtracker/internal/util/env"
	"jobtracker/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting       bool
	DatabaseDsn     string            `env:"DATABASE_DSN"            required:"true"`
	EnvMode         env_utils.EnvMode `env:"ENV_MODE"                required:"true"`
	BackendRootPath string
	ServerPort      string `env:"SERVER_PORT"             env-default:"4005"`
	// cache
	ValkeyHost     string `env:"VALKEY_HOST"             required:"true"`
	ValkeyPort     string `env:"VALKEY_PORT"             required:"true"`
	ValkeyUsername string `env:"VALKEY_USERNAME"         required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"         required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"           env-default:"false"`
	// export
	ExportRatePerMinute int `env:"EXPORT_RATE_PER_MINUTE" env-default:"10"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	// .env is optional: containers and tests pass variables through the environment
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			break
		}
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	env.BackendRootPath = backendRoot

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if !env.EnvMode.IsValid() {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}
	log.Info("ENV_MODE loaded", "mode", env.EnvMode)

	if env.ValkeyHost == "" {
		log.Error("VALKEY_HOST is empty")
		os.Exit(1)
	}
	if env.ValkeyPort == "" {
		log.Error("VALKEY_PORT is empty")
		os.Exit(1)
	}

	if env.ExportRatePerMinute <= 0 {
		env.ExportRatePerMinute = 10
	}

	log.Info("Environment variables loaded successfully!")
}
