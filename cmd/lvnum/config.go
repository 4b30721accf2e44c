package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by the CLI. Flags override them.
const (
	envOutDir   = "LVNUM_OUT_DIR"
	envLogLevel = "LVNUM_LOG_LEVEL"
	envDebug    = "LVNUM_DEBUG"
)

const (
	defaultOutDir   = "."
	defaultLogLevel = "info"
)

// Config holds the CLI settings shared by every subcommand.
type Config struct {
	OutDir   string
	LogLevel string
	Debug    bool
}

// LoadConfig reads an optional env file (missing files are ignored) and then
// the process environment. Values already set in the environment win over
// the file, as godotenv.Load never overrides.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		OutDir:   getenv(envOutDir, defaultOutDir),
		LogLevel: getenv(envLogLevel, defaultLogLevel),
	}
	if v := os.Getenv(envDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", envDebug, v, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
