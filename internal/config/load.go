package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration assembled from defaults, an optional
// .env file and FOLIO_* environment variables.
type Config struct {
	Width         int
	Height        int
	ParticleCount int
	Seed          int64
	FormEndpoint  string
	Mute          bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:         WindowWidth,
		Height:        WindowHeight,
		ParticleCount: ParticleCount,
		FormEndpoint:  FormEndpoint,
	}
}

// Load reads the given env files (".env" when none are named) and applies
// FOLIO_* overrides on top of Default. A missing env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("config: loaded %s", f)
	}
	return FromEnv(os.Getenv)
}

// FromEnv applies overrides looked up through getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"FOLIO_WIDTH", &cfg.Width},
		{"FOLIO_HEIGHT", &cfg.Height},
		{"FOLIO_PARTICLES", &cfg.ParticleCount},
	}
	for _, it := range ints {
		v := getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: invalid value %q", it.key, v)
		}
		*it.dst = n
	}

	if v := getenv("FOLIO_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("FOLIO_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("FOLIO_FORM_ENDPOINT"); v != "" {
		cfg.FormEndpoint = v
	}
	if v := getenv("FOLIO_MUTE"); v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("FOLIO_MUTE: %w", err)
		}
		cfg.Mute = mute
	}
	return cfg, nil
}
