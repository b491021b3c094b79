// Package config resolves run settings from flags, the environment and an optional .env file
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvSeed     = "SPRITE_QUEST_SEED"
	EnvDebug    = "SPRITE_QUEST_DEBUG"
	EnvMute     = "SPRITE_QUEST_MUTE"
	EnvHUDAddr  = "SPRITE_QUEST_HUD_ADDR"
	EnvBestiary = "SPRITE_QUEST_BESTIARY"
)

// DefaultEnvFile is loaded when present; existing variables win
const DefaultEnvFile = ".env"

// Config is the resolved run configuration
type Config struct {
	// Seed drives every random roll; 0 means derive from the clock
	Seed int64
	// Debug enables file logging
	Debug bool
	// Mute starts with audio disabled
	Mute bool
	// HUDAddr enables the remote HUD feed when set
	HUDAddr string
	// BestiaryPath overrides the embedded creature tables
	BestiaryPath string
}

// Load parses args (without the program name) over environment defaults
func Load(args []string) (*Config, error) {
	if err := loadEnvFile(DefaultEnvFile); err != nil {
		return nil, err
	}

	env, err := fromEnv()
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("sprite-quest", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	cfg := &Config{}
	flags.Int64Var(&cfg.Seed, "seed", env.Seed, "random seed (0 = time based)")
	flags.BoolVar(&cfg.Debug, "debug", env.Debug, "write debug log to logs/")
	flags.BoolVar(&cfg.Mute, "mute", env.Mute, "start with sound muted")
	flags.StringVar(&cfg.HUDAddr, "hud-addr", env.HUDAddr, "serve the remote HUD feed on this address")
	flags.StringVar(&cfg.BestiaryPath, "bestiary", env.BestiaryPath, "YAML file overriding creature and shop tables")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// loadEnvFile applies a dotenv file if it exists
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// fromEnv reads defaults from the environment
func fromEnv() (Config, error) {
	var c Config
	var err error

	if v := os.Getenv(EnvSeed); v != "" {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return c, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if c.Debug, err = envBool(EnvDebug); err != nil {
		return c, err
	}
	if c.Mute, err = envBool(EnvMute); err != nil {
		return c, err
	}
	c.HUDAddr = os.Getenv(EnvHUDAddr)
	c.BestiaryPath = os.Getenv(EnvBestiary)
	return c, nil
}

func envBool(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
