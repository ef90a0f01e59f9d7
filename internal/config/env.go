package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvGravityMS = "TETRIS_GRAVITY_MS"
	EnvDB        = "TETRIS_DB"
)

// ApplyEnv overrides cfg from envFile (a dotenv file, optional) and the
// process environment. Non-empty process variables win over the file.
func ApplyEnv(cfg *TetrisConfig, envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			vars = fileVars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("config: cannot read %s: %w", envFile, err)
		}
	}
	for _, key := range []string{EnvGravityMS, EnvDB} {
		if v := os.Getenv(key); v != "" {
			vars[key] = v
		}
	}

	if v := vars[EnvGravityMS]; v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvGravityMS, v, err)
		}
		cfg.Gravity.IntervalMS = ms
	}
	if v := vars[EnvDB]; v != "" {
		cfg.Storage.Path = v
	}
	return nil
}
