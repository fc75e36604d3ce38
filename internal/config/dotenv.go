package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// UserEnvFile is the per-user env file read from the default data directory.
const UserEnvFile = "antigone.env"

// EnvFiles lists the env files every antigone command reads, in priority
// order: ".env" in the working directory, then antigone.env in the default
// data directory. A read session started from any directory still picks up
// REMOTE_SERVER_URL from the user file.
func EnvFiles() []string {
	return []string{".env", filepath.Join(DefaultDataDir(), UserEnvFile)}
}

// LoadDotEnvFromFiles loads each existing file in order. godotenv.Load
// never overrides a variable that is already set, so the process
// environment beats every file and earlier files beat later ones.
func LoadDotEnvFromFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// LoadConfig builds the configuration for serve, stdio, read, lines and
// import. An explicit --env-file replaces EnvFiles and must exist.
func LoadConfig(envFile string) (AppConfig, error) {
	files := EnvFiles()
	if envFile != "" {
		if _, err := os.Stat(envFile); err != nil {
			return AppConfig{}, fmt.Errorf("env file: %w", err)
		}
		files = []string{envFile}
	}
	if err := LoadDotEnvFromFiles(files...); err != nil {
		return AppConfig{}, err
	}

	envCfg, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, err
	}

	return envCfg.Normalize().ToAppConfig(), nil
}
