package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is the file LoadDotEnv reads when no path is given.
const DefaultDotEnvFile = ".env"

// LoadDotEnv merges KEY=value pairs from the given files into the process
// environment. Variables that are already set win. Missing files are
// skipped so production deployments can rely on real environment only.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultDotEnvFile}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load dotenv %s: %w", path, err)
		}
	}
	return nil
}
