package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Init loads environment variables from the given .env files (".env" by default).
// Missing files are not an error: the process environment is used as is.
func Init(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil {
			log.Debug().Msgf("skipping env file %s: %v", filename, err)
			continue
		}
		log.Debug().Msgf("loaded environment variables from %s", filename)
	}
}

// Get returns the environment variable v, or fallback when unset or empty.
func Get(v string, fallback string) string {
	if b := os.Getenv(v); b != "" {
		return b
	}
	return fallback
}
