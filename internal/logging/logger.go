package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Development gets colored console
// output at debug level; production gets plain output at info level.
func New(environment string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	logger := zerolog.New(output).With().
		Timestamp().
		Str("env", environment).
		Logger()

	if environment == "production" {
		return logger.Level(zerolog.InfoLevel)
	}
	return logger.Level(zerolog.DebugLevel)
}
