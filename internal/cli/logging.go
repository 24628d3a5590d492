package cli

import (
	"io"
	"os"

	"github.com/dompetku/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// stdout is the default log output.
var stdout io.Writer = os.Stdout

// setupLogging configures gin and the global zerolog logger.
//
// Without an explicit LOG_FORMAT, logs are human readable in gin debug mode
// and JSON otherwise.
func setupLogging(cfg config.Config, out io.Writer) {
	gin.SetMode(cfg.GinMode)

	output := out
	if cfg.LogFormat == "human" || (cfg.LogFormat == "" && gin.IsDebugging()) {
		output = zerolog.ConsoleWriter{Out: out}
	}

	level := zerolog.InfoLevel
	if gin.IsDebugging() {
		level = zerolog.DebugLevel
	}

	if cfg.LogLevel != "" {
		if l, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			level = l
		}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
