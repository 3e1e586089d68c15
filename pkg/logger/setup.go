package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/api-playground/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure inicializa o logger global baseando-se na configuração do YAML.
// debug=true força o nível debug, equivalente ao modo debug do launcher.
func Configure(cfg config.LoggingConf, debug bool) zerolog.Logger {
	return configureTo(os.Stdout, cfg, debug)
}

func configureTo(out io.Writer, cfg config.LoggingConf, debug bool) zerolog.Logger {
	// Define o nível de log (default: info)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON para produção, Console "bonito" para local se solicitado
	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("service", "api-playground").
		Logger()

	// Handlers usam log.Ctx / log.With a partir do logger global
	log.Logger = logger

	return logger
}
