package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configura o logger global: debug fora de produção, console legível em
// dev e, quando logFile não é vazio, cópia em arquivo. O arquivo devolvido deve
// ser fechado pelo chamador (nil se não houver).
func Setup(env, logFile string) (*os.File, error) {
	production := env == "prod" || env == "production"
	if production {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var console io.Writer = os.Stdout
	if !production {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}

	if logFile == "" {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console, f)).With().Timestamp().Logger()
	return f, nil
}
