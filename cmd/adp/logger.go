package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	jww "github.com/spf13/jwalterweatherman"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// newLogger builds a zerolog logger writing to w in console or JSON format.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var log zerolog.Logger
	switch strings.ToLower(format) {
	case logFormatConsole:
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	case logFormatJSON:
		log = zerolog.New(w).With().Timestamp().Logger()
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q, want %s or %s", format, logFormatConsole, logFormatJSON)
	}

	return log.Level(lvl), nil
}

type viperLogWriter struct {
	log zerolog.Logger
}

func (w viperLogWriter) Write(p []byte) (int, error) {
	w.log.Debug().Str("component", "viper").Msg(strings.TrimSpace(string(p)))

	return len(p), nil
}

// redirectViperLog sends viper's internal log into log at debug level.
func redirectViperLog(log zerolog.Logger) {
	jww.SetLogThreshold(jww.LevelTrace)
	jww.SetFlags(0)
	jww.SetLogOutput(viperLogWriter{log: log})
}
