package logger

import (
	"io"
	"os"
	"time"

	"friendlydate/config"
	"friendlydate/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger writes console output in development and JSON lines elsewhere.
// When a log file is configured, JSON lines are also written to a rotating file.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var writer io.Writer = output(cfg, os.Stdout)
	if file := fileWriter(cfg); file != nil {
		writer = zerolog.MultiLevelWriter(writer, file)
	}

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()

	log.Trace().Msg("Zerolog initialized.")
}

func output(cfg *config.Config, w io.Writer) io.Writer {
	if cfg.Server.Env == constant.ServerEnvProduction {
		return w
	}

	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}

func fileWriter(cfg *config.Config) io.Writer {
	logConfig := cfg.Server.Log
	if logConfig.FilePath == "" {
		return nil
	}

	return &lumberjack.Logger{
		Filename:   logConfig.FilePath,
		MaxSize:    logConfig.MaxSizeMB,
		MaxBackups: logConfig.MaxBackups,
		LocalTime:  true,
	}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
