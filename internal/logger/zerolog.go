package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const appName = "geocalc"

// ZerologAdapter implements Logger. Every entry carries a timestamp and the
// "app" field so lines stay attributable when stderr is shared.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerolog writes JSON lines to w.
func NewZerolog(w io.Writer, level zerolog.Level) *ZerologAdapter {
	ctx := zerolog.New(w).Level(level).With().Timestamp().Str("app", appName)
	return &ZerologAdapter{logger: ctx.Logger()}
}

// NewConsoleLogger writes human-readable lines to stderr.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	return newConsole(os.Stderr, level)
}

func newConsole(w io.Writer, level zerolog.Level) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}, level)
}

// NewNop discards everything.
func NewNop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.logger.Info().Str("component", component).Fields(fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.logger.Error().Str("component", component).Err(err).Fields(fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.logger.Warn().Str("component", component).Fields(fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.logger.Debug().Str("component", component).Fields(fields).Msg(message)
}
