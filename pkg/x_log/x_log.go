// Package x_log wraps zerolog with lipgloss styled console output and an
// optional rotating log file.
package x_log

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrInvalidLevelValue = errors.New("invalid_level_value")

	initMu sync.Mutex
)

type (
	Level int8

	// Logger is the key/value logging surface used by commands and sessions.
	Logger interface {
		Debugw(msg string, keysAndValues ...any)
		Infow(msg string, keysAndValues ...any)
		Warnw(msg string, keysAndValues ...any)
		Errorw(msg string, keysAndValues ...any)
	}
)

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

//
// ---------- Levels ----------

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, ErrInvalidLevelValue
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

//
// ---------- Init ----------

// InitWithConfig configures the global logger. Console output goes to
// stderr so it never mixes with rendered trees on stdout.
func InitWithConfig(cfg *Config, module string) {
	initMu.Lock()
	defer initMu.Unlock()

	applyDefaults(cfg)
	lvl, err := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(lvl.zerolog())

	var writers []io.Writer
	if cfg.ToConsole {
		styles := DefaultStylesByName(cfg.Style)
		styles.Out = os.Stderr
		writers = append(writers, ConsoleWriterWithStyles(styles))
	}
	if cfg.ToFile {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.ColoredFile {
			styles := DefaultStylesByName(cfg.Style)
			styles.Out = file
			writers = append(writers, ConsoleWriterWithStyles(styles))
		} else {
			writers = append(writers, file)
		}
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	ctx := zerolog.New(out).With().Timestamp()
	if module != "" {
		ctx = ctx.Str("module", module)
	}
	log.Logger = ctx.Logger()

	if err != nil {
		log.Logger.Warn().Str("value", cfg.Level).Msg("unknown log level, using info")
	}
}

//
// ---------- Scoped loggers ----------

// New returns a child of the global logger tagged with module.
func New(module string) zerolog.Logger {
	return log.Logger.With().Str("module", module).Logger()
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger stored in ctx, or the global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

//
// ---------- Key/value adapter ----------

type kvLogger struct {
	l zerolog.Logger
}

// Sugar adapts a zerolog.Logger to the key/value Logger interface.
func Sugar(l zerolog.Logger) Logger {
	return &kvLogger{l: l}
}

// NewLogger returns a key/value logger for module.
func NewLogger(module string) Logger {
	return Sugar(New(module))
}

func (k *kvLogger) Debugw(msg string, kv ...any) { k.l.Debug().Fields(kv).Msg(msg) }
func (k *kvLogger) Infow(msg string, kv ...any)  { k.l.Info().Fields(kv).Msg(msg) }
func (k *kvLogger) Warnw(msg string, kv ...any)  { k.l.Warn().Fields(kv).Msg(msg) }
func (k *kvLogger) Errorw(msg string, kv ...any) { k.l.Error().Fields(kv).Msg(msg) }
