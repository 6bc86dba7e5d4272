package x_log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"INFO":  InfoLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
		"fatal": FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevelValue)
}

// TestInitWithConfig tests if InitWithConfig sets the global level.
func TestInitWithConfig(t *testing.T) {
	InitWithConfig(&Config{Level: "debug"}, "testModule")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	InitWithConfig(&Config{Level: "error"}, "testModule")
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())

	InitWithConfig(&Config{Level: "nonsense"}, "testModule")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

// TestFileLogging tests that records reach the rotating log file.
func TestFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	InitWithConfig(&Config{ToFile: true, LogFile: path, Level: "info"}, "testModule")

	log.Logger.Info().Msg("Test file logging")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Test file logging")
	assert.Contains(t, string(content), `"module":"testModule"`)
}

// TestNew tests if New creates a scoped logger.
func TestNew(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := New("render")
	logger.Info().Msg("Testing logger")

	assert.Contains(t, buf.String(), `"module":"render"`)
}

// TestContextLogger tests storing and retrieving a logger through a context.
func TestContextLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Str("module", "ctx").Logger()

	ctx := WithLogger(context.Background(), &logger)
	From(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), `"module":"ctx"`)

	var global bytes.Buffer
	log.Logger = zerolog.New(&global)
	From(context.Background()).Info().Msg("fallback")
	assert.Contains(t, global.String(), "fallback")
}

// TestSugar tests the key/value adapter.
func TestSugar(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	l := Sugar(zerolog.New(&buf))

	l.Infow("frame", "value", 42, "traversal", "preorder")
	l.Errorw("failed", "err", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"value":42`)
	assert.Contains(t, out, `"traversal":"preorder"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "boom")
}
