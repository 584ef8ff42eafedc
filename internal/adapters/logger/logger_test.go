package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/contribulate/dagster/internal/adapters/logger"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It also sets NO_COLOR=1 to ensure deterministic output without
// ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("tick complete")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("definitions file missing")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(
		errors.New("database is locked"),
		"failed to record materialization",
	))

	g := goldie.New(t)
	g.Assert(t, "error_chain_zerr", buf.Bytes())
}

func TestLogger_Error_WithMetadata(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.New("condition evaluation failed")
	err = zerr.With(err, "asset_key", "daily_rollup")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_metadata", buf.Bytes())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("test error message"))

	output := buf.String()
	assert.Contains(t, output, `"error"`)
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.NotContains(t, output, "✗", "JSON format should not have pretty markers")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.NotContains(t, prettyOutput, `"error"`)

	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")

	assert.Contains(t, backToPrettyOutput, "✗")
}

func TestLogger_SetOutput_NilDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	done := make(chan bool, 5)

	go func() {
		lg.Info("concurrent info")
		done <- true
	}()
	go func() {
		lg.Warn("concurrent warn")
		done <- true
	}()
	go func() {
		lg.Error(errors.New("concurrent error"))
		done <- true
	}()
	go func() {
		lg.SetJSON(true)
		done <- true
	}()
	go func() {
		lg.SetOutput(&bytes.Buffer{})
		done <- true
	}()

	for range 5 {
		<-done
	}
}
