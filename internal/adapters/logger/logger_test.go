package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/adapters/logger"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer with colours disabled.
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
	lg.Info("seeded 4 entries")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("seed file is empty")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("permission denied"),
			goldenName: "error_plain",
		},
		{
			name: "wrapped sentinel with metadata",
			err: zerr.With(zerr.Wrap(domain.ErrDuplicateName, "failed to store entry"),
				"name", "Egg"),
			goldenName: "error_chain",
		},
		{
			name: "metadata on unnamed layer",
			err: zerr.Wrap(
				zerr.With(errors.New("open cookbook.yaml: no such file"), "path", "cookbook.yaml"),
				"failed to load config"),
			goldenName: "error_folded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrUnknownReference, "failed to expand recipe"), "reference", "Egg"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])

	errGroup, ok := record["error"].(map[string]any)
	require.True(t, ok, "error should be logged as a group")
	assert.Equal(t, "failed to expand recipe", errGroup["msg"])
	assert.Equal(t, "Egg", errGroup["reference"])
}

func TestLogger_SetOutputKeepsFormat(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])

	lg.SetJSON(false)
	buf.Reset()
	lg.Info("hello")
	assert.Equal(t, "hello\n", buf.String())
}

func TestFormatErrorChain(t *testing.T) {
	err := fmt.Errorf("serve: %w", zerr.Wrap(errors.New("address in use"), "http server failed"))
	assert.Equal(t, "serve: http server failed: address in use", logger.FormatErrorChain(err))

	err = zerr.Wrap(zerr.Wrap(errors.New("disk full"), "write failed"), "save failed")
	assert.Equal(t, "save failed\n  caused by: write failed\n  caused by: disk full", logger.FormatErrorChain(err))
}
