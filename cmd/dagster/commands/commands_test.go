package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contribulate/dagster/cmd/dagster/commands"
	"github.com/contribulate/dagster/internal/app"
	"github.com/contribulate/dagster/internal/build"
)

type mockApp struct {
	evaluateFunc func(ctx context.Context, opts app.EvaluateOptions) error
	daemonFunc   func(ctx context.Context, opts app.DaemonOptions) error
	validateFunc func(ctx context.Context, path string) error
}

func (m *mockApp) Evaluate(ctx context.Context, opts app.EvaluateOptions) error {
	if m.evaluateFunc != nil {
		return m.evaluateFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Daemon(ctx context.Context, opts app.DaemonOptions) error {
	if m.daemonFunc != nil {
		return m.daemonFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Validate(ctx context.Context, path string) error {
	if m.validateFunc != nil {
		return m.validateFunc(ctx, path)
	}
	return nil
}

func TestCommands_Evaluate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.EvaluateOptions
		called := false

		mock := &mockApp{
			evaluateFunc: func(_ context.Context, opts app.EvaluateOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"evaluate",
			"--definitions", "defs.yaml",
			"--dry-run",
			"--timeout", "30s",
			"--parallelism", "4",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "defs.yaml", capturedOpts.Path)
		assert.True(t, capturedOpts.DryRun)
		assert.Equal(t, 30*time.Second, capturedOpts.Timeout)
		assert.Equal(t, 4, capturedOpts.Parallelism)
	})

	t.Run("returns error on tick failure", func(t *testing.T) {
		mock := &mockApp{
			evaluateFunc: func(_ context.Context, _ app.EvaluateOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"evaluate"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Daemon(t *testing.T) {
	var capturedOpts app.DaemonOptions

	mock := &mockApp{
		daemonFunc: func(_ context.Context, opts app.DaemonOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"daemon", "--interval", "5m", "--dry-run"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, capturedOpts.Interval)
	assert.True(t, capturedOpts.DryRun)
}

func TestCommands_DaemonDefaultInterval(t *testing.T) {
	var capturedOpts app.DaemonOptions

	mock := &mockApp{
		daemonFunc: func(_ context.Context, opts app.DaemonOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"daemon"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, app.DefaultTickInterval, capturedOpts.Interval)
}

func TestCommands_Validate(t *testing.T) {
	var capturedPath string

	mock := &mockApp{
		validateFunc: func(_ context.Context, path string) error {
			capturedPath = path
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"validate", "--definitions", "defs.yaml"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "defs.yaml", capturedPath)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
