package workload

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func config(name Name) Config {
	return Config{Workload: name, Ops: 5000, Size: 64, Clones: 4, Seed: 42}
}

func sumUpTo(n int) int64 {
	return int64(n) * int64(n-1) / 2
}

func TestValidate(t *testing.T) {
	for _, name := range Names() {
		require.NoError(t, config(name).Validate())
	}

	cfg := config("bogus")
	require.ErrorContains(t, cfg.Validate(), "unknown workload")

	cfg = config(FIFO)
	cfg.Ops = -1
	require.Error(t, cfg.Validate())
	cfg = config(FIFO)
	cfg.Size = 0
	require.Error(t, cfg.Validate())
	cfg = config(COW)
	cfg.Clones = 0
	require.Error(t, cfg.Validate())

	logger, _ := newLogger()
	_, err := Run(context.Background(), cfg, logger)
	require.Error(t, err)
}

func TestQueueWorkloadsConserveValues(t *testing.T) {
	// Every value pushed is either popped or left in the deque, so both
	// checksums add up to everything that went in.
	for _, name := range []Name{FIFO, LIFO} {
		t.Run(string(name), func(t *testing.T) {
			logger, hook := newLogger()
			cfg := config(name)
			res, err := Run(context.Background(), cfg, logger)
			require.NoError(t, err)
			require.Equal(t, cfg.Ops, res.Ops)
			require.Equal(t, cfg.Size, res.Len)
			require.Equal(t, sumUpTo(cfg.Size)+sumUpTo(cfg.Ops), res.Checksum)
			require.Zero(t, res.Copies)

			entry := hook.LastEntry()
			require.Equal(t, "workload done", entry.Message)
			require.Equal(t, name, entry.Data["workload"])
		})
	}
}

func TestMiddleWorkload(t *testing.T) {
	logger, hook := newLogger()
	res, err := Run(context.Background(), config(Middle), logger)
	require.NoError(t, err)
	require.Equal(t, 5000, res.Ops)
	require.GreaterOrEqual(t, res.Cap, res.Len)

	grew := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "buffer grew" {
			grew++
		}
	}
	require.Equal(t, res.Grows, grew)

	// Same seed, same run.
	again, err := Run(context.Background(), config(Middle), logger)
	require.NoError(t, err)
	require.Equal(t, res.Checksum, again.Checksum)
	require.Equal(t, res.Len, again.Len)
}

func TestWindowWorkload(t *testing.T) {
	logger, _ := newLogger()
	cfg := config(Window)
	res, err := Run(context.Background(), cfg, logger)
	require.NoError(t, err)
	require.Equal(t, cfg.Size, res.Len)
	require.Zero(t, res.Copies)
}

func TestCOWWorkload(t *testing.T) {
	logger, _ := newLogger()
	cfg := config(COW)
	res, err := Run(context.Background(), cfg, logger)
	require.NoError(t, err)
	// Every op mutates a fresh clone, which always copies.
	require.Equal(t, cfg.Ops, res.Copies)
	require.Equal(t, cfg.Size, res.Len)
	require.Zero(t, res.Grows)
}

func TestCanceled(t *testing.T) {
	logger, _ := newLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, config(FIFO), logger)
	require.True(t, errors.Is(err, context.Canceled))
	require.Zero(t, res.Ops)
	require.Equal(t, 64, res.Len)
}

func TestOpsPerSecond(t *testing.T) {
	require.Zero(t, Result{Ops: 10}.OpsPerSecond())
	require.InDelta(t, 5.0, Result{Ops: 10, Elapsed: 2e9}.OpsPerSecond(), 1e-9)
}
