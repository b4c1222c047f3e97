package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingDeleter struct {
	calls atomic.Int64
	err   error
}

func (d *countingDeleter) DeleteExpired(_ context.Context) (int64, error) {
	d.calls.Add(1)
	if d.err != nil {
		return 0, d.err
	}
	return 1, nil
}

func TestStartRetentionSweeper_SweepsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deleter := &countingDeleter{}

	StartRetentionSweeper(ctx, deleter, 5*time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool {
		return deleter.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(25 * time.Millisecond)
	settled := deleter.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, deleter.calls.Load())
}

func TestStartRetentionSweeper_SurvivesSweepErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deleter := &countingDeleter{err: errors.New("db down")}

	StartRetentionSweeper(ctx, deleter, 5*time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool {
		return deleter.calls.Load() >= 2
	}, time.Second, time.Millisecond)
}
