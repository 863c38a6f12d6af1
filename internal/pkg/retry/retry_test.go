package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"controltower/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Do_SucceedsFirstAttempt(t *testing.T) {
	p := retry.NewPolicy(3, time.Millisecond)

	attempts := 0
	err := p.Do(context.Background(), func() error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestPolicy_Do_RecoversAfterFailures(t *testing.T) {
	p := retry.NewPolicy(3, time.Millisecond)

	attempts := 0
	err := p.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestPolicy_Do_ExhaustsRetries(t *testing.T) {
	p := retry.NewPolicy(3, time.Millisecond)

	cause := errors.New("connection refused")
	attempts := 0
	err := p.Do(context.Background(), func() error {
		attempts++
		return cause
	})

	require.Error(t, err)
	// 1 initial attempt + 3 retries.
	assert.Equal(t, 4, attempts)
	assert.Contains(t, err.Error(), "retries exhausted after 4 attempts")
	require.ErrorIs(t, err, cause)
}

func TestPolicy_Do_StopsOnCanceledContext(t *testing.T) {
	p := retry.NewPolicy(10, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.Do(ctx, func() error {
		attempts++
		return errors.New("transient")
	})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "retries exhausted")
	assert.Less(t, attempts, 11)
}
