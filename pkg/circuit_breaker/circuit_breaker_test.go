package circuit_breaker_test

import (
	"testing"
	"time"

	cb "library-admin/pkg/circuit_breaker"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail() error { return errBoom }
func ok() error   { return nil }

func TestCircuitBreaker_OpensOnFailureRatio(t *testing.T) {
	t.Parallel()
	breaker := cb.New(4, time.Minute, 0.5, 1)

	require.NoError(t, breaker.Call(ok))
	require.ErrorIs(t, breaker.Call(fail), errBoom)
	// the second failure pushes the tail to 2/4 and trips the breaker
	require.ErrorIs(t, breaker.Call(fail), errBoom)

	called := false
	err := breaker.Call(func() error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, cb.ErrOpenCB)
	require.False(t, called)
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	t.Parallel()
	breaker := cb.New(2, 10*time.Millisecond, 0.5, 1)

	require.ErrorIs(t, breaker.Call(fail), errBoom)
	require.ErrorIs(t, breaker.Call(ok), cb.ErrOpenCB)

	time.Sleep(20 * time.Millisecond)

	// half-open probes pass through; enough successes close the breaker
	require.NoError(t, breaker.Call(ok))
	require.NoError(t, breaker.Call(ok))
	require.NoError(t, breaker.Call(ok))
	require.NoError(t, breaker.Call(ok))
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	breaker := cb.New(2, 10*time.Millisecond, 0.5, 1)

	require.ErrorIs(t, breaker.Call(fail), errBoom)
	time.Sleep(20 * time.Millisecond)

	require.ErrorIs(t, breaker.Call(fail), errBoom)
	require.ErrorIs(t, breaker.Call(ok), cb.ErrOpenCB)
}

func TestCircuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	breaker := cb.New(2, time.Minute, 0.5, 1)

	require.ErrorIs(t, breaker.Call(fail), errBoom)
	require.ErrorIs(t, breaker.Call(ok), cb.ErrOpenCB)

	breaker.Reset()
	require.NoError(t, breaker.Call(ok))
}
