package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusbooks/bookshare-service/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	okService := func() error { return nil }
	failingService := func() error { return errors.New("service error") }

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Second, 0.3, 2)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(okService))
		}
	})

	t.Run("opens after failure percentile and short-circuits", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Minute, 0.3, 2)
		for i := 0; i < 4; i++ {
			_ = cb.Call(failingService)
		}
		err := cb.Call(okService)
		require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		cb := circuit_breaker.New(10, 10*time.Millisecond, 0.3, 2)
		for i := 0; i < 4; i++ {
			_ = cb.Call(failingService)
		}
		require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(okService))
		}
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		cb := circuit_breaker.New(10, 10*time.Millisecond, 0.3, 2)
		for i := 0; i < 4; i++ {
			_ = cb.Call(failingService)
		}
		time.Sleep(20 * time.Millisecond)
		require.Error(t, cb.Call(failingService))
		require.ErrorIs(t, cb.Call(okService), circuit_breaker.ErrOpenCB)
	})
}
