package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qianyan/rimekit/internal/rime"
	"github.com/qianyan/rimekit/internal/rime/memory"
)

func TestInitGuardRunsExactlyOnce(t *testing.T) {
	var guard InitGuard
	var runs atomic.Int32

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_ = guard.Do(func() error {
				runs.Add(1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), runs.Load())
	assert.True(t, guard.Done())
}

func TestInitGuardRecordsFirstError(t *testing.T) {
	var guard InitGuard
	sentinel := errors.New("setup failed")

	err := guard.Do(func() error { return sentinel })
	require.ErrorIs(t, err, sentinel)

	// Later calls never re-run; they report the recorded error.
	err = guard.Do(func() error { return nil })
	assert.ErrorIs(t, err, sentinel)
}

func TestInitializeIsIdempotent(t *testing.T) {
	eng := memory.New()
	traits := rime.Traits{AppName: "rimekit"}

	for i := 0; i < 5; i++ {
		require.NoError(t, Initialize(eng, traits))
	}
	assert.Equal(t, 1, eng.SetupCalls())
	assert.True(t, Initialized())
}
