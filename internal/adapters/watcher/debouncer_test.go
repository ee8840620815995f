package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/internal/adapters/watcher"
)

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/app/src/Widget.jsx")
		d.Add("/app/src/Button.jsx")
		d.Add("/app/src/Widget.jsx")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/app/src/Button.jsx", "/app/src/Widget.jsx"}, receivedPaths)
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("/app/src/a.jsx")
		time.Sleep(50 * time.Millisecond)
		d.Add("/app/src/b.jsx")
		time.Sleep(50 * time.Millisecond)

		// 100ms after the first add the restarted window is still open.
		synctest.Wait()
		mu.Lock()
		assert.Equal(t, 0, callCount)
		mu.Unlock()

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 1, callCount)
		mu.Unlock()
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/app/src/b.jsx")
		d.Add("/app/src/a.jsx")
		d.Flush()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/app/src/a.jsx", "/app/src/b.jsx"}, receivedPaths)

		// The stopped timer must not fire a second time.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int
	d := watcher.NewDebouncer(100*time.Millisecond, func([]string) { callCount++ })

	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) { callCount++ })

		d.Add("/app/src/a.jsx")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, callCount)

		d.Flush()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/app/src/a.jsx")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/app/src/b.jsx")
		d.Flush()
	})
}
