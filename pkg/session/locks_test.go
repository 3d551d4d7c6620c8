package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTable_SerializesSameKey(t *testing.T) {
	table := newLockTable()

	const workers = 8
	const iterations = 50

	var counter int
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				release := table.Acquire("session-1")
				counter++
				release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

func TestLockTable_BlocksUntilRelease(t *testing.T) {
	table := newLockTable()

	release := table.Acquire("session-1")

	acquired := make(chan struct{})
	go func() {
		r := table.Acquire("session-1")
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while the lock was held")
	case <-time.After(20 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second acquire never proceeded after release")
	}
}

func TestLockTable_IndependentKeys(t *testing.T) {
	table := newLockTable()

	releaseA := table.Acquire("session-a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB := table.Acquire("session-b")
		releaseB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire on a different key blocked")
	}
}

func TestLockTable_DropsIdleEntries(t *testing.T) {
	table := newLockTable()

	release := table.Acquire("session-1")
	table.mu.Lock()
	require.Len(t, table.locks, 1)
	table.mu.Unlock()

	release()

	table.mu.Lock()
	assert.Empty(t, table.locks)
	table.mu.Unlock()
}
