package reconcile

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("Same key excludes", func(t *testing.T) {
		k := newKeyedMutex()
		unlock := k.Lock("a")

		acquired := make(chan struct{})
		go func() {
			u := k.Lock("a")
			close(acquired)
			u()
		}()

		select {
		case <-acquired:
			t.Fatal("second holder acquired a held key")
		case <-time.After(50 * time.Millisecond):
		}

		unlock()
		<-acquired
		assert.Equal(t, 0, k.size())
	})

	t.Run("Different keys are independent", func(t *testing.T) {
		k := newKeyedMutex()
		unlockA := k.Lock("a")
		unlockB := k.Lock("b")
		assert.Equal(t, 2, k.size())
		unlockA()
		unlockB()
		assert.Equal(t, 0, k.size())
	})

	t.Run("Counter under contention", func(t *testing.T) {
		k := newKeyedMutex()
		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := k.Lock("hot")
				counter++
				unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 100, counter)
		assert.Equal(t, 0, k.size())
	})
}
