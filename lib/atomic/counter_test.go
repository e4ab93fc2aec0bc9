package atomic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	s := NewSequence(0x1000, 0x10)
	require.Equal(t, uint64(0x1000), s.Next())
	require.Equal(t, uint64(0x1010), s.Next())
	require.Equal(t, uint64(0x1010), s.Get())

	t.Run("concurrent", func(t *testing.T) {
		s := NewSequence(1, 1)

		var mu sync.Mutex
		seen := make(map[uint64]struct{})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					id := s.Next()
					mu.Lock()
					seen[id] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		require.Len(t, seen, 800)
		require.Equal(t, uint64(800), s.Get())
	})
}
