package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var group SingleFlight[string]
	var calls atomic.Int32
	release := make(chan struct{})

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	results := make(chan string, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			v, err, _ := group.Do("roster", func() (string, error) {
				calls.Add(1)
				<-release
				return "loaded", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- v
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		if v != "loaded" {
			t.Fatalf("unexpected value: got=%q want=%q", v, "loaded")
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one underlying call, got=%d", got)
	}
}

func TestSingleFlight_ForgetsKeyAfterCompletion(t *testing.T) {
	t.Parallel()

	var group SingleFlight[int]
	n := 0
	for i := 0; i < 3; i++ {
		_, _, shared := group.Do("k", func() (int, error) {
			n++
			return n, nil
		})
		if shared {
			t.Fatalf("sequential calls must not be shared")
		}
	}
	if n != 3 {
		t.Fatalf("expected three sequential calls, got=%d", n)
	}
}
