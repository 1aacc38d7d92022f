package codeforces

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type recordingLimiter struct {
	mu    sync.Mutex
	waits int
}

func (l *recordingLimiter) Wait(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.waits++
	return nil
}

func TestQueueFIFOOrder(t *testing.T) {
	t.Parallel()

	limiter := &recordingLimiter{}
	q := newQueueWithLimiter(limiter, nil)
	defer q.Close()

	const n = 8
	var mu sync.Mutex
	var order []int

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			// stagger enqueues so arrival order is deterministic
			time.Sleep(time.Duration(i) * 20 * time.Millisecond)
			_, err := q.Enqueue(context.Background(), func(_ context.Context) ([]byte, error) {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil, nil
			})
			if err != nil {
				t.Errorf("enqueue %d: %v", i, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if len(order) != n {
		t.Fatalf("expected %d executions, got %d", n, len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("execution order %v is not FIFO", order)
		}
	}
	if limiter.waits != n {
		t.Fatalf("expected %d limiter waits, got %d", n, limiter.waits)
	}
}

func TestQueueMinIntervalSpacing(t *testing.T) {
	t.Parallel()

	const interval = 50 * time.Millisecond
	q := NewRateLimitedQueue(interval, nil)
	defer q.Close()

	var mu sync.Mutex
	var stamps []time.Time

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Enqueue(context.Background(), func(_ context.Context) ([]byte, error) {
				mu.Lock()
				stamps = append(stamps, time.Now())
				mu.Unlock()
				return nil, nil
			})
			if err != nil {
				t.Errorf("enqueue: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(stamps) != 4 {
		t.Fatalf("expected 4 executions, got %d", len(stamps))
	}
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		// small tolerance for timer coarseness
		if gap < interval-5*time.Millisecond {
			t.Fatalf("dispatch gap %v shorter than min interval %v", gap, interval)
		}
	}
}

func TestQueueFailureIsolation(t *testing.T) {
	t.Parallel()

	q := newQueueWithLimiter(&recordingLimiter{}, nil)
	defer q.Close()

	wantErr := errors.New("upstream exploded")
	_, err := q.Enqueue(context.Background(), func(_ context.Context) ([]byte, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected task error, got %v", err)
	}

	body, err := q.Enqueue(context.Background(), func(_ context.Context) ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil {
		t.Fatalf("subsequent task failed: %v", err)
	}
	if string(body) != "ok" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestQueueResultRouting(t *testing.T) {
	t.Parallel()

	q := newQueueWithLimiter(&recordingLimiter{}, nil)
	defer q.Close()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			want := fmt.Sprintf("payload-%d", i)
			body, err := q.Enqueue(context.Background(), func(_ context.Context) ([]byte, error) {
				return []byte(want), nil
			})
			if err != nil {
				t.Errorf("enqueue %d: %v", i, err)
				return
			}
			if string(body) != want {
				t.Errorf("result routed to wrong caller: want %q got %q", want, body)
			}
		}()
	}
	wg.Wait()
}

func TestQueueCanceledCallerSkipped(t *testing.T) {
	t.Parallel()

	q := newQueueWithLimiter(&recordingLimiter{}, nil)
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	_, err := q.Enqueue(ctx, func(_ context.Context) ([]byte, error) {
		ran = true
		return nil, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// the dispatcher may or may not have picked the item up yet, but it
	// must never run the task for a caller that already gave up
	time.Sleep(50 * time.Millisecond)
	if ran {
		t.Fatal("task ran despite canceled caller context")
	}
}

func TestQueueCloseRejectsEnqueue(t *testing.T) {
	t.Parallel()

	q := newQueueWithLimiter(&recordingLimiter{}, nil)
	q.Close()
	q.Close() // idempotent

	_, err := q.Enqueue(context.Background(), func(_ context.Context) ([]byte, error) {
		return nil, nil
	})
	if !errors.Is(err, errQueueClosed) {
		t.Fatalf("expected queue closed error, got %v", err)
	}
}
