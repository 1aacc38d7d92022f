package codeforces

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
)

var errQueueClosed = errors.New("request queue closed")

// Task: 큐를 통해 직렬화되는 단일 업스트림 호출
type Task func(ctx context.Context) ([]byte, error)

// Limiter: 디스패치 간격을 제어하는 인터페이스
// 테스트에서 가짜 시계를 주입할 수 있도록 rate.Limiter를 추상화한다.
type Limiter interface {
	Wait(ctx context.Context) error
}

type taskResult struct {
	body []byte
	err  error
}

type queuedTask struct {
	ctx context.Context
	run Task
	out chan taskResult
}

// RateLimitedQueue: 업스트림 호출을 직렬화하는 FIFO 요청 큐
// 연속 디스패치 사이에 최소 간격(기본 400ms, 2초당 5회)을 보장하고,
// 동시에 최대 하나의 태스크만 실행한다. 각 태스크의 성공/실패는
// 해당 호출자에게만 전달되며 뒤따르는 태스크를 막지 않는다.
type RateLimitedQueue struct {
	limiter Limiter
	pending chan *queuedTask
	logger  *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// NewRateLimitedQueue: 최소 간격이 적용된 요청 큐를 생성하고 디스패치 루프를 시작한다.
func NewRateLimitedQueue(minInterval time.Duration, logger *slog.Logger) *RateLimitedQueue {
	return newQueueWithLimiter(rate.NewLimiter(rate.Every(minInterval), 1), logger)
}

func newQueueWithLimiter(limiter Limiter, logger *slog.Logger) *RateLimitedQueue {
	q := &RateLimitedQueue{
		limiter: limiter,
		pending: make(chan *queuedTask, constants.QueueConfig.PendingBuffer),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go q.dispatchLoop()
	return q
}

// Enqueue: 태스크를 큐에 넣고 해당 태스크 자신의 결과를 기다린다.
// 도착 순서가 곧 디스패치 순서다. 중복 제거나 우선순위는 없다.
func (q *RateLimitedQueue) Enqueue(ctx context.Context, task Task) ([]byte, error) {
	item := &queuedTask{
		ctx: ctx,
		run: task,
		out: make(chan taskResult, 1),
	}

	select {
	case q.pending <- item:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.done:
		return nil, errQueueClosed
	}

	select {
	case res := <-item.out:
		return res.body, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.done:
		return nil, errQueueClosed
	}
}

// dispatchLoop: 단일 고루틴이 큐 헤드를 꺼내 간격을 지킨 뒤 실행한다.
// 실행 중인 태스크는 항상 하나뿐이므로 별도의 락이 필요 없다.
func (q *RateLimitedQueue) dispatchLoop() {
	for {
		select {
		case <-q.done:
			return
		case item := <-q.pending:
			q.dispatch(item)
		}
	}
}

func (q *RateLimitedQueue) dispatch(item *queuedTask) {
	// 호출자가 이미 기다리기를 포기한 태스크는 간격을 소모하지 않고 건너뛴다
	if err := item.ctx.Err(); err != nil {
		item.out <- taskResult{err: err}
		return
	}

	if err := q.limiter.Wait(item.ctx); err != nil {
		item.out <- taskResult{err: err}
		return
	}

	body, err := item.run(item.ctx)
	if err != nil && q.logger != nil {
		q.logger.Debug("queued task failed", slog.Any("error", err))
	}
	item.out <- taskResult{body: body, err: err}
}

// Close: 큐를 종료한다. 이후의 Enqueue와 대기 중인 호출은 모두 실패한다.
func (q *RateLimitedQueue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}
