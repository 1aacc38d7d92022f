package codeforces

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cooper-xs/cf-daily-tracker/internal/domain"
)

type fakeRequester struct {
	calls   []string
	respond func(apiMethod string, params url.Values) (json.RawMessage, error)
}

func (f *fakeRequester) DoRequest(_ context.Context, apiMethod string, params url.Values) (json.RawMessage, error) {
	f.calls = append(f.calls, apiMethod+"?"+params.Encode())
	return f.respond(apiMethod, params)
}

func newTestService(requester Requester) *Service {
	logger := slog.New(slog.NewTextHandler(nullWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(requester, nil, logger)
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestFetchUsersEmptyInputSkipsUpstream(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{respond: func(string, url.Values) (json.RawMessage, error) {
		return nil, fmt.Errorf("should not be called")
	}}
	svc := newTestService(requester)

	users, err := svc.FetchUsers(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchUsers: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty result, got %d users", len(users))
	}
	if len(requester.calls) != 0 {
		t.Fatalf("upstream called for empty input: %v", requester.calls)
	}
}

func TestFetchUsersBatchesHandles(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{respond: func(apiMethod string, params url.Values) (json.RawMessage, error) {
		if apiMethod != "user.info" {
			return nil, fmt.Errorf("unexpected method %s", apiMethod)
		}
		if got := params.Get("handles"); got != "tourist;Petr" {
			return nil, fmt.Errorf("unexpected handles %q", got)
		}
		return json.RawMessage(`[{"handle":"tourist","rating":3800},{"handle":"Petr","rating":3300}]`), nil
	}}
	svc := newTestService(requester)

	users, err := svc.FetchUsers(context.Background(), []string{"tourist", "Petr"})
	if err != nil {
		t.Fatalf("FetchUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if len(requester.calls) != 1 {
		t.Fatalf("expected a single batched call, got %v", requester.calls)
	}
	if users[0].Handle != "tourist" {
		t.Fatalf("unexpected first user %q", users[0].Handle)
	}
}

func TestFetchUsersBatchFailurePropagates(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{respond: func(string, url.Values) (json.RawMessage, error) {
		return nil, fmt.Errorf("handles: User with handle nosuch not found")
	}}
	svc := newTestService(requester)

	_, err := svc.FetchUsers(context.Background(), []string{"tourist", "nosuch"})
	if err == nil {
		t.Fatal("expected batch failure to propagate")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestFetchTodaySubmissionsSwallowsPerHandleFailure(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()
	requester := &fakeRequester{respond: func(_ string, params url.Values) (json.RawMessage, error) {
		if params.Get("handle") == "broken" {
			return nil, fmt.Errorf("upstream exploded")
		}
		return json.RawMessage(fmt.Sprintf(
			`[{"id":1,"creationTimeSeconds":%d,"problem":{"contestId":1000,"index":"A","name":"X"},"verdict":"OK"},`+
				`{"id":2,"creationTimeSeconds":1000000,"problem":{"contestId":1,"index":"A","name":"Old"},"verdict":"OK"}]`,
			now)), nil
	}}
	svc := newTestService(requester)

	got := svc.FetchTodaySubmissions(context.Background(), []string{"alive", "broken"})

	if len(got) != 2 {
		t.Fatalf("expected entries for both handles, got %d", len(got))
	}
	if len(got["broken"]) != 0 {
		t.Fatalf("broken handle must yield empty list, got %d", len(got["broken"]))
	}
	if len(got["alive"]) != 1 {
		t.Fatalf("expected 1 submission inside today range, got %d", len(got["alive"]))
	}
	if got["alive"][0].ID != 1 {
		t.Fatalf("old submission leaked through today filter")
	}
}

func TestFetchSubmissionsInRangeStopsPagingPastRange(t *testing.T) {
	t.Parallel()

	r, err := domain.NewDateRange("2026-03-10", "2026-03-11")
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}

	inRange := r.StartUnix() + 3600
	older := r.StartUnix() - 86400

	pages := 0
	requester := &fakeRequester{respond: func(_ string, params url.Values) (json.RawMessage, error) {
		pages++
		if params.Get("from") != "1" {
			t.Errorf("unexpected paging continued: from=%s", params.Get("from"))
		}
		subs := make([]map[string]any, 0, 100)
		subs = append(subs, map[string]any{
			"id": 10, "creationTimeSeconds": inRange,
			"problem": map[string]any{"contestId": 1000, "index": "A", "name": "X"},
			"verdict": "OK",
		})
		// fill the page so size alone would not stop paging
		for i := 0; i < 99; i++ {
			subs = append(subs, map[string]any{
				"id": 100 + i, "creationTimeSeconds": older,
				"problem": map[string]any{"contestId": 2, "index": "B", "name": "Y"},
				"verdict": "WRONG_ANSWER",
			})
		}
		raw, merr := json.Marshal(subs)
		return raw, merr
	}}
	svc := newTestService(requester)

	got := svc.FetchSubmissionsInRange(context.Background(), []string{"someone"}, r)

	if pages != 1 {
		t.Fatalf("expected paging to stop after reaching older submissions, made %d calls", pages)
	}
	if len(got["someone"]) != 1 {
		t.Fatalf("expected 1 submission in range, got %d", len(got["someone"]))
	}
}

func TestFetchSubmissionsInRangeFailedHandleYieldsEmpty(t *testing.T) {
	t.Parallel()

	r, err := domain.NewDateRange("2026-03-10", "2026-03-11")
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}

	requester := &fakeRequester{respond: func(string, url.Values) (json.RawMessage, error) {
		return nil, fmt.Errorf("rate limit exceeded")
	}}
	svc := newTestService(requester)

	got := svc.FetchSubmissionsInRange(context.Background(), []string{"a", "b"}, r)
	if len(got) != 2 {
		t.Fatalf("expected entries for all handles, got %d", len(got))
	}
	for handle, subs := range got {
		if len(subs) != 0 {
			t.Fatalf("handle %s: expected empty list, got %d", handle, len(subs))
		}
	}
}
