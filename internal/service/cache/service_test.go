package cache

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/valkey-io/valkey-go"
)

type testPayload struct {
	Name string `json:"name"`
}

func newTestCacheService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	host, portStr, err := net.SplitHostPort(mini.Addr())
	if err != nil {
		t.Fatalf("failed to split address: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:       []string{net.JoinHostPort(host, portStr)},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("failed to create valkey client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		t.Fatalf("failed to ping miniredis: %v", err)
	}
	svc := &Service{client: client, logger: logger}

	t.Cleanup(func() {
		_ = svc.Close()
		mini.Close()
	})

	return svc, mini
}

func TestCacheServiceSetGetAndExists(t *testing.T) {
	svc, mini := newTestCacheService(t)
	ctx := context.Background()

	value := testPayload{Name: "value"}
	if err := svc.Set(ctx, "key", value, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got testPayload
	if err := svc.Get(ctx, "key", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "value" {
		t.Fatalf("unexpected value: %+v", got)
	}

	exists, err := svc.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if !exists {
		t.Fatalf("expected key to exist")
	}

	if err := svc.Expire(ctx, "key", time.Second); err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	mini.FastForward(2 * time.Second)

	exists, err = svc.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("exists after expire failed: %v", err)
	}
	if exists {
		t.Fatalf("expected key to expire")
	}
}

func TestCacheServiceGetMissingKeyLeavesDestUntouched(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	got := testPayload{Name: "sentinel"}
	if err := svc.Get(ctx, "missing", &got); err != nil {
		t.Fatalf("get for missing key should not fail: %v", err)
	}
	if got.Name != "sentinel" {
		t.Fatalf("dest should be untouched on cache miss: %+v", got)
	}
}

func TestCacheServiceSetWithTTL(t *testing.T) {
	svc, mini := newTestCacheService(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "ttl-key", testPayload{Name: "v"}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mini.FastForward(2 * time.Minute)

	var got testPayload
	if err := svc.Get(ctx, "ttl-key", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "" {
		t.Fatalf("expected expired key to be gone, got %+v", got)
	}
}

func TestCacheServiceHashOps(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	if err := svc.HSet(ctx, "prefs", "theme", "dark"); err != nil {
		t.Fatalf("hset failed: %v", err)
	}
	if err := svc.HSet(ctx, "prefs", "language", "zh"); err != nil {
		t.Fatalf("hset failed: %v", err)
	}

	theme, err := svc.HGet(ctx, "prefs", "theme")
	if err != nil {
		t.Fatalf("hget failed: %v", err)
	}
	if theme != "dark" {
		t.Fatalf("unexpected theme: %s", theme)
	}

	missing, err := svc.HGet(ctx, "prefs", "unknown")
	if err != nil {
		t.Fatalf("hget for missing field should not fail: %v", err)
	}
	if missing != "" {
		t.Fatalf("expected empty value for missing field, got %s", missing)
	}

	all, err := svc.HGetAll(ctx, "prefs")
	if err != nil {
		t.Fatalf("hgetall failed: %v", err)
	}
	if len(all) != 2 || all["language"] != "zh" {
		t.Fatalf("unexpected hash contents: %v", all)
	}
}

func TestCacheServiceConnectivity(t *testing.T) {
	svc, mini := newTestCacheService(t)
	ctx := context.Background()

	if !svc.IsConnected(ctx) {
		t.Fatalf("expected connected store to answer ping")
	}
	if err := svc.WaitUntilReady(ctx, time.Second); err != nil {
		t.Fatalf("wait on connected store failed: %v", err)
	}

	mini.Close()

	if svc.IsConnected(ctx) {
		t.Fatalf("expected ping to fail after store shutdown")
	}
	if err := svc.WaitUntilReady(ctx, 300*time.Millisecond); err == nil {
		t.Fatalf("expected wait to time out after store shutdown")
	}
}

func TestCacheServiceDel(t *testing.T) {
	svc, _ := newTestCacheService(t)
	ctx := context.Background()

	if err := svc.Set(ctx, "key", testPayload{Name: "v"}, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := svc.Del(ctx, "key"); err != nil {
		t.Fatalf("del failed: %v", err)
	}

	exists, err := svc.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Fatalf("expected key to be deleted")
	}
}
