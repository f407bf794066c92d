package cache

import (
	"context"
	"testing"
	"time"
)

// newUnavailableRedis builds the adapter against a port nothing listens on,
// so the constructor's ping fails and the bypass paths engage.
func newUnavailableRedis(t *testing.T) *Redis {
	t.Helper()
	t.Setenv("REDIS_HOST", "127.0.0.1")
	t.Setenv("REDIS_PORT", "1")
	return NewRedis(nil)
}

func TestRedisUnavailable_ReadsMissEverything(t *testing.T) {
	r := newUnavailableRedis(t)
	ctx := context.Background()

	var out []string
	hit, err := r.GetJSON(ctx, "applications:list:x", &out)
	if err != nil || hit {
		t.Fatalf("GetJSON: hit=%v err=%v, want miss without error", hit, err)
	}
	if err := r.Ping(ctx); err == nil {
		t.Fatal("Ping should report the outage")
	}
}

func TestRedisUnavailable_WritesAreNoOps(t *testing.T) {
	r := newUnavailableRedis(t)
	ctx := context.Background()

	if err := r.SetJSON(ctx, "k", []int{1}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := r.InvalidateWorkerApplications(ctx, "w"); err != nil {
		t.Fatalf("InvalidateWorkerApplications: %v", err)
	}
}

func TestRedisUnavailable_SetIfNotExistsGrantsTheLock(t *testing.T) {
	r := newUnavailableRedis(t)

	// Without Redis there is no lock to hold; answering false would read as
	// "held by someone else" and block every lock-guarded action.
	ok, err := r.SetIfNotExists(context.Background(), "applications:action:1:hire", "1", 30*time.Second)
	if err != nil {
		t.Fatalf("SetIfNotExists: %v", err)
	}
	if !ok {
		t.Fatal("SetIfNotExists must grant the lock when Redis is absent")
	}
}
