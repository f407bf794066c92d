package ledger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func newTestLedger(t *testing.T) (*FileLedger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rated.json")
	return NewFileLedger(path, nil), path
}

func TestFileLedger_MarkRatedIdempotent(t *testing.T) {
	l, path := newTestLedger(t)
	ctx := context.Background()
	worker := uuid.New()

	if err := l.MarkRated(ctx, worker, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.MarkRated(ctx, worker, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !l.IsRated(ctx, worker, 5) {
		t.Fatalf("expected id 5 to be rated")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ids) != 1 || ids[0] != 5 {
		t.Fatalf("expected exactly one occurrence of 5, got %v", ids)
	}
}

func TestFileLedger_FailsOpenOnCorruptContent(t *testing.T) {
	l, path := newTestLedger(t)
	ctx := context.Background()

	if err := os.WriteFile(path, []byte("not-json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	if l.IsRated(ctx, uuid.New(), 42) {
		t.Fatalf("corrupt store must read as empty set")
	}

	// Writes through a corrupt store start from the empty set.
	if err := l.MarkRated(ctx, uuid.New(), 42); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !l.IsRated(ctx, uuid.New(), 42) {
		t.Fatalf("expected id 42 rated after recovery")
	}
}

func TestFileLedger_MissingFileReadsEmpty(t *testing.T) {
	l, _ := newTestLedger(t)
	if l.IsRated(context.Background(), uuid.New(), 1) {
		t.Fatalf("missing file must read as empty set")
	}
}

func TestFileLedger_Clear(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	worker := uuid.New()

	for _, id := range []int64{1, 2, 3} {
		if err := l.MarkRated(ctx, worker, id); err != nil {
			t.Fatalf("mark %d: %v", id, err)
		}
	}
	if err := l.Clear(ctx, worker); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, id := range []int64{1, 2, 3} {
		if l.IsRated(ctx, worker, id) {
			t.Fatalf("expected id %d cleared", id)
		}
	}
}

func TestFileLedger_ProfileScoped(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	if err := l.MarkRated(ctx, uuid.New(), 7); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// A different worker on the same profile sees the same set.
	if !l.IsRated(ctx, uuid.New(), 7) {
		t.Fatalf("file ledger is profile scoped, workerID must be ignored")
	}
}
