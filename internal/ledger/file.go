package ledger

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// FileLedger persists the rated set as a JSON array of application IDs in a
// single well-known file, mirroring the browser-profile storage the web UI
// used. It is profile scoped: workerID is ignored, switching accounts on the
// same host shares the set. The Postgres ledger is the account-scoped
// replacement.
type FileLedger struct {
	path   string
	mu     sync.Mutex
	logger *log.Logger
}

func NewFileLedger(path string, logger *log.Logger) *FileLedger {
	return &FileLedger{path: path, logger: logger}
}

func (l *FileLedger) IsRated(_ context.Context, _ uuid.UUID, applicationID int64) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	set := l.load()
	return set[applicationID]
}

func (l *FileLedger) MarkRated(_ context.Context, _ uuid.UUID, applicationID int64) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	set := l.load()
	if set[applicationID] {
		return nil
	}
	set[applicationID] = true
	return l.store(set)
}

func (l *FileLedger) Clear(_ context.Context, _ uuid.UUID) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store(map[int64]bool{})
}

// load reads the backing file into a set. Absent or malformed content is
// treated as an empty set, never an error.
func (l *FileLedger) load() map[int64]bool {
	set := make(map[int64]bool)

	b, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) && l.logger != nil {
			l.logger.Printf("[Ledger] read error path=%s err=%v", l.path, err)
		}
		return set
	}

	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		if l.logger != nil {
			l.logger.Printf("[Ledger] malformed content treated as empty path=%s err=%v", l.path, err)
		}
		return set
	}

	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (l *FileLedger) store(set map[int64]bool) error {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(l.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, l.path)
}

var _ Ledger = (*FileLedger)(nil)
