package pennywise

import (
	"fmt"
	"testing"
	"time"
)

// testEpoch is the fixed instant test clocks start from.
var testEpoch = time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

// newTestStore returns a store on in-memory storage with a deterministic
// clock (one second per call) and sequential ids.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(NewMemStorage())
	var id int
	s.newID = func() string {
		id++
		return fmt.Sprintf("id-%d", id)
	}
	tick := testEpoch
	s.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return s
}

// seedAccounts runs the default account seeding on a test store.
func seedAccounts(t *testing.T, s *Store) {
	t.Helper()
	s.migrate()
}

// failingStorage errors on every write, to exercise persistence warnings.
type failingStorage struct{ MemStorage }

func (failingStorage) Set(key string, value []byte) error {
	return fmt.Errorf("disk full")
}
