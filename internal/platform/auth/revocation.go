package auth

import (
	"sync"
	"time"
)

// RevocationList remembers the ids of sessions ended by logout until they
// would have expired anyway. Thread-safe for concurrent access.
type RevocationList struct {
	mu      sync.RWMutex
	entries map[string]time.Time // session id -> natural expiry
	now     func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke ends the session id. Entries past their expiry are dropped on the
// way, since an expired session is refused regardless.
func (l *RevocationList) Revoke(id string, expiresAt time.Time) {
	if id == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, exp := range l.entries {
		if now.After(exp) {
			delete(l.entries, k)
		}
	}
	l.entries[id] = expiresAt
}

// IsRevoked checks if the session id has been revoked.
func (l *RevocationList) IsRevoked(id string) bool {
	if id == "" {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.entries[id]
	return ok
}

// Count returns the number of tracked revocations.
func (l *RevocationList) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
