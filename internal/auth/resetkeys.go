package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

// ResetKeys holds outstanding password-reset keys, one per email. Keys are
// single-use and expire after the configured TTL. The store is an explicit
// injected dependency of the accounts service rather than package state, so
// its lifetime is the server's and tests can drive the clock.
type ResetKeys struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	keys map[string]resetEntry
}

type resetEntry struct {
	key     string
	expires time.Time
}

// NewResetKeys creates a reset-key store. A nil now falls back to time.Now.
func NewResetKeys(ttl time.Duration, now func() time.Time) *ResetKeys {
	if now == nil {
		now = time.Now
	}
	return &ResetKeys{ttl: ttl, now: now, keys: make(map[string]resetEntry)}
}

// Issue generates a 6-character alphanumeric key for the email, replacing
// any outstanding key. The key is returned to the caller for out-of-band
// display; it is never emailed.
func (r *ResetKeys) Issue(email string) string {
	key := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[email] = resetEntry{key: key, expires: r.now().Add(r.ttl)}
	return key
}

// Redeem validates and consumes the key for the email. A wrong, expired, or
// already-consumed key fails with ErrInvalidInput and leaves nothing behind
// for a second attempt with the same key to succeed.
func (r *ResetKeys) Redeem(email, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.keys[email]
	if !ok || entry.key != key {
		return fmt.Errorf("reset key: %w", models.ErrInvalidInput)
	}
	delete(r.keys, email)
	if r.now().After(entry.expires) {
		return fmt.Errorf("reset key expired: %w", models.ErrInvalidInput)
	}
	return nil
}
