package auth

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdelivery/smartdelivery-golang/internal/models"
)

func TestIssueAndRedeem(t *testing.T) {
	keys := NewResetKeys(15*time.Minute, nil)

	key := keys.Issue("d1@x.com")
	require.Regexp(t, regexp.MustCompile(`^[0-9A-F]{6}$`), key)

	require.NoError(t, keys.Redeem("d1@x.com", key))

	// Single use: the same key cannot be redeemed twice.
	assert.ErrorIs(t, keys.Redeem("d1@x.com", key), models.ErrInvalidInput)
}

func TestRedeemWrongKeyKeepsTheRealOne(t *testing.T) {
	keys := NewResetKeys(15*time.Minute, nil)
	key := keys.Issue("d1@x.com")

	assert.ErrorIs(t, keys.Redeem("d1@x.com", "ZZZZZZ"), models.ErrInvalidInput)
	// The outstanding key survives a failed attempt.
	assert.NoError(t, keys.Redeem("d1@x.com", key))
}

func TestIssueReplacesOutstandingKey(t *testing.T) {
	keys := NewResetKeys(15*time.Minute, nil)
	first := keys.Issue("d1@x.com")
	second := keys.Issue("d1@x.com")

	assert.ErrorIs(t, keys.Redeem("d1@x.com", first), models.ErrInvalidInput)
	assert.NoError(t, keys.Redeem("d1@x.com", second))
}

func TestKeysExpire(t *testing.T) {
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	keys := NewResetKeys(10*time.Minute, func() time.Time { return current })

	key := keys.Issue("d1@x.com")
	current = current.Add(11 * time.Minute)

	assert.ErrorIs(t, keys.Redeem("d1@x.com", key), models.ErrInvalidInput)
}
