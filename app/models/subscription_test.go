package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionExpiredAt(t *testing.T) {
	now := time.Now()
	sub := &Subscription{ExpiresAt: now.Add(time.Hour).UnixMilli()}

	assert.False(t, sub.ExpiredAt(now))
	assert.True(t, sub.ExpiredAt(now.Add(time.Hour)))
	assert.True(t, sub.ExpiredAt(now.Add(2*time.Hour)))
}

func TestSubscriptionExpiredAtBoundary(t *testing.T) {
	now := time.Now()
	sub := &Subscription{ExpiresAt: now.UnixMilli()}

	// expires_at <= now counts as expired, not as one last valid instant
	assert.True(t, sub.ExpiredAt(now))
	assert.False(t, sub.ExpiredAt(now.Add(-time.Millisecond)))
}

func TestSubscriptionMetered(t *testing.T) {
	credits := 50
	assert.True(t, (&Subscription{AICredits: &credits}).Metered())
	assert.False(t, (&Subscription{}).Metered())
}

func TestNewUserValidation(t *testing.T) {
	u, err := NewUser("a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = NewUser("")
	assert.Error(t, err)

	_, err = NewUser("not-an-email")
	assert.Error(t, err)
}
