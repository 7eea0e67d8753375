package models

import "time"

// Subscription is the entitlement grant: at most one row exists per user at any
// instant. A new verified payment supersedes the previous row, it never stacks.
// ExpiresAt is epoch milliseconds, set once at creation and never extended; a
// row past its expiry is equivalent to no row at all and is evicted on read.
type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"uniqueIndex;type:varchar(200);not null" json:"user_email"`
	PlanID    string    `gorm:"type:varchar(50);not null" json:"plan_id"`
	PlanName  string    `gorm:"type:varchar(100);not null" json:"plan_name"`
	ExpiresAt int64     `gorm:"not null" json:"expires_at"`
	AICredits *int      `gorm:"column:ai_credits;default:null" json:"ai_credits,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ExpiredAt reports whether the grant is past its expiry at the given instant.
func (s *Subscription) ExpiredAt(now time.Time) bool {
	return s.ExpiresAt <= now.UnixMilli()
}

// Metered reports whether the plan this grant was created from carries a
// per-call credit limit. Unmetered grants allow unlimited use while active.
func (s *Subscription) Metered() bool {
	return s.AICredits != nil
}
