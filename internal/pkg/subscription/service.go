package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/resumeiq/resumeiq/app/models"
	"github.com/resumeiq/resumeiq/internal/pkg/plans"
)

const millisPerDay = 86_400_000

// Service owns the subscription lifecycle: it turns verified payments into
// time-bounded grants and is the single source of truth for whether a user is
// currently entitled. No other component may hold its own notion of "active".
type Service struct {
	repo Repository
	now  func() time.Time
}

// Status is the result of a CurrentStatus read. Reason is set only when
// Active is false.
type Status struct {
	Active       bool
	Reason       string
	Subscription *models.Subscription
}

// NewService creates a lifecycle service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceFromDB creates a lifecycle service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// WithClock overrides the service clock, used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Activate replaces any prior grant for the user with a fresh one priced and
// sized by the catalog plan, recording the payment and creating the account
// on first purchase in the same atomic unit.
// Plan name and duration are copied by value so later catalog edits never
// alter existing grants. A replayed payment id fails with ErrDuplicatePayment
// and leaves all state untouched.
func (s *Service) Activate(ctx context.Context, email, planID string, attempt PaymentAttempt) (*models.Subscription, error) {
	_ = ctx
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}

	plan, ok := plans.Get(planID)
	if !ok {
		return nil, ErrPlanNotFound
	}

	payment := &models.Payment{
		RazorpayOrderID:   attempt.OrderID,
		RazorpayPaymentID: attempt.PaymentID,
		RazorpaySignature: attempt.Signature,
		PlanID:            plan.ID,
		AmountMinorUnits:  plan.PriceMinorUnits,
		Status:            models.PaymentStatusSuccess,
	}

	sub := &models.Subscription{
		UserEmail: email,
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		ExpiresAt: s.now().UnixMilli() + int64(plan.DurationDays)*millisPerDay,
	}
	if plan.AICredits != nil {
		credits := *plan.AICredits
		sub.AICredits = &credits
	}

	if err := s.repo.Activate(payment, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// CurrentStatus re-derives entitlement from the persisted expiry on every
// call. An expired row is evicted on read and reported exactly like an absent
// one, except for the denial reason.
func (s *Service) CurrentStatus(ctx context.Context, email string) (Status, error) {
	_ = ctx
	email = strings.ToLower(strings.TrimSpace(email))

	sub, err := s.repo.GetByUserEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Status{Active: false, Reason: ReasonNoSubscription}, nil
		}
		return Status{}, err
	}

	if sub.ExpiredAt(s.now()) {
		// Lazy eviction: the row is already semantically gone.
		if err := s.repo.DeleteByUserEmail(email); err != nil {
			return Status{}, err
		}
		return Status{Active: false, Reason: ReasonExpired}, nil
	}

	return Status{Active: true, Subscription: sub}, nil
}

// ConsumeCredit burns one AI credit of a metered grant before the protected
// action runs. Unmetered grants pass through untouched.
func (s *Service) ConsumeCredit(ctx context.Context, email string, sub *models.Subscription) error {
	_ = ctx
	if sub == nil || !sub.Metered() {
		return nil
	}
	return s.repo.ConsumeCredit(strings.ToLower(strings.TrimSpace(email)))
}
