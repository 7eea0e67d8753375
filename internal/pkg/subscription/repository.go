package subscription

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/resumeiq/resumeiq/app/models"
)

// Repository provides the DB operations used by the lifecycle service.
type Repository interface {
	// Activate persists the payment record, ensures the user row exists and
	// replaces the user's grant as a single atomic unit. Returns
	// ErrDuplicatePayment, without mutating anything, when the payment id was
	// already recorded: a replayed callback must not even leave a user row.
	Activate(payment *models.Payment, sub *models.Subscription) error

	GetByUserEmail(email string) (*models.Subscription, error)
	DeleteByUserEmail(email string) error

	// ConsumeCredit decrements one AI credit of a metered grant. Returns
	// ErrNoCredits when no decrementable credit remains.
	ConsumeCredit(email string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a subscription repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Activate(payment *models.Payment, sub *models.Subscription) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// The unique index on razorpay_payment_id decides the replay race:
		// of two concurrent inserts only one row lands, the loser sees
		// RowsAffected == 0 and rolls back untouched.
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "razorpay_payment_id"}},
			DoNothing: true,
		}).Create(payment)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDuplicatePayment
		}

		// First verified payment also creates the account; inside the
		// transaction so a rejected replay rolls the row back with the rest.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&models.User{Email: sub.UserEmail}).Error; err != nil {
			return err
		}

		// Supersede, never stack: delete-then-insert inside the same
		// transaction so readers never observe the gap.
		if err := tx.Where("user_email = ?", sub.UserEmail).
			Delete(&models.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Create(sub).Error
	})
}

func (r *gormRepository) GetByUserEmail(email string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Where("user_email = ?", email).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *gormRepository) DeleteByUserEmail(email string) error {
	return r.db.Where("user_email = ?", email).Delete(&models.Subscription{}).Error
}

func (r *gormRepository) ConsumeCredit(email string) error {
	res := r.db.Model(&models.Subscription{}).
		Where("user_email = ? AND ai_credits > 0", email).
		UpdateColumn("ai_credits", gorm.Expr("ai_credits - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoCredits
	}
	return nil
}
