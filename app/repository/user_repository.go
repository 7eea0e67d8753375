package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/resumeiq/resumeiq/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FirstOrCreateByEmail returns the existing user for the email or creates one.
// Registration is idempotent: repeated calls with the same email succeed and
// never mutate the original row.
func (r *userRepository) FirstOrCreateByEmail(email string) (*models.User, error) {
	candidate, err := models.NewUser(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := r.db.Where(models.User{Email: candidate.Email}).FirstOrCreate(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
