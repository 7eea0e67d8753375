package repository

import "github.com/resumeiq/resumeiq/app/models"

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	FirstOrCreateByEmail(email string) (*models.User, error)
}

// Repositories bundles all repository instances
type Repositories struct {
	User UserRepository
}
