package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// NewUser builds a validated user record. Accounts are identified by email
// alone; they are created on registration or on the first verified payment and
// never mutated afterwards.
func NewUser(email string) (*User, error) {
	u := &User{Email: email}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}
