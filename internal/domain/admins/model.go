package admins

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is an account for the management API. Visitors are anonymous; only
// editors authenticate.
type Admin struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string
	Email    string `gorm:"not null;uniqueIndex:idx_admins_email"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null;default:'admin'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

