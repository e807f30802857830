package utils

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// NewShareToken mints the opaque token handed out with trip invites.
func NewShareToken() string {
	return uuid.New().String()
}
