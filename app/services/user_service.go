package services

import (
	"errors"

	"repairdesk/app/models"
	"repairdesk/app/repo"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register creates a new account with role "user". The password is stored
// only as a bcrypt hash.
func (s *UserService) Register(email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Email: email, PasswordHash: string(hash), Role: "user"})
}

// Authenticate verifies a login attempt. Unknown email and wrong password
// collapse into the same ErrInvalidCredentials so responses cannot be used to
// probe which addresses have accounts.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin idempotently seeds the configured admin account.
func (s *UserService) EnsureAdmin(email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Email: email, PasswordHash: string(hash), Role: "admin"})
}
