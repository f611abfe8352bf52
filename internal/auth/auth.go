// Package auth is the credential store for member accounts. Staff access is
// not handled here; the admin passphrase is a separate, lower-assurance
// check owned by the admin handler.
package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/LiuBangJie/online-ordering/internal/models"
	"github.com/LiuBangJie/online-ordering/internal/repository"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	members *repository.MemberRepository
}

func NewService(members *repository.MemberRepository) *Service {
	return &Service{members: members}
}

// Register creates a member with a bcrypt password hash. The email is
// normalized to lower case and must be unique.
func (s *Service) Register(name, email, password string) (*models.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.members.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.members.Create(member); err != nil {
		// Lost the race against a concurrent registration with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return member, nil
}

// Verify checks the credentials and returns the member on success. bcrypt's
// comparison is constant time.
func (s *Service) Verify(email, password string) (*models.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	member, err := s.members.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return member, nil
}
