package directory

import (
	"errors"
	"fmt"

	"chatroom/pkg/chat"
	"gorm.io/gorm"
)

// Service tracks which display names are currently signed in. Callers that
// need the check-then-insert pair to be atomic (the hub) serialize access;
// the service itself only guarantees per-query consistency.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SignIn inserts the name into the directory. The name must be non-empty
// and not already present (case-sensitive exact match).
func (s *Service) SignIn(name string) (*chat.User, error) {
	if name == "" {
		return nil, chat.ErrEmptyName
	}

	var existing chat.User
	err := s.db.First(&existing, "name = ?", name).Error
	if err == nil {
		return nil, chat.ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
	}

	user := chat.User{Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to sign in %q: %w", name, err)
	}

	return &user, nil
}

// Has reports whether the name is currently signed in.
func (s *Service) Has(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&chat.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up %q: %w", name, err)
	}
	return count > 0, nil
}

// List returns a snapshot of signed-in names in alphabetical order.
func (s *Service) List() ([]string, error) {
	names := make([]string, 0)
	if err := s.db.Model(&chat.User{}).Order("name asc").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return names, nil
}
