package messagelog

import (
	"fmt"

	"chatroom/internal/directory"
	"chatroom/pkg/chat"
	"gorm.io/gorm"
)

// Service is the append-only, strictly-ordered record of all sent messages.
// Indices are assigned by the log itself: the next index is always the
// current log length, so the stored order and the index order coincide.
// Append is not safe for unserialized concurrent use; the hub is the single
// writer and holds its lock across the call.
type Service struct {
	db  *gorm.DB
	dir *directory.Service
}

func NewService(db *gorm.DB, dir *directory.Service) *Service {
	return &Service{db: db, dir: dir}
}

// Append stores a message from a signed-in user and returns its index.
func (s *Service) Append(user, text string) (int, error) {
	if text == "" {
		return 0, chat.ErrEmptyMessage
	}

	ok, err := s.dir.Has(user)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, chat.ErrUnknownUser
	}

	var count int64
	if err := s.db.Model(&chat.Message{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	message := chat.Message{
		Index:    int(count),
		UserName: user,
		Body:     text,
	}

	if err := s.db.Create(&message).Error; err != nil {
		return 0, fmt.Errorf("failed to append message: %w", err)
	}

	return message.Index, nil
}

// Length returns the number of messages in the log.
func (s *Service) Length() (int, error) {
	var count int64
	if err := s.db.Model(&chat.Message{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return int(count), nil
}

// List returns a snapshot of all messages in ascending index order.
func (s *Service) List() ([]chat.Message, error) {
	messages := make([]chat.Message, 0)
	if err := s.db.Order("idx asc").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
