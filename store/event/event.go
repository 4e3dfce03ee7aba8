package event

import (
	"context"

	"dsc/core"
	"dsc/pkg/id"

	"gorm.io/gorm"
)

type eventStore struct {
	db *gorm.DB
}

// New new event store
func New(db *gorm.DB) core.IEventStore {
	return &eventStore{
		db: db,
	}
}

// Migrate migrate event table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&core.Event{})
}

func (s *eventStore) Create(ctx context.Context, tx *gorm.DB, event *core.Event) error {
	if event.FollowID == "" {
		event.FollowID = id.GenFollowID()
	}

	return tx.WithContext(ctx).Create(event).Error
}

func (s *eventStore) FindByUser(ctx context.Context, userID string, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if err := s.db.WithContext(ctx).Where("user_id = ? OR to_user_id = ?", userID, userID).
		Order("id DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (s *eventStore) List(ctx context.Context, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}
