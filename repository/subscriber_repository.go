package repository

import (
	"fmt"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"gorm.io/gorm"
)

// SubscriberRepository handles database operations for Subscriber entities
type SubscriberRepository struct {
	DB *gorm.DB
}

// NewSubscriberRepository creates a new instance of SubscriberRepository
func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

// Create creates a new subscriber record; the unique index on email makes
// duplicate subscriptions fail here
func (r *SubscriberRepository) Create(subscriber *models.Subscriber) error {
	err := r.DB.Create(subscriber).Error
	if err != nil {
		return fmt.Errorf("failed to create subscriber %s: %w", subscriber.Email, err)
	}
	return nil
}

// ListAll retrieves all subscribers
func (r *SubscriberRepository) ListAll() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber

	err := r.DB.Order("id ASC").Find(&subscribers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}
