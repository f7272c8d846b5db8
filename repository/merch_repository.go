package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/facette/natsort"
	"github.com/hawkeyemusic/hawkeyebackend/models"
	"gorm.io/gorm"
)

// MerchRepository handles database operations for MerchItem entities
type MerchRepository struct {
	DB *gorm.DB
}

// NewMerchRepository creates a new instance of MerchRepository
func NewMerchRepository(db *gorm.DB) *MerchRepository {
	return &MerchRepository{DB: db}
}

// Create creates a new merchandise item record in the database
func (r *MerchRepository) Create(item *models.MerchItem) error {
	now := time.Now().Unix()
	if item.CreatedAt == 0 {
		item.CreatedAt = now
	}
	if item.UpdatedAt == 0 {
		item.UpdatedAt = now
	}

	err := r.DB.Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to create merch item %s: %w", item.Name, err)
	}
	return nil
}

// ListAll retrieves all merchandise items, naturally ordered by name so
// numbered designs ("Poster 2", "Poster 10") list in the expected order
func (r *MerchRepository) ListAll() ([]models.MerchItem, error) {
	var items []models.MerchItem

	err := r.DB.Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list merch items: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return natsort.Compare(items[i].Name, items[j].Name)
	})
	return items, nil
}

// GetByID retrieves a merchandise item by its ID
func (r *MerchRepository) GetByID(id uint) (*models.MerchItem, error) {
	var item models.MerchItem
	err := r.DB.First(&item, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get merch item by ID %d: %w", id, err)
	}
	return &item, nil
}
