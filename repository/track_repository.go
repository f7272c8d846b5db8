package repository

import (
	"fmt"
	"time"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"gorm.io/gorm"
)

// TrackRepository handles database operations for Track entities
type TrackRepository struct {
	DB *gorm.DB
}

// NewTrackRepository creates a new instance of TrackRepository
func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{DB: db}
}

// Create creates a new track record in the database
func (r *TrackRepository) Create(track *models.Track) error {
	now := time.Now().Unix()
	if track.CreatedAt == 0 {
		track.CreatedAt = now
	}
	if track.UpdatedAt == 0 {
		track.UpdatedAt = now
	}

	err := r.DB.Create(track).Error
	if err != nil {
		return fmt.Errorf("failed to create track %s: %w", track.Title, err)
	}
	return nil
}

// GetByID retrieves a track by its ID
func (r *TrackRepository) GetByID(id uint) (*models.Track, error) {
	var track models.Track
	err := r.DB.First(&track, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get track by ID %d: %w", id, err)
	}
	return &track, nil
}

// ListByAlbumID retrieves the tracks of one album ordered by track number
func (r *TrackRepository) ListByAlbumID(albumID uint) ([]models.Track, error) {
	var tracks []models.Track

	err := r.DB.Where("album_id = ?", albumID).Order("track_number ASC").Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks for album ID %d: %w", albumID, err)
	}
	return tracks, nil
}
