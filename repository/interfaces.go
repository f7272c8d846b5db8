package repository

import (
	"github.com/hawkeyemusic/hawkeyebackend/models"
)

// AlbumRepositoryInterface defines the methods for album data operations
type AlbumRepositoryInterface interface {
	Create(album *models.Album) error
	ListAll() ([]models.Album, error)
	GetByID(id uint) (*models.Album, error)
}

// TrackRepositoryInterface defines the methods for track data operations
type TrackRepositoryInterface interface {
	Create(track *models.Track) error
	GetByID(id uint) (*models.Track, error)
	ListByAlbumID(albumID uint) ([]models.Track, error)
}

// BlogPostRepositoryInterface defines the methods for blog post data operations
type BlogPostRepositoryInterface interface {
	Create(post *models.BlogPost) error
	ListAll() ([]models.BlogPost, error)
	GetByID(id uint) (*models.BlogPost, error)
}

// MerchRepositoryInterface defines the methods for merchandise data operations
type MerchRepositoryInterface interface {
	Create(item *models.MerchItem) error
	ListAll() ([]models.MerchItem, error)
	GetByID(id uint) (*models.MerchItem, error)
}

// SubscriberRepositoryInterface defines the methods for newsletter subscriber
// data operations
type SubscriberRepositoryInterface interface {
	Create(subscriber *models.Subscriber) error
	ListAll() ([]models.Subscriber, error)
}
