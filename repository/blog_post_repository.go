package repository

import (
	"fmt"
	"time"

	"github.com/hawkeyemusic/hawkeyebackend/models"
	"gorm.io/gorm"
)

// BlogPostRepository handles database operations for BlogPost entities
type BlogPostRepository struct {
	DB *gorm.DB
}

// NewBlogPostRepository creates a new instance of BlogPostRepository
func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{DB: db}
}

// Create creates a new blog post record in the database
func (r *BlogPostRepository) Create(post *models.BlogPost) error {
	now := time.Now().Unix()
	if post.CreatedAt == 0 {
		post.CreatedAt = now
	}
	if post.UpdatedAt == 0 {
		post.UpdatedAt = now
	}

	err := r.DB.Create(post).Error
	if err != nil {
		return fmt.Errorf("failed to create blog post %s: %w", post.Title, err)
	}
	return nil
}

// ListAll retrieves all blog posts, newest first
func (r *BlogPostRepository) ListAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost

	err := r.DB.Order("publish_date DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a blog post by its ID
func (r *BlogPostRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.DB.First(&post, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get blog post by ID %d: %w", id, err)
	}
	return &post, nil
}
