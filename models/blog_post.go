package models

// BlogPost represents a blog entry on the site.
type BlogPost struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Content     string  `gorm:"not null" json:"content"`
	Excerpt     string  `gorm:"not null" json:"excerpt"`
	Category    string  `gorm:"not null" json:"category"`
	ImageURL    *string `gorm:"" json:"image_url,omitempty"` // Nullable
	PublishDate string  `gorm:"not null" json:"publish_date"`

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
