package models

// Track represents a single track belonging to an album.
// AlbumID is a plain foreign reference; it is not enforced by the store.
type Track struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	AlbumID     uint    `gorm:"not null;index" json:"album_id"`
	Title       string  `gorm:"not null" json:"title"`
	Duration    string  `gorm:"not null" json:"duration"`
	TrackNumber int     `gorm:"not null" json:"track_number"` // 1-based position within the album
	Lyrics      *string `gorm:"" json:"lyrics,omitempty"`     // Nullable
	Description string  `gorm:"" json:"description,omitempty"`
	AudioURL    string  `gorm:"" json:"audio_url,omitempty"`
	VideoURL    string  `gorm:"" json:"video_url,omitempty"`
	ImageURL    string  `gorm:"" json:"image_url,omitempty"`
	SKU         string  `gorm:"" json:"sku,omitempty"`

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp
}

func (Track) TableName() string {
	return "tracks"
}
