package models

// Album represents one of Hawk Eye's albums in the database using GORM.
// It corresponds to the 'albums' table.
type Album struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	DedicatedTo string `gorm:"not null" json:"dedicated_to"`
	Description string `gorm:"not null" json:"description"`
	CoverImage  string `gorm:"" json:"cover_image,omitempty"`
	BackImage   string `gorm:"" json:"back_image,omitempty"`
	SideImage   string `gorm:"" json:"side_image,omitempty"`
	DiscImage   string `gorm:"" json:"disc_image,omitempty"`

	// free-text label, not a strict date ("2024", "2023-2025", ...)
	ReleaseYear string `gorm:"not null" json:"release_year"`

	// computed once from the import row group; never reconciled afterwards
	TrackCount int `gorm:"not null" json:"track_count"`

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Album) TableName() string {
	return "albums"
}
