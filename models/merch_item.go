package models

import "github.com/shopspring/decimal"

// MerchItem represents a store merchandise item (apparel, posters, stickers,
// accessories) imported from the catalog CSV.
type MerchItem struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	SKU         string          `gorm:"" json:"sku,omitempty"`
	Type        string          `gorm:"not null" json:"type"`
	Category    string          `gorm:"" json:"category,omitempty"`
	InStock     int             `gorm:"not null" json:"in_stock"`
	ImageAlt    string          `gorm:"" json:"image_alt,omitempty"`
	ImageBack   string          `gorm:"" json:"image_back,omitempty"`
	ImageFront  string          `gorm:"" json:"image_front,omitempty"`
	ImageSide   string          `gorm:"" json:"image_side,omitempty"`
	KunakiURL   string          `gorm:"" json:"kunaki_url,omitempty"`

	CreatedAt int64 `gorm:"not null" json:"created_at"` // Unix timestamp
	UpdatedAt int64 `gorm:"not null" json:"updated_at"` // Unix timestamp
}

func (MerchItem) TableName() string {
	return "merch_items"
}
