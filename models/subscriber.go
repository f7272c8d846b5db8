package models

// Subscriber is a newsletter subscription. Email is the only
// uniqueness-constrained field in the whole model.
type Subscriber struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"not null;unique" json:"email"`
	SubscribedAt string `gorm:"not null" json:"subscribed_at"` // RFC3339 text
}

func (Subscriber) TableName() string {
	return "subscribers"
}
