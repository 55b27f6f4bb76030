package domain

import "time"

type Stand struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SellerID    uint      `gorm:"column:seller_id;uniqueIndex;not null" json:"seller_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Image       string    `gorm:"column:image" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined from users on list/detail reads.
	SellerName  string `gorm:"-" json:"seller_name,omitempty"`
	SellerPhone string `gorm:"-" json:"seller_phone,omitempty"`
}

func (Stand) TableName() string {
	return "stands"
}
