package domain

import "time"

const (
	MenuAvailable   = "available"
	MenuUnavailable = "unavailable"
)

type Menu struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	StandID uint   `gorm:"column:stand_id;index;not null" json:"stand_id"`
	Name    string `gorm:"column:name;not null" json:"name"`
	// Price in the smallest currency unit.
	Price       int64     `gorm:"column:price;not null" json:"price"`
	Image       string    `gorm:"column:image" json:"image"`
	Description string    `gorm:"column:description" json:"description"`
	Category    string    `gorm:"column:category" json:"category"`
	Status      string    `gorm:"column:status;default:available" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// Review aggregates, filled by list queries (0/0 when unreviewed).
	AvgRating   float64 `gorm:"-" json:"avg_rating"`
	ReviewCount int64   `gorm:"-" json:"review_count"`
}

func (Menu) TableName() string {
	return "menus"
}
