package domain

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BuyerID   uint      `gorm:"column:buyer_id;not null;uniqueIndex:idx_fav_buyer_menu" json:"buyer_id"`
	MenuID    uint      `gorm:"column:menu_id;not null;uniqueIndex:idx_fav_buyer_menu" json:"menu_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
