package domain

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BuyerID   uint      `gorm:"column:buyer_id;not null" json:"buyer_id"`
	MenuID    uint      `gorm:"column:menu_id;index;not null" json:"menu_id"`
	OrderID   *uint     `gorm:"column:order_id" json:"order_id,omitempty"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment" json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	BuyerName string `gorm:"-" json:"buyer_name,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
