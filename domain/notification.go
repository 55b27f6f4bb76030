package domain

import "time"

// Notification types emitted by order lifecycle transitions.
const (
	NotifOrderPlaced     = "order_placed"
	NotifPaymentVerified = "payment_verified"
	NotifPaymentRejected = "payment_rejected"
	NotifOrderCooking    = "order_cooking"
	NotifOrderReady      = "order_ready"
	NotifOrderCompleted  = "order_completed"
	NotifOrderCancelled  = "order_cancelled"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	OrderID   *uint     `gorm:"column:order_id" json:"order_id,omitempty"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
