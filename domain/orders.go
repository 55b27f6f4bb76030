package domain

import "time"

// Order statuses, in lifecycle order.
const (
	OrderPendingPayment      = "pending_payment"
	OrderPendingVerification = "pending_verification"
	OrderVerified            = "verified"
	OrderCooking             = "cooking"
	OrderReady               = "ready"
	OrderCompleted           = "completed"
	OrderCancelled           = "cancelled"
)

// Payment statuses.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPending  = "pending"
	PaymentVerified = "verified"
	PaymentRejected = "rejected"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Shared by all sibling orders produced by one checkout.
	CheckoutID    string    `gorm:"column:checkout_id;index;not null" json:"checkout_id"`
	BuyerID       uint      `gorm:"column:buyer_id;index;not null" json:"buyer_id"`
	StandID       uint      `gorm:"column:stand_id;index;not null" json:"stand_id"`
	Total         int64     `gorm:"column:total;not null" json:"total"`
	Status        string    `gorm:"column:status;default:pending_payment" json:"status"`
	PaymentMethod string    `gorm:"column:payment_method" json:"payment_method"`
	PaymentProof  *string   `gorm:"column:payment_proof" json:"payment_proof,omitempty"`
	PaymentStatus string    `gorm:"column:payment_status;default:unpaid" json:"payment_status"`
	SellerNotes   string    `gorm:"column:seller_notes" json:"seller_notes"`
	BuyerNotes    string    `gorm:"column:buyer_notes" json:"buyer_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	// Joined display fields.
	StandName string `gorm:"-" json:"stand_name,omitempty"`
	BuyerName string `gorm:"-" json:"buyer_name,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"column:order_id;index;not null" json:"order_id"`
	MenuID  uint `gorm:"column:menu_id;not null" json:"menu_id"`
	Qty     int  `gorm:"column:qty;not null" json:"qty"`
	// Menu price at order time; never re-derived afterwards.
	UnitPrice int64 `gorm:"column:unit_price;not null" json:"unit_price"`
	Subtotal  int64 `gorm:"column:subtotal;not null" json:"subtotal"`

	MenuName string `gorm:"-" json:"menu_name,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

var orderTransitions = map[string][]string{
	OrderPendingPayment:      {OrderPendingVerification},
	OrderPendingVerification: {OrderVerified, OrderCancelled},
	OrderVerified:            {OrderCooking, OrderCancelled},
	OrderCooking:             {OrderReady, OrderCancelled},
	OrderReady:               {OrderCompleted, OrderCancelled},
}

// CanTransition reports whether an order may move from one status to
// another. Completed and cancelled are terminal.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
