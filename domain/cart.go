package domain

type CartLine struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	BuyerID uint   `gorm:"column:buyer_id;not null;uniqueIndex:idx_cart_buyer_menu" json:"buyer_id"`
	MenuID  uint   `gorm:"column:menu_id;not null;uniqueIndex:idx_cart_buyer_menu" json:"menu_id"`
	Qty     int    `gorm:"column:qty;not null" json:"qty"`
	Notes   string `gorm:"column:notes" json:"notes"`
}

func (CartLine) TableName() string {
	return "cart_lines"
}

// CartItem is the read model of a cart line joined with its menu and stand.
type CartItem struct {
	ID        uint   `json:"id"`
	BuyerID   uint   `json:"buyer_id"`
	MenuID    uint   `json:"menu_id"`
	MenuName  string `json:"menu_name"`
	Price     int64  `json:"price"`
	Status    string `json:"status"`
	Qty       int    `json:"qty"`
	Notes     string `json:"notes"`
	StandID   uint   `json:"stand_id"`
	StandName string `json:"stand_name"`
}

func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Qty)
}

// CartGroup is one stand's slice of a buyer's cart, in display order.
type CartGroup struct {
	StandID   uint       `json:"stand_id"`
	StandName string     `json:"stand_name"`
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
}

// GroupCartByStand partitions cart items per stand, preserving the order
// in which stands first appear in items.
func GroupCartByStand(items []CartItem) []CartGroup {
	var groups []CartGroup
	index := make(map[uint]int)

	for _, item := range items {
		i, ok := index[item.StandID]
		if !ok {
			i = len(groups)
			index[item.StandID] = i
			groups = append(groups, CartGroup{StandID: item.StandID, StandName: item.StandName})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Total += item.Subtotal()
	}

	return groups
}
