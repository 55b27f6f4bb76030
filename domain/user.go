package domain

import "time"

const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

const (
	BuyerTypeStudent = "student"
	BuyerTypeFaculty = "faculty"
	BuyerTypeStaff   = "staff"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"column:email;unique;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"`
	FullName string `gorm:"column:full_name;not null" json:"full_name"`
	Role     string `gorm:"column:role;not null" json:"role"`
	Phone    string `gorm:"column:phone;not null" json:"phone"`
	// Business license number for sellers, student/staff id for buyers.
	IDNumber  string    `gorm:"column:id_number;not null" json:"id_number"`
	BuyerType *string   `gorm:"column:buyer_type" json:"buyer_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
