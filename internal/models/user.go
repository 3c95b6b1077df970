package models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCashier UserRole = "cashier"
)

type User struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Username       string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	HashedPassword string   `gorm:"size:255;not null" json:"-"`
	IsActive       bool     `gorm:"not null;default:true" json:"is_active"`
	Role           UserRole `gorm:"size:20;not null;default:cashier" json:"role"`
}
