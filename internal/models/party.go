package models

import (
	"time"

	"github.com/google/uuid"
)

// Vendor supplies raw materials and services. Soft-deleted via IsActive.
type Vendor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	GSTNumber  string    `json:"gst_number"`
	Address    string    `json:"address"`
	VendorType string    `json:"vendor_type"` // raw_material / service / both
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	GSTNumber string    `json:"gst_number"`
	Address   string    `json:"address"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
