package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	ProductCode string           `gorm:"uniqueIndex" json:"product_code"`
	CategoryID  *uuid.UUID       `gorm:"type:uuid" json:"category_id"`
	Category    *ProductCategory `gorm:"constraint:OnDelete:RESTRICT" json:"category,omitempty"`
	BaseUnit    string           `gorm:"not null" json:"base_unit"` // 'L', 'kg', 'Unit'
	HSNCode     string           `gorm:"not null" json:"hsn_code"`
	IsActive    bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`

	Variants []ProductVariant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

type ProductVariant struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProductID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product         `json:"product,omitempty"`
	VariantName  string           `gorm:"not null" json:"variant_name"` // '500 ml', '1 L', ...
	Multiplier   decimal.Decimal  `gorm:"type:decimal(10,3);not null" json:"multiplier"` // in base units
	SKU          string           `gorm:"uniqueIndex" json:"sku"`
	Barcode      string           `json:"barcode"`
	MRP          *decimal.Decimal `gorm:"type:decimal(14,2)" json:"mrp"`
	SellingPrice *decimal.Decimal `gorm:"type:decimal(14,2)" json:"selling_price"`
	CostPrice    *decimal.Decimal `gorm:"type:decimal(14,2)" json:"cost_price"`
	Channel      string           `json:"channel"` // store / online / both
	IsActive     bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}

type RawMaterial struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string           `gorm:"not null" json:"name"`
	Unit         string           `gorm:"not null" json:"unit"` // 'kg', 'ltr'
	HSNCode      string           `json:"hsn_code"`
	ReorderLevel *decimal.Decimal `gorm:"type:decimal(12,3)" json:"reorder_level"`
	IsActive     bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}
