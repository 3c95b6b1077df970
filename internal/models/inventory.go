package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ItemTypeRawMaterial    = "raw_material"
	ItemTypeProductVariant = "product_variant"

	RefTypePurchase            = "purchase"
	RefTypeManufacturingInput  = "manufacturing_input"
	RefTypeManufacturingOutput = "manufacturing_output"
	RefTypeSale                = "sale"
	RefTypeAdjustment          = "adjustment"
)

// InventoryMovement is a signed quantity ledger over raw materials and product
// variants. Current stock for an item is the sum of its QuantityChange rows.
type InventoryMovement struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DateTime       time.Time        `gorm:"not null;default:now()" json:"date_time"`
	ItemType       string           `gorm:"not null;index:idx_inventory_item" json:"item_type"`
	ItemID         uuid.UUID        `gorm:"type:uuid;not null;index:idx_inventory_item" json:"item_id"`
	QuantityChange decimal.Decimal  `gorm:"type:decimal(14,3);not null" json:"quantity_change"` // +IN / -OUT
	Unit           string           `gorm:"not null" json:"unit"`
	CostPerUnit    *decimal.Decimal `gorm:"type:decimal(14,4)" json:"cost_per_unit"`
	TotalCost      *decimal.Decimal `gorm:"type:decimal(14,2)" json:"total_cost"`
	ReferenceType  string           `gorm:"index:idx_inventory_ref" json:"reference_type"`
	ReferenceID    *uuid.UUID       `gorm:"type:uuid;index:idx_inventory_ref" json:"reference_id"`
	CreatedAt      time.Time        `json:"created_at"`
}
