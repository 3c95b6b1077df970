package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ManufacturingBatch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BatchCode string    `gorm:"uniqueIndex" json:"batch_code"`
	BatchDate time.Time `gorm:"type:date;not null;index" json:"batch_date"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`

	Inputs  []ManufacturingInput  `gorm:"constraint:OnDelete:CASCADE" json:"inputs,omitempty"`
	Outputs []ManufacturingOutput `gorm:"constraint:OnDelete:CASCADE" json:"outputs,omitempty"`
}

type ManufacturingInput struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BatchID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"batch_id"`
	RawMaterialID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"raw_material_id"`
	RawMaterial    *RawMaterial    `gorm:"constraint:OnDelete:RESTRICT" json:"raw_material,omitempty"`
	Quantity       decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"quantity"`
	Unit           string          `gorm:"not null" json:"unit"`
	Rate           decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"rate"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	PurchaseItemID *uuid.UUID      `gorm:"type:uuid" json:"purchase_item_id"` // traceability to the sourcing lot
	PurchaseItem   *PurchaseItem   `gorm:"constraint:OnDelete:SET NULL" json:"purchase_item,omitempty"`
}

type ManufacturingOutput struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BatchID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"batch_id"`
	ProductID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	Product             *Product         `gorm:"constraint:OnDelete:RESTRICT" json:"product,omitempty"`
	ProductVariantID    *uuid.UUID       `gorm:"type:uuid" json:"product_variant_id"`
	ProductVariant      *ProductVariant  `gorm:"constraint:OnDelete:SET NULL" json:"product_variant,omitempty"`
	QuantityKg          *decimal.Decimal `gorm:"type:decimal(14,3)" json:"quantity_kg"`
	QuantityLtr         *decimal.Decimal `gorm:"type:decimal(14,3)" json:"quantity_ltr"`
	Unit                string           `json:"unit"`
	TotalOutputQuantity *decimal.Decimal `gorm:"type:decimal(14,3)" json:"total_output_quantity"`
	UnitCost            *decimal.Decimal `gorm:"type:decimal(14,4)" json:"unit_cost"`
	TotalCost           *decimal.Decimal `gorm:"type:decimal(14,2)" json:"total_cost"`
	YieldPercentage     *decimal.Decimal `gorm:"type:decimal(7,3)" json:"yield_percentage"`
}
