package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Purchase struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceNumber    string          `json:"invoice_number"`
	InvoiceDate      time.Time       `gorm:"type:date;not null;index" json:"invoice_date"`
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Vendor           *Vendor         `gorm:"constraint:OnDelete:RESTRICT" json:"vendor,omitempty"`
	PurchaseCategory string          `json:"purchase_category"` // raw_material / packing / service
	TotalAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount"`
	AmountCash       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_cash"`
	AmountUPI        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_upi"`
	AmountCard       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_card"`
	AmountCredit     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_credit"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_paid"`
	BalanceDue       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance_due"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`

	Items []PurchaseItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type PurchaseItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PurchaseID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	RawMaterialID *uuid.UUID      `gorm:"type:uuid;index" json:"raw_material_id"`
	RawMaterial   *RawMaterial    `gorm:"constraint:OnDelete:RESTRICT" json:"raw_material,omitempty"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"quantity"`
	Unit          string          `gorm:"not null" json:"unit"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"price_per_unit"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"line_total"`
	GSTRate       decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_rate"`
	GSTAmount     decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"gst_amount"`
	TaxableValue  decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"taxable_value"`
}
