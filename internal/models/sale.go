package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Sale struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceNumber    string          `json:"invoice_number"`
	InvoiceDate      time.Time       `gorm:"type:date;not null;index" json:"invoice_date"`
	InvoiceTime      string          `json:"invoice_time"` // HH:MM:SS, optional
	CustomerID       *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	Customer         *Customer       `gorm:"constraint:OnDelete:RESTRICT" json:"customer,omitempty"`
	Channel          string          `json:"channel"` // store / online
	Employee         string          `json:"employee"`
	PartnerRefID     string          `json:"partner_ref_id"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount"` // subtotal
	Charges          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"charges"`
	ChargesDiscount  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"charges_discount"`
	DiscountAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"discount_amount"`
	CGSTAmount       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"cgst_amount"`
	SGSTAmount       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sgst_amount"`
	IGSTAmount       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"igst_amount"`
	TaxAmount        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"tax_amount"`
	RoundOff         decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"round_off"`
	NetAmount        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"net_amount"` // grand total
	AmountCash       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_cash"`
	AmountUPI        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_upi"`
	AmountCard       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_card"`
	AmountCredit     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount_credit"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_paid"`
	BalanceDue       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance_due"`
	PaymentRefMode   string          `json:"payment_ref_mode"`
	TransactionRefID string          `json:"transaction_ref_id"`
	Status           string          `json:"status"` // 'Sales', 'Return', ...
	Remarks          string          `json:"remarks"`
	CreatedAt        time.Time       `gorm:"index" json:"created_at"`

	Items []SaleItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type SaleItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SaleID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductVariantID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_variant_id"`
	ProductVariant   *ProductVariant `gorm:"constraint:OnDelete:RESTRICT" json:"product_variant,omitempty"`
	Quantity         decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"unit_price"`
	LineTotal        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"line_total"`
	GSTRate          decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_rate"`
	GSTAmount        decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"gst_amount"`
	TaxableValue     decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"taxable_value"`
}

// OilCakeSale tracks by-product (oil cake) sales, kept apart from invoice sales.
type OilCakeSale struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date         time.Time       `gorm:"type:date;not null;index" json:"date"`
	CustomerID   *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	Customer     *Customer       `gorm:"constraint:OnDelete:RESTRICT" json:"customer,omitempty"`
	CakeCategory string          `gorm:"not null" json:"cake_category"` // 'Groundnut', 'Coconut', ...
	Cake         string          `gorm:"not null" json:"cake"`
	Quantity     decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"quantity"` // kg
	PricePerKg   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price_per_kg"`
	Total        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
	IsPaid       bool            `gorm:"not null;default:false" json:"is_paid"`
	Remarks      string          `json:"remarks"`
	CreatedAt    time.Time       `json:"created_at"`
}
