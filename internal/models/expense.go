package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Subcategories []ExpenseSubcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

type ExpenseSubcategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Expense struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date                 time.Time           `gorm:"type:date;not null;index" json:"date"`
	Name                 string              `gorm:"not null" json:"name"`
	Description          string              `json:"description"`
	ExpenseCategoryID    *uuid.UUID          `gorm:"type:uuid;index" json:"expense_category_id"`
	ExpenseCategory      *ExpenseCategory    `gorm:"constraint:OnDelete:RESTRICT" json:"expense_category,omitempty"`
	ExpenseSubcategoryID *uuid.UUID          `gorm:"type:uuid" json:"expense_subcategory_id"`
	ExpenseSubcategory   *ExpenseSubcategory `gorm:"constraint:OnDelete:RESTRICT" json:"expense_subcategory,omitempty"`
	VendorID             *uuid.UUID          `gorm:"type:uuid;index" json:"vendor_id"`
	Vendor               *Vendor             `gorm:"constraint:OnDelete:RESTRICT" json:"vendor,omitempty"`
	AmountCash           decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"amount_cash"`
	AmountUPI            decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"amount_upi"`
	AmountCard           decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"amount_card"`
	AmountCredit         decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"amount_credit"`
	TotalAmount          decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount"`
	TotalPaid            decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"total_paid"`
	BalanceDue           decimal.Decimal     `gorm:"type:decimal(14,2);not null;default:0" json:"balance_due"`
	CreatedAt            time.Time           `json:"created_at"`
}
