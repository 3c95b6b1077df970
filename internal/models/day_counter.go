package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayCounter is the daily cash-drawer reconciliation row. One row per calendar
// date; TotalSales, SystemClosingCash and Difference are derived and recomputed
// on every write.
type DayCounter struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date               time.Time       `gorm:"type:date;not null;uniqueIndex" json:"date"`
	OpeningCashBalance decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"opening_cash_balance"`
	SalesCash          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sales_cash"`
	SalesUPI           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sales_upi"`
	SalesCard          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sales_card"`
	SalesCredit        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sales_credit"`
	TotalSales         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_sales"`
	TotalExpensesCash  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_expenses_cash"`
	CashHandOver       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"cash_hand_over"`
	ActualClosingCash  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"actual_closing_cash"`
	SystemClosingCash  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"system_closing_cash"`
	Difference         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"difference"`
	Remarks            string          `json:"remarks"`
	CreatedAt          time.Time       `json:"created_at"`
}
