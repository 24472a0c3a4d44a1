package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// FinanceTypeIncome pemasukan kas
	FinanceTypeIncome = "income"
	// FinanceTypeExpense pengeluaran kas
	FinanceTypeExpense = "expense"
)

// FinanceRecord is a single dated cash transaction of the mosque.
// Date is the attributed calendar date (YYYY-MM-DD), independent of
// CreatedAt. Amount is always non-negative; the sign in balance
// arithmetic is derived from Type.
type FinanceRecord struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Type        string          `json:"type" gorm:"size:10;not null;index"`
	Category    string          `json:"category" gorm:"size:50;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Description string          `json:"description" gorm:"size:255"`
	Date        string          `json:"date" gorm:"size:10;not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName sets the table name
func (FinanceRecord) TableName() string {
	return "finances"
}

// IsValidFinanceType reports whether t is one of the two allowed kinds.
func IsValidFinanceType(t string) bool {
	return t == FinanceTypeIncome || t == FinanceTypeExpense
}
