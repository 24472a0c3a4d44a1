package models

import "time"

// FinanceCategory is a category suggestion maintained by the admin.
// Finance records store the category as a plain string, so deleting a
// category never orphans existing transactions.
type FinanceCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Type      string    `json:"type" gorm:"size:10;not null;index"` // income / expense
	Sort      int       `json:"sort" gorm:"default:0;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FinanceCategory) TableName() string {
	return "finance_categories"
}

// DefaultFinanceCategories returns the seed suggestion set.
func DefaultFinanceCategories() []FinanceCategory {
	return []FinanceCategory{
		{Name: "Infaq", Type: FinanceTypeIncome, Sort: 10},
		{Name: "Zakat", Type: FinanceTypeIncome, Sort: 20},
		{Name: "Shadaqah", Type: FinanceTypeIncome, Sort: 30},
		{Name: "Donasi", Type: FinanceTypeIncome, Sort: 40},
		{Name: "Kotak Amal", Type: FinanceTypeIncome, Sort: 50},
		{Name: "Listrik", Type: FinanceTypeExpense, Sort: 10},
		{Name: "Air", Type: FinanceTypeExpense, Sort: 20},
		{Name: "Kebersihan", Type: FinanceTypeExpense, Sort: 30},
		{Name: "Perbaikan", Type: FinanceTypeExpense, Sort: 40},
		{Name: "Kegiatan", Type: FinanceTypeExpense, Sort: 50},
		{Name: "Lainnya", Type: FinanceTypeExpense, Sort: 60},
	}
}
