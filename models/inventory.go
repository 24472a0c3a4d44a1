package models

import "time"

const (
	// ConditionGood kondisi baik
	ConditionGood = "good"
	// ConditionFair kondisi cukup
	ConditionFair = "fair"
	// ConditionPoor kondisi rusak
	ConditionPoor = "poor"
)

// InventoryItem is a physical asset owned by the mosque.
type InventoryItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Category     string    `json:"category" gorm:"size:50"`
	Quantity     int       `json:"quantity" gorm:"not null;default:0"`
	Condition    string    `json:"condition" gorm:"size:10;not null"`
	PurchaseDate string    `json:"purchase_date" gorm:"size:10"`
	LastChecked  string    `json:"last_checked" gorm:"size:10"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

// IsValidCondition reports whether c is a known inventory condition.
func IsValidCondition(c string) bool {
	return c == ConditionGood || c == ConditionFair || c == ConditionPoor
}
