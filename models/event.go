package models

import "time"

// Event is a scheduled mosque activity (kajian, tabligh akbar, ...).
// Date is YYYY-MM-DD and Time is HH:MM, both kept as strings the way
// the client submits them.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:150;not null"`
	Speaker     string    `json:"speaker" gorm:"size:100"`
	Date        string    `json:"date" gorm:"size:10;not null;index"`
	Time        string    `json:"time" gorm:"size:5"`
	Location    string    `json:"location" gorm:"size:100"`
	Description string    `json:"description" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
