package models

import (
	"time"
)

// Note frequency values: how often the reminder recurs.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

func ValidFrequency(f string) bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly || f == FrequencyYearly
}

type Note struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	User      User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Text      string `gorm:"not null" json:"text"`
	Date      Date   `gorm:"type:date;not null" json:"date"`
	Frequency string `gorm:"size:10;not null;default:'monthly';check:frequency IN ('daily','weekly','monthly','yearly')" json:"frequency"`
	Completed bool   `gorm:"default:false" json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
