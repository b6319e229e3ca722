package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankAccount struct {
	ID      uint            `gorm:"primaryKey" json:"id"`
	UserID  uint            `gorm:"index;not null" json:"user_id"`
	User    User            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name    string          `gorm:"size:100;not null" json:"name"`
	Type    string          `gorm:"size:50;not null" json:"type"` // free text: checking, savings, credit, ...
	Balance decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"balance"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
