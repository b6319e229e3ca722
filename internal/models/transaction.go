package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type values. Sign convention is carried by the type, not the
// amount: an EXPENSE of 12.50 is money out.
const (
	TransactionIncome   = "INCOME"
	TransactionExpense  = "EXPENSE"
	TransactionTransfer = "TRANSFER"
)

func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense || t == TransactionTransfer
}

type Transaction struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	UserID   uint            `gorm:"index;not null" json:"user_id"`
	User     User            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Amount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type     string          `gorm:"size:8;not null;check:type IN ('INCOME','EXPENSE','TRANSFER')" json:"type"`
	Category string          `gorm:"size:50;not null" json:"category"`
	Date     time.Time       `gorm:"index;not null" json:"date"` // when the money moved, caller-supplied
	Note     string          `json:"note"`

	CreatedAt time.Time `json:"created_at"`
}
