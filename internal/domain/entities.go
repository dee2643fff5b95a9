package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoDescription is substituted when a record is saved without a description.
const NoDescription = "No hay descripción"

// BankAccount is one registered account belonging to a user.
// AccountNumber is immutable once the account is created and acts as the
// lookup key for edits and deletes.
type BankAccount struct {
	AccountType    AccountType     `json:"accountType"`
	AccountState   AccountState    `json:"accountState"`
	AccountNumber  string          `json:"accountNumber"`
	Bank           Bank            `json:"bank"`
	IncomeType     IncomeType      `json:"incomeType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	UserID         int             `json:"userId"`
}

// Income is an income or expense concept registered by a user.
// Code is unique within the user's collection.
type Income struct {
	Code        string       `json:"code"`
	Type        MovementType `json:"type"`
	IncomeName  string       `json:"incomeName"`
	IncomeType  IncomeType   `json:"incomeType"`
	Description string       `json:"description"`
	UserID      int          `json:"userId"`
}

// Transaction is a posted payment against one of the user's accounts.
type Transaction struct {
	TransactionID int             `json:"transactionId"`
	Type          TransactionType `json:"transactionType"`
	IncomeType    IncomeType      `json:"transactionIncomeType"`
	Amount        decimal.Decimal `json:"transactionAmount"`
	Date          time.Time       `json:"transactionDate"`
	AccountNumber string          `json:"transactionAccountNumber"`
	Description   string          `json:"transactionDescription"`
	UserID        int             `json:"userId"`
}

// Alert is a scheduled reminder belonging to a user.
// Name is unique within the user's collection.
type Alert struct {
	AlertID     int       `json:"alertId"`
	Name        string    `json:"alertName"`
	Type        AlertType `json:"alertType"`
	Description string    `json:"alertDescription"`
	Date        time.Time `json:"alertDate"`
	UserID      int       `json:"userId"`
}
