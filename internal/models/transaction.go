// Package models provides the data structures used throughout the wallet.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts user input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income or expense)", s)
	}
}

// Valid reports whether t is one of the known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// SuggestedCategories returns the suggested category list for t.
func (t TransactionType) SuggestedCategories() []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// Status is the lifecycle state of a transaction. The only transition is
// active to cancelled.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Transaction is one recorded financial event.
type Transaction struct {
	ID            string          `json:"id" yaml:"id"`
	Type          TransactionType `json:"type" yaml:"type"`
	Date          Date            `json:"date" yaml:"date"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Name          string          `json:"name" yaml:"name"`
	Category      string          `json:"category" yaml:"category"`
	PaymentMethod string          `json:"payment_method" yaml:"payment_method"`
	Reference     string          `json:"reference,omitempty" yaml:"reference,omitempty"`
	Note          string          `json:"note,omitempty" yaml:"note,omitempty"`
	Status        Status          `json:"status" yaml:"status"`
	CreatedAt     time.Time       `json:"created_at" yaml:"created_at"`
	CreatedBy     string          `json:"created_by" yaml:"created_by"`
}

// MarshalJSON writes the amount as a bare JSON number so the persisted blob
// keeps numeric amounts. Decoding accepts numbers and quoted strings.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type plain Transaction
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"amount"`
	}{
		plain:  plain(t),
		Amount: json.Number(t.Amount.String()),
	})
}

// IsActive reports whether the transaction counts toward totals.
func (t Transaction) IsActive() bool {
	return t.Status == StatusActive
}

// IsIncome returns true for income entries.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true for expense entries.
func (t Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// Draft returns the mutable fields of t.
func (t Transaction) Draft() Draft {
	return Draft{
		Type:          t.Type,
		Date:          t.Date,
		Amount:        t.Amount,
		Name:          t.Name,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Reference:     t.Reference,
		Note:          t.Note,
	}
}

// Apply overwrites the mutable fields of t with d. Type, ID, Status,
// CreatedAt and CreatedBy are left untouched.
func (t *Transaction) Apply(d Draft) {
	t.Date = d.Date
	t.Amount = d.Amount
	t.Name = d.Name
	t.Category = d.Category
	t.PaymentMethod = d.PaymentMethod
	t.Reference = d.Reference
	t.Note = d.Note
}

// Draft is the user-supplied part of a transaction: everything except the
// identity and audit fields assigned by the store.
type Draft struct {
	Type          TransactionType `json:"type" yaml:"type"`
	Date          Date            `json:"date" yaml:"date"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Name          string          `json:"name" yaml:"name"`
	Category      string          `json:"category" yaml:"category"`
	PaymentMethod string          `json:"payment_method" yaml:"payment_method"`
	Reference     string          `json:"reference,omitempty" yaml:"reference,omitempty"`
	Note          string          `json:"note,omitempty" yaml:"note,omitempty"`
}

// Validate checks the fields the entry form marks as required. Amount sign
// is deliberately not checked.
func (d Draft) Validate() error {
	if !d.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown type %q", d.Type)}
	}
	if d.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(d.Category) == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if strings.TrimSpace(d.PaymentMethod) == "" {
		return &ValidationError{Field: "payment_method", Reason: "is required"}
	}
	return nil
}
