// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"strings"
	"time"

	"aek/wallet/internal/currencyutils"
	"aek/wallet/internal/dateutils"
	"aek/wallet/internal/models"
	"aek/wallet/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// Flag names shared by add and edit.
const (
	FlagAmount    = "amount"
	FlagName      = "name"
	FlagDate      = "date"
	FlagCategory  = "category"
	FlagPayment   = "payment"
	FlagReference = "reference"
	FlagNote      = "note"
)

// DraftFlags holds the raw entry-form values given on the command line.
type DraftFlags struct {
	Amount    string
	Name      string
	Date      string
	Category  string
	Payment   string
	Reference string
	Note      string
}

// Bind registers the entry-form flags on fs.
func (f *DraftFlags) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Amount, FlagAmount, "a", "", "Amount, e.g. 150000 or 1,500.50")
	fs.StringVarP(&f.Name, FlagName, "n", "", "Description of the entry")
	fs.StringVarP(&f.Date, FlagDate, "d", "", "Date as YYYY-MM-DD or DD/MM/YYYY (default today)")
	fs.StringVarP(&f.Category, FlagCategory, "c", "", "Category (default: first suggested category)")
	fs.StringVarP(&f.Payment, FlagPayment, "p", "", "Payment method (default: first suggested method)")
	fs.StringVar(&f.Reference, FlagReference, "", "Reference number, e.g. an invoice id")
	fs.StringVar(&f.Note, FlagNote, "", "Free-form note")
}

// Defaults supplies the values the entry form preselects.
type Defaults struct {
	Today          time.Time
	Categories     []string
	PaymentMethods []string
}

// NewDraft builds a draft of typ from the flags, filling unset date,
// category and payment method from defaults.
func (f *DraftFlags) NewDraft(typ models.TransactionType, defaults Defaults) (models.Draft, error) {
	d := models.Draft{
		Type:      typ,
		Date:      models.DateOf(defaults.Today),
		Name:      strings.TrimSpace(f.Name),
		Category:  first(defaults.Categories),
		Reference: strings.TrimSpace(f.Reference),
		Note:      strings.TrimSpace(f.Note),
	}
	d.PaymentMethod = first(defaults.PaymentMethods)

	if strings.TrimSpace(f.Amount) == "" {
		return models.Draft{}, fmt.Errorf("--%s is required", FlagAmount)
	}
	amount, err := parseAmount(f.Amount)
	if err != nil {
		return models.Draft{}, err
	}
	d.Amount = amount

	if strings.TrimSpace(f.Date) != "" {
		date, err := parseDate(f.Date)
		if err != nil {
			return models.Draft{}, err
		}
		d.Date = date
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		d.Category = c
	}
	if p := strings.TrimSpace(f.Payment); p != "" {
		d.PaymentMethod = p
	}
	return d, d.Validate()
}

// Overlay applies only the flags that were explicitly set to base. An
// explicitly empty --reference or --note clears the field.
func (f *DraftFlags) Overlay(base models.Draft, fs *pflag.FlagSet) (models.Draft, error) {
	d := base
	if fs.Changed(FlagAmount) {
		amount, err := parseAmount(f.Amount)
		if err != nil {
			return models.Draft{}, err
		}
		d.Amount = amount
	}
	if fs.Changed(FlagDate) {
		date, err := parseDate(f.Date)
		if err != nil {
			return models.Draft{}, err
		}
		d.Date = date
	}
	if fs.Changed(FlagName) {
		d.Name = strings.TrimSpace(f.Name)
	}
	if fs.Changed(FlagCategory) {
		d.Category = strings.TrimSpace(f.Category)
	}
	if fs.Changed(FlagPayment) {
		d.PaymentMethod = strings.TrimSpace(f.Payment)
	}
	if fs.Changed(FlagReference) {
		d.Reference = strings.TrimSpace(f.Reference)
	}
	if fs.Changed(FlagNote) {
		d.Note = strings.TrimSpace(f.Note)
	}
	return d, nil
}

// ChangedAny reports whether any entry-form flag was set.
func ChangedAny(fs *pflag.FlagSet) bool {
	for _, name := range []string{FlagAmount, FlagName, FlagDate, FlagCategory, FlagPayment, FlagReference, FlagNote} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := currencyutils.ParseAmount(s)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{Source: "flags", Field: FlagAmount, Value: s, Err: err}
	}
	return amount, nil
}

func parseDate(s string) (models.Date, error) {
	t, _, err := dateutils.ParseDate(s)
	if err != nil {
		return models.Date{}, &parsererror.ParseError{Source: "flags", Field: FlagDate, Value: s, Err: err}
	}
	return models.DateOf(t), nil
}

func first(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
