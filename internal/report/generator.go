// Package report renders wallet views as tables, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/currencyutils"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/models"
	"aek/wallet/internal/validation"

	"gopkg.in/yaml.v3"
)

// Metadata is the static display configuration attached to every document.
type Metadata struct {
	CompanyName    string `json:"company_name" yaml:"company_name"`
	DashboardTitle string `json:"dashboard_title" yaml:"dashboard_title"`
	Currency       string `json:"currency" yaml:"currency"`
	Locale         string `json:"locale" yaml:"locale"`
	PrimaryColor   string `json:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty" yaml:"secondary_color,omitempty"`
	DangerColor    string `json:"danger_color,omitempty" yaml:"danger_color,omitempty"`
}

// Suggestions lists the suggested categories and payment methods.
type Suggestions struct {
	Income         []string `json:"income" yaml:"income"`
	Expense        []string `json:"expense" yaml:"expense"`
	PaymentMethods []string `json:"payment_methods" yaml:"payment_methods"`
}

// Listing is the transactions of one type, already filtered and sorted.
type Listing struct {
	Type         models.TransactionType `json:"type" yaml:"type"`
	Transactions []models.Transaction   `json:"transactions" yaml:"transactions"`
}

// document wraps every structured payload with the display metadata.
type document struct {
	Meta Metadata    `json:"meta" yaml:"meta"`
	Data interface{} `json:"data" yaml:"data"`
}

// ReportGenerator renders views in the supported output formats.
type ReportGenerator struct {
	meta      Metadata
	formatter *currencyutils.Formatter
	logger    logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(meta Metadata, logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ReportGenerator{
		meta:      meta,
		formatter: currencyutils.NewFormatter(meta.Locale, meta.Currency),
		logger:    logger.WithField(logging.FieldComponent, "report"),
	}
}

// Metadata returns the display configuration the generator was built with.
func (g *ReportGenerator) Metadata() Metadata {
	return g.meta
}

// Dashboard renders the dashboard view.
func (g *ReportGenerator) Dashboard(w io.Writer, format string, d aggregate.Dashboard) error {
	return g.render(w, format, d, func(t *tableWriter) { g.dashboardTable(t, d) })
}

// Report renders the category report view.
func (g *ReportGenerator) Report(w io.Writer, format string, r aggregate.Report) error {
	return g.render(w, format, r, func(t *tableWriter) { g.reportTable(t, r) })
}

// Listing renders the transaction list of one type.
func (g *ReportGenerator) Listing(w io.Writer, format string, l Listing) error {
	return g.render(w, format, l, func(t *tableWriter) { g.listingTable(t, l) })
}

// Transaction renders a single transaction, as shown after add or edit.
func (g *ReportGenerator) Transaction(w io.Writer, format string, tx models.Transaction) error {
	return g.render(w, format, tx, func(t *tableWriter) { g.transactionTable(t, tx) })
}

// Suggestions renders the suggested categories and payment methods.
func (g *ReportGenerator) Suggestions(w io.Writer, format string, s Suggestions) error {
	return g.render(w, format, s, func(t *tableWriter) { g.suggestionsTable(t, s) })
}

func (g *ReportGenerator) render(w io.Writer, format string, data interface{}, table func(*tableWriter)) error {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	switch format {
	case validation.FormatJSON:
		return g.generateJSON(w, data)
	case validation.FormatYAML:
		return g.generateYAML(w, data)
	default:
		t := newTableWriter(w)
		table(t)
		if err := t.Flush(); err != nil {
			g.logger.WithError(err).Error("Failed to write table")
			return fmt.Errorf("failed to write table: %w", err)
		}
		return nil
	}
}

// generateJSON writes data in JSON format.
func (g *ReportGenerator) generateJSON(w io.Writer, data interface{}) error {
	out, err := json.MarshalIndent(document{Meta: g.meta, Data: data}, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON output")
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}

// generateYAML writes data in YAML format.
func (g *ReportGenerator) generateYAML(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Meta: g.meta, Data: data}); err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML output")
		return fmt.Errorf("failed to marshal YAML output: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML output: %w", err)
	}
	return nil
}
