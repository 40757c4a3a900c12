// Package common provides the CSV codec shared by the export and import
// commands.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"aek/wallet/internal/currencyutils"
	"aek/wallet/internal/dateutils"
	"aek/wallet/internal/fileutils"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/models"
	"aek/wallet/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless configured otherwise.
const DefaultDelimiter = ','

// TransactionRow is the CSV shape of a transaction. Every field is text so
// hand-edited files with loose formatting still parse.
type TransactionRow struct {
	ID            string `csv:"ID"`
	Type          string `csv:"Type"`
	Date          string `csv:"Date"`
	Amount        string `csv:"Amount"`
	Name          string `csv:"Name"`
	Category      string `csv:"Category"`
	PaymentMethod string `csv:"PaymentMethod"`
	Reference     string `csv:"Reference"`
	Note          string `csv:"Note"`
	Status        string `csv:"Status"`
	CreatedAt     string `csv:"CreatedAt"`
	CreatedBy     string `csv:"CreatedBy"`
}

// NewTransactionRow converts a transaction for export.
func NewTransactionRow(tx models.Transaction) TransactionRow {
	row := TransactionRow{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Date:          tx.Date.String(),
		Amount:        tx.Amount.String(),
		Name:          tx.Name,
		Category:      tx.Category,
		PaymentMethod: tx.PaymentMethod,
		Reference:     tx.Reference,
		Note:          tx.Note,
		Status:        string(tx.Status),
		CreatedBy:     tx.CreatedBy,
	}
	if !tx.CreatedAt.IsZero() {
		row.CreatedAt = tx.CreatedAt.Format(time.RFC3339)
	}
	return row
}

// ImportedRow is one parsed import line: the draft to add and whether the
// source row was marked cancelled.
type ImportedRow struct {
	Line      int
	Draft     models.Draft
	Cancelled bool
}

// Draft parses the user-supplied columns of row. Identity and audit columns
// are ignored; the store assigns fresh ones. Failures are reported as
// *parsererror.ParseError naming the offending column.
func (row TransactionRow) Draft() (models.Draft, error) {
	fail := func(field, value string, err error) (models.Draft, error) {
		return models.Draft{}, &parsererror.ParseError{Source: "import", Field: field, Value: value, Err: err}
	}

	typ, err := models.ParseTransactionType(row.Type)
	if err != nil {
		return fail("type", row.Type, err)
	}
	date, _, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return fail("date", row.Date, err)
	}
	amount, err := currencyutils.ParseAmount(row.Amount)
	if err != nil {
		return fail("amount", row.Amount, err)
	}
	d := models.Draft{
		Type:          typ,
		Date:          models.DateOf(date),
		Amount:        amount,
		Name:          strings.TrimSpace(row.Name),
		Category:      strings.TrimSpace(row.Category),
		PaymentMethod: strings.TrimSpace(row.PaymentMethod),
		Reference:     strings.TrimSpace(row.Reference),
		Note:          strings.TrimSpace(row.Note),
	}
	if err := d.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fail(verr.Field, row.fieldValue(verr.Field), err)
		}
		return models.Draft{}, err
	}
	return d, nil
}

func (row TransactionRow) fieldValue(field string) string {
	switch field {
	case "name":
		return row.Name
	case "category":
		return row.Category
	case "payment_method":
		return row.PaymentMethod
	case "date":
		return row.Date
	case "type":
		return row.Type
	}
	return ""
}

// Codec reads and writes transaction CSV files.
type Codec struct {
	delimiter rune
	logger    logging.Logger
}

// NewCodec creates a Codec. A zero delimiter selects DefaultDelimiter.
func NewCodec(delimiter rune, logger logging.Logger) *Codec {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Codec{delimiter: delimiter, logger: logger.WithField(logging.FieldComponent, "csv")}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	logger.Info("Reading CSV file", logging.F(logging.FieldPath, filePath))

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := readCSV[TCSVRow](file, delimiter)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "CSV with a header row",
			Msg:            "file is empty",
		}
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

func readCSV[TCSVRow any](r io.Reader, delimiter rune) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return rows, nil
}

// Write encodes transactions to w, one row per transaction in collection
// order, with a header line.
func (c *Codec) Write(w io.Writer, transactions []models.Transaction) error {
	rows := make([]TransactionRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, NewTransactionRow(tx))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteFile exports transactions to csvFile, creating parent directories.
func (c *Codec) WriteFile(csvFile string, transactions []models.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	log := c.logger.WithFields(
		logging.F(logging.FieldPath, csvFile),
		logging.F(logging.FieldCount, len(transactions)))
	log.Info("Writing transactions to CSV file")

	file, err := fileutils.CreateFile(csvFile, models.PermissionDirectory)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()
	if err := file.Chmod(models.PermissionExport); err != nil {
		return fmt.Errorf("error setting CSV file permissions: %w", err)
	}

	if err := c.Write(file, transactions); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}
	log.Info("Successfully wrote transactions to CSV file")
	return nil
}

// Read decodes import rows from r. Blank lines are skipped; the first
// invalid row aborts the whole import with its line number.
func (c *Codec) Read(r io.Reader) ([]ImportedRow, error) {
	rows, err := readCSV[TransactionRow](r, c.delimiter)
	if err != nil {
		return nil, err
	}
	return c.convert(rows)
}

// ReadFile decodes import rows from csvFile.
func (c *Codec) ReadFile(csvFile string) ([]ImportedRow, error) {
	rows, err := ReadCSVFile[TransactionRow](csvFile, c.delimiter, c.logger)
	if err != nil {
		return nil, err
	}
	return c.convert(rows)
}

func (c *Codec) convert(rows []TransactionRow) ([]ImportedRow, error) {
	imported := make([]ImportedRow, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // header is line 1
		if row == (TransactionRow{}) {
			continue
		}
		d, err := row.Draft()
		if err != nil {
			var perr *parsererror.ParseError
			if errors.As(err, &perr) {
				perr.Line = line
				return nil, perr
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		imported = append(imported, ImportedRow{
			Line:      line,
			Draft:     d,
			Cancelled: models.Status(strings.ToLower(strings.TrimSpace(row.Status))) == models.StatusCancelled,
		})
	}
	c.logger.Debug("Converted CSV rows", logging.F(logging.FieldCount, len(imported)))
	return imported, nil
}
