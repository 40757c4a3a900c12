// Package container provides dependency injection for the wallet.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"aek/wallet/internal/aggregate"
	"aek/wallet/internal/common"
	"aek/wallet/internal/config"
	"aek/wallet/internal/kvstore"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/report"
	"aek/wallet/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	blobs     kvstore.BlobStore
	store     *store.TransactionStore
	generator *report.ReportGenerator
	codec     *common.Codec
	now       func() time.Time
}

// Option overrides a dependency, mainly for tests.
type Option func(*options)

type options struct {
	logger logging.Logger
	blobs  kvstore.BlobStore
	now    func() time.Time
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithBlobStore replaces the backend selected by the configuration. The
// container takes ownership and closes it.
func WithBlobStore(blobs kvstore.BlobStore) Option {
	return func(o *options) { o.blobs = blobs }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewContainer creates and wires all application dependencies and loads the
// persisted transactions.
//
// Parameters:
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	blobs := o.blobs
	if blobs == nil {
		storageOpts, err := cfg.StorageOptions()
		if err != nil {
			return nil, fmt.Errorf("invalid storage configuration: %w", err)
		}
		blobs, err = kvstore.Open(storageOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", storageOpts.Backend, err)
		}
		logger.Debug("Storage opened",
			logging.F(logging.FieldBackend, storageOpts.Backend),
			logging.F(logging.FieldPath, storagePath(storageOpts)))
	}

	transactions := store.NewTransactionStore(blobs, logger,
		store.WithKey(cfg.Storage.Key),
		store.WithCreatedBy(cfg.App.CreatedBy),
		store.WithClock(o.now),
	)
	loaded := transactions.Load()

	generator := report.NewReportGenerator(report.Metadata{
		CompanyName:    cfg.App.CompanyName,
		DashboardTitle: cfg.App.DashboardTitle,
		Currency:       cfg.App.Currency,
		Locale:         cfg.App.Locale,
		PrimaryColor:   cfg.App.PrimaryColor,
		SecondaryColor: cfg.App.SecondaryColor,
		DangerColor:    cfg.App.DangerColor,
	}, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldCount, len(loaded)),
		logging.F(logging.FieldKey, cfg.Storage.Key))

	return &Container{
		logger:    logger,
		config:    cfg,
		blobs:     blobs,
		store:     transactions,
		generator: generator,
		codec:     common.NewCodec(common.DefaultDelimiter, logger),
		now:       o.now,
	}, nil
}

func storagePath(opts kvstore.Options) string {
	if opts.Backend == kvstore.BackendSQLite {
		return opts.SQLitePath
	}
	return opts.Directory
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the transaction store, already loaded.
func (c *Container) GetStore() *store.TransactionStore {
	return c.store
}

// GetReportGenerator returns the view renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetCSVCodec returns the CSV export/import codec.
func (c *Container) GetCSVCodec() *common.Codec {
	return c.codec
}

// Now returns the current time from the container's clock.
func (c *Container) Now() time.Time {
	return c.now()
}

// AggregateOptions returns the dashboard tuning from the configuration.
func (c *Container) AggregateOptions() aggregate.Options {
	return aggregate.Options{
		RecentLimit: c.config.Dashboard.RecentLimit,
		MonthCount:  c.config.Dashboard.MonthCount,
		Locale:      c.config.App.Locale,
	}
}

// Suggestions returns the configured category and payment-method lists.
func (c *Container) Suggestions() report.Suggestions {
	return report.Suggestions{
		Income:         c.config.Categories.Income,
		Expense:        c.config.Categories.Expense,
		PaymentMethods: c.config.Categories.PaymentMethods,
	}
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.blobs.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
