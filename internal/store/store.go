// Package store holds the in-memory transaction collection and funnels every
// mutation through Add, Edit and Cancel, rewriting the persisted blob after
// each one.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"aek/wallet/internal/kvstore"
	"aek/wallet/internal/logging"
	"aek/wallet/internal/models"

	"github.com/google/uuid"
)

// ErrCancelled is returned by Edit when the target has been cancelled.
var ErrCancelled = errors.New("transaction is cancelled")

// TransactionStore is the single owner of the transaction collection.
// Operations are serialized, so each read-modify-persist cycle runs as one
// unit even when called from several goroutines.
type TransactionStore struct {
	mu           sync.Mutex
	blobs        kvstore.BlobStore
	key          string
	createdBy    string
	logger       logging.Logger
	now          func() time.Time
	newID        func() string
	transactions []models.Transaction
}

// Option customizes a TransactionStore.
type Option func(*TransactionStore)

// WithKey overrides the blob key the collection is stored under.
func WithKey(key string) Option {
	return func(s *TransactionStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithCreatedBy sets the actor recorded on new transactions.
func WithCreatedBy(actor string) Option {
	return func(s *TransactionStore) {
		if actor != "" {
			s.createdBy = actor
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TransactionStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *TransactionStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewTransactionStore creates an empty store backed by blobs. Call Load to
// read the persisted collection.
func NewTransactionStore(blobs kvstore.BlobStore, logger logging.Logger, opts ...Option) *TransactionStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	s := &TransactionStore{
		blobs:     blobs,
		key:       models.StorageKey,
		createdBy: models.DefaultCreatedBy,
		logger:    logger.WithField(logging.FieldComponent, "store"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted collection and makes it the current state.
// A missing blob yields an empty collection; an unreadable or malformed one
// is logged and also yields an empty collection. Load never fails.
func (s *TransactionStore) Load() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = s.read()
	return s.snapshotLocked()
}

func (s *TransactionStore) read() []models.Transaction {
	log := s.logger.WithField(logging.FieldKey, s.key)

	data, err := s.blobs.Get(s.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		log.Debug("No persisted transactions, starting empty")
		return []models.Transaction{}
	}
	if err != nil {
		log.WithError(err).Warn("Failed to read persisted transactions, starting empty")
		return []models.Transaction{}
	}

	var transactions []models.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		log.WithError(err).Warn("Persisted transactions are malformed, starting empty",
			logging.F(logging.FieldBytes, len(data)))
		return []models.Transaction{}
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Debug("Loaded transactions", logging.F(logging.FieldCount, len(transactions)))
	return transactions
}

// Save persists the current collection and reports any failure. Mutating
// operations persist on their own; Save exists for explicit flushes.
func (s *TransactionStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

func (s *TransactionStore) persistLocked() error {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	if err := s.blobs.Set(s.key, data); err != nil {
		return fmt.Errorf("persist transactions: %w", err)
	}
	return nil
}

// flushLocked persists after a mutation. Failures are logged and swallowed:
// the in-memory state stays authoritative for the rest of the session.
func (s *TransactionStore) flushLocked(operation, id string) {
	if err := s.persistLocked(); err != nil {
		s.logger.WithError(err).Error("Failed to persist transactions",
			logging.F(logging.FieldOperation, operation),
			logging.F(logging.FieldTransactionID, id))
	}
}

// Add validates draft, appends a new active transaction built from it,
// persists, and returns the updated collection. The new transaction is
// always the last element.
func (s *TransactionStore) Add(draft models.Draft) ([]models.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := models.Transaction{
		ID:        s.newID(),
		Type:      draft.Type,
		Status:    models.StatusActive,
		CreatedAt: s.now().UTC(),
		CreatedBy: s.createdBy,
	}
	tx.Apply(draft)

	s.transactions = append(s.transactions, tx)
	s.flushLocked("add", tx.ID)

	s.logger.Info("Transaction added",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldType, tx.Type),
		logging.F(logging.FieldCategory, tx.Category))
	return s.snapshotLocked(), nil
}

// Edit overwrites the mutable fields of the transaction with the given id.
// The record keeps its position, id, type, status and creation audit
// fields. An unknown id is a no-op reported by found == false. Cancelled
// records cannot be edited and yield ErrCancelled.
func (s *TransactionStore) Edit(id string, draft models.Draft) (transactions []models.Transaction, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.logger.Warn("Edit ignored, transaction not found", logging.F(logging.FieldTransactionID, id))
		return s.snapshotLocked(), false, nil
	}
	if s.transactions[idx].Status == models.StatusCancelled {
		s.logger.Warn("Edit rejected, transaction is cancelled", logging.F(logging.FieldTransactionID, id))
		return nil, true, fmt.Errorf("edit %s: %w", id, ErrCancelled)
	}

	// Type cannot change; validate against the stored one.
	draft.Type = s.transactions[idx].Type
	if err := draft.Validate(); err != nil {
		return nil, true, err
	}

	s.transactions[idx].Apply(draft)
	s.flushLocked("edit", id)

	s.logger.Info("Transaction edited", logging.F(logging.FieldTransactionID, id))
	return s.snapshotLocked(), true, nil
}

// Cancel soft-deletes the transaction with the given id by marking it
// cancelled. The record stays in the collection. An unknown id is a no-op
// reported by found == false.
func (s *TransactionStore) Cancel(id string) (transactions []models.Transaction, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.logger.Warn("Cancel ignored, transaction not found", logging.F(logging.FieldTransactionID, id))
		return s.snapshotLocked(), false
	}

	s.transactions[idx].Status = models.StatusCancelled
	s.flushLocked("cancel", id)

	s.logger.Info("Transaction cancelled",
		logging.F(logging.FieldTransactionID, id),
		logging.F(logging.FieldStatus, models.StatusCancelled))
	return s.snapshotLocked(), true
}

// Snapshot returns a copy of the current collection in insertion order.
func (s *TransactionStore) Snapshot() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns a copy of the transaction with the given id.
func (s *TransactionStore) Get(id string) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return models.Transaction{}, false
	}
	return s.transactions[idx], true
}

// Len returns the number of records, cancelled ones included.
func (s *TransactionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

func (s *TransactionStore) indexLocked(id string) int {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TransactionStore) snapshotLocked() []models.Transaction {
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
