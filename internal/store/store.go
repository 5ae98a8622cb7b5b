// Package store is the persistent data-management layer: one in-memory,
// file-backed collection per entity type, guarded by a per-collection lock.
// Every mutating operation holds its collection's write lock across the
// whole read-modify-persist sequence; cross-collection operations take each
// lock in turn and never hold two at once.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dicetrails/go-shop-api/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotCancellable    = errors.New("order cannot be cancelled")
	ErrVoucherNotFound   = errors.New("voucher not found")
	ErrVoucherExists     = errors.New("voucher code already exists")
	ErrVoucherInvalid    = errors.New("voucher invalid, inactive, or already used")
	ErrInvalidDiscount   = errors.New("percentage discount must be between 0 and 100")
	ErrContactNotFound   = errors.New("contact message not found")
)

const (
	userFile    = "users.json"
	orderFile   = "orders.json"
	productFile = "products.json"
	voucherFile = "vouchers.json"
	reviewFile  = "reviews.json"
	contactFile = "contacts.json"
)

// collection is one file-backed record set. persist must only be called
// while mu is held for writing.
type collection[T any] struct {
	mu    sync.RWMutex
	path  string
	log   *slog.Logger
	items []T
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) persist() {
	saveCollection(c.log, c.path, c.items)
}

func (c *collection[T]) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persist()
}

func openCollection[T any](c *collection[T], log *slog.Logger, dir, name string) {
	c.path = filepath.Join(dir, name)
	c.log = log
	c.items = loadCollection[T](log, c.path)
}

// Store owns all six collections. Construct exactly one per process with
// Open and pass it by handle; there is no package-level singleton.
type Store struct {
	log *slog.Logger
	now func() time.Time

	users    collection[model.User]
	orders   collection[model.Order]
	products collection[model.Product]
	vouchers collection[model.Voucher]
	reviews  collection[model.Review]
	contacts collection[model.ContactMessage]
}

// Open loads every collection from dir, treating absent files as empty
// collections. It fails only if the directory itself cannot be created.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{log: log, now: time.Now}
	openCollection(&s.users, log, dir, userFile)
	openCollection(&s.orders, log, dir, orderFile)
	openCollection(&s.products, log, dir, productFile)
	openCollection(&s.vouchers, log, dir, voucherFile)
	openCollection(&s.reviews, log, dir, reviewFile)
	openCollection(&s.contacts, log, dir, contactFile)

	log.Info("store opened", "dir", dir,
		"users", len(s.users.items), "orders", len(s.orders.items),
		"products", len(s.products.items), "vouchers", len(s.vouchers.items),
		"reviews", len(s.reviews.items), "contacts", len(s.contacts.items))
	return s, nil
}

// Close writes every collection out one last time. Failures are logged and
// swallowed, like every other save.
func (s *Store) Close() {
	s.users.flush()
	s.orders.flush()
	s.products.flush()
	s.vouchers.flush()
	s.reviews.flush()
	s.contacts.flush()
	s.log.Info("store closed")
}
