// Package catalog holds the storefront's products, categories, colors, settings and orders in
// memory and keeps them consistent with each other.
package catalog

import (
	"sync"
	"time"

	"github.com/barinistanbul/storefront/models"
	"github.com/go-playground/validator/v10"
)

// Listener receives the document produced by every successful mutation.
type Listener func(models.AdminData)

type Options struct {
	// Initial replaces the built-in defaults.
	Initial *models.AdminData
	Now     func() time.Time
}

type mutation struct {
	name  string
	apply func(*models.AdminData) error
}

// Store is the authoritative in-memory document. Every mutation runs under the write lock,
// builds new slices for what it changes and leaves the old ones to whoever still reads them.
type Store struct {
	mu       sync.RWMutex
	data     models.AdminData
	listener Listener
	validate *validator.Validate
	now      func() time.Time
	lastID   int64

	journaling bool
	journal    []mutation
}

func New(opts Options) *Store {
	data := models.DefaultAdminData()
	if opts.Initial != nil {
		data = opts.Initial.Clone()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		data:     data,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}
}

// SetListener registers the function notified after each mutation. It is called outside the lock.
func (s *Store) SetListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// mutate applies fn to a working copy and commits it only when fn succeeds.
func (s *Store) mutate(name string, fn func(*models.AdminData) error) (models.AdminData, error) {
	s.mu.Lock()
	next := s.data
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return s.Snapshot(), err
	}
	s.data = next
	if s.journaling {
		s.journal = append(s.journal, mutation{name: name, apply: fn})
	}
	snapshot := s.data.Clone()
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(snapshot)
	}
	return snapshot, nil
}

// Replace swaps the whole document. It does not notify the listener.
func (s *Store) Replace(data models.AdminData) {
	data = data.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// Import swaps the whole document and notifies the listener like any other mutation.
func (s *Store) Import(data models.AdminData) (models.AdminData, error) {
	data = data.Clone()
	for _, p := range data.Products {
		if err := s.validateProduct(p); err != nil {
			return s.Snapshot(), err
		}
	}
	return s.mutate("import", func(d *models.AdminData) error {
		*d = data
		return nil
	})
}

// BeginJournal starts recording mutations so they can be replayed onto a document that
// arrives later.
func (s *Store) BeginJournal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journaling = true
	s.journal = nil
}

// EndJournal stops recording and drops what was recorded. The current state already has it.
func (s *Store) EndJournal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journaling = false
	s.journal = nil
}

// ReplaceAndReplay swaps in data and re-applies the recorded mutations on top of it in order.
// Mutations that no longer apply are skipped and their errors returned. The listener is
// notified once when anything was replayed.
func (s *Store) ReplaceAndReplay(data models.AdminData) (replayed int, errs []error) {
	data = data.Clone()

	s.mu.Lock()
	journal := s.journal
	s.journaling = false
	s.journal = nil

	for _, m := range journal {
		next := data
		if err := m.apply(&next); err != nil {
			errs = append(errs, &ReplayError{Mutation: m.name, Err: err})
			continue
		}
		data = next
		replayed++
	}
	s.data = data
	snapshot := s.data.Clone()
	listener := s.listener
	s.mu.Unlock()

	if replayed > 0 && listener != nil {
		listener(snapshot)
	}
	return replayed, errs
}

// ReplayError wraps the failure of a recorded mutation during replay.
type ReplayError struct {
	Mutation string
	Err      error
}

func (e *ReplayError) Error() string { return "replay " + e.Mutation + ": " + e.Err.Error() }
func (e *ReplayError) Unwrap() error { return e.Err }

func (s *Store) Snapshot() models.AdminData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]models.Product, 0, len(s.data.Products)), s.data.Products...)
}

func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]string, 0, len(s.data.Categories)), s.data.Categories...)
}

func (s *Store) Colors() []models.ColorOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]models.ColorOption, 0, len(s.data.Colors)), s.data.Colors...)
}

func (s *Store) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Settings
}

// Orders returns the order log in insertion order.
func (s *Store) Orders() []models.Order {
	return s.Snapshot().Orders
}
