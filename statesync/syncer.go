// Package statesync keeps the catalog and the remote document in step: one load at boot and
// a debounced push of the whole document after changes.
package statesync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/barinistanbul/storefront/blobstore"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/models"
	"go.uber.org/zap"
)

const DefaultDebounce = 500 * time.Millisecond

type Options struct {
	Document     string
	Debounce     time.Duration
	PushTimeout  time.Duration
	SampleOrders func() []models.Order
}

// Syncer owns the single debounce timer. A trigger inside the quiet window replaces the
// pending timer; when it fires the catalog as it is at that moment is pushed. Pushes wait
// for the load to finish so defaults never overwrite a stored document.
type Syncer struct {
	store   blobstore.Store
	catalog *catalog.Store
	opts    Options
	log     *zap.Logger

	loadOnce sync.Once
	loaded   chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	closed  bool

	pushMu sync.Mutex
	saving atomic.Int32
}

func New(store blobstore.Store, cat *catalog.Store, opts Options, log *zap.Logger) *Syncer {
	if opts.Document == "" {
		opts.Document = "admin-data.json"
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.PushTimeout <= 0 {
		opts.PushTimeout = 15 * time.Second
	}

	s := &Syncer{
		store:   store,
		catalog: cat,
		opts:    opts,
		log:     log.With(zap.String("document", opts.Document)),
		loaded:  make(chan struct{}),
	}
	cat.BeginJournal()
	cat.SetListener(func(models.AdminData) { s.Save() })
	return s
}

// Load fetches the stored document once per process and replaces the catalog with it.
// Mutations made before it finishes are replayed on top of the loaded document. Any
// failure keeps the in-memory state; the syncer is marked loaded in every case.
func (s *Syncer) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		s.load(ctx)
		close(s.loaded)

		s.mu.Lock()
		pending := s.pending
		s.mu.Unlock()
		if pending {
			s.Save()
		}
	})
}

func (s *Syncer) load(ctx context.Context) {
	body, err := s.store.Get(ctx, s.opts.Document)
	if errors.Is(err, blobstore.ErrNotFound) {
		s.catalog.EndJournal()
		s.log.Info("no stored document, serving defaults")
		return
	}
	if err != nil {
		s.catalog.EndJournal()
		s.log.Error("failed to load from blob store", zap.Error(err))
		return
	}

	data, err := Decode(body, DecodeOptions{SampleOrders: s.opts.SampleOrders})
	if err != nil {
		s.catalog.EndJournal()
		if errors.Is(err, ErrEmptyDocument) {
			s.log.Info("stored document is empty, serving defaults")
			return
		}
		s.log.Error("failed to decode stored document", zap.Error(err))
		return
	}

	replayed, errs := s.catalog.ReplaceAndReplay(data)
	for _, err := range errs {
		s.log.Warn("dropped change made before load", zap.Error(err))
	}
	s.log.Info("document loaded",
		zap.Int("products", len(data.Products)),
		zap.Int("orders", len(data.Orders)),
		zap.Int("replayed", replayed),
	)
}

// Loaded reports whether Load has finished.
func (s *Syncer) Loaded() bool {
	select {
	case <-s.loaded:
		return true
	default:
		return false
	}
}

// WaitLoaded blocks until Load has finished or ctx is done.
func (s *Syncer) WaitLoaded(ctx context.Context) error {
	select {
	case <-s.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsSaving reports whether a push is in flight.
func (s *Syncer) IsSaving() bool {
	return s.saving.Load() > 0
}

// Save schedules a push after the quiet window, replacing any pending one.
func (s *Syncer) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.pending = true
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.opts.Debounce, func() { s.fire(gen) })
}

func (s *Syncer) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.pending || s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	if !s.Loaded() {
		// Load re-triggers Save once it is done.
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.PushTimeout)
	defer cancel()
	if err := s.push(ctx); err != nil {
		s.log.Error("failed to save to blob store", zap.Error(err))
	}
}

func (s *Syncer) push(ctx context.Context) error {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	s.saving.Add(1)
	defer s.saving.Add(-1)

	body, err := Encode(s.catalog.Snapshot())
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.opts.Document, body); err != nil {
		return err
	}
	s.log.Debug("document saved", zap.Int("bytes", len(body)))
	return nil
}

// Flush cancels the pending timer and pushes right away when a push was pending.
// Nothing is pushed before the load has finished.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	pending := s.pending
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	if !pending || !s.Loaded() {
		s.mu.Unlock()
		return nil
	}
	s.pending = false
	s.mu.Unlock()

	return s.push(ctx)
}

// Close stops the timer. Later triggers are ignored.
func (s *Syncer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Fetch reads and decodes the stored document without touching the catalog.
func (s *Syncer) Fetch(ctx context.Context) (models.AdminData, error) {
	body, err := s.store.Get(ctx, s.opts.Document)
	if err != nil {
		return models.AdminData{}, err
	}
	return Decode(body, DecodeOptions{SampleOrders: s.opts.SampleOrders})
}

// Push writes data as the stored document right away, bypassing the debounce.
func (s *Syncer) Push(ctx context.Context, data models.AdminData) error {
	body, err := Encode(data)
	if err != nil {
		return err
	}
	s.pushMu.Lock()
	defer s.pushMu.Unlock()
	return s.store.Put(ctx, s.opts.Document, body)
}
