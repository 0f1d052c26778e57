package blobstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process echo store. It keeps every version it is given so tests can
// observe how many writes happened.
type MemoryStore struct {
	mu      sync.Mutex
	docs    map[string][][]byte
	images  map[string][]byte
	puts    int
	baseURL string
}

var (
	_ Store         = (*MemoryStore)(nil)
	_ ImageUploader = (*MemoryStore)(nil)
)

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "memory://storefront"
	}
	return &MemoryStore{
		docs:    make(map[string][][]byte),
		images:  make(map[string][]byte),
		baseURL: baseURL,
	}
}

func (m *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	versions := m.docs[name]
	if len(versions) == 0 {
		return nil, ErrNotFound
	}
	latest := versions[len(versions)-1]
	return append([]byte(nil), latest...), nil
}

func (m *MemoryStore) Put(ctx context.Context, name string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs[name] = [][]byte{append([]byte(nil), body...)}
	m.puts++
	return nil
}

func (m *MemoryStore) PutImage(ctx context.Context, name string, body []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.images[name] = append([]byte(nil), body...)
	return publicURL(m.baseURL, "", name), nil
}

// Puts reports how many documents have been written.
func (m *MemoryStore) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}

// Image returns an uploaded image body.
func (m *MemoryStore) Image(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.images[name]
	return b, ok
}
