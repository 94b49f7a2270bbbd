package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MemoryStore is an in-process ImageStore for local development and tests.
type MemoryStore struct {
	baseURL string

	mu      sync.Mutex
	objects map[string]memoryObject
	// FailUploads makes every Upload fail.
	FailUploads bool
}

// NewMemoryStore returns an empty store whose URLs start with baseURL.
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		objects: make(map[string]memoryObject),
	}
}

type memoryObject struct {
	contentType string
	data        []byte
}

func (m *MemoryStore) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailUploads {
		return "", fmt.Errorf("upload %s: store unavailable", key)
	}
	m.objects[key] = memoryObject{contentType: contentType, data: data}
	return m.baseURL + "/" + key, nil
}

func (m *MemoryStore) Remove(_ context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.objects, k)
	}
	return nil
}

func (m *MemoryStore) KeyFromURL(u string) (string, bool) {
	return keyFromURL(m.baseURL, u)
}

// Has reports whether key is stored.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// ServeHTTP serves stored objects by key, so local URLs resolve. Mount it with
// the base URL's path prefix stripped.
func (m *MemoryStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/")

	m.mu.Lock()
	obj, ok := m.objects[key]
	m.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	if obj.contentType != "" {
		w.Header().Set("Content-Type", obj.contentType)
	}
	_, _ = w.Write(obj.data)
}
