// Package memstore provides an in-memory DocumentStore. It backs unit tests
// and local development, and doubles as the reference semantics the SQL
// implementation is checked against: leaf documents keyed by full address,
// folder reads assembled from address prefixes.
package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/mnemo-app/mnemo-api/internal/store"
)

// Store is an in-memory DocumentStore. The zero value is not usable; use New.
type Store struct {
	mu     sync.RWMutex
	leaves map[string]store.Document
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{leaves: make(map[string]store.Document)}
}

var _ store.DocumentStore = (*Store)(nil)

// Get implements store.DocumentStore.Get. Reads are snapshots: the returned
// document is deep-copied out of the store.
func (s *Store) Get(ctx context.Context, path string) (store.Document, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, store.NewStoreError("get", path, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.leaves[path]; ok {
		return copyDocument(doc), nil
	}

	// Assemble a folder view from every leaf stored under path.
	view := store.Document{}
	prefix := path + "/"
	for leafPath, doc := range s.leaves {
		if !strings.HasPrefix(leafPath, prefix) {
			continue
		}
		insert(view, strings.Split(leafPath[len(prefix):], "/"), doc)
	}
	if len(view) == 0 {
		return nil, store.NewStoreError("get", path, store.ErrNotFound)
	}
	return view, nil
}

// Put implements store.DocumentStore.Put.
func (s *Store) Put(ctx context.Context, path string, doc store.Document) error {
	path, err := cleanPath(path)
	if err != nil {
		return store.NewStoreError("put", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaves[path] = copyDocument(doc)
	return nil
}

// PutIfAbsent implements store.DocumentStore.PutIfAbsent. The store-wide
// mutex makes the check-and-write linearizable per path.
func (s *Store) PutIfAbsent(ctx context.Context, path string, doc store.Document) (bool, error) {
	path, err := cleanPath(path)
	if err != nil {
		return false, store.NewStoreError("put_if_absent", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leaves[path]; ok {
		return false, nil
	}
	s.leaves[path] = copyDocument(doc)
	return true, nil
}

// Rename implements store.DocumentStore.Rename. Delete and insert happen
// under one critical section, so no reader or concurrent writer ever
// observes the document at neither address.
func (s *Store) Rename(ctx context.Context, oldPath, newPath string) error {
	oldPath, err := cleanPath(oldPath)
	if err != nil {
		return store.NewStoreError("rename", oldPath, err)
	}
	newPath, err = cleanPath(newPath)
	if err != nil {
		return store.NewStoreError("rename", newPath, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.leaves[oldPath]
	if !ok {
		return store.NewStoreError("rename", oldPath, store.ErrNotFound)
	}
	delete(s.leaves, oldPath)
	s.leaves[newPath] = doc
	return nil
}

// cleanPath validates an address and strips any trailing separator so that
// "/a/b" and "/a/b/" refer to the same node.
func cleanPath(path string) (string, error) {
	path = strings.TrimRight(path, "/")
	if path == "" || !strings.HasPrefix(path, "/") {
		return path, store.ErrInvalidPath
	}
	return path, nil
}

// insert places doc into the nested folder view at the given segments.
func insert(view store.Document, segments []string, doc store.Document) {
	for _, seg := range segments[:len(segments)-1] {
		child, ok := view[seg].(store.Document)
		if !ok {
			child = store.Document{}
			view[seg] = child
		}
		view = child
	}
	view[segments[len(segments)-1]] = copyDocument(doc)
}

func copyDocument(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyDocument(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return val
	}
}
