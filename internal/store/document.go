package store

import (
	"context"
)

// Document is an arbitrary JSON-shaped value stored at an address: string
// keys mapping to strings, numbers, booleans, nested maps, or sequences.
// It is exactly what encoding/json produces for a JSON object.
type Document = map[string]any

// DocumentStore is the persistence contract for the hierarchical document
// tree. Addresses are /-delimited strings; a leaf document is written at a
// single address, and reading any prefix of that address yields an assembled
// folder view of everything underneath it.
//
// Implementations must surface backend outages as ErrStorageUnavailable and
// absence as ErrNotFound. They must never swallow either.
type DocumentStore interface {
	// Get returns the leaf document stored at path, or, when path is a
	// prefix of one or more stored leaves, a folder view: a nested Document
	// keyed by the remaining address segments. Returns ErrNotFound when
	// nothing is stored at or under path.
	//
	// The returned document is a snapshot owned by the caller; later writes
	// to the store do not mutate it.
	Get(ctx context.Context, path string) (Document, error)

	// Put writes doc as the leaf document at path, replacing any existing
	// leaf there.
	Put(ctx context.Context, path string, doc Document) error

	// PutIfAbsent writes doc at path only if no leaf document exists there.
	// It reports whether this call performed the write. The check-and-write
	// is linearizable per path: of any number of concurrent callers for the
	// same path, exactly one observes created == true.
	PutIfAbsent(ctx context.Context, path string, doc Document) (created bool, err error)

	// Rename atomically relocates the leaf document at oldPath to newPath.
	// Either both the delete and the insert take effect or neither does;
	// no failure mode leaves the document at neither address.
	// Returns ErrNotFound when oldPath holds no leaf document.
	Rename(ctx context.Context, oldPath, newPath string) error
}
