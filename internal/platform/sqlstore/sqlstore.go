// Package sqlstore implements the DocumentStore contract on top of a SQL
// database. Each leaf document is one row keyed by its full address; folder
// reads are assembled with a prefix scan, and Rename relies on the
// database's own transactions for its two-address atomicity guarantee.
//
// Two drivers are supported: pgx (PostgreSQL) for deployments and sqlite
// (modernc.org, no cgo) for local development and tests.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/mnemo-app/mnemo-api/internal/store"
)

// Supported driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Store is a SQL-backed DocumentStore.
type Store struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

var _ store.DocumentStore = (*Store)(nil)

// Open connects to the database, applies pending schema migrations, and
// returns a ready store. The driver must be DriverPostgres or DriverSQLite.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var dialect string
	switch driver {
	case DriverPostgres:
		dialect = "postgres"
	case DriverSQLite:
		dialect = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// SQLite serializes writers anyway, and in-memory databases are
		// per-connection; a single pooled connection keeps both correct.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}

	if err := migrate(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("document store ready", slog.String("driver", driver))
	return &Store{
		db:     db,
		driver: driver,
		logger: logger.With(slog.String("component", "sqlstore")),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get implements store.DocumentStore.Get.
func (s *Store) Get(ctx context.Context, path string) (store.Document, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, store.NewStoreError("get", path, err)
	}

	var raw []byte
	err = s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE path = $1`, path).Scan(&raw)
	switch {
	case err == nil:
		return decodeDocument("get", path, raw)
	case errors.Is(err, sql.ErrNoRows):
		return s.getFolderView(ctx, path)
	default:
		return nil, s.unavailable("get", path, err)
	}
}

// getFolderView assembles a folder document from every leaf under path.
func (s *Store) getFolderView(ctx context.Context, path string) (store.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, doc FROM documents WHERE path LIKE $1 ESCAPE '\'`,
		escapeLike(path)+"/%")
	if err != nil {
		return nil, s.unavailable("get", path, err)
	}
	defer func() { _ = rows.Close() }()

	view := store.Document{}
	prefixLen := len(path) + 1
	for rows.Next() {
		var leafPath string
		var raw []byte
		if err := rows.Scan(&leafPath, &raw); err != nil {
			return nil, s.unavailable("get", path, err)
		}
		doc, err := decodeDocument("get", leafPath, raw)
		if err != nil {
			return nil, err
		}
		insert(view, strings.Split(leafPath[prefixLen:], "/"), doc)
	}
	if err := rows.Err(); err != nil {
		return nil, s.unavailable("get", path, err)
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
	raw, err := json.Marshal(doc)
	if err != nil {
		return store.NewStoreError("put", path, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (path, doc) VALUES ($1, $2)
		 ON CONFLICT (path) DO UPDATE SET doc = excluded.doc`,
		path, raw)
	if err != nil {
		return s.unavailable("put", path, err)
	}
	return nil
}

// PutIfAbsent implements store.DocumentStore.PutIfAbsent. The primary key
// on path makes the conditional insert linearizable: of any number of
// concurrent creators, the database admits exactly one row.
func (s *Store) PutIfAbsent(ctx context.Context, path string, doc store.Document) (bool, error) {
	path, err := cleanPath(path)
	if err != nil {
		return false, store.NewStoreError("put_if_absent", path, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return false, store.NewStoreError("put_if_absent", path, err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (path, doc) VALUES ($1, $2)
		 ON CONFLICT (path) DO NOTHING`,
		path, raw)
	if err != nil {
		return false, s.unavailable("put_if_absent", path, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, s.unavailable("put_if_absent", path, err)
	}
	return affected == 1, nil
}

// Rename implements store.DocumentStore.Rename as a single transaction over
// both addresses: the delete and the insert commit together or not at all.
func (s *Store) Rename(ctx context.Context, oldPath, newPath string) error {
	oldPath, err := cleanPath(oldPath)
	if err != nil {
		return store.NewStoreError("rename", oldPath, err)
	}
	newPath, err = cleanPath(newPath)
	if err != nil {
		return store.NewStoreError("rename", newPath, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.unavailable("rename", oldPath, err)
	}
	defer func() { _ = tx.Rollback() }()

	if s.driver == DriverPostgres {
		// Crossing moves acquire their row locks in lexicographic path
		// order so they cannot deadlock each other.
		paths := []string{oldPath, newPath}
		sort.Strings(paths)
		for _, p := range paths {
			if _, err := tx.ExecContext(ctx,
				`SELECT path FROM documents WHERE path = $1 FOR UPDATE`, p); err != nil {
				return s.unavailable("rename", p, err)
			}
		}
	}

	var raw []byte
	err = tx.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE path = $1`, oldPath).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return store.NewStoreError("rename", oldPath, store.ErrNotFound)
	}
	if err != nil {
		return s.unavailable("rename", oldPath, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM documents WHERE path = $1`, oldPath); err != nil {
		return s.unavailable("rename", oldPath, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (path, doc) VALUES ($1, $2)
		 ON CONFLICT (path) DO UPDATE SET doc = excluded.doc`,
		newPath, raw); err != nil {
		return s.unavailable("rename", newPath, err)
	}

	if err := tx.Commit(); err != nil {
		return s.unavailable("rename", oldPath, err)
	}
	return nil
}

// unavailable wraps a backend failure as a retryable storage error. The raw
// driver error goes to the log, not to the caller.
func (s *Store) unavailable(op, path string, err error) error {
	s.logger.Error("store operation failed",
		slog.String("op", op),
		slog.String("path", path),
		slog.String("error", err.Error()))
	return store.NewStoreError(op, path, fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err))
}

func decodeDocument(op, path string, raw []byte) (store.Document, error) {
	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, store.NewStoreError(op, path, fmt.Errorf("corrupt document: %w", err))
	}
	return doc, nil
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

// escapeLike escapes LIKE metacharacters so a path is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
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
	view[segments[len(segments)-1]] = doc
}
