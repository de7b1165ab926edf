// Package service orchestrates the core flashcard-set operations over the
// document store: idempotent creation, lookup, and relocation of sets
// inside a user's folder hierarchy.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mnemo-app/mnemo-api/internal/address"
	"github.com/mnemo-app/mnemo-api/internal/domain"
	"github.com/mnemo-app/mnemo-api/internal/platform/logger"
	"github.com/mnemo-app/mnemo-api/internal/store"
)

// SetService owns create, get, and move for flashcard sets.
type SetService struct {
	docs   store.DocumentStore
	logger *slog.Logger
}

// NewSetService creates a SetService backed by the given document store.
func NewSetService(docs store.DocumentStore, log *slog.Logger) *SetService {
	if docs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("document store cannot be nil for SetService")
	}
	if log == nil {
		log = slog.Default()
	}
	return &SetService{
		docs:   docs,
		logger: log.With(slog.String("component", "set_service")),
	}
}

// CreateSetResult reports the outcome of CreateSet. Created is false when a
// set already existed at the computed address; that is a normal result of
// the idempotent create contract, not a conflict.
type CreateSetResult struct {
	Set     *domain.Set
	Created bool
}

// CreateSet idempotently creates a flashcard set at the address derived
// from (owner, folder, name). First write wins, silently: a second create
// for the same triple leaves the stored document untouched, whatever cards
// the second call carried, and reports Created == false.
//
// Returns ErrHashCollision when the address is already occupied by a set
// with a different name, that is, two distinct triples hashing to one ID.
func (s *SetService) CreateSet(
	ctx context.Context,
	owner, name, description, folder string,
	cards []domain.Card,
) (*CreateSetResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	normalized := address.NormalizeFolder(folder)
	id := address.ComputeID(owner, normalized, name)

	set, err := domain.NewSet(id, name, description, cards)
	if err != nil {
		return nil, newServiceError("create_set", "invalid set", err)
	}
	addr, err := address.ForSet(owner, normalized, id)
	if err != nil {
		return nil, newServiceError("create_set", "resolving address", err)
	}
	doc, err := set.Document()
	if err != nil {
		return nil, newServiceError("create_set", "encoding set", err)
	}

	// Once the write starts it runs to completion even if the client goes
	// away; abandoning it halfway would break the idempotency story for
	// the retry that follows.
	created, err := s.docs.PutIfAbsent(context.WithoutCancel(ctx), addr, doc)
	if err != nil {
		return nil, newServiceError("create_set", "writing set", err)
	}
	if created {
		log.Debug("flashcard set created",
			slog.String("owner", owner),
			slog.String("set_id", id),
			slog.String("folder", normalized))
		return &CreateSetResult{Set: set, Created: true}, nil
	}

	// Lost the race or the set pre-existed. Cross-check the stored name to
	// tell idempotent re-creation apart from an ID collision.
	existing, err := s.loadSet(ctx, addr)
	if err != nil {
		return nil, newServiceError("create_set", "reading existing set", err)
	}
	if existing.Name != name {
		return nil, newServiceError("create_set", "address occupied by a different set", ErrHashCollision)
	}
	log.Debug("flashcard set already present",
		slog.String("owner", owner),
		slog.String("set_id", id))
	return &CreateSetResult{Set: existing, Created: false}, nil
}

// GetSet retrieves a set by owner and name from the root folder. The lookup
// address is derived the same way creation derives it, so no directory scan
// is involved. Returns ErrSetNotFound when nothing is stored there and
// ErrHashCollision when the resolved document carries a different name.
func (s *SetService) GetSet(ctx context.Context, owner, name string) (*domain.Set, error) {
	id := address.ComputeID(owner, "", name)
	addr, err := address.ForSet(owner, "", id)
	if err != nil {
		return nil, newServiceError("get_set", "resolving address", err)
	}

	set, err := s.loadSet(ctx, addr)
	if err != nil {
		return nil, newServiceError("get_set", "reading set", err)
	}
	if set.Name != name {
		return nil, newServiceError("get_set", "address occupied by a different set", ErrHashCollision)
	}
	return set, nil
}

// MoveSet relocates the set with the given ID from currentFolder to
// targetFolder. The set's ID and contents are preserved byte for byte;
// only its address changes. The store performs the relocation atomically,
// so no failure leaves the set at neither address.
//
// Returns ErrSetNotFound when currentFolder does not contain the set.
func (s *SetService) MoveSet(
	ctx context.Context,
	owner, currentFolder, id, targetFolder string,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	from, err := address.ForSet(owner, address.NormalizeFolder(currentFolder), id)
	if err != nil {
		return newServiceError("move_set", "resolving source address", err)
	}
	to, err := address.ForSet(owner, address.NormalizeFolder(targetFolder), id)
	if err != nil {
		return newServiceError("move_set", "resolving target address", err)
	}

	// As with creation, a started move always runs to completion.
	if err := s.docs.Rename(context.WithoutCancel(ctx), from, to); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return newServiceError("move_set", "source set does not exist", ErrSetNotFound)
		}
		return newServiceError("move_set", "relocating set", err)
	}

	log.Debug("flashcard set moved",
		slog.String("owner", owner),
		slog.String("set_id", id),
		slog.String("from", from),
		slog.String("to", to))
	return nil
}

// loadSet reads the leaf at addr and decodes it as a set. A folder view at
// that address means no set leaf exists there.
func (s *SetService) loadSet(ctx context.Context, addr string) (*domain.Set, error) {
	doc, err := s.docs.Get(ctx, addr)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	node, err := domain.ParseNode(doc)
	if err != nil {
		return nil, err
	}
	setNode, ok := node.(*domain.SetNode)
	if !ok {
		return nil, ErrSetNotFound
	}
	return setNode.Set, nil
}
