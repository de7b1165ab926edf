// Package review answers the "which cards are due today" question: it walks
// a user's full hierarchy snapshot and applies the scheduling policy to
// every card of every set it finds.
package review

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/mnemo-app/mnemo-api/internal/address"
	"github.com/mnemo-app/mnemo-api/internal/domain"
	"github.com/mnemo-app/mnemo-api/internal/domain/srs"
	"github.com/mnemo-app/mnemo-api/internal/platform/logger"
	"github.com/mnemo-app/mnemo-api/internal/store"
)

// DueCard is one due flashcard annotated with its owning set and folder
// path for client display.
type DueCard struct {
	SetID   string      `json:"flashcardID"`
	SetName string      `json:"flashcardName"`
	Folder  string      `json:"folder"`
	Card    domain.Card `json:"card"`
}

// DueCards yields every due card beneath root: a lazy, restartable walk in
// depth-first order, cards within a set in stored order. Ranging over the
// sequence twice replays the same snapshot.
func DueCards(root *domain.FolderNode, today domain.ReviewDate, params *srs.Params) iter.Seq[DueCard] {
	return func(yield func(DueCard) bool) {
		for folder, set := range root.Sets() {
			for _, card := range set.Cards {
				if !srs.IsDue(card, today, params) {
					continue
				}
				due := DueCard{
					SetID:   set.ID,
					SetName: set.Name,
					Folder:  folder,
					Card:    card,
				}
				if !yield(due) {
					return
				}
			}
		}
	}
}

// Service reads a user's hierarchy from the document store and aggregates
// due cards.
type Service struct {
	docs   store.DocumentStore
	params *srs.Params
	logger *slog.Logger
}

// NewService creates a review Service. A nil params uses the default
// interval policy.
func NewService(docs store.DocumentStore, params *srs.Params, log *slog.Logger) *Service {
	if docs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("document store cannot be nil for review.Service")
	}
	if params == nil {
		params = srs.NewDefaultParams()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		docs:   docs,
		params: params,
		logger: log.With(slog.String("component", "review_service")),
	}
}

// DueToday returns the cards due on the given day across the owner's whole
// hierarchy. An owner with no hierarchy at all gets an empty slice, never
// an error: having nothing to review is a normal state.
//
// The walk operates on a point-in-time snapshot of the hierarchy; writes
// that land after the snapshot is taken show up in the next query.
func (s *Service) DueToday(ctx context.Context, owner string, today domain.ReviewDate) ([]DueCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rootAddr, err := address.ForRoot(owner)
	if err != nil {
		return nil, fmt.Errorf("resolving owner root: %w", err)
	}

	doc, err := s.docs.Get(ctx, rootAddr)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("owner has no hierarchy", slog.String("owner", owner))
		return []DueCard{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading hierarchy: %w", err)
	}

	node, err := domain.ParseNode(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding hierarchy: %w", err)
	}
	root, ok := node.(*domain.FolderNode)
	if !ok {
		return nil, fmt.Errorf("decoding hierarchy: %w: root is not a folder", domain.ErrMalformedNode)
	}

	due := []DueCard{}
	for card := range DueCards(root, today, s.params) {
		due = append(due, card)
	}
	log.Debug("due cards aggregated",
		slog.String("owner", owner),
		slog.Int("count", len(due)))
	return due, nil
}
