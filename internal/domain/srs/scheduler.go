// Package srs decides when a flashcard is due for review. The decision is a
// pure function of the card's mastery state, its last review date, and a
// caller-supplied current date, never ambient clock time, so scheduling
// stays deterministic and testable.
//
// The package deliberately does not adjust mastery after a review; that
// belongs to the learning algorithm, which rewrites a card's review state
// and last-review date between queries. The scheduler only has to tolerate
// those rewrites.
package srs

import (
	"math"

	"github.com/mnemo-app/mnemo-api/internal/domain"
)

// IsDue reports whether the card should be reviewed on the given day.
//
// A card in box 0, or one that has never been reviewed, is always due.
// Otherwise the card is due once IntervalDays(box) days have elapsed since
// its last review.
func IsDue(card domain.Card, today domain.ReviewDate, params *Params) bool {
	if card.Box() == 0 || card.LastReview.Never {
		return true
	}
	next := card.LastReview.AddDays(IntervalDays(card.Box(), params))
	return !today.Before(next)
}

// IntervalDays returns the review interval for a mastery box:
// IntervalBase^box days, capped at MaxIntervalDays. Box 0 has no interval;
// cards there are always due.
func IntervalDays(box int, params *Params) int {
	if box <= 0 {
		return 0
	}
	days := math.Pow(params.IntervalBase, float64(box))
	if days > float64(params.MaxIntervalDays) {
		return params.MaxIntervalDays
	}
	return int(days)
}
