package domain

import "errors"

// Validation and decoding errors shared across the domain types.
var (
	// ErrSetIDEmpty is returned when a flashcard set has no identifier.
	ErrSetIDEmpty = errors.New("set ID cannot be empty")

	// ErrSetNameEmpty is returned when a flashcard set has no name.
	ErrSetNameEmpty = errors.New("set name cannot be empty")

	// ErrReviewStateNegative is returned when a card's review state is
	// below zero. The integer part of the review state is the card's
	// mastery box and boxes start at zero.
	ErrReviewStateNegative = errors.New("card review state cannot be negative")

	// ErrMalformedDate is returned when a review date string is neither
	// "never" nor a dd/mm/yyyy calendar date.
	ErrMalformedDate = errors.New("malformed review date")

	// ErrMalformedNode is returned when a stored hierarchy document cannot
	// be decoded as either a folder or a flashcard set.
	ErrMalformedNode = errors.New("malformed hierarchy node")
)
