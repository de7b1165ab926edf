package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Card is a single flashcard. ReviewState encodes two things: its integer
// part is the card's mastery box (0 = new, >= 1 = promoted at least once)
// and its fractional part is sub-progress within the box, owned by the
// learning algorithm that rewrites it after each review. The scheduler only
// reads the box.
type Card struct {
	Front       string
	Back        string
	ReviewState float64
	LastReview  ReviewDate
}

// cardWire is the stored/transported shape of a card. The review state
// travels as a numeric string ("0.0") and the date as dd/mm/yyyy or
// "never", matching the documented request schemas.
type cardWire struct {
	Front        string          `json:"front"`
	Back         string          `json:"back"`
	ReviewStatus json.RawMessage `json:"reviewStatus"`
	LastReview   ReviewDate      `json:"lastReview"`
}

// Box returns the card's mastery box, the integer part of its review state.
func (c Card) Box() int {
	return int(math.Floor(c.ReviewState))
}

// Validate checks the card's semantic constraints. Shape validation happens
// at the request boundary; this guards the constraints the shape cannot
// express.
func (c Card) Validate() error {
	if c.ReviewState < 0 {
		return fmt.Errorf("%w: %v", ErrReviewStateNegative, c.ReviewState)
	}
	return nil
}

// MarshalJSON implements json.Marshaler using the wire shape.
func (c Card) MarshalJSON() ([]byte, error) {
	status, err := json.Marshal(formatReviewState(c.ReviewState))
	if err != nil {
		return nil, err
	}
	return json.Marshal(cardWire{
		Front:        c.Front,
		Back:         c.Back,
		ReviewStatus: status,
		LastReview:   c.LastReview,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The review state is accepted
// as either a numeric string or a bare JSON number so that documents written
// by older clients still decode.
func (c *Card) UnmarshalJSON(data []byte) error {
	var w cardWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	state, err := parseReviewState(w.ReviewStatus)
	if err != nil {
		return err
	}
	*c = Card{
		Front:       w.Front,
		Back:        w.Back,
		ReviewState: state,
		LastReview:  w.LastReview,
	}
	return c.Validate()
}

// formatReviewState renders a review state as a numeric string with at
// least one decimal place, e.g. 0 -> "0.0", 1.5 -> "1.5".
func formatReviewState(state float64) string {
	s := strconv.FormatFloat(state, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// parseReviewState accepts "1.5", "0.0" or a bare number.
func parseReviewState(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return 0, fmt.Errorf("review status must be a number or numeric string, got %s", raw)
		}
		return f, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("review status %q is not numeric: %w", s, err)
	}
	return f, nil
}
