package domain

import (
	"encoding/json"
	"fmt"
)

// Set is a named, described, ordered collection of flashcards. Its ID is
// derived deterministically from (owner, folder, name) by the address
// package and never changes across a move; only the set's folder prefix
// does.
type Set struct {
	ID          string `json:"flashcardID"`
	Name        string `json:"flashcardName"`
	Description string `json:"flashcardDescription"`
	Cards       []Card `json:"cards"`
}

// NewSet builds a validated Set.
func NewSet(id, name, description string, cards []Card) (*Set, error) {
	s := &Set{
		ID:          id,
		Name:        name,
		Description: description,
		Cards:       cards,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the set's semantic constraints.
func (s *Set) Validate() error {
	if s.ID == "" {
		return ErrSetIDEmpty
	}
	if s.Name == "" {
		return ErrSetNameEmpty
	}
	for i, c := range s.Cards {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
	}
	return nil
}

// Document renders the set as a stored document, tagged with its node kind
// so that readers never have to guess folder versus set from field shape.
func (s *Set) Document() (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding set %q: %w", s.ID, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encoding set %q: %w", s.ID, err)
	}
	doc[kindKey] = kindSet
	return doc, nil
}

// SetFromDocument decodes a stored set document.
func SetFromDocument(doc map[string]any) (*Set, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
	}
	var s Set
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
	}
	return &s, nil
}
