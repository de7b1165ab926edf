package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mnemo-app/mnemo-api/internal/domain"
)

func TestNewSetValidation(t *testing.T) {
	_, err := domain.NewSet("", "Algebra", "", nil)
	assert.ErrorIs(t, err, domain.ErrSetIDEmpty)

	_, err = domain.NewSet("11", "", "", nil)
	assert.ErrorIs(t, err, domain.ErrSetNameEmpty)

	_, err = domain.NewSet("11", "Algebra", "", []domain.Card{{ReviewState: -1}})
	assert.ErrorIs(t, err, domain.ErrReviewStateNegative)

	s, err := domain.NewSet("11", "Algebra", "desc", []domain.Card{{Front: "f", Back: "b"}})
	require.NoError(t, err)
	assert.Equal(t, "Algebra", s.Name)
}

func TestSetDocumentRoundTrip(t *testing.T) {
	s, err := domain.NewSet("11", "Algebra", "school maths", []domain.Card{
		{Front: "f1", Back: "b1", ReviewState: 0, LastReview: domain.NeverReviewed()},
		{Front: "f2", Back: "b2", ReviewState: 2.5, LastReview: mustDate(t, "10/03/2026")},
	})
	require.NoError(t, err)

	doc, err := s.Document()
	require.NoError(t, err)
	assert.Equal(t, "set", doc["kind"], "stored sets carry an explicit node tag")
	assert.Equal(t, "11", doc["flashcardID"])

	back, err := domain.SetFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, s, back)
}
