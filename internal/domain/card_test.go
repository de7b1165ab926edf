package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mnemo-app/mnemo-api/internal/domain"
)

func TestCardBox(t *testing.T) {
	tests := []struct {
		state float64
		box   int
	}{
		{0.0, 0},
		{0.7, 0},
		{1.0, 1},
		{1.9, 1},
		{3.2, 3},
	}
	for _, tt := range tests {
		card := domain.Card{ReviewState: tt.state}
		assert.Equal(t, tt.box, card.Box(), "review state %v", tt.state)
	}
}

func TestCardValidate(t *testing.T) {
	assert.NoError(t, domain.Card{Front: "f", Back: "b"}.Validate())
	assert.ErrorIs(t, domain.Card{ReviewState: -0.1}.Validate(), domain.ErrReviewStateNegative)
}

func TestCardWireFormat(t *testing.T) {
	card := domain.Card{
		Front:       "Front 1",
		Back:        "Back 1",
		ReviewState: 1.5,
		LastReview:  mustDate(t, "01/02/2026"),
	}

	raw, err := json.Marshal(card)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"front":"Front 1","back":"Back 1","reviewStatus":"1.5","lastReview":"01/02/2026"}`,
		string(raw))

	var back domain.Card
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, card, back)
}

func TestCardWireFormatWholeNumberKeepsDecimal(t *testing.T) {
	raw, err := json.Marshal(domain.Card{ReviewState: 2, LastReview: domain.NeverReviewed()})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"reviewStatus":"2.0"`)
}

func TestCardUnmarshalToleratesBareNumber(t *testing.T) {
	// Older clients wrote the review status as a JSON number.
	var card domain.Card
	err := json.Unmarshal([]byte(`{"front":"f","back":"b","reviewStatus":1.5,"lastReview":"never"}`), &card)
	require.NoError(t, err)
	assert.Equal(t, 1.5, card.ReviewState)
	assert.True(t, card.LastReview.Never)
}

func TestCardUnmarshalRejectsNegativeState(t *testing.T) {
	var card domain.Card
	err := json.Unmarshal([]byte(`{"front":"f","back":"b","reviewStatus":"-1.0","lastReview":"never"}`), &card)
	assert.ErrorIs(t, err, domain.ErrReviewStateNegative)
}

func mustDate(t *testing.T, s string) domain.ReviewDate {
	t.Helper()
	d, err := domain.ParseReviewDate(s)
	require.NoError(t, err)
	return d
}
