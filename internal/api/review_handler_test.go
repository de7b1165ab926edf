package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_DueToday(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/sets", createSetBody("Algebra", "maths"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Pin the query date so the box-1 card reviewed on 25/08 is due and the
	// never-reviewed card is due as well.
	rec = doJSON(t, router, http.MethodGet, "/api/reviews/today?user_id=alice&date=29/08/2026", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp DueCardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cards, 2)
	for _, due := range resp.Cards {
		assert.Equal(t, "Algebra", due.SetName)
		assert.Equal(t, "maths/", due.Folder)
	}
}

func TestReviewHandler_DueTodayEmptyHierarchy(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/reviews/today?user_id=nobody", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The cards field must be an empty array, not null.
	assert.JSONEq(t, `{"cards":[]}`, rec.Body.String())
}

func TestReviewHandler_DueTodayValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing_user", target: "/api/reviews/today"},
		{name: "malformed_date", target: "/api/reviews/today?user_id=alice&date=2026-08-29"},
		{name: "never_as_date", target: "/api/reviews/today?user_id=alice&date=never"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodGet, tc.target, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}
