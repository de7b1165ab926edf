package api

import (
	"net/http"
	"time"

	"github.com/mnemo-app/mnemo-api/internal/api/shared"
	"github.com/mnemo-app/mnemo-api/internal/domain"
	"github.com/mnemo-app/mnemo-api/internal/service/review"
)

// dueCardsQuery carries the query parameters of a due-cards request. The
// optional date overrides "today" for catch-up and testing scenarios.
type dueCardsQuery struct {
	UserID string `validate:"required"`
	Date   string `validate:"omitempty,review_date"`
}

// DueCardsResponse lists every card due for review, each annotated with its
// owning set and folder.
type DueCardsResponse struct {
	Cards []review.DueCard `json:"cards"`
}

// ReviewHandler handles review-query HTTP requests.
type ReviewHandler struct {
	reviewService *review.Service
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *review.Service) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("review service cannot be nil for ReviewHandler")
	}
	return &ReviewHandler{reviewService: reviewService}
}

// DueToday handles GET /api/reviews/today?user_id=[&date=] requests. A user
// with no flashcards at all gets an empty card list, not an error.
func (h *ReviewHandler) DueToday(w http.ResponseWriter, r *http.Request) {
	query := dueCardsQuery{
		UserID: r.URL.Query().Get("user_id"),
		Date:   r.URL.Query().Get("date"),
	}
	if err := shared.ValidateRequest(query); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	today := domain.NewReviewDate(time.Now())
	if query.Date != "" {
		parsed, err := domain.ParseReviewDate(query.Date)
		if err != nil || parsed.Never {
			shared.RespondWithError(w, r, http.StatusBadRequest, "date must be dd/mm/yyyy")
			return
		}
		today = parsed
	}

	cards, err := h.reviewService.DueToday(r.Context(), query.UserID, today)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueCardsResponse{Cards: cards})
}
