package api

import (
	"net/http"

	"github.com/mnemo-app/mnemo-api/internal/api/shared"
	"github.com/mnemo-app/mnemo-api/internal/domain"
	"github.com/mnemo-app/mnemo-api/internal/service"
)

// CreateSetRequest represents the request body for creating a flashcard set.
// Card fields arrive in the stored wire format (reviewStatus as a decimal
// string, lastReview as dd/mm/yyyy or "never") and are decoded by
// domain.Card itself.
type CreateSetRequest struct {
	UserID      string        `json:"userID"               validate:"required"`
	Name        string        `json:"flashcardName"        validate:"required"`
	Description string        `json:"flashcardDescription"`
	Folder      string        `json:"folder"`
	Cards       []domain.Card `json:"cards"`
}

// CreateSetResponse reports the address the set lives at and whether this
// request created it or found it already present.
type CreateSetResponse struct {
	FlashcardID string `json:"flashcardID"`
	Created     bool   `json:"created"`
}

// MoveSetRequest represents the request body for relocating a set between
// folders. Locations are folder paths relative to the user's root; an empty
// string names the root itself.
type MoveSetRequest struct {
	UserID          string `json:"userID"          validate:"required"`
	CurrentLocation string `json:"currentLocation"`
	FlashcardID     string `json:"flashcardID"     validate:"required"`
	MoveLocation    string `json:"moveLocation"`
}

// MoveSetResponse confirms the set's new location.
type MoveSetResponse struct {
	FlashcardID string `json:"flashcardID"`
	Location    string `json:"location"`
}

// SetHandler handles flashcard-set HTTP requests.
type SetHandler struct {
	setService *service.SetService
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(setService *service.SetService) *SetHandler {
	if setService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("set service cannot be nil for SetHandler")
	}
	return &SetHandler{setService: setService}
}

// CreateSet handles POST /api/sets requests. Creation is idempotent:
// repeating a request for an existing set succeeds without modifying it.
func (h *SetHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req CreateSetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.setService.CreateSet(
		r.Context(), req.UserID, req.Name, req.Description, req.Folder, req.Cards)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreateSetResponse{
		FlashcardID: result.Set.ID,
		Created:     result.Created,
	})
}

// GetSet handles GET /api/sets?user_id=&name= requests. Lookup is by owner
// and name over the root folder; the full stored set document is returned.
func (h *SetHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	name := r.URL.Query().Get("name")
	if userID == "" || name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "user_id and name query parameters are required")
		return
	}

	set, err := h.setService.GetSet(r.Context(), userID, name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, set)
}

// MoveSet handles POST /api/sets/move requests. The move is atomic: no
// observable state has the set at both locations or at neither.
func (h *SetHandler) MoveSet(w http.ResponseWriter, r *http.Request) {
	var req MoveSetRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.setService.MoveSet(
		r.Context(), req.UserID, req.CurrentLocation, req.FlashcardID, req.MoveLocation)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MoveSetResponse{
		FlashcardID: req.FlashcardID,
		Location:    req.MoveLocation,
	})
}
