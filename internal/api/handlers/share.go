package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joya-energy/solar-simulation-backend/internal/api/response"
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
)

// ShareHandler handles HTTP requests for read-only result sharing. A share
// link wraps a comparison ID in a signed, expiring token so results can be
// handed to a client without exposing the raw ID.
type ShareHandler struct {
	shareService      *service.ShareService
	comparisonService *service.ComparisonService
}

// NewShareHandler creates a new ShareHandler with the provided service dependencies.
func NewShareHandler(shareService *service.ShareService, comparisonService *service.ComparisonService) *ShareHandler {
	return &ShareHandler{
		shareService:      shareService,
		comparisonService: comparisonService,
	}
}

// ShareTokenResponse carries a freshly minted share token.
type ShareTokenResponse struct {
	Token string `json:"token"`
}

// CreateShareLink handles POST requests to mint a share token for a stored
// comparison.
//
// Endpoint: POST /api/comparison/{uuid}/share
// Response: 201 Created with ShareTokenResponse
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if no comparison has that ID
// Error: 503 Service Unavailable if sharing is not configured
func (h *ShareHandler) CreateShareLink(w http.ResponseWriter, r *http.Request) {
	comparisonID := chi.URLParam(r, "uuid")

	if !h.shareService.Enabled() {
		response.RespondError(w, http.StatusServiceUnavailable, "sharing is not configured", "")
		return
	}

	// Only mint tokens for results that actually exist.
	if _, err := h.comparisonService.GetComparison(comparisonID); err != nil {
		if errors.Is(err, apperrors.ErrComparisonNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrComparisonNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveResults.Error(), err.Error())
		return
	}

	token, err := h.shareService.MintToken(comparisonID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create share link", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, ShareTokenResponse{Token: token})
}

// ResolveShareLink handles GET requests to fetch a shared comparison through
// its token.
//
// Endpoint: GET /api/share/{token}
// Response: 200 OK with ComparisonResult
// Error: 401 Unauthorized if the token is invalid or expired
// Error: 404 Not Found if the shared comparison no longer exists
func (h *ShareHandler) ResolveShareLink(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	comparisonID, err := h.shareService.VerifyToken(token)
	if err != nil {
		response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidShareToken.Error(), "")
		return
	}

	result, err := h.comparisonService.GetComparison(comparisonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrComparisonNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrComparisonNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveResults.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
