package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joya-energy/solar-simulation-backend/internal/api/request"
	"github.com/joya-energy/solar-simulation-backend/internal/api/response"
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
	"github.com/joya-energy/solar-simulation-backend/internal/validation"
)

// ComparisonHandler handles HTTP requests for financing comparison endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the comparisonService.
type ComparisonHandler struct {
	comparisonService *service.ComparisonService
}

// NewComparisonHandler creates a new ComparisonHandler with the provided service dependency.
func NewComparisonHandler(comparisonService *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
	}
}

// Compare handles POST requests to run a four-way financing comparison.
// Validates the request body, runs all four calculators and persists the
// resulting snapshot.
//
// Endpoint: POST /api/comparison
// Request Body: CompareRequest (location, exactly one of sizeKwp / investmentDt)
// Response: 201 Created with ComparisonResult
// Error: 400 Bad Request if validation fails or the location is unknown
// Error: 500 Internal Server Error if the comparison cannot be saved
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CompareRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := validation.ValidateCompareRequest(req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.comparisonService.Compare(r.Context(), input)
	if err != nil {
		if isInputError(err) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveComparison.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}

// GetComparison handles GET requests to retrieve a single stored comparison by ID.
//
// Endpoint: GET /api/comparison/{uuid}
// Response: 200 OK with ComparisonResult
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if no comparison has that ID
// Error: 500 Internal Server Error if retrieval fails
func (h *ComparisonHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	comparisonID := chi.URLParam(r, "uuid")

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

// AllComparisons handles GET requests to list stored comparisons,
// most recent first. An optional limit query parameter caps the result.
//
// Endpoint: GET /api/comparison?limit=20
// Response: 200 OK with array of ComparisonResult
// Error: 500 Internal Server Error if retrieval fails
func (h *ComparisonHandler) AllComparisons(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.RespondError(w, http.StatusBadRequest, "invalid limit parameter", raw)
			return
		}
		limit = parsed
	}

	results, err := h.comparisonService.GetComparisons(limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveResults.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, results)
}

// isInputError reports whether an error maps to a 400 rather than a 500.
func isInputError(err error) bool {
	return errors.Is(err, apperrors.ErrUnknownLocation) ||
		errors.Is(err, apperrors.ErrUnknownBuildingType) ||
		errors.Is(err, apperrors.ErrUnknownClimateZone) ||
		errors.Is(err, apperrors.ErrInvalidReferenceMonth) ||
		errors.Is(err, apperrors.ErrSizingRequired) ||
		errors.Is(err, apperrors.ErrSizingConflict) ||
		errors.Is(err, apperrors.ErrNonPositiveAmount) ||
		errors.Is(err, apperrors.ErrNonPositiveDuration)
}
