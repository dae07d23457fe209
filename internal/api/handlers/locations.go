package handlers

import (
	"net/http"

	"github.com/joya-energy/solar-simulation-backend/internal/api/response"
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/climate"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
)

// LocationHandler handles HTTP requests for the supported locations and
// their resolved solar yields.
type LocationHandler struct {
	yieldService *service.YieldService
}

// NewLocationHandler creates a new LocationHandler with the provided service dependency.
func NewLocationHandler(yieldService *service.YieldService) *LocationHandler {
	return &LocationHandler{
		yieldService: yieldService,
	}
}

// LocationResponse describes one supported location.
type LocationResponse struct {
	Name          string  `json:"name"`
	ClimateZone   string  `json:"climateZone"`
	FallbackYield float64 `json:"fallbackYieldKwhPerKwpYear"`
}

// Locations handles GET requests to list all supported locations with their
// climate zone and static fallback yield.
//
// Endpoint: GET /api/location
// Response: 200 OK with array of LocationResponse
func (h *LocationHandler) Locations(w http.ResponseWriter, _ *http.Request) {
	names := climate.Locations()
	locations := make([]LocationResponse, 0, len(names))

	for _, name := range names {
		zone, err := climate.ZoneFor(name)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveYields.Error(), err.Error())
			return
		}
		yield, err := climate.FallbackYieldFor(name)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveYields.Error(), err.Error())
			return
		}
		locations = append(locations, LocationResponse{
			Name:          name,
			ClimateZone:   zone,
			FallbackYield: yield,
		})
	}

	response.RespondJSON(w, http.StatusOK, locations)
}

// Yields handles GET requests to resolve the annual yield of every supported
// location, consulting the irradiance provider with fallback to the static
// table.
//
// Endpoint: GET /api/location/yield
// Response: 200 OK with array of LocationYield
// Error: 500 Internal Server Error if resolution fails
func (h *LocationHandler) Yields(w http.ResponseWriter, r *http.Request) {
	yields, err := h.yieldService.GetAllYields(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveYields.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, yields)
}
