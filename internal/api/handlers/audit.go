package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joya-energy/solar-simulation-backend/internal/api/request"
	"github.com/joya-energy/solar-simulation-backend/internal/api/response"
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/audit"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
	"github.com/joya-energy/solar-simulation-backend/internal/validation"
)

// AuditHandler handles HTTP requests for the solar-audit endpoints: the full
// simulation pipeline plus the stateless classification helpers.
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new AuditHandler with the provided service dependency.
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// Simulate handles POST requests to run the full audit pipeline from a single
// monthly bill.
//
// Endpoint: POST /api/audit/simulation
// Request Body: AuditSimulationRequest
// Response: 201 Created with AuditSimulation
// Error: 400 Bad Request if validation fails or the location is unknown
// Error: 500 Internal Server Error if the simulation cannot be saved
func (h *AuditHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AuditSimulationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := validation.ValidateAuditSimulationRequest(req)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	sim, err := h.auditService.RunSimulation(r.Context(), input)
	if err != nil {
		if isInputError(err) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveAudit.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, sim)
}

// GetSimulation handles GET requests to retrieve a stored audit simulation by ID.
//
// Endpoint: GET /api/audit/simulation/{uuid}
// Response: 200 OK with AuditSimulation
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if no simulation has that ID
// Error: 500 Internal Server Error if retrieval fails
func (h *AuditHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	simulationID := chi.URLParam(r, "uuid")

	sim, err := h.auditService.GetSimulation(simulationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAuditNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAuditNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveResults.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, sim)
}

// EnergyClass handles POST requests to grade a building's thermal performance.
// Unknown building types and non-positive surfaces yield a not-applicable
// grade rather than an error.
//
// Endpoint: POST /api/audit/energy-class
// Request Body: EnergyClassRequest
// Response: 200 OK with ClassificationResult
// Error: 400 Bad Request if the request body is invalid
func (h *AuditHandler) EnergyClass(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.EnergyClassRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	// Building type is passed through unvalidated on purpose; the classifier
	// answers NA for types it has no scale for.
	result := h.auditService.ClassifyEnergy(
		model.BuildingType(req.BuildingType),
		req.HeatingLoadKwh,
		req.CoolingLoadKwh,
		req.ConditionedSurfaceM2,
	)

	response.RespondJSON(w, http.StatusOK, result)
}

// CarbonClassResponse pairs the computed emissions with their grade.
type CarbonClassResponse struct {
	Emissions audit.Co2Emissions         `json:"emissions"`
	Class     audit.ClassificationResult `json:"class"`
}

// CarbonClass handles POST requests to compute CO2 emissions from the energy
// mix and grade the per-surface intensity.
//
// Endpoint: POST /api/audit/carbon-class
// Request Body: CarbonClassRequest
// Response: 200 OK with CarbonClassResponse
// Error: 400 Bad Request if the request body is invalid
func (h *AuditHandler) CarbonClass(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CarbonClassRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	emissions, class := h.auditService.ClassifyCarbon(
		model.BuildingType(req.BuildingType),
		audit.Co2Input{
			ElectricityConsumptionKwh: req.ElectricityConsumptionKwh,
			GasConsumptionKwh:         req.GasConsumptionKwh,
			ElectricityFactor:         req.ElectricityFactor,
			GasFactor:                 req.GasFactor,
		},
		req.ConditionedSurfaceM2,
	)

	response.RespondJSON(w, http.StatusOK, CarbonClassResponse{
		Emissions: emissions,
		Class:     class,
	})
}

// HotWater handles POST requests to compute the domestic hot water load.
//
// Endpoint: POST /api/audit/hot-water
// Request Body: HotWaterRequest
// Response: 200 OK with DomesticHotWaterLoad
// Error: 400 Bad Request if the request body is invalid
func (h *AuditHandler) HotWater(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.HotWaterRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.DemandKwhPerM2 <= 0 || req.UtilizationFactor <= 0 {
		response.RespondError(w, http.StatusBadRequest, "validation failed", apperrors.ErrNonPositiveAmount.Error())
		return
	}

	load := audit.ComputeDomesticHotWaterLoad(
		req.DemandKwhPerM2,
		req.UtilizationFactor,
		audit.HotWaterSystem(req.System),
		req.Efficiency,
	)

	response.RespondJSON(w, http.StatusOK, load)
}
