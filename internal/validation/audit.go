package validation

import (
	"strings"

	"github.com/joya-energy/solar-simulation-backend/internal/api/request"
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
)

// ValidBuildingType contains the allowed building type values.
var ValidBuildingType = map[model.BuildingType]bool{
	model.BuildingOffice:      true,
	model.BuildingCommercial:  true,
	model.BuildingResidential: true,
	model.BuildingIndustrial:  true,
	model.BuildingHealth:      true,
}

// ParseBuildingType normalizes and validates a building type string.
func ParseBuildingType(raw string) (model.BuildingType, error) {
	buildingType := model.BuildingType(strings.ToLower(strings.TrimSpace(raw)))
	if !ValidBuildingType[buildingType] {
		return "", apperrors.ErrUnknownBuildingType
	}
	return buildingType, nil
}

// ValidateAuditSimulationRequest validates an audit simulation request and
// maps it to the service input.
func ValidateAuditSimulationRequest(req request.AuditSimulationRequest) (service.AuditInput, error) {
	location := strings.ToLower(strings.TrimSpace(req.Location))
	if location == "" {
		return service.AuditInput{}, apperrors.ErrUnknownLocation
	}

	buildingType, err := ParseBuildingType(req.BuildingType)
	if err != nil {
		return service.AuditInput{}, err
	}

	if req.ReferenceMonth < 1 || req.ReferenceMonth > 12 {
		return service.AuditInput{}, apperrors.ErrInvalidReferenceMonth
	}

	if req.MonthlyBillDt <= 0 || req.SizeKwp <= 0 {
		return service.AuditInput{}, apperrors.ErrNonPositiveAmount
	}

	return service.AuditInput{
		Location:       location,
		BuildingType:   buildingType,
		MonthlyBillDt:  req.MonthlyBillDt,
		ReferenceMonth: req.ReferenceMonth,
		SizeKwp:        req.SizeKwp,
	}, nil
}
