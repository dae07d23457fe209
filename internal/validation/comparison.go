package validation

import (
	"strings"

	"github.com/joya-energy/solar-simulation-backend/internal/api/request"
	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// SizingFromCompareRequest validates the sizing fields of a comparison
// request and maps them to the domain sizing type.
//
// Exactly-one-of rule: sizeKwp and investmentDt are mutually exclusive and
// one is required. The chosen value must be positive.
func SizingFromCompareRequest(req request.CompareRequest) (model.Sizing, error) {
	if req.SizeKwp != nil && req.InvestmentDt != nil {
		return model.Sizing{}, apperrors.ErrSizingConflict
	}

	switch {
	case req.SizeKwp != nil:
		if *req.SizeKwp <= 0 {
			return model.Sizing{}, apperrors.ErrNonPositiveAmount
		}
		return model.SizingFromCapacity(*req.SizeKwp), nil
	case req.InvestmentDt != nil:
		if *req.InvestmentDt <= 0 {
			return model.Sizing{}, apperrors.ErrNonPositiveAmount
		}
		return model.SizingFromBudget(*req.InvestmentDt), nil
	default:
		return model.Sizing{}, apperrors.ErrSizingRequired
	}
}

// ValidateCompareRequest validates a full comparison request.
func ValidateCompareRequest(req request.CompareRequest) (model.ProjectInput, error) {
	location := strings.ToLower(strings.TrimSpace(req.Location))
	if location == "" {
		return model.ProjectInput{}, apperrors.ErrUnknownLocation
	}

	sizing, err := SizingFromCompareRequest(req)
	if err != nil {
		return model.ProjectInput{}, err
	}

	return model.ProjectInput{Location: location, Sizing: sizing}, nil
}
