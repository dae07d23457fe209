package simulation

import (
	"fmt"

	"github.com/joya-energy/solar-simulation-backend/internal/model"
)

// CompareAllSolutions runs the shared project calculation once, then prices
// all four financing structures against it. All four are always computed so
// the caller can present a side-by-side table; a non-viable ESCO offer is
// returned as a soft failure inside its solution rather than aborting the
// other three.
func CompareAllSolutions(
	input model.ProjectInput,
	params model.ProjectParameters,
	creditParams CreditParameters,
	leasingParams LeasingParameters,
	escoParams EscoParameters,
) (model.ComparisonResult, error) {
	calculation, err := CalculateProject(input, params)
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("project calculation: %w", err)
	}

	cash := CalculateCash(calculation)

	credit, err := CalculateCredit(calculation, creditParams)
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("credit solution: %w", err)
	}

	leasing, err := CalculateLeasing(calculation, leasingParams)
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("leasing solution: %w", err)
	}

	esco, err := CalculateEsco(calculation, escoParams)
	if err != nil {
		return model.ComparisonResult{}, fmt.Errorf("esco solution: %w", err)
	}

	return model.ComparisonResult{
		Input:       input,
		Parameters:  params,
		Calculation: calculation,
		Cash:        cash,
		Credit:      credit,
		Leasing:     leasing,
		Esco:        esco,
	}, nil
}
