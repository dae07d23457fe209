// Package audit implements the energy-audit calculators: regulatory-style
// energy and carbon classification, CO2 emission totals and domestic hot
// water loads.
package audit

// Band is one row of an ordered classification threshold table. A value
// belongs to the first band whose Max is greater than or equal to it; a value
// exactly on a threshold therefore falls in the better band.
type Band struct {
	Max         float64
	Grade       string
	Description string
}

// GradeNotApplicable is the grade returned when a classification cannot be
// computed (unsupported building type, non-positive surface). Classification
// is an optional enrichment, so this is a result, not an error.
const GradeNotApplicable = "NA"

// ClassificationResult is the outcome of banding an intensity value against a
// building-type threshold table.
type ClassificationResult struct {
	Grade       string  `json:"grade"`
	Description string  `json:"classDescription"`
	Intensity   float64 `json:"intensity"`
	Applicable  bool    `json:"applicable"`
}

// classify walks an ordered band table and returns the first band whose Max
// covers the value, defaulting to the last (worst) band. All classifiers
// share this traversal so the boundary tie-break lives in one place.
func classify(bands []Band, value float64) Band {
	for _, band := range bands {
		if value <= band.Max {
			return band
		}
	}
	return bands[len(bands)-1]
}

// notApplicable builds the NA result with an explanatory description.
// Intensity stays zero; it has no meaning without a scale.
func notApplicable(reason string) ClassificationResult {
	return ClassificationResult{
		Grade:       GradeNotApplicable,
		Description: reason,
		Applicable:  false,
	}
}
