package apperrors

import "errors"

// Input validation errors represent malformed or out-of-range user input.
// These errors are always caller-correctable and surface as 400-level responses.
var (
	// ErrInvalidReferenceMonth indicates a bill reference month outside 1-12.
	ErrInvalidReferenceMonth = errors.New("reference month must be between 1 and 12")

	// ErrUnknownBuildingType indicates a building type with no coefficient table.
	ErrUnknownBuildingType = errors.New("unknown building type")

	// ErrUnknownClimateZone indicates a climate zone with no seasonal weight table.
	ErrUnknownClimateZone = errors.New("unknown climate zone")

	// ErrUnknownLocation indicates a location key that cannot be resolved
	// to coordinates or a yield entry.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrSizingRequired indicates that neither an installation size nor an
	// investment budget was provided.
	ErrSizingRequired = errors.New("either installation size or investment amount is required")

	// ErrSizingConflict indicates that both an installation size and an
	// investment budget were provided; exactly one is accepted.
	ErrSizingConflict = errors.New("installation size and investment amount are mutually exclusive")

	// ErrNonPositiveAmount indicates a monetary or energy amount that must be
	// strictly positive but was not.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Calculation errors represent internal arithmetic preconditions that failed
// on well-formed input. They should be rare and are logged with the offending
// inputs for diagnosis.
var (
	// ErrSolverDiverged indicates the IRR bisection found a sign change but
	// failed to converge within its iteration budget.
	ErrSolverDiverged = errors.New("rate solver failed to converge")

	// ErrNonPositiveDuration indicates a financing duration of zero or fewer months.
	ErrNonPositiveDuration = errors.New("financing duration must be positive")
)

// Domain entity errors represent missing persisted snapshots.
var (
	// ErrComparisonNotFound indicates that a comparison snapshot with the given ID does not exist.
	ErrComparisonNotFound = errors.New("comparison result not found")

	// ErrAuditNotFound indicates that a solar audit simulation with the given ID does not exist.
	ErrAuditNotFound = errors.New("audit simulation not found")
)

// Share token errors.
var (
	// ErrInvalidShareToken indicates a share token that failed verification or expired.
	ErrInvalidShareToken = errors.New("invalid or expired share token")
)

// Operation failure errors represent system-level failures when storing or
// retrieving data. These indicate that an operation failed, but not due to
// bad input or a missing entity.
var (
	ErrFailedToSaveComparison  = errors.New("failed to save comparison result")
	ErrFailedToRetrieveResults = errors.New("failed to retrieve simulation results")
	ErrFailedToSaveAudit       = errors.New("failed to save audit simulation")
	ErrFailedToGetVersionInfo  = errors.New("failed to get version information")
	ErrFailedToRetrieveYields  = errors.New("failed to retrieve location yields")
)
