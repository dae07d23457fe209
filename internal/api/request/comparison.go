package request

// CompareRequest is the body of a financing comparison run. Exactly one of
// sizeKwp and investmentDt must be set; the other sizing is derived.
type CompareRequest struct {
	Location     string   `json:"location"`
	SizeKwp      *float64 `json:"sizeKwp,omitempty"`
	InvestmentDt *float64 `json:"investmentDt,omitempty"`
}
