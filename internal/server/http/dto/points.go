package dto

// AddPointsRequest credits points to the customer holding the loyalty code.
// Points is a pointer so a missing field can be told apart from zero.
type AddPointsRequest struct {
	LoyaltyCode string `json:"loyaltyCode"`
	Points      *int64 `json:"points"`
}

// AddPointsResponse reports the balance after the credit.
type AddPointsResponse struct {
	Message   string `json:"message"`
	NewPoints int64  `json:"newPoints"`
}
