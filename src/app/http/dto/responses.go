package dto

// CreatedResponse carries the id of a created resource.
type CreatedResponse struct {
	ID any `json:"id"`
}

// SuccessResponse acknowledges an update.
type SuccessResponse struct {
	Success bool `json:"success"`
}
