package request

// UpdateStoreRequest represents the store update request body
type UpdateStoreRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}
