package request

// ScanItemRequest is the request body for resolving scan input. Exactly one
// of OrnamentID or Type must be set: an id resolves a single tagged item, a
// type lists every available item of that category.
type ScanItemRequest struct {
	OrnamentID string `json:"ornament_id"`
	Type       string `json:"type"`
}
