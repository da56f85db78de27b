package dto

// ActionRequest is the JSON body for POST /api/sessions/{sessionId}/actions.
// Which fields matter depends on Type.
type ActionRequest struct {
	Type      string `json:"type"`
	MenuIndex *int   `json:"menuIndex,omitempty"`
	LineID    string `json:"lineId,omitempty"`
	Name      string `json:"name"`
}
