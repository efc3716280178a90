package dto

import "encoding/json"

// RecordCheckRequest resultado de un checkpoint para un batch.
type RecordCheckRequest struct {
	CheckpointID string          `json:"checkpoint_id"`
	Status       string          `json:"status"`
	Metadata     json.RawMessage `json:"metadata"`
	Notes        string          `json:"notes"`
}
