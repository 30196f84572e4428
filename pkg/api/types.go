package api

import "time"

// Blueprint is one generated deployment document for a device model.
// Records are immutable once created; history replaces rather than edits.
type Blueprint struct {
	ID          string    `json:"id"`
	DeviceModel string    `json:"device_model"`
	Content     string    `json:"content"` // exact Markdown text as returned
	CreatedAt   time.Time `json:"created_at"`
}

// NewBlueprint builds a record with a normalized UTC timestamp.
func NewBlueprint(id, deviceModel, content string, now time.Time) Blueprint {
	return Blueprint{
		ID:          id,
		DeviceModel: deviceModel,
		Content:     content,
		CreatedAt:   now.UTC(),
	}
}
