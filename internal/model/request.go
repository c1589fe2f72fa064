package model

import (
	"time"

	"github.com/google/uuid"
)

// CapturedRequest holds the observed details of one HTTP request. Requests
// are captured for logging and the recent-request view only; nothing is
// persisted.
type CapturedRequest struct {
	ID         uuid.UUID         `json:"id"`
	ReceivedAt time.Time         `json:"received_at"`
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	Query      string            `json:"query,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body,omitempty"`
}
