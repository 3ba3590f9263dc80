package models

import "time"

// FailureRecord is the persisted form of one failed video listing request
type FailureRecord struct {
	RequestID    string    `json:"requestId"`
	Kind         string    `json:"kind"`
	Op           string    `json:"op"`
	Status       int       `json:"status"`
	Message      string    `json:"message"`
	UpstreamBody string    `json:"upstreamBody,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
