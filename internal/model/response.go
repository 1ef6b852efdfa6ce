package model

import json "github.com/goccy/go-json"

// UpdateResponse is the result of applying one mutation to a draft return.
// Changes and Revert are RFC 6902 patches between the snapshot before and
// after the update; on FAILURE both are empty and DraftReturn echoes the
// unmodified snapshot.
type UpdateResponse struct {
	Metadata    UpdateMetadata    `json:"update_metadata"`
	Messages    []Message         `json:"messages"`
	DraftReturn *DraftReturn      `json:"draft_return"`
	TaskList    []RenderedSection `json:"task_list"`
	Changes     json.RawMessage   `json:"changes,omitempty"`
	Revert      json.RawMessage   `json:"revert,omitempty"`
}

type UpdateMetadata struct {
	UpdateID    string `json:"update_id"`
	ReturnID    string `json:"return_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// TaskListResponse is the rendered task list for one draft return.
type TaskListResponse struct {
	ReturnID string            `json:"return_id"`
	Sections []RenderedSection `json:"sections"`
}

// EmailVerificationResponse reports the outcome of a verification request.
type EmailVerificationResponse struct {
	Result string `json:"result"`
}

// IVFailureResponse tells the journey where to send a user whose identity
// verification attempt did not succeed.
type IVFailureResponse struct {
	Reason   string `json:"reason"`
	Redirect string `json:"redirect"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
