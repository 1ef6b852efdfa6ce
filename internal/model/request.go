package model

import json "github.com/goccy/go-json"

// UpdateRequest asks for one named mutation to be applied to a draft return.
type UpdateRequest struct {
	UpdateID   string          `json:"update_id"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties"`
}

// StartReturnRequest creates a new draft return for a contact.
type StartReturnRequest struct {
	Contact ContactDetails `json:"contact_details"`
}

// EmailVerificationRequest asks for a verification email to be sent.
type EmailVerificationRequest struct {
	Email string `json:"email"`
}

// EmailCallbackRequest carries the token from a verification link.
type EmailCallbackRequest struct {
	Token string `json:"token"`
}
