package mutations

import (
	"strings"

	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
)

type verifyEmailProps struct {
	Email string `json:"email"`
}

type VerifyEmailHandler struct{}

func (h *VerifyEmailHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var msgs []model.Message

	if state.Contact == nil {
		msgs = append(msgs, critical("CONTACT_NOT_FOUND", "The return has no contact details to verify"))
		return msgs
	}

	var props verifyEmailProps
	json.Unmarshal(req.Properties, &props)

	if strings.TrimSpace(props.Email) == "" {
		msgs = append(msgs, critical("MISSING_EMAIL", "An email address is required"))
		return msgs
	}

	// Re-verifying an already verified address is a no-op, not a failure.
	if state.Contact.EmailVerified() && state.Contact.Email() == props.Email {
		msgs = append(msgs, warning("EMAIL_ALREADY_VERIFIED", "The email address is already verified"))
	}

	return msgs
}

func (h *VerifyEmailHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var props verifyEmailProps
	json.Unmarshal(req.Properties, &props)

	updated := state.Contact.WithVerifiedEmail(props.Email)
	state.Contact = &updated

	return nil
}
